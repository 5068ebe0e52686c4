package sentiment

import "testing"

func TestNormalize_RemovesURLs(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"check this https://example.com/article now", "check this now"},
		{"see www.example.com for details", "see for details"},
		{"http://a.b/c", ""},
		{"plain text stays", "plain text stays"},
	}

	for _, c := range cases {
		if got := Normalize(c.input); got != c.expected {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.expected)
		}
	}
}

func TestNormalize_RemovesMentionsAndHashtags(t *testing.T) {
	got := Normalize("@brandfan loves #brand so much")
	want := "loves so much"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  too   many\t\tspaces\n here  ")
	want := "too many spaces here"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
	// All-removable input degrades to empty, not an error.
	if got := Normalize("https://only.url @user #tag"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestMarkdownToText(t *testing.T) {
	got := MarkdownToText("**Bold claim** about [the product](https://example.com/p)")
	want := "Bold claim about the product"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
