package collectors

import (
	"strings"
	"testing"
	"time"
)

var uploadNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoadCSV_MinimalColumns(t *testing.T) {
	csvData := "title,text\nGreat product,Works perfectly\nBad product,Broke immediately\n"

	items, err := LoadCSV(strings.NewReader(csvData), uploadNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != "custom_1" {
		t.Errorf("Expected id custom_1, got %s", first.ID)
	}
	if first.Score != 0 || first.NumComments != 0 {
		t.Errorf("Missing score/comments must default to 0, got %d/%d", first.Score, first.NumComments)
	}
	if first.Source != "custom" {
		t.Errorf("Missing source must default to custom, got %s", first.Source)
	}
	if first.Keyword != "unknown" {
		t.Errorf("Missing brand must default to unknown, got %s", first.Keyword)
	}

	// Missing dates stagger backwards one hour per row.
	if !items[0].CreatedAt.Equal(uploadNow) {
		t.Errorf("Expected row 0 at %v, got %v", uploadNow, items[0].CreatedAt)
	}
	if !items[1].CreatedAt.Equal(uploadNow.Add(-time.Hour)) {
		t.Errorf("Expected row 1 staggered one hour back, got %v", items[1].CreatedAt)
	}
}

func TestLoadCSV_OptionalColumns(t *testing.T) {
	csvData := "title,text,score,comments,date,source,brand\n" +
		"Solid phone,Battery lasts forever,42,7,2025-05-20,forum,Acme\n"

	items, err := LoadCSV(strings.NewReader(csvData), uploadNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	item := items[0]
	if item.Score != 42 || item.NumComments != 7 {
		t.Errorf("Expected score 42 / comments 7, got %d/%d", item.Score, item.NumComments)
	}
	if item.Source != "forum" {
		t.Errorf("Expected source forum, got %s", item.Source)
	}
	if item.Keyword != "acme" {
		t.Errorf("Expected lower-cased keyword acme, got %s", item.Keyword)
	}
	want := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	if !item.CreatedAt.Equal(want) {
		t.Errorf("Expected parsed date %v, got %v", want, item.CreatedAt)
	}
}

func TestLoadCSV_MissingRequiredColumns(t *testing.T) {
	csvData := "title,score\nSomething,5\n"

	_, err := LoadCSV(strings.NewReader(csvData), uploadNow)
	if err == nil {
		t.Fatal("Expected a validation error")
	}
	if !strings.Contains(err.Error(), "text") {
		t.Errorf("Error should name the missing column, got: %v", err)
	}
}

func TestLoadCSV_UnparseableScoreDefaultsToZero(t *testing.T) {
	csvData := "title,text,score\nSomething,Some text here,not-a-number\n"

	items, err := LoadCSV(strings.NewReader(csvData), uploadNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if items[0].Score != 0 {
		t.Errorf("Expected score 0, got %d", items[0].Score)
	}
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader(""), uploadNow); err == nil {
		t.Error("Expected an error for an empty file")
	}
}
