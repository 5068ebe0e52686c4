package sentiment

import (
	"math"
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestVaderScorer_Positive(t *testing.T) {
	scorer := NewVaderScorer()

	result := scorer.Score("Absolutely love it, best purchase ever")
	if result.Label != models.LabelPositive {
		t.Errorf("Expected positive, got %s (compound %f)", result.Label, result.Score)
	}
	if result.Score < 0.05 {
		t.Errorf("Expected compound of at least 0.05, got %f", result.Score)
	}
	if math.Abs(result.Score) != result.Confidence {
		t.Errorf("Confidence should equal abs(compound): %f vs %f", result.Confidence, result.Score)
	}
}

func TestVaderScorer_Negative(t *testing.T) {
	scorer := NewVaderScorer()

	result := scorer.Score("Awful support, totally disappointed and angry")
	if result.Label != models.LabelNegative {
		t.Errorf("Expected negative, got %s (compound %f)", result.Label, result.Score)
	}
}

func TestVaderScorer_EmptyTextFallback(t *testing.T) {
	scorer := NewVaderScorer()

	result := scorer.Score("")
	if result.Label != models.LabelNeutral || result.Score != 0.0 || result.Confidence != 0.0 {
		t.Errorf("Empty input should degrade to neutral fallback, got %+v", result)
	}
}

func TestVaderScorer_ConfidenceInRange(t *testing.T) {
	scorer := NewVaderScorer()

	for _, text := range []string{
		"the quarterly report was published on tuesday",
		"I love this so much",
		"this is the worst thing I have ever used",
	} {
		result := scorer.Score(text)
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("Confidence out of [0,1] for %q: %f", text, result.Confidence)
		}
	}
}
