package sentiment

import (
	"math"
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestResolve_SingleResultPassthrough(t *testing.T) {
	label, confidence := Resolve([]models.ScoreResult{
		{Label: models.LabelNegative, Confidence: 0.73},
	})

	if label != models.LabelNegative {
		t.Errorf("Expected negative, got %s", label)
	}
	if confidence != 0.73 {
		t.Errorf("Expected confidence 0.73, got %f", confidence)
	}
}

func TestResolve_HigherConfidenceWins(t *testing.T) {
	label, confidence := Resolve([]models.ScoreResult{
		{Label: models.LabelPositive, Confidence: 0.8},
		{Label: models.LabelNegative, Confidence: 0.4},
	})

	if label != models.LabelPositive {
		t.Errorf("Expected positive, got %s", label)
	}
	// Final confidence is the mean of both inputs, not the winner's.
	if math.Abs(confidence-0.6) > 1e-9 {
		t.Errorf("Expected confidence 0.6, got %f", confidence)
	}
}

func TestResolve_TieDisagreeingLabels(t *testing.T) {
	pairs := [][2]models.Label{
		{models.LabelPositive, models.LabelNegative},
		{models.LabelNegative, models.LabelNeutral},
		{models.LabelNeutral, models.LabelPositive},
	}

	for _, pair := range pairs {
		label, confidence := Resolve([]models.ScoreResult{
			{Label: pair[0], Confidence: 0.4},
			{Label: pair[1], Confidence: 0.4},
		})

		if label != models.LabelNeutral {
			t.Errorf("Tie between %s and %s should resolve neutral, got %s", pair[0], pair[1], label)
		}
		if confidence != 0.5 {
			t.Errorf("Tie confidence must be exactly 0.5, got %f", confidence)
		}
	}
}

func TestResolve_TieAgreeingLabels(t *testing.T) {
	label, confidence := Resolve([]models.ScoreResult{
		{Label: models.LabelPositive, Confidence: 0.3},
		{Label: models.LabelPositive, Confidence: 0.3},
	})

	if label != models.LabelPositive {
		t.Errorf("Expected positive, got %s", label)
	}
	if math.Abs(confidence-0.3) > 1e-9 {
		t.Errorf("Expected averaged confidence 0.3, got %f", confidence)
	}
}

func TestResolve_ThreeScorers(t *testing.T) {
	label, confidence := Resolve([]models.ScoreResult{
		{Label: models.LabelPositive, Confidence: 0.2},
		{Label: models.LabelNegative, Confidence: 0.9},
		{Label: models.LabelNeutral, Confidence: 0.1},
	})

	if label != models.LabelNegative {
		t.Errorf("Expected highest-confidence negative to win, got %s", label)
	}
	if math.Abs(confidence-0.4) > 1e-9 {
		t.Errorf("Expected mean confidence 0.4, got %f", confidence)
	}
}

func TestResolve_Empty(t *testing.T) {
	label, confidence := Resolve(nil)
	if label != models.LabelNeutral || confidence != 0.0 {
		t.Errorf("Empty input should resolve to neutral/0, got %s/%f", label, confidence)
	}
}
