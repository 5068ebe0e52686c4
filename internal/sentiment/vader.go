package sentiment

import (
	"math"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/brandpulse/internal/models"
)

// VaderScorer classifies on the VADER compound score with its own neutral
// band: compound >= 0.05 positive, <= -0.05 negative, else neutral.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Name() string { return "vader" }

func (s *VaderScorer) Score(text string) (result models.ScoreResult) {
	// govader can panic on pathological input; degrade to the neutral
	// fallback instead of taking the batch down.
	defer func() {
		if r := recover(); r != nil {
			result = neutralFallback()
		}
	}()

	if text == "" {
		return neutralFallback()
	}

	scores := s.analyzer.PolarityScores(text)
	compound := scores.Compound
	if math.IsNaN(compound) {
		return neutralFallback()
	}

	var label models.Label
	switch {
	case compound >= 0.05:
		label = models.LabelPositive
	case compound <= -0.05:
		label = models.LabelNegative
	default:
		label = models.LabelNeutral
	}

	return models.ScoreResult{
		Label:        label,
		Score:        compound,
		Subjectivity: 1.0 - scores.Neutral,
		Confidence:   math.Abs(compound),
	}
}
