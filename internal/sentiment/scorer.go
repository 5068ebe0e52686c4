package sentiment

import "github.com/spacesedan/brandpulse/internal/models"

// Scorer maps cleaned text to a label/polarity/confidence bundle. Scorers
// never return errors: any internal failure degrades to the neutral
// zero-confidence result so aggregation downstream is never broken by
// malformed input.
type Scorer interface {
	Name() string
	Score(text string) models.ScoreResult
}

func neutralFallback() models.ScoreResult {
	return models.ScoreResult{
		Label:        models.LabelNeutral,
		Score:        0.0,
		Subjectivity: 0.0,
		Confidence:   0.0,
	}
}
