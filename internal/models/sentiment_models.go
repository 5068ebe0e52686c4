package models

import "time"

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

type TrendLabel string

const (
	TrendImproving        TrendLabel = "improving"
	TrendStable           TrendLabel = "stable"
	TrendDeclining        TrendLabel = "declining"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// ScoreResult is the output contract every polarity scorer satisfies.
// Score is polarity (or compound) in [-1,1]; Confidence is abs(Score), a
// proxy rather than a calibrated probability.
type ScoreResult struct {
	Label        Label   `json:"label"`
	Score        float64 `json:"score"`
	Subjectivity float64 `json:"subjectivity"`
	Confidence   float64 `json:"confidence"`
}

// AnalyzedRecord is one row of pipeline output. Scores holds the per-scorer
// bundle keyed by scorer name; FinalSentiment and FinalConfidence come from
// the ensemble resolver.
type AnalyzedRecord struct {
	ID           string                 `json:"id"`
	OriginalText string                 `json:"original_text"`
	CleanedText  string                 `json:"cleaned_text"`
	Source       string                 `json:"source"`
	Keyword      string                 `json:"keyword"`
	CreatedAt    time.Time              `json:"created_at"`
	Scores       map[string]ScoreResult `json:"scores"`

	FinalSentiment  Label   `json:"final_sentiment"`
	FinalConfidence float64 `json:"final_confidence"`

	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	URL         string `json:"url,omitempty"`
	Subreddit   string `json:"subreddit,omitempty"`
}
