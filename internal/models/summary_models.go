package models

import "time"

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SummaryStats is recomputed fresh from a full record collection each time,
// never mutated in place. Percentages are rounded independently per label and
// may not sum to exactly 100.
type SummaryStats struct {
	TotalPosts            int               `json:"total_posts"`
	SentimentDistribution map[Label]int     `json:"sentiment_distribution"`
	SentimentPercentages  map[Label]float64 `json:"sentiment_percentages"`
	AverageConfidence     float64           `json:"average_confidence"`
	TopSources            []SourceCount     `json:"top_sources"`
	TopKeywords           []KeywordCount    `json:"top_keywords,omitempty"`
	DateRange             *DateRange        `json:"date_range"`
}
