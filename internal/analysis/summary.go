package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"

	"github.com/spacesedan/brandpulse/internal/models"
)

const (
	topSourcesLimit  = 5
	topKeywordsLimit = 10
)

// Summarize computes fresh summary statistics from a record collection.
// An empty collection yields zeroed stats with a nil date range, never an
// error. Percentages are rounded per label independently, so they are not
// guaranteed to sum to exactly 100.
func Summarize(records []models.AnalyzedRecord) models.SummaryStats {
	stats := models.SummaryStats{
		SentimentDistribution: map[models.Label]int{
			models.LabelPositive: 0,
			models.LabelNegative: 0,
			models.LabelNeutral:  0,
		},
		SentimentPercentages: map[models.Label]float64{
			models.LabelPositive: 0,
			models.LabelNegative: 0,
			models.LabelNeutral:  0,
		},
		TopSources: []models.SourceCount{},
	}

	if len(records) == 0 {
		return stats
	}

	total := len(records)
	stats.TotalPosts = total

	var confidenceSum float64
	dateRange := models.DateRange{Start: records[0].CreatedAt, End: records[0].CreatedAt}

	for _, r := range records {
		stats.SentimentDistribution[r.FinalSentiment]++
		confidenceSum += r.FinalConfidence

		if r.CreatedAt.Before(dateRange.Start) {
			dateRange.Start = r.CreatedAt
		}
		if r.CreatedAt.After(dateRange.End) {
			dateRange.End = r.CreatedAt
		}
	}

	for label, count := range stats.SentimentDistribution {
		stats.SentimentPercentages[label] = round2(float64(count) / float64(total) * 100)
	}

	stats.AverageConfidence = round3(confidenceSum / float64(total))
	stats.TopSources = topSources(records)
	stats.TopKeywords = topKeywords(records)
	stats.DateRange = &dateRange

	return stats
}

// topSources ranks sources by descending frequency, ties broken by
// first-seen order, truncated to the top five.
func topSources(records []models.AnalyzedRecord) []models.SourceCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range records {
		if _, seen := counts[r.Source]; !seen {
			order = append(order, r.Source)
		}
		counts[r.Source]++
	}

	ranked := make([]models.SourceCount, 0, len(order))
	for _, source := range order {
		ranked = append(ranked, models.SourceCount{Source: source, Count: counts[source]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topSourcesLimit {
		ranked = ranked[:topSourcesLimit]
	}

	return ranked
}

// topKeywords counts non-stopword tokens across the cleaned text, same
// ordering contract as topSources. This feeds the word-frequency widget;
// no image generation happens here.
func topKeywords(records []models.AnalyzedRecord) []models.KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range records {
		cleaned := stopwords.CleanString(strings.ToLower(r.CleanedText), "en", false)
		for _, tok := range strings.Fields(cleaned) {
			if len(tok) < 3 {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	ranked := make([]models.KeywordCount, 0, len(order))
	for _, kw := range order {
		ranked = append(ranked, models.KeywordCount{Keyword: kw, Count: counts[kw]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topKeywordsLimit {
		ranked = ranked[:topKeywordsLimit]
	}

	return ranked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
