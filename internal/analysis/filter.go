package analysis

import "github.com/spacesedan/brandpulse/internal/models"

// FilterByConfidence returns a fresh slice containing only records whose
// final confidence meets the threshold. The input is never mutated, so the
// aggregators can be re-invoked on the filtered subsequence independently of
// any prior call.
func FilterByConfidence(records []models.AnalyzedRecord, threshold float64) []models.AnalyzedRecord {
	filtered := make([]models.AnalyzedRecord, 0, len(records))
	for _, r := range records {
		if r.FinalConfidence >= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
