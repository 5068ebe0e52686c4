package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/brandpulse/internal/models"
)

// TrendClassifier buckets the slope of an ordinary-least-squares fit over the
// time-ordered sentiment series. MinSamples and SlopeThreshold are both
// configurable: the permissive defaults are 2 and 0.01, the stricter variant
// (5 and 0.05) is reachable purely through configuration.
type TrendClassifier struct {
	MinSamples     int
	SlopeThreshold float64
}

func NewTrendClassifier(minSamples int, slopeThreshold float64) *TrendClassifier {
	if minSamples < 2 {
		minSamples = 2
	}
	return &TrendClassifier{MinSamples: minSamples, SlopeThreshold: slopeThreshold}
}

var sentimentNumeric = map[models.Label]float64{
	models.LabelPositive: 1,
	models.LabelNeutral:  0,
	models.LabelNegative: -1,
}

// Classify maps sentiment to {+1, 0, -1}, sorts by creation time, and fits a
// line of sentiment against sequential index. Fewer than two timestamped
// records is insufficient data; a degenerate fit reports stable.
func (tc *TrendClassifier) Classify(records []models.AnalyzedRecord) models.TrendLabel {
	timestamped := make([]models.AnalyzedRecord, 0, len(records))
	for _, r := range records {
		if !r.CreatedAt.IsZero() {
			timestamped = append(timestamped, r)
		}
	}

	if len(timestamped) < 2 {
		return models.TrendInsufficientData
	}
	if len(timestamped) < tc.MinSamples {
		return models.TrendStable
	}

	sort.SliceStable(timestamped, func(i, j int) bool {
		return timestamped[i].CreatedAt.Before(timestamped[j].CreatedAt)
	})

	xs := make([]float64, len(timestamped))
	ys := make([]float64, len(timestamped))
	for i, r := range timestamped {
		xs[i] = float64(i)
		ys[i] = sentimentNumeric[r.FinalSentiment]
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return models.TrendStable
	}

	switch {
	case slope > tc.SlopeThreshold:
		return models.TrendImproving
	case slope < -tc.SlopeThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}
