package analysis

import (
	"testing"
	"time"

	"github.com/spacesedan/brandpulse/internal/models"
)

func trendRecords(labels []models.Label) []models.AnalyzedRecord {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := make([]models.AnalyzedRecord, len(labels))
	for i, label := range labels {
		records[i] = models.AnalyzedRecord{
			ID:             string(rune('a' + i)),
			FinalSentiment: label,
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}
	}
	return records
}

func TestTrend_Improving(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)
	records := trendRecords([]models.Label{
		models.LabelNegative, models.LabelNegative, models.LabelNeutral,
		models.LabelPositive, models.LabelPositive,
	})

	if got := tc.Classify(records); got != models.TrendImproving {
		t.Errorf("Expected improving, got %s", got)
	}
}

func TestTrend_Declining(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)
	records := trendRecords([]models.Label{
		models.LabelPositive, models.LabelPositive, models.LabelNeutral,
		models.LabelNegative, models.LabelNegative,
	})

	if got := tc.Classify(records); got != models.TrendDeclining {
		t.Errorf("Expected declining, got %s", got)
	}
}

func TestTrend_Flat(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)
	records := trendRecords([]models.Label{
		models.LabelNeutral, models.LabelNeutral, models.LabelNeutral,
		models.LabelNeutral, models.LabelNeutral,
	})

	if got := tc.Classify(records); got != models.TrendStable {
		t.Errorf("Expected stable, got %s", got)
	}
}

func TestTrend_InsufficientData(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)

	if got := tc.Classify(nil); got != models.TrendInsufficientData {
		t.Errorf("Expected insufficient_data for empty input, got %s", got)
	}

	one := trendRecords([]models.Label{models.LabelPositive})
	if got := tc.Classify(one); got != models.TrendInsufficientData {
		t.Errorf("Expected insufficient_data for one record, got %s", got)
	}
}

func TestTrend_IgnoresUntimestampedRecords(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)
	records := trendRecords([]models.Label{models.LabelPositive, models.LabelNegative})
	records[1].CreatedAt = time.Time{}

	if got := tc.Classify(records); got != models.TrendInsufficientData {
		t.Errorf("Expected insufficient_data with one timestamped record, got %s", got)
	}
}

func TestTrend_UnsortedInput(t *testing.T) {
	tc := NewTrendClassifier(2, 0.01)
	records := trendRecords([]models.Label{
		models.LabelNegative, models.LabelNegative, models.LabelNeutral,
		models.LabelPositive, models.LabelPositive,
	})
	// Shuffle; classification sorts by CreatedAt itself.
	records[0], records[4] = records[4], records[0]
	records[1], records[3] = records[3], records[1]

	if got := tc.Classify(records); got != models.TrendImproving {
		t.Errorf("Expected improving after internal sort, got %s", got)
	}
}

// The stricter variant is purely a configuration choice.
func TestTrend_StrictVariant(t *testing.T) {
	tc := NewTrendClassifier(5, 0.05)

	three := trendRecords([]models.Label{
		models.LabelNegative, models.LabelNeutral, models.LabelPositive,
	})
	if got := tc.Classify(three); got != models.TrendStable {
		t.Errorf("Expected stable below the strict sample minimum, got %s", got)
	}

	five := trendRecords([]models.Label{
		models.LabelNegative, models.LabelNegative, models.LabelNeutral,
		models.LabelPositive, models.LabelPositive,
	})
	if got := tc.Classify(five); got != models.TrendImproving {
		t.Errorf("Expected improving at the strict sample minimum, got %s", got)
	}
}
