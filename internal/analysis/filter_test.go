package analysis

import (
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestFilterByConfidence(t *testing.T) {
	records := []models.AnalyzedRecord{
		{ID: "low", FinalConfidence: 0.1},
		{ID: "mid", FinalConfidence: 0.5},
		{ID: "high", FinalConfidence: 0.9},
	}

	filtered := FilterByConfidence(records, 0.5)
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(filtered))
	}
	if filtered[0].ID != "mid" || filtered[1].ID != "high" {
		t.Errorf("Unexpected survivors: %s, %s", filtered[0].ID, filtered[1].ID)
	}

	// Zero threshold keeps everything; the input is untouched either way.
	if got := FilterByConfidence(records, 0.0); len(got) != 3 {
		t.Errorf("Expected all records at zero threshold, got %d", len(got))
	}
	if len(records) != 3 {
		t.Errorf("Input slice must not change, got %d records", len(records))
	}
}
