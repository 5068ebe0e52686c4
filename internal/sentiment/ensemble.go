package sentiment

import "github.com/spacesedan/brandpulse/internal/models"

// Resolve combines N scorer results into one final label and confidence.
// A single result passes through unchanged. Otherwise the strictly
// highest-confidence result wins and the final confidence is the mean of all
// input confidences. An exact tie at the top resolves to the shared label
// when the tied results agree, or to neutral with confidence exactly 0.5
// when they disagree (a deliberate "don't know" signal, not a computed
// average).
func Resolve(results []models.ScoreResult) (models.Label, float64) {
	switch len(results) {
	case 0:
		return models.LabelNeutral, 0.0
	case 1:
		return results[0].Label, results[0].Confidence
	}

	var sum, top float64
	for _, r := range results {
		sum += r.Confidence
		if r.Confidence > top {
			top = r.Confidence
		}
	}
	mean := sum / float64(len(results))

	var winner models.Label
	tiedAt := 0
	agree := true
	for _, r := range results {
		if r.Confidence != top {
			continue
		}
		if tiedAt == 0 {
			winner = r.Label
		} else if r.Label != winner {
			agree = false
		}
		tiedAt++
	}

	if tiedAt == 1 || agree {
		return winner, mean
	}

	return models.LabelNeutral, 0.5
}
