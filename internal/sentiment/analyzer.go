package sentiment

import (
	"log/slog"
	"unicode/utf8"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/models"
)

// Analyzer drives the scoring pipeline over a batch of raw items. Scorers
// are plug-ins behind the Scorer contract; the pipeline works with exactly
// one and resolves through the ensemble when more are configured.
type Analyzer struct {
	cfg     config.Analysis
	scorers []Scorer
}

func NewAnalyzer(cfg config.Analysis, scorers ...Scorer) *Analyzer {
	if len(scorers) == 0 {
		scorers = []Scorer{NewLexiconScorer()}
	}
	return &Analyzer{cfg: cfg, scorers: scorers}
}

// AnalyzeBatch produces one record per surviving input item, in input order.
// Items whose normalized title+text falls below MinTextLength are dropped
// silently as a quality filter, never emitted with empty text. Input items
// are not mutated; repeated calls on the same input yield identical output.
func (a *Analyzer) AnalyzeBatch(items []models.RawItem) []models.AnalyzedRecord {
	records := make([]models.AnalyzedRecord, 0, len(items))
	dropped := 0

	for _, item := range items {
		originalText := item.Title + " " + item.Text
		cleaned := Normalize(originalText)

		if utf8.RuneCountInString(cleaned) < a.cfg.MinTextLength {
			dropped++
			continue
		}

		scores := make(map[string]models.ScoreResult, len(a.scorers))
		resolved := make([]models.ScoreResult, 0, len(a.scorers))
		for _, scorer := range a.scorers {
			result := scorer.Score(cleaned)
			scores[scorer.Name()] = result
			resolved = append(resolved, result)
		}

		finalLabel, finalConfidence := Resolve(resolved)

		records = append(records, models.AnalyzedRecord{
			ID:              item.ID,
			OriginalText:    originalText,
			CleanedText:     cleaned,
			Source:          item.Source,
			Keyword:         item.Keyword,
			CreatedAt:       item.CreatedAt,
			Scores:          scores,
			FinalSentiment:  finalLabel,
			FinalConfidence: finalConfidence,
			Score:           item.Score,
			NumComments:     item.NumComments,
			URL:             item.URL,
			Subreddit:       item.Subreddit,
		})
	}

	if dropped > 0 {
		slog.Debug("[Analyzer] Dropped items below minimum text length",
			slog.Int("dropped", dropped),
			slog.Int("min_length", a.cfg.MinTextLength))
	}

	return records
}
