package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/spacesedan/brandpulse/internal/models"
)

// negationWindow is how many tokens a negator keeps flipping polarity for.
const negationWindow = 3

// LexiconScorer is the rule-based polarity scorer: average word polarity from
// a fixed lexicon, with intensifier boosting and negation flipping.
// Classification bands: polarity > 0.1 positive, < -0.1 negative, else
// neutral. Confidence is abs(polarity).
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

func (s *LexiconScorer) Name() string { return "lexicon" }

func (s *LexiconScorer) Score(text string) models.ScoreResult {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return neutralFallback()
	}

	var polSum, subjSum float64
	matched := 0
	sinceNegation := negationWindow + 1
	intensity := 1.0

	for _, tok := range tokens {
		if negators[tok] || strings.HasSuffix(tok, "n't") {
			sinceNegation = 0
			continue
		}
		sinceNegation++

		if boost, ok := intensifiers[tok]; ok {
			intensity *= boost
			continue
		}

		entry, ok := lexicon[tok]
		if !ok {
			intensity = 1.0
			continue
		}

		p := entry.Polarity * intensity
		if sinceNegation <= negationWindow {
			p *= -0.5
		}
		p = math.Max(-1.0, math.Min(1.0, p))

		polSum += p
		subjSum += entry.Subjectivity
		matched++
		intensity = 1.0
	}

	if matched == 0 {
		return neutralFallback()
	}

	polarity := polSum / float64(matched)
	subjectivity := subjSum / float64(matched)

	var label models.Label
	switch {
	case polarity > 0.1:
		label = models.LabelPositive
	case polarity < -0.1:
		label = models.LabelNegative
	default:
		label = models.LabelNeutral
	}

	return models.ScoreResult{
		Label:        label,
		Score:        polarity,
		Subjectivity: subjectivity,
		Confidence:   math.Abs(polarity),
	}
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}
