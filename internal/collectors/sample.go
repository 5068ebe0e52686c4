package collectors

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spacesedan/brandpulse/internal/models"
)

// SampleCollector generates placeholder posts about a brand. It is the
// documented fallback when live collection fails; the pipeline cannot and
// must not distinguish a synthetic batch from a real one. Texts are fixed
// shapes; only engagement counters and ages come from the rand source.
type SampleCollector struct {
	rng *rand.Rand
}

// NewSampleCollector takes the rand source so tests can pin it; pass nil for
// a time-seeded one.
func NewSampleCollector(rng *rand.Rand) *SampleCollector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SampleCollector{rng: rng}
}

type sampleShape struct {
	title     string
	text      string
	subreddit string
	minScore  int
	maxScore  int
}

var sampleShapes = []sampleShape{
	{
		title:     "%s is revolutionizing the industry!",
		text:      "I absolutely love my new %s product. The quality is amazing and customer service is excellent.",
		subreddit: "technology",
		minScore:  50,
		maxScore:  200,
	},
	{
		title:     "Disappointed with %s",
		text:      "My experience with %s has been terrible. Poor quality and awful customer support.",
		subreddit: "reviews",
		minScore:  -20,
		maxScore:  10,
	},
	{
		title:     "%s announces new features",
		text:      "%s just released some interesting updates. Mixed feelings about the new direction.",
		subreddit: "news",
		minScore:  20,
		maxScore:  100,
	},
	{
		title:     "Great innovation from %s",
		text:      "The latest %s product showcases incredible innovation. Impressed with the technology.",
		subreddit: "technology",
		minScore:  100,
		maxScore:  250,
	},
	{
		title:     "%s stock discussion",
		text:      "What do you think about %s stock performance? Seems overvalued to me.",
		subreddit: "investing",
		minScore:  10,
		maxScore:  80,
	},
}

func (c *SampleCollector) Collect(brand string) []models.RawItem {
	now := time.Now()
	lower := strings.ToLower(brand)

	items := make([]models.RawItem, 0, len(sampleShapes))
	for i, shape := range sampleShapes {
		items = append(items, models.RawItem{
			ID:          fmt.Sprintf("sample_%s_%d", lower, i+1),
			Title:       fmt.Sprintf(shape.title, brand),
			Text:        fmt.Sprintf(shape.text, brand),
			Score:       shape.minScore + c.rng.Intn(shape.maxScore-shape.minScore+1),
			NumComments: c.rng.Intn(60),
			CreatedAt:   now.Add(-time.Duration(c.rng.Intn(12)+i*6+1) * time.Hour),
			Subreddit:   shape.subreddit,
			URL:         fmt.Sprintf("https://example.com/%s_%d", lower, i+1),
			Source:      "sample_data",
			Keyword:     lower,
		})
	}

	return items
}
