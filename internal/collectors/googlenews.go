package collectors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/spacesedan/brandpulse/internal/models"
)

const (
	googleNewsRSSFormat = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"
	userAgent           = "brandpulse-bot/0.1"

	maxArticles    = 25
	maxTextLength  = 500
	maxRetries     = 5
	initialBackoff = 1 * time.Second
	maxBackoff     = 32 * time.Second
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	htmlEntityPattern = regexp.MustCompile(`&[^;\s]+;`)
)

// GoogleNewsCollector pulls live articles about a brand from the Google News
// RSS search feed and shapes them into RawItems tagged "google_news_live".
type GoogleNewsCollector struct {
	client *http.Client
	parser *gofeed.Parser
	rng    *rand.Rand
}

func NewGoogleNewsCollector() *GoogleNewsCollector {
	return &GoogleNewsCollector{
		client: &http.Client{Timeout: 15 * time.Second},
		parser: gofeed.NewParser(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CollectLiveNews fetches articles published within the daysBack window.
// Engagement counters have no RSS equivalent, so they are simulated the way
// the sample generator does it.
func (c *GoogleNewsCollector) CollectLiveNews(ctx context.Context, brand string, daysBack int) ([]models.RawItem, error) {
	query := url.QueryEscape(fmt.Sprintf("%q OR %s", brand, brand))
	feedURL := fmt.Sprintf(googleNewsRSSFormat, query)

	slog.Info("[GoogleNewsCollector] Searching Google News",
		slog.String("brand", brand),
		slog.Int("days_back", daysBack))

	data, err := c.fetchWithRetry(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("[GoogleNewsCollector] failed to fetch feed for %s: %w", brand, err)
	}

	items, err := c.itemsFromFeed(data, brand, daysBack, time.Now())
	if err != nil {
		return nil, err
	}

	slog.Info("[GoogleNewsCollector] Collected articles",
		slog.String("brand", brand),
		slog.Int("count", len(items)))

	return items, nil
}

func (c *GoogleNewsCollector) fetchWithRetry(ctx context.Context, feedURL string) ([]byte, error) {
	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		res, err := c.client.Do(req)
		if err != nil {
			lastErr = err
		} else {
			body, readErr := io.ReadAll(res.Body)
			res.Body.Close()

			if res.StatusCode == http.StatusOK && readErr == nil {
				return body, nil
			}
			if readErr != nil {
				lastErr = readErr
			} else {
				lastErr = fmt.Errorf("unexpected status %d", res.StatusCode)
			}
		}

		slog.Warn("[GoogleNewsCollector] Fetch failed, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return nil, lastErr
}

// itemsFromFeed parses a raw RSS payload and keeps articles newer than the
// freshness cutoff, capped at maxArticles.
func (c *GoogleNewsCollector) itemsFromFeed(data []byte, brand string, daysBack int, now time.Time) ([]models.RawItem, error) {
	feed, err := c.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("[GoogleNewsCollector] failed to parse feed: %w", err)
	}

	cutoff := now.AddDate(0, 0, -daysBack)
	items := make([]models.RawItem, 0, maxArticles)

	for idx, article := range feed.Items {
		if len(items) == maxArticles {
			break
		}

		published := now.Add(-time.Duration(c.rng.Intn(168)+1) * time.Hour)
		if article.PublishedParsed != nil {
			published = *article.PublishedParsed
		}
		if published.Before(cutoff) {
			continue
		}

		text := stripHTML(article.Description)
		if text == "" {
			text = article.Title
		}
		if len([]rune(text)) > maxTextLength {
			text = string([]rune(text)[:maxTextLength])
		}

		items = append(items, models.RawItem{
			ID:          fmt.Sprintf("news_%s_%d", strings.ToLower(brand), idx+1),
			Title:       article.Title,
			Text:        text,
			Score:       c.rng.Intn(141) + 10,
			NumComments: c.rng.Intn(51),
			CreatedAt:   published,
			Subreddit:   "google_news",
			URL:         article.Link,
			Source:      "google_news_live",
			Keyword:     strings.ToLower(brand),
		})
	}

	return items, nil
}

func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = htmlEntityPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
