package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/sentiment"
)

const (
	redditAuthURL = "https://www.reddit.com/api/v1/access_token"
	redditAPIURL  = "https://oauth.reddit.com"
)

// RedditCollector searches subreddits for brand mentions through the reddit
// OAuth API and shapes the results into RawItems tagged "reddit". Selftext
// arrives as markdown and is flattened to plain prose before it reaches the
// scorers.
type RedditCollector struct {
	config *clientcredentials.Config
	client *http.Client
	mu     sync.Mutex
}

func NewRedditCollector() *RedditCollector {
	conf := &clientcredentials.Config{
		ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		TokenURL:     redditAuthURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &RedditCollector{
		config: conf,
		client: conf.Client(context.Background()),
	}
}

func (rc *RedditCollector) refreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.client = rc.config.Client(context.Background())
}

// CollectPosts searches each subreddit for the brand keyword. Per-subreddit
// failures are logged and skipped so one bad subreddit does not sink the
// whole collection.
func (rc *RedditCollector) CollectPosts(ctx context.Context, subreddits []string, brand string, limit int) ([]models.RawItem, error) {
	items := make([]models.RawItem, 0, limit)

	for _, subreddit := range subreddits {
		body, err := rc.fetchSubredditPosts(ctx, subreddit, brand, limit)
		if err != nil {
			slog.Warn("[RedditCollector] Failed to fetch subreddit, skipping",
				slog.String("subreddit", subreddit),
				slog.String("error", err.Error()))
			continue
		}

		var response models.RedditAPIResponse
		if err := json.Unmarshal(body, &response); err != nil {
			slog.Warn("[RedditCollector] Failed to parse subreddit response, skipping",
				slog.String("subreddit", subreddit),
				slog.String("error", err.Error()))
			continue
		}

		for _, child := range response.Data.Children {
			post := child.Data
			items = append(items, models.RawItem{
				ID:          post.ID,
				Title:       post.Title,
				Text:        sentiment.MarkdownToText(post.Selftext),
				Score:       post.Ups,
				NumComments: post.NumComments,
				CreatedAt:   time.Unix(int64(post.CreatedUTC), 0).UTC(),
				Subreddit:   post.Subreddit,
				URL:         "https://www.reddit.com" + post.Permalink,
				Source:      "reddit",
				Keyword:     strings.ToLower(brand),
			})
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("[RedditCollector] no posts collected for %s", brand)
	}

	return items, nil
}

func (rc *RedditCollector) fetchSubredditPosts(ctx context.Context, subreddit, topic string, limit int) ([]byte, error) {
	parsedURL, err := url.Parse(fmt.Sprintf("%s/r/%s/search", redditAPIURL, subreddit))
	if err != nil {
		return nil, fmt.Errorf("[RedditCollector] failed to parse URL: %w", err)
	}
	queryParams := parsedURL.Query()
	queryParams.Add("q", topic)
	queryParams.Add("sort", "top")
	queryParams.Add("restrict_sr", "true")
	queryParams.Add("limit", fmt.Sprint(limit))
	parsedURL.RawQuery = queryParams.Encode()

	backoff := initialBackoff
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := rc.client.Do(req)
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			return body, err
		case http.StatusUnauthorized:
			resp.Body.Close()
			slog.Warn("[RedditCollector] Token expired - refreshing and retrying")
			rc.refreshClient()
		case http.StatusTooManyRequests:
			resp.Body.Close()
			slog.Warn("[RedditCollector] 429 Too Many Requests - retrying with backoff",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff))
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("[RedditCollector] unexpected status %d", resp.StatusCode)
		}

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

	return nil, fmt.Errorf("[RedditCollector] retries exhausted for r/%s", subreddit)
}
