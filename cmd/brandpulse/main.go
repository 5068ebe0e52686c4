package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/analysis"
	"github.com/spacesedan/brandpulse/internal/collectors"
	"github.com/spacesedan/brandpulse/internal/logging"
	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/sentiment"
)

type options struct {
	Brand         string   `short:"b" long:"brand" description:"Brand to analyze" required:"true"`
	Source        string   `short:"s" long:"source" description:"Data source" choice:"live" choice:"reddit" choice:"sample" default:"sample"`
	CSV           string   `long:"csv" description:"Analyze a CSV file instead of collecting"`
	Subreddits    []string `long:"subreddit" description:"Subreddits to search (reddit source)" default:"technology" default:"news"`
	DaysBack      int      `long:"days-back" description:"Freshness window in days for live news" default:"0"`
	MaxItems      int      `long:"max-items" description:"Batch size cap" default:"0"`
	MinConfidence float64  `long:"min-confidence" description:"Drop records below this final confidence" default:"0"`
}

type output struct {
	Brand      string                  `json:"brand"`
	DataSource string                  `json:"data_source"`
	Records    []models.AnalyzedRecord `json:"records"`
	Summary    models.SummaryStats     `json:"summary"`
	Trend      models.TrendLabel       `json:"trend"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.AnalysisFromEnv()
	if opts.DaysBack > 0 {
		cfg.DaysBack = opts.DaysBack
	}
	if opts.MaxItems > 0 {
		cfg.MaxItemsPerBatch = opts.MaxItems
	}
	if opts.MinConfidence > 0 {
		cfg.ConfidenceThreshold = opts.MinConfidence
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items, dataSource := collect(ctx, cfg, opts)

	if len(items) > cfg.MaxItemsPerBatch {
		items = items[:cfg.MaxItemsPerBatch]
	}

	analyzer := sentiment.NewAnalyzer(cfg,
		sentiment.NewLexiconScorer(),
		sentiment.NewVaderScorer())

	records := analyzer.AnalyzeBatch(items)
	records = analysis.FilterByConfidence(records, cfg.ConfidenceThreshold)

	trend := analysis.NewTrendClassifier(cfg.TrendMinSamples, cfg.TrendSlopeThreshold)

	result := output{
		Brand:      opts.Brand,
		DataSource: dataSource,
		Records:    records,
		Summary:    analysis.Summarize(records),
		Trend:      trend.Classify(records),
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("[Main] Failed to encode result", slog.String("error", err.Error()))
		os.Exit(1)
	}

	os.Stdout.Write(append(encoded, '\n'))
}

// collect picks the data source, falling back to sample data when live
// collection fails so an analysis request always produces output.
func collect(ctx context.Context, cfg config.Analysis, opts options) ([]models.RawItem, string) {
	sample := collectors.NewSampleCollector(nil)

	if opts.CSV != "" {
		f, err := os.Open(opts.CSV)
		if err != nil {
			slog.Error("[Main] Failed to open CSV", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()

		items, err := collectors.LoadCSV(f, time.Now())
		if err != nil {
			slog.Error("[Main] Invalid CSV upload", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return items, "custom_upload"
	}

	switch opts.Source {
	case "live":
		items, err := collectors.NewGoogleNewsCollector().CollectLiveNews(ctx, opts.Brand, cfg.DaysBack)
		if err != nil || len(items) == 0 {
			slog.Warn("[Main] Live collection failed, falling back to sample data",
				slog.String("brand", opts.Brand))
			return sample.Collect(opts.Brand), "sample_data"
		}
		return items, "google_news_live"
	case "reddit":
		items, err := collectors.NewRedditCollector().CollectPosts(ctx, opts.Subreddits, opts.Brand, cfg.MaxItemsPerBatch)
		if err != nil {
			slog.Warn("[Main] Reddit collection failed, falling back to sample data",
				slog.String("brand", opts.Brand))
			return sample.Collect(opts.Brand), "sample_data"
		}
		return items, "reddit"
	default:
		return sample.Collect(opts.Brand), "sample_data"
	}
}
