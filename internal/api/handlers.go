package api

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/analysis"
	"github.com/spacesedan/brandpulse/internal/collectors"
	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/sentiment"
)

var brandPattern = regexp.MustCompile(`^[a-zA-Z0-9\s'\-&.]+$`)

// LiveCollector is the live-fetch collaborator; the Google News collector
// satisfies it in production and tests stub it.
type LiveCollector interface {
	CollectLiveNews(ctx context.Context, brand string, daysBack int) ([]models.RawItem, error)
}

// SampleSource supplies synthetic placeholder batches.
type SampleSource interface {
	Collect(brand string) []models.RawItem
}

type Handler struct {
	cfg      config.Analysis
	live     LiveCollector
	sample   SampleSource
	analyzer *sentiment.Analyzer
	trend    *analysis.TrendClassifier
}

func NewHandler(cfg config.Analysis, live LiveCollector, sample SampleSource) *Handler {
	return &Handler{
		cfg:    cfg,
		live:   live,
		sample: sample,
		analyzer: sentiment.NewAnalyzer(cfg,
			sentiment.NewLexiconScorer(),
			sentiment.NewVaderScorer()),
		trend: analysis.NewTrendClassifier(cfg.TrendMinSamples, cfg.TrendSlopeThreshold),
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

// AnalyzeBrand runs the full pipeline for one analysis request. Live
// collection failure falls back to sample data rather than failing hard;
// the pipeline never distinguishes the two.
func (h *Handler) AnalyzeBrand(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !validBrand(req.Brand) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid brand name"})
		return
	}

	daysBack := req.DaysBack
	if daysBack <= 0 {
		daysBack = h.cfg.DaysBack
	}

	dataSource := "sample_data"
	var items []models.RawItem
	if req.Source == "live" {
		live, err := h.live.CollectLiveNews(c.Request.Context(), req.Brand, daysBack)
		if err != nil || len(live) == 0 {
			slog.Warn("[API] Live collection failed, falling back to sample data",
				slog.String("brand", req.Brand))
		} else {
			items = live
			dataSource = "google_news_live"
		}
	}
	if items == nil {
		items = h.sample.Collect(req.Brand)
	}

	c.JSON(http.StatusOK, h.runPipeline(req.Brand, dataSource, items, req.MaxItems, req.MinConfidence))
}

// UploadCSV analyzes a user-supplied CSV file. Validation errors surface
// here, before the pipeline runs.
func (h *Handler) UploadCSV(c *gin.Context) {
	brand := c.Query("brand")
	if brand == "" {
		brand = "custom"
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	items, err := collectors.LoadCSV(file, time.Now())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	minConfidence, _ := strconv.ParseFloat(c.Query("min_confidence"), 64)

	c.JSON(http.StatusOK, h.runPipeline(brand, "custom_upload", items, 0, minConfidence))
}

func (h *Handler) runPipeline(brand, dataSource string, items []models.RawItem, maxItems int, minConfidence float64) AnalyzeResponse {
	if maxItems <= 0 {
		maxItems = h.cfg.MaxItemsPerBatch
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	if minConfidence <= 0 {
		minConfidence = h.cfg.ConfidenceThreshold
	}

	records := h.analyzer.AnalyzeBatch(items)
	records = analysis.FilterByConfidence(records, minConfidence)

	return AnalyzeResponse{
		Brand:      brand,
		DataSource: dataSource,
		Records:    records,
		Summary:    analysis.Summarize(records),
		Trend:      h.trend.Classify(records),
	}
}

func validBrand(brand string) bool {
	brand = strings.TrimSpace(brand)
	if len(brand) < 2 {
		return false
	}
	return brandPattern.MatchString(brand)
}
