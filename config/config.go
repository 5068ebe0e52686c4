package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Analysis holds the settings the pipeline components consume. A value is
// built once per analysis request and passed into constructors; nothing in
// the pipeline reads configuration globally.
type Analysis struct {
	MinTextLength       int
	MaxItemsPerBatch    int
	ConfidenceThreshold float64
	TrendMinSamples     int
	TrendSlopeThreshold float64
	DaysBack            int
}

func DefaultAnalysis() Analysis {
	return Analysis{
		MinTextLength:       10,
		MaxItemsPerBatch:    50,
		ConfidenceThreshold: 0.0,
		TrendMinSamples:     2,
		TrendSlopeThreshold: 0.01,
		DaysBack:            7,
	}
}

// AnalysisFromEnv starts from defaults and applies any BRANDPULSE_* overrides
// present in the environment. Unparseable values are ignored.
func AnalysisFromEnv() Analysis {
	cfg := DefaultAnalysis()

	if v, err := strconv.Atoi(os.Getenv("BRANDPULSE_MIN_TEXT_LENGTH")); err == nil {
		cfg.MinTextLength = v
	}
	if v, err := strconv.Atoi(os.Getenv("BRANDPULSE_MAX_ITEMS")); err == nil {
		cfg.MaxItemsPerBatch = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("BRANDPULSE_CONFIDENCE_THRESHOLD"), 64); err == nil {
		cfg.ConfidenceThreshold = v
	}
	if v, err := strconv.Atoi(os.Getenv("BRANDPULSE_TREND_MIN_SAMPLES")); err == nil {
		cfg.TrendMinSamples = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("BRANDPULSE_TREND_SLOPE_THRESHOLD"), 64); err == nil {
		cfg.TrendSlopeThreshold = v
	}
	if v, err := strconv.Atoi(os.Getenv("BRANDPULSE_DAYS_BACK")); err == nil {
		cfg.DaysBack = v
	}

	return cfg
}

// SentimentColors is presentation-only metadata for the dashboard layer.
var SentimentColors = map[string]string{
	"positive": "#28a745",
	"negative": "#dc3545",
	"neutral":  "#6c757d",
}

type brandsFile struct {
	Brands []string `yaml:"brands"`
}

// LoadBrands reads the sample-brand list used by the presentation layer's
// brand picker.
func LoadBrands(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brands file: %w", err)
	}

	var f brandsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse brands file: %w", err)
	}

	return f.Brands, nil
}
