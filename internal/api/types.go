package api

import "github.com/spacesedan/brandpulse/internal/models"

type AnalyzeRequest struct {
	Brand         string  `json:"brand" binding:"required"`
	Source        string  `json:"source"` // "live", "sample" (default)
	DaysBack      int     `json:"days_back"`
	MaxItems      int     `json:"max_items"`
	MinConfidence float64 `json:"min_confidence"`
}

type AnalyzeResponse struct {
	Brand      string                  `json:"brand"`
	DataSource string                  `json:"data_source"`
	Records    []models.AnalyzedRecord `json:"records"`
	Summary    models.SummaryStats     `json:"summary"`
	Trend      models.TrendLabel       `json:"trend"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
