package collectors

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/brandpulse/internal/models"
)

var requiredColumns = []string{"title", "text"}

var uploadDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// LoadCSV maps user-uploaded tabular rows to RawItems. Only title and text
// columns are required; a missing required column is a validation error
// raised here, before the pipeline ever sees the data. Optional columns
// default per the documented rules: score and comments to 0, date to a
// staggered now-minus-row-index timestamp, source to "custom", brand to
// "unknown".
func LoadCSV(r io.Reader, now time.Time) ([]models.RawItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var items []models.RawItem
	for idx := 0; ; idx++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", idx+1, err)
		}

		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		createdAt := now.Add(-time.Duration(idx) * time.Hour)
		if raw := cell("date"); raw != "" {
			for _, layout := range uploadDateLayouts {
				if parsed, err := time.Parse(layout, raw); err == nil {
					createdAt = parsed
					break
				}
			}
		}

		source := cell("source")
		if source == "" {
			source = "custom"
		}
		keyword := strings.ToLower(cell("brand"))
		if keyword == "" {
			keyword = "unknown"
		}
		url := cell("url")
		if url == "" {
			url = fmt.Sprintf("https://custom.com/%d", idx+1)
		}

		items = append(items, models.RawItem{
			ID:          fmt.Sprintf("custom_%d", idx+1),
			Title:       cell("title"),
			Text:        cell("text"),
			Score:       atoiOrZero(cell("score")),
			NumComments: atoiOrZero(cell("comments")),
			CreatedAt:   createdAt,
			URL:         url,
			Source:      source,
			Keyword:     keyword,
		})
	}

	return items, nil
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
