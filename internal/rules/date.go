package rules

import (
	"fmt"

	"github.com/jide-lab/fieldlens/internal/extract"
)

// dateToken matches the recognized date shapes: month-first slash dates,
// ISO dates, and textual-month forms.
const dateToken = `(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}|[A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})`

type dateConfig struct {
	labels []string
}

// DateOption configures a date extractor.
type DateOption func(*dateConfig)

// WithDateLabels matches dates introduced by the given labels (regex
// fragments, e.g. `issue\s*date`), in priority order.
func WithDateLabels(labels ...string) DateOption {
	return func(c *dateConfig) { c.labels = labels }
}

// NewDateExtractor extracts calendar dates as time.Time values (midnight
// UTC). Without labels, each recognized format is its own pattern, so slash
// dates outrank ISO dates which outrank textual-month dates. The format that
// matched decides day/month ordering; there is no cross-format guessing.
func NewDateExtractor(field string, opts ...DateOption) *FieldExtractor {
	var cfg dateConfig
	for _, o := range opts {
		o(&cfg)
	}

	var patterns []string
	if len(cfg.labels) > 0 {
		for _, label := range cfg.labels {
			patterns = append(patterns, fmt.Sprintf(`(?i)%s\s*:?\s*%s`, label, dateToken))
		}
	} else {
		patterns = []string{
			`(\d{1,2}/\d{1,2}/\d{4})`,
			`(\d{4}-\d{2}-\d{2})`,
			`(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`,
		}
	}
	return NewFieldExtractor(field, patterns, WithPostprocess(extract.DateValue))
}
