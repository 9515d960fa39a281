package rules

import (
	"fmt"
	"regexp"

	"github.com/jide-lab/fieldlens/internal/extract"
)

const (
	amountToken   = `([0-9][0-9.,]*)`
	currencyClass = `[$€£]`
)

type amountConfig struct {
	symbol string
	labels []string
}

// AmountOption configures an amount extractor.
type AmountOption func(*amountConfig)

// WithCurrency restricts matching to one currency symbol. Text using any
// other symbol will not match, even if numerically well-formed.
func WithCurrency(symbol string) AmountOption {
	return func(c *amountConfig) { c.symbol = symbol }
}

// WithAmountLabels matches amounts introduced by the given labels (regex
// fragments, e.g. `net\s*amount`), in priority order, instead of bare
// symbol-adjacent amounts.
func WithAmountLabels(labels ...string) AmountOption {
	return func(c *amountConfig) { c.labels = labels }
}

// NewAmountExtractor extracts monetary amounts as float64 values. Without
// labels it matches symbol-prefixed then symbol-suffixed amounts; currency
// symbols and grouping separators are normalized away by extract.ParseAmount.
func NewAmountExtractor(field string, opts ...AmountOption) *FieldExtractor {
	var cfg amountConfig
	for _, o := range opts {
		o(&cfg)
	}

	sym := currencyClass
	if cfg.symbol != "" {
		sym = regexp.QuoteMeta(cfg.symbol)
	}

	var patterns []string
	if len(cfg.labels) > 0 {
		for _, label := range cfg.labels {
			patterns = append(patterns, fmt.Sprintf(`(?i)%s\s*:?\s*(?:%s\s*)?%s`, label, sym, amountToken))
		}
	} else {
		patterns = []string{
			fmt.Sprintf(`%s\s*%s`, sym, amountToken),
			fmt.Sprintf(`%s\s*%s`, amountToken, sym),
		}
	}
	return NewFieldExtractor(field, patterns, WithPostprocess(extract.AmountValue))
}
