// Package rules implements the pattern-based extractor family: field
// extractors driven by an ordered list of regular expressions, where pattern
// position encodes descending priority and trust.
package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/jide-lab/fieldlens/internal/extract"
)

const (
	maxPatternConfidence  = 0.90
	patternConfidenceStep = 0.05
	minPatternConfidence  = 0.10
)

// patternConfidence maps a pattern's position in the priority list to the
// confidence its match earns. Earlier patterns score strictly higher.
func patternConfidence(position int) float64 {
	c := maxPatternConfidence - float64(position)*patternConfidenceStep
	if c < minPatternConfidence {
		return minPatternConfidence
	}
	return c
}

// FieldExtractor matches ordered patterns against document text. The first
// pattern that matches wins; later patterns are never evaluated.
type FieldExtractor struct {
	field       string
	patterns    []*regexp.Regexp
	preprocess  extract.PreprocessFunc
	postprocess extract.PostprocessFunc
}

// Option configures a FieldExtractor.
type Option func(*FieldExtractor)

// WithPreprocess applies fn to the text before any pattern is evaluated.
func WithPreprocess(fn extract.PreprocessFunc) Option {
	return func(e *FieldExtractor) { e.preprocess = fn }
}

// WithPostprocess converts the captured token into a typed value. A failing
// postprocess marks the field as missed.
func WithPostprocess(fn extract.PostprocessFunc) Option {
	return func(e *FieldExtractor) { e.postprocess = fn }
}

// NewFieldExtractor compiles the patterns in priority order. Patterns are
// programmer-defined constants; a malformed one panics at construction.
func NewFieldExtractor(field string, patterns []string, opts ...Option) *FieldExtractor {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	e := &FieldExtractor{
		field:    field,
		patterns: compiled,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *FieldExtractor) FieldName() string {
	return e.field
}

// ExtractField evaluates patterns in declared order against the
// (preprocessed) text and returns the first match's captured group, passed
// through the postprocess hook. Confidence decreases with pattern position.
func (e *FieldExtractor) ExtractField(_ context.Context, text string) extract.FieldOutcome {
	if e.preprocess != nil {
		text = e.preprocess(text)
	}
	for i, re := range e.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		if len(m) > 1 {
			raw = m[1]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return extract.Miss()
		}
		if e.postprocess == nil {
			return extract.Hit(raw, patternConfidence(i))
		}
		value, err := e.postprocess(raw)
		if err != nil {
			// first-match-wins: a failing postprocess fails the field,
			// it does not fall through to later patterns
			return extract.Miss()
		}
		return extract.Hit(value, patternConfidence(i))
	}
	return extract.Miss()
}

var _ extract.FieldExtractor = (*FieldExtractor)(nil)
