package extract

import (
	"context"

	"github.com/jide-lab/fieldlens/constants"
)

// FieldOutcome is the result of extracting one field: a typed value and a
// confidence in [0,1]. Value == nil exactly when Confidence == 0; there is no
// separate "no match" signal.
type FieldOutcome struct {
	Value      any
	Confidence float64
}

// Miss is the zero outcome returned for any field-level failure.
func Miss() FieldOutcome {
	return FieldOutcome{}
}

// Hit builds a successful outcome. A nil value or non-positive confidence
// collapses to Miss so the outcome invariant holds by construction.
func Hit(value any, confidence float64) FieldOutcome {
	if value == nil || confidence <= 0 {
		return FieldOutcome{}
	}
	if confidence > 1 {
		confidence = 1
	}
	return FieldOutcome{Value: value, Confidence: confidence}
}

// OK reports whether the outcome carries a value.
func (o FieldOutcome) OK() bool {
	return o.Value != nil
}

// PreprocessFunc transforms document text before matching (e.g. case-folding).
type PreprocessFunc func(text string) string

// PostprocessFunc converts a raw matched/answered string into a typed value.
// An error marks the extraction as failed; it never reaches the caller.
type PostprocessFunc func(raw string) (any, error)

// FieldExtractor extracts one named field from raw document text.
// ExtractField never returns an error: every failure is a zero outcome.
type FieldExtractor interface {
	FieldName() string
	ExtractField(ctx context.Context, text string) FieldOutcome
}

// DocumentExtractor runs a fixed set of field extractors over one document's
// text and aggregates their outcomes. Extract never returns an error.
type DocumentExtractor interface {
	DocumentType() constants.DocumentType
	FieldExtractors() map[string]FieldExtractor
	Extract(ctx context.Context, text string) ExtractionResult
}

// Factory constructs a DocumentExtractor for a supported document type.
// UNKNOWN and unmapped types fail with common.ErrUnsupportedType.
type Factory interface {
	CreateExtractor(docType constants.DocumentType) (DocumentExtractor, error)
	CreateExtractorFromString(alias string) (DocumentExtractor, error)
}
