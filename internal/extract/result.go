package extract

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/jide-lab/fieldlens/constants"
)

// ExtractionResult is the aggregated outcome of one Extract call.
//
// Fields holds only successfully extracted values; a failed field is omitted
// so key presence means success. AttemptedFields lists every field the
// extractor ran, and Confidence is the unweighted mean over all of them,
// counting failures as 0.0.
type ExtractionResult struct {
	DocumentType    constants.DocumentType `json:"document_type"`
	Fields          map[string]any         `json:"fields"`
	AttemptedFields []string               `json:"attempted_fields"`
	Confidence      float64                `json:"confidence"`
}

// NewExtractionResult aggregates per-field outcomes into a result. The
// outcome map must contain one entry per attempted field.
func NewExtractionResult(docType constants.DocumentType, outcomes map[string]FieldOutcome) ExtractionResult {
	fields := make(map[string]any, len(outcomes))
	attempted := make([]string, 0, len(outcomes))
	var sum float64
	for name, out := range outcomes {
		attempted = append(attempted, name)
		sum += out.Confidence
		if out.OK() {
			fields[name] = out.Value
		}
	}
	sort.Strings(attempted)

	var confidence float64
	if len(outcomes) > 0 {
		confidence = sum / float64(len(outcomes))
	}
	return ExtractionResult{
		DocumentType:    docType,
		Fields:          fields,
		AttemptedFields: attempted,
		Confidence:      confidence,
	}
}

// MarshalJSON renders time-valued fields as YYYY-MM-DD so serialized results
// are stable across drivers and exports.
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		if t, ok := v.(time.Time); ok {
			fields[k] = t.Format("2006-01-02")
			continue
		}
		fields[k] = v
	}
	type alias ExtractionResult
	a := alias(r)
	a.Fields = fields
	return json.Marshal(a)
}
