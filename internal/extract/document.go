package extract

import (
	"context"
	"sync"

	"github.com/jide-lab/fieldlens/constants"
)

// Document is the shared DocumentExtractor implementation: it owns a field
// name -> FieldExtractor map and aggregates their outcomes. Both extractor
// families build on it; only the contained field extractors differ.
type Document struct {
	docType    constants.DocumentType
	extractors map[string]FieldExtractor
	workers    int
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithWorkers runs the per-field loop on up to n workers. Useful when field
// extraction is dominated by model latency; aggregation stays deterministic
// because each field writes into its own slot.
func WithWorkers(n int) DocumentOption {
	return func(d *Document) {
		if n > 1 {
			d.workers = n
		}
	}
}

// NewDocument builds a Document over the given field extractors, keyed by
// field name.
func NewDocument(docType constants.DocumentType, extractors []FieldExtractor, opts ...DocumentOption) *Document {
	byName := make(map[string]FieldExtractor, len(extractors))
	for _, fe := range extractors {
		byName[fe.FieldName()] = fe
	}
	d := &Document{
		docType:    docType,
		extractors: byName,
		workers:    1,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Document) DocumentType() constants.DocumentType {
	return d.docType
}

func (d *Document) FieldExtractors() map[string]FieldExtractor {
	return d.extractors
}

// Extract runs every owned field extractor over the same text and aggregates
// the outcomes. One field's failure never affects another's result.
func (d *Document) Extract(ctx context.Context, text string) ExtractionResult {
	outcomes := make(map[string]FieldOutcome, len(d.extractors))

	if d.workers <= 1 || len(d.extractors) <= 1 {
		for name, fe := range d.extractors {
			outcomes[name] = fe.ExtractField(ctx, text)
		}
		return NewExtractionResult(d.docType, outcomes)
	}

	type slot struct {
		name    string
		outcome FieldOutcome
	}
	names := make([]string, 0, len(d.extractors))
	for name := range d.extractors {
		names = append(names, name)
	}
	slots := make([]slot, len(names))

	var wg sync.WaitGroup
	sem := make(chan struct{}, d.workers)
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			slots[i] = slot{name: name, outcome: d.extractors[name].ExtractField(ctx, text)}
		}(i, name)
	}
	wg.Wait()

	for _, s := range slots {
		outcomes[s.name] = s.outcome
	}
	return NewExtractionResult(d.docType, outcomes)
}
