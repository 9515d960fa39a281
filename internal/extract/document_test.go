package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jide-lab/fieldlens/constants"
)

type stubFieldExtractor struct {
	name    string
	outcome FieldOutcome
}

func (s stubFieldExtractor) FieldName() string { return s.name }

func (s stubFieldExtractor) ExtractField(context.Context, string) FieldOutcome {
	return s.outcome
}

func TestDocumentExtractAggregates(t *testing.T) {
	doc := NewDocument(constants.DocTypeInvoice, []FieldExtractor{
		stubFieldExtractor{"a", Hit("A", 0.9)},
		stubFieldExtractor{"b", Hit("B", 0.6)},
		stubFieldExtractor{"c", Miss()},
	})

	result := doc.Extract(context.Background(), "irrelevant")
	assert.Equal(t, constants.DocTypeInvoice, result.DocumentType)
	assert.Equal(t, "A", result.Fields["a"])
	assert.Equal(t, "B", result.Fields["b"])
	assert.NotContains(t, result.Fields, "c")
	assert.InDelta(t, (0.9+0.6+0.0)/3.0, result.Confidence, 1e-9)
}

func TestDocumentExtractParallelDeterministic(t *testing.T) {
	extractors := []FieldExtractor{
		stubFieldExtractor{"a", Hit("A", 0.9)},
		stubFieldExtractor{"b", Hit("B", 0.7)},
		stubFieldExtractor{"c", Hit("C", 0.5)},
		stubFieldExtractor{"d", Miss()},
		stubFieldExtractor{"e", Hit("E", 0.3)},
	}
	sequential := NewDocument(constants.DocTypeInvoice, extractors)
	parallel := NewDocument(constants.DocTypeInvoice, extractors, WithWorkers(3))

	want := sequential.Extract(context.Background(), "text")
	for i := 0; i < 10; i++ {
		got := parallel.Extract(context.Background(), "text")
		assert.Equal(t, want, got)
	}
}

func TestDocumentFieldExtractorsKeyedByName(t *testing.T) {
	doc := NewDocument(constants.DocTypeReceipt, []FieldExtractor{
		stubFieldExtractor{name: "total_amount"},
	})
	assert.Equal(t, constants.DocTypeReceipt, doc.DocumentType())
	fes := doc.FieldExtractors()
	assert.Len(t, fes, 1)
	assert.Contains(t, fes, "total_amount")
}
