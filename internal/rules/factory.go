package rules

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// Factory builds pattern-based document extractors.
type Factory struct {
	constructors map[constants.DocumentType]func() extract.DocumentExtractor
}

// NewFactory returns a factory with the static dispatch table.
func NewFactory() *Factory {
	return &Factory{
		constructors: map[constants.DocumentType]func() extract.DocumentExtractor{
			constants.DocTypeInvoice: func() extract.DocumentExtractor { return NewInvoiceExtractor() },
			constants.DocTypeReceipt: func() extract.DocumentExtractor { return NewReceiptExtractor() },
		},
	}
}

// CreateExtractor dispatches on the document type. UNKNOWN and unmapped
// types fail; there is no default extractor to fall back to.
func (f *Factory) CreateExtractor(docType constants.DocumentType) (extract.DocumentExtractor, error) {
	ctor, ok := f.constructors[docType]
	if !ok {
		return nil, common.UnsupportedTypeError(string(docType))
	}
	return ctor(), nil
}

// CreateExtractorFromString resolves a string alias (case-insensitively)
// before dispatching.
func (f *Factory) CreateExtractorFromString(alias string) (extract.DocumentExtractor, error) {
	docType, ok := constants.ParseDocumentType(alias)
	if !ok {
		return nil, common.UnsupportedTypeError(alias)
	}
	return f.CreateExtractor(docType)
}

var _ extract.Factory = (*Factory)(nil)
