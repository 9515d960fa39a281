package llm

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// Factory builds model-based document extractors. One configured model name
// is threaded into every field extractor a produced document owns.
type Factory struct {
	modelName string
	resolver  Resolver
	opts      []Option
}

// NewFactory returns a factory for the given resolver. An empty modelName
// falls back to DefaultModelName.
func NewFactory(modelName string, resolver Resolver, opts ...Option) *Factory {
	if modelName == "" {
		modelName = DefaultModelName
	}
	return &Factory{modelName: modelName, resolver: resolver, opts: opts}
}

// ModelName reports the model this factory threads into its extractors.
func (f *Factory) ModelName() string {
	return f.modelName
}

// constructors is the static dispatch table shared by all model factories.
var constructors = map[constants.DocumentType]func(f *Factory) extract.DocumentExtractor{
	constants.DocTypeInvoice: func(f *Factory) extract.DocumentExtractor {
		return NewInvoiceExtractor(f.modelName, f.resolver, f.opts...)
	},
	constants.DocTypeReceipt: func(f *Factory) extract.DocumentExtractor {
		return NewReceiptExtractor(f.modelName, f.resolver, f.opts...)
	},
}

// CreateExtractor dispatches on the document type. UNKNOWN and unmapped
// types fail; there is no default extractor to fall back to.
func (f *Factory) CreateExtractor(docType constants.DocumentType) (extract.DocumentExtractor, error) {
	ctor, ok := constructors[docType]
	if !ok {
		return nil, common.UnsupportedTypeError(string(docType))
	}
	return ctor(f), nil
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
