package llm

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// NewReceiptExtractor builds the model-based receipt document extractor.
func NewReceiptExtractor(modelName string, resolver Resolver, opts ...Option) *extract.Document {
	fe := func(field string, questions []string, extra ...Option) *FieldExtractor {
		return NewFieldExtractor(field, questions, modelName, resolver, append(opts, extra...)...)
	}
	fieldExtractors := []extract.FieldExtractor{
		fe("merchant_name", []string{
			"What is the merchant name?",
			"Which store issued the receipt?",
		}),
		fe("receipt_date", []string{
			"What is the date of the receipt?",
			"When was the purchase made?",
		}, WithPostprocess(extract.DateValue)),
		fe("total_amount", []string{
			"What is the total amount?",
			"How much was paid in total?",
		}, WithPostprocess(extract.AmountValue)),
		fe("tax_amount", []string{
			"What is the tax amount?",
			"How much sales tax was charged?",
		}, WithPostprocess(extract.AmountValue)),
		fe("payment_method", []string{
			"What payment method was used?",
			"How was the purchase paid?",
		}),
	}
	return extract.NewDocument(constants.DocTypeReceipt, fieldExtractors, extract.WithWorkers(qaWorkers))
}
