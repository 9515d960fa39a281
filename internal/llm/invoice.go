package llm

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// qaWorkers bounds the per-field fan-out for model-based document
// extraction, where QA latency dominates.
const qaWorkers = 4

// NewInvoiceExtractor builds the model-based invoice document extractor.
// Every field asks the same model so one document's answers are consistent.
func NewInvoiceExtractor(modelName string, resolver Resolver, opts ...Option) *extract.Document {
	fe := func(field string, questions []string, extra ...Option) *FieldExtractor {
		return NewFieldExtractor(field, questions, modelName, resolver, append(opts, extra...)...)
	}
	fieldExtractors := []extract.FieldExtractor{
		fe("invoice_number", []string{
			"What is the invoice number?",
			"What is the number of this invoice?",
		}),
		fe("issue_date", []string{
			"What is the issue date of the invoice?",
			"When was the invoice issued?",
		}, WithPostprocess(extract.DateValue)),
		fe("due_date", []string{
			"What is the due date of the invoice?",
			"When is payment due?",
		}, WithPostprocess(extract.DateValue)),
		fe("net_amount", []string{
			"What is the net amount?",
			"What is the subtotal before tax?",
		}, WithPostprocess(extract.AmountValue)),
		fe("tax_amount", []string{
			"What is the tax amount?",
			"How much tax is charged?",
		}, WithPostprocess(extract.AmountValue)),
		fe("total_amount", []string{
			"What is the total amount?",
			"What is the total amount due?",
		}, WithPostprocess(extract.AmountValue)),
		fe("seller_name", []string{
			"Who is the seller?",
			"What company issued the invoice?",
		}),
		fe("buyer_name", []string{
			"Who is the buyer?",
			"Who is the invoice billed to?",
		}),
		fe("seller_tax_id", []string{
			"What is the seller's tax ID?",
			"What is the seller's VAT number?",
		}),
		fe("buyer_tax_id", []string{
			"What is the buyer's tax ID?",
			"What is the buyer's VAT number?",
		}),
	}
	return extract.NewDocument(constants.DocTypeInvoice, fieldExtractors, extract.WithWorkers(qaWorkers))
}
