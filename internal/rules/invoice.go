package rules

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// NewInvoiceExtractor builds the pattern-based invoice document extractor.
func NewInvoiceExtractor() *extract.Document {
	fieldExtractors := []extract.FieldExtractor{
		NewInvoiceNumberExtractor(),
		NewDateExtractor("issue_date",
			WithDateLabels(`issue\s*date`, `invoice\s*date`, `date\s*of\s*issue`)),
		NewDateExtractor("due_date",
			WithDateLabels(`due\s*date`, `payment\s*due`)),
		NewAmountExtractor("net_amount",
			WithAmountLabels(`net\s*amount`, `net\s*total`, `subtotal`)),
		NewAmountExtractor("tax_amount",
			WithAmountLabels(`tax\s*amount`, `vat\s*amount`, `\btax\b`)),
		NewAmountExtractor("total_amount",
			WithAmountLabels(`total\s*amount`, `amount\s*due`, `\btotal\b`)),
		NewTextExtractor("seller_name", []string{
			LabelLinePattern(`seller`),
			LabelLinePattern(`vendor`),
			LabelLinePattern(`from`),
		}),
		NewTextExtractor("buyer_name", []string{
			LabelLinePattern(`buyer`),
			LabelLinePattern(`bill\s*to`),
			LabelLinePattern(`customer`),
		}),
		NewTaxIDExtractor("seller_tax_id", "seller"),
		NewTaxIDExtractor("buyer_tax_id", "buyer"),
	}
	return extract.NewDocument(constants.DocTypeInvoice, fieldExtractors)
}
