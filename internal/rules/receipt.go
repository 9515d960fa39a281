package rules

import (
	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/extract"
)

// NewReceiptExtractor builds the pattern-based receipt document extractor.
// Field set follows retailer-receipt conventions: merchant, date, totals,
// and payment method.
func NewReceiptExtractor() *extract.Document {
	fieldExtractors := []extract.FieldExtractor{
		NewTextExtractor("merchant_name", []string{
			LabelLinePattern(`merchant`),
			LabelLinePattern(`store`),
			LabelLinePattern(`sold\s*by`),
		}),
		NewDateExtractor("receipt_date",
			WithDateLabels(`receipt\s*date`, `transaction\s*date`, `\bdate\b`)),
		NewAmountExtractor("total_amount",
			WithAmountLabels(`grand\s*total`, `total\s*amount`, `\btotal\b`, `amount\s*due`)),
		NewAmountExtractor("tax_amount",
			WithAmountLabels(`sales\s*tax`, `\btax\b`, `\bvat\b`)),
		NewTextExtractor("payment_method", []string{
			LabelLinePattern(`payment\s*method`),
			LabelLinePattern(`paid\s*(?:by|with)`),
			LabelLinePattern(`tender`),
		}),
	}
	return extract.NewDocument(constants.DocTypeReceipt, fieldExtractors)
}
