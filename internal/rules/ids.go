package rules

import "fmt"

// Identifier tokens are opaque: trimmed, case and punctuation preserved,
// never normalized.

const idToken = `([A-Za-z0-9][A-Za-z0-9/_-]*)`

// NewInvoiceNumberExtractor covers the common invoice-number label variants.
func NewInvoiceNumberExtractor() *FieldExtractor {
	patterns := []string{
		`(?i)invoice\s*number\s*[:#]?\s*` + idToken,
		`(?i)invoice\s*no\.?\s*[:#]?\s*` + idToken,
		`(?i)invoice\s*#\s*` + idToken,
		`(?i)inv\.?\s*no\.?\s*[:#]?\s*` + idToken,
	}
	return NewFieldExtractor("invoice_number", patterns)
}

const taxIDToken = `([A-Za-z0-9][A-Za-z0-9-]*)`

// NewTaxIDExtractor extracts the tax identifier belonging to one party
// ("seller" or "buyer"). A single document carries both, so every pattern is
// anchored on the party label.
func NewTaxIDExtractor(field, party string) *FieldExtractor {
	patterns := []string{
		fmt.Sprintf(`(?i)%s\s*tax\s*id\s*[:#]?\s*%s`, party, taxIDToken),
		fmt.Sprintf(`(?i)%s(?:'s)?\s*vat(?:\s*(?:number|no\.?))?\s*[:#]?\s*%s`, party, taxIDToken),
		fmt.Sprintf(`(?i)tax\s*id\s*\(%s\)\s*[:#]?\s*%s`, party, taxIDToken),
	}
	return NewFieldExtractor(field, patterns)
}
