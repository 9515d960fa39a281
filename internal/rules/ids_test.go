package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberVariants(t *testing.T) {
	e := NewInvoiceNumberExtractor()

	tests := []struct {
		text string
		want string
	}{
		{"Invoice Number: INV-2023-001", "INV-2023-001"},
		{"Invoice No. 42-A issued today", "42-A"},
		{"Invoice # 777", "777"},
		{"Inv. No: ABC/123", "ABC/123"},
	}
	for _, tt := range tests {
		out := e.ExtractField(context.Background(), tt.text)
		assert.Equal(t, tt.want, out.Value, tt.text)
	}
}

func TestTaxIDPartyAnchoring(t *testing.T) {
	text := "Seller Tax ID: 123-456-789\nBuyer Tax ID: 987-654-321"

	seller := NewTaxIDExtractor("seller_tax_id", "seller")
	buyer := NewTaxIDExtractor("buyer_tax_id", "buyer")

	assert.Equal(t, "123-456-789", seller.ExtractField(context.Background(), text).Value)
	assert.Equal(t, "987-654-321", buyer.ExtractField(context.Background(), text).Value)
}

func TestTaxIDVATVariant(t *testing.T) {
	e := NewTaxIDExtractor("seller_tax_id", "seller")

	out := e.ExtractField(context.Background(), "Seller's VAT number: GB123456789")
	assert.Equal(t, "GB123456789", out.Value)
}

func TestLabelLinePatternRequiresColon(t *testing.T) {
	e := NewTextExtractor("seller_name", []string{LabelLinePattern(`seller`)})

	out := e.ExtractField(context.Background(), "Seller: Acme Corporation\nSeller Tax ID: 123")
	assert.Equal(t, "Acme Corporation", out.Value)

	// a bare mention without a colon is not a labeled line
	out = e.ExtractField(context.Background(), "the seller shipped late")
	assert.Nil(t, out.Value)
}
