package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jide-lab/fieldlens/constants"
)

const sampleInvoice = `
INVOICE

Invoice Number: INV-2023-001
Issue Date: 01/15/2023
Due Date: 02/15/2023

Seller: Acme Corporation
Seller Tax ID: 123-456-789

Buyer: Globex Inc.
Buyer Tax ID: 987-654-321

Net Amount: $900.00
Tax Amount: $100.00
Total Amount: $1,000.00
`

func TestInvoiceExtractorSampleDocument(t *testing.T) {
	doc := NewInvoiceExtractor()
	require.Equal(t, constants.DocTypeInvoice, doc.DocumentType())

	result := doc.Extract(context.Background(), sampleInvoice)

	assert.Equal(t, "INV-2023-001", result.Fields["invoice_number"])
	assert.Equal(t, "Acme Corporation", result.Fields["seller_name"])
	assert.Equal(t, "Globex Inc.", result.Fields["buyer_name"])
	assert.Equal(t, "123-456-789", result.Fields["seller_tax_id"])
	assert.Equal(t, "987-654-321", result.Fields["buyer_tax_id"])
	assert.Equal(t, 900.0, result.Fields["net_amount"])
	assert.Equal(t, 100.0, result.Fields["tax_amount"])
	assert.Equal(t, 1000.0, result.Fields["total_amount"])

	issue, ok := result.Fields["issue_date"].(time.Time)
	require.True(t, ok)
	assert.True(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC).Equal(issue))

	due, ok := result.Fields["due_date"].(time.Time)
	require.True(t, ok)
	assert.True(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC).Equal(due))

	assert.Len(t, result.AttemptedFields, 10)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestInvoiceExtractorSparseDocument(t *testing.T) {
	doc := NewInvoiceExtractor()

	result := doc.Extract(context.Background(), "Invoice Number: A-1\nnothing else here")

	assert.Equal(t, "A-1", result.Fields["invoice_number"])
	assert.NotContains(t, result.Fields, "total_amount")
	assert.Len(t, result.AttemptedFields, 10)

	full := doc.Extract(context.Background(), sampleInvoice)
	assert.Less(t, result.Confidence, full.Confidence)
}

func TestReceiptExtractorSampleDocument(t *testing.T) {
	doc := NewReceiptExtractor()
	require.Equal(t, constants.DocTypeReceipt, doc.DocumentType())

	text := "ACME STORE\nMerchant: Acme Store\nDate: 2023-06-30\nPayment Method: VISA\nTax: $1.20\nTotal: $13.70\n"
	result := doc.Extract(context.Background(), text)

	assert.Equal(t, "Acme Store", result.Fields["merchant_name"])
	assert.Equal(t, 13.7, result.Fields["total_amount"])
	assert.Equal(t, 1.2, result.Fields["tax_amount"])
	assert.Equal(t, "VISA", result.Fields["payment_method"])

	date, ok := result.Fields["receipt_date"].(time.Time)
	require.True(t, ok)
	assert.True(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC).Equal(date))
}
