package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		input string
		want  DocumentType
		ok    bool
	}{
		{"invoice", DocTypeInvoice, true},
		{"INVOICE", DocTypeInvoice, true},
		{"  Invoice ", DocTypeInvoice, true},
		{"inv", DocTypeInvoice, true},
		{"bill", DocTypeInvoice, true},
		{"receipt", DocTypeReceipt, true},
		{"rcpt", DocTypeReceipt, true},
		{"", DocTypeUnknown, false},
		{"unknown", DocTypeUnknown, false},
		{"purchase-order", DocTypeUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseDocumentType(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, alias := range []string{"rules", "regex", "pattern", "RULES"} {
		got, ok := ParseStrategy(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, StrategyRules, got, alias)
	}
	for _, alias := range []string{"model", "ml", "qa"} {
		got, ok := ParseStrategy(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, StrategyModel, got, alias)
	}
	_, ok := ParseStrategy("quantum")
	assert.False(t, ok)
}

func TestSupportedDocumentTypes(t *testing.T) {
	types := SupportedDocumentTypes()
	assert.Contains(t, types, DocTypeInvoice)
	assert.Contains(t, types, DocTypeReceipt)
	assert.NotContains(t, types, DocTypeUnknown)
}
