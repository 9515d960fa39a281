package constants

import (
	"strings"
)

// DocumentType is the closed set of document categories the engine knows how
// to extract fields from.
type DocumentType string

const (
	DocTypeInvoice DocumentType = "INVOICE"
	DocTypeReceipt DocumentType = "RECEIPT"
	DocTypeUnknown DocumentType = "UNKNOWN"
)

var allDocumentTypes = []DocumentType{
	DocTypeInvoice,
	DocTypeReceipt,
}

// SupportedDocumentTypes returns the types a factory can dispatch on
// (everything except UNKNOWN).
func SupportedDocumentTypes() []DocumentType {
	out := make([]DocumentType, len(allDocumentTypes))
	copy(out, allDocumentTypes)
	return out
}

// ParseDocumentType resolves a string alias to its DocumentType,
// case-insensitively. Unrecognized input maps to DocTypeUnknown with ok=false.
func ParseDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return DocTypeUnknown, false
	}

	// synonyms map
	synonyms := map[string]DocumentType{
		"inv":     DocTypeInvoice,
		"bill":    DocTypeInvoice,
		"invoice": DocTypeInvoice,
		"rcpt":    DocTypeReceipt,
		"receipt": DocTypeReceipt,
	}
	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}
	return DocTypeUnknown, false
}
