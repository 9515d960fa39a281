package entity

import (
	"github.com/jide-lab/fieldlens/constants"
)

// Document is one unit of input: raw text already produced by an upstream
// OCR/PDF step, plus the category that selects the field set.
type Document struct {
	Name string                 `json:"name"`
	Type constants.DocumentType `json:"type"`
	Text string                 `json:"text"`
}
