package extract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Shared normalization for heterogeneous amount and date formats. Both
// extractor families use these as postprocess hooks.

var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", " ", "", "\t", "")

// ParseAmount normalizes a monetary token into a float64.
//
// Rules: strip currency symbols and whitespace; if the token has exactly one
// comma, no dot, and at most two digits after the comma, the comma is a
// decimal point ("98,76" -> 98.76); otherwise commas are thousands
// separators to remove ("1,234.56" -> 1234.56).
func ParseAmount(raw string) (float64, error) {
	s := currencyReplacer.Replace(strings.TrimSpace(raw))
	s = strings.Trim(s, ".,")
	if s == "" {
		return 0, fmt.Errorf("empty amount token %q", raw)
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	if commas == 1 && dots == 0 {
		if frac := s[strings.Index(s, ",")+1:]; len(frac) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return v, nil
}

// dateLayouts are tried in order against a captured date token. Slash dates
// are month-first; no cross-format disambiguation is attempted.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseDate normalizes a date token to midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date token %q", raw)
}

// AmountValue adapts ParseAmount to a PostprocessFunc.
func AmountValue(raw string) (any, error) {
	v, err := ParseAmount(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// DateValue adapts ParseDate to a PostprocessFunc.
func DateValue(raw string) (any, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return t, nil
}
