package puc

import (
	"fmt"
	"strings"

	"oxynia/siigo-balance/internal/parsererror"
)

// CanonicalCode normalizes the textual representation of an account code to
// a plain digit string. Spreadsheet round-tripping turns integer codes into
// floats ("110501" becomes "110501.0"), so every literal ".0" occurrence is
// removed before validation, matching the worksheet this tool replaces.
// The result is idempotent: canonicalizing a canonical code is a no-op.
func CanonicalCode(raw string) (string, error) {
	code := strings.ReplaceAll(strings.TrimSpace(raw), ".0", "")
	if code == "" {
		return "", &parsererror.ParseError{
			Parser: "puc",
			Field:  "Código cuenta contable",
			Value:  raw,
			Err:    fmt.Errorf("empty account code"),
		}
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "", &parsererror.ParseError{
				Parser: "puc",
				Field:  "Código cuenta contable",
				Value:  raw,
				Err:    fmt.Errorf("non-digit character %q", r),
			}
		}
	}
	return code, nil
}
