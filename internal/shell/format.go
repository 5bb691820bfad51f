package shell

import (
	"fmt"
	"strings"

	"github.com/handiism/magnet-calculator/internal/model"
)

// Separator frames every printed result.
var Separator = strings.Repeat("-", 25)

// ResultLine renders r without the separators:
//
//	Calculated Magnetic Field: 0.424264 T
//	Error: Division by zero in cylinder_magnet calculation.
func ResultLine(r model.Result) string {
	if !r.IsOk() {
		return fmt.Sprintf("Error: %v", r.Err())
	}
	return fmt.Sprintf("Calculated Magnetic Field: %.6f T", r.Value())
}

// FormatResult returns the three printed lines for r.
func FormatResult(r model.Result) []string {
	return []string{Separator, ResultLine(r), Separator}
}
