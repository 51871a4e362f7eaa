package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a cell into an exact decimal. European formatting
// uses dots for thousands and a comma for decimals ("1.234,56"), which
// is normalized before parsing.
func parseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	if decimalComma {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}
