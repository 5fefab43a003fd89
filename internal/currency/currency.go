// Package currency renders amounts as Colombian pesos for display.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// Format converts a numeric or numeric-string amount into es-CO peso
// notation with zero fraction digits: 1000 becomes "$1.000". Empty, nil,
// and non-numeric input format to "". Pure.
func Format(value interface{}) string {
	amount, ok := toFloat(value)
	if !ok {
		return ""
	}

	rounded := int64(math.Round(math.Abs(amount)))
	formatted := "$" + group(strconv.FormatInt(rounded, 10))
	if math.Signbit(amount) && rounded != 0 {
		return "-" + formatted
	}
	return formatted
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if v == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// group inserts "." thousands separators into a digit string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
