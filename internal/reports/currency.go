package reports

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount the en-IN way without a currency symbol,
// e.g. 1000000 -> "10,00,000.00". The symbol lives in the column header so
// spreadsheet cells stay sortable.
func FormatAmount(amount float64) string {
	return formatIndian(amount)
}

// FormatAmountForPDF is FormatAmount restricted to glyphs the core PDF fonts
// carry. Indian grouping only ever emits ASCII, so both share one core.
func FormatAmountForPDF(amount float64) string {
	return formatIndian(amount)
}

func formatIndian(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	}
	return formatDecimal(decimal.NewFromFloat(amount))
}

func formatDecimal(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts separators after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
