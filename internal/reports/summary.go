package reports

import (
	"github.com/shopspring/decimal"
)

// CalculateSummary counts events and sums their raw amounts. Unset amounts
// count as 0. It works on records, never on rows, so every format agrees.
func CalculateSummary(events []EventRecord) ReportSummary {
	if len(events) == 0 {
		return ReportSummary{}
	}

	total := decimal.Zero
	for _, ev := range events {
		total = total.Add(decimal.NewFromInt(ev.AmountValue()))
	}

	return ReportSummary{
		TotalBookings: len(events),
		TotalTurnover: total.InexactFloat64(),
	}
}
