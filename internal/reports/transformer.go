package reports

import (
	"time"
)

// DisplayDateLayout matches the en-IN short date: day/month/year, no padding.
const DisplayDateLayout = "2/1/2006"

// TransformEvents maps events to report rows in input order. SrNo is the
// 1-based position, not the record id. Status and date do not depend on mode.
func TransformEvents(events []EventRecord, mode RowMode, now time.Time, loc *time.Location) []ReportRow {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]ReportRow, 0, len(events))
	for i, ev := range events {
		row := ReportRow{
			SrNo:      i + 1,
			Name:      ev.ClientName,
			EventType: ev.EventName,
			Date:      FormatDisplayDate(ev.Date, loc),
			Contact:   ev.Contact,
			Status:    CalculateEventStatus(ev.Date, now),
		}

		amount := float64(ev.AmountValue())
		if mode == ModePDF {
			row.Name = ProcessPDFText(row.Name)
			row.EventType = ProcessPDFText(row.EventType)
			row.Contact = ProcessPDFText(row.Contact)
			row.Amount = FormatAmountForPDF(amount)
		} else {
			row.Amount = FormatAmount(amount)
		}

		rows = append(rows, row)
	}
	return rows
}

// FormatDisplayDate renders t as d/m/yyyy in loc.
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayDateLayout)
}
