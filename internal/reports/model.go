package reports

import (
	"time"

	"github.com/sharath018/venue-booking-backend/internal/booking"
)

const (
	// Report format constants
	FormatPDF   = "pdf"
	FormatExcel = "excel"

	// File extensions used in generated names
	ExtPDF  = "pdf"
	ExtXLSX = "xlsx"

	MimePDF  = "application/pdf"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ReportTitle = "Event Booking Report"
)

// EventStatus is derived from the event date relative to today (UTC).
type EventStatus string

const (
	StatusComplete EventStatus = "Complete"
	StatusUpcoming EventStatus = "Upcoming"
)

// RowMode picks the string encoding of a report row.
type RowMode int

const (
	// ModePlain keeps names untouched, used for Excel and JSON preview.
	ModePlain RowMode = iota
	// ModePDF transliterates text so the core PDF fonts can render it.
	ModePDF
)

func (m RowMode) String() string {
	if m == ModePDF {
		return "pdf"
	}
	return "plain"
}

// EventRecord is the read-only booking row the reports are built from.
type EventRecord = booking.Event

// DateRange is an inclusive calendar range. Built per request, never stored.
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// ReportRow represents a single display-ready line in the bookings report
type ReportRow struct {
	SrNo      int         `json:"srNo"`
	Name      string      `json:"name"`
	EventType string      `json:"eventType"`
	Date      string      `json:"date"`
	Contact   string      `json:"contact"`
	Amount    string      `json:"amount"`
	Status    EventStatus `json:"status"`
}

// ReportSummary aggregates the same filtered set the rows come from.
type ReportSummary struct {
	TotalBookings int     `json:"totalBookings"`
	TotalTurnover float64 `json:"totalTurnover"`
}

// ReportDataRequest is the body of the preview endpoint.
type ReportDataRequest struct {
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
}

// DownloadReportRequest adds the export format to ReportDataRequest.
type DownloadReportRequest struct {
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
	Format    string `json:"format" form:"format"`
}

// ReportDataResponse is returned by the preview endpoint.
type ReportDataResponse struct {
	Rows    []ReportRow   `json:"rows"`
	Summary ReportSummary `json:"summary"`
	Count   int           `json:"count"`
}

// ErrorResponse is the JSON error body for every report endpoint.
type ErrorResponse struct {
	Error   ErrorKind `json:"error"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// FilteredEventsResult is what the data service hands back.
type FilteredEventsResult struct {
	Events []EventRecord
	Count  int
}

// GeneratorOptions feeds both document generators.
type GeneratorOptions struct {
	Rows      []ReportRow
	Summary   ReportSummary
	DateRange DateRange
	// Location renders the human-readable date range; nil means time.Local.
	Location *time.Location
}

// GeneratedDocument is a finished download, built fresh per request.
type GeneratedDocument struct {
	Content     []byte
	ContentType string
	FileName    string
	RecordCount int
}
