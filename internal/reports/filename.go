package reports

import (
	"fmt"
	"time"
)

// GenerateReportFileName builds event-report_YYYY-MM-DD_to_YYYY-MM-DD.<ext>.
// Calendar fields come from loc, not UTC, unlike the range filter.
func GenerateReportFileName(start, end time.Time, ext string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return fmt.Sprintf("event-report_%s_to_%s.%s",
		start.In(loc).Format("2006-01-02"),
		end.In(loc).Format("2006-01-02"),
		ext,
	)
}
