package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSummary(t *testing.T) {
	assert.Equal(t, ReportSummary{}, CalculateSummary(nil))
	assert.Equal(t, ReportSummary{TotalBookings: 3, TotalTurnover: 120000}, CalculateSummary(sampleEvents()))
}

func TestCalculateSummary_MissingAmountsCountAsZero(t *testing.T) {
	events := append(sampleEvents(), EventRecord{ClientName: "No amount"})
	got := CalculateSummary(events)

	assert.Equal(t, 4, got.TotalBookings)
	assert.Equal(t, float64(120000), got.TotalTurnover)
}
