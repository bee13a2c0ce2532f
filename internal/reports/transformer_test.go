package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func sampleEvents() []EventRecord {
	return []EventRecord{
		{ID: 11, ClientName: "Anita Desai", EventName: "Wedding", Contact: "9876543210",
			Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Amount: int64Ptr(30000)},
		{ID: 7, ClientName: "राम शर्मा", EventName: "पूजा", Contact: "9123456780",
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Amount: int64Ptr(40000)},
		{ID: 3, ClientName: "Rahul Joshi", EventName: "Birthday", Contact: "9000000000",
			Date: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), Amount: int64Ptr(50000)},
	}
}

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestTransformEvents_Empty(t *testing.T) {
	rows := TransformEvents(nil, ModePlain, fixedNow, time.UTC)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestTransformEvents_Plain(t *testing.T) {
	rows := TransformEvents(sampleEvents(), ModePlain, fixedNow, time.UTC)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, i+1, row.SrNo)
	}

	assert.Equal(t, ReportRow{
		SrNo:      1,
		Name:      "Anita Desai",
		EventType: "Wedding",
		Date:      "10/1/2024",
		Contact:   "9876543210",
		Amount:    "30,000.00",
		Status:    StatusComplete,
	}, rows[0])

	assert.Equal(t, "राम शर्मा", rows[1].Name)
	assert.Equal(t, "पूजा", rows[1].EventType)
	assert.Equal(t, StatusUpcoming, rows[1].Status)
	assert.Equal(t, StatusUpcoming, rows[2].Status)
	assert.Equal(t, "25/1/2024", rows[2].Date)
}

func TestTransformEvents_PDFSharesEverythingButText(t *testing.T) {
	events := sampleEvents()
	plain := TransformEvents(events, ModePlain, fixedNow, time.UTC)
	pdf := TransformEvents(events, ModePDF, fixedNow, time.UTC)
	require.Len(t, pdf, len(plain))

	for i := range plain {
		assert.Equal(t, plain[i].SrNo, pdf[i].SrNo)
		assert.Equal(t, plain[i].Date, pdf[i].Date)
		assert.Equal(t, plain[i].Status, pdf[i].Status)
		assert.Equal(t, plain[i].Contact, pdf[i].Contact)
		assert.Equal(t, plain[i].Amount, pdf[i].Amount)
	}

	assert.Equal(t, "raaama sharamaa", pdf[1].Name)
	assert.Equal(t, "pauujaaa", pdf[1].EventType)
}

func TestTransformEvents_PDFContactIsASCII(t *testing.T) {
	events := []EventRecord{{ClientName: "Meera", Contact: "९८७६५४३२१०", Date: fixedNow}}

	plain := TransformEvents(events, ModePlain, fixedNow, time.UTC)
	pdf := TransformEvents(events, ModePDF, fixedNow, time.UTC)

	assert.Equal(t, "९८७६५४३२१०", plain[0].Contact)
	assert.Equal(t, "9876543210", pdf[0].Contact)
}

func TestTransformEvents_MissingAmount(t *testing.T) {
	events := []EventRecord{{ClientName: "X", Date: fixedNow}}
	rows := TransformEvents(events, ModePlain, fixedNow, time.UTC)
	require.Len(t, rows, 1)
	assert.Equal(t, "0.00", rows[0].Amount)
}

func TestFormatDisplayDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	d := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "4/3/2024", FormatDisplayDate(d, time.UTC))
	assert.Equal(t, "5/3/2024", FormatDisplayDate(d, ist))
}
