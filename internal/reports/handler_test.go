package reports

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupRouter(repo ReportRepository, exposeDetails bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := newTestService(repo, NewReportExporter(), nil)
	h := NewHandler(svc, time.UTC, exposeDetails)

	r := gin.New()
	r.POST("/reports/data", h.GetReportData)
	r.POST("/reports/download", h.DownloadReport)
	r.GET("/reports/download", h.DownloadReportQuery)
	return r
}

func januaryRepo() *mockRepository {
	repo := new(mockRepository)
	repo.On("FindEventsInRange", mock.Anything, januaryGTE, januaryLTE).Return(sampleEvents(), nil)
	return repo
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_GetReportDataEndToEnd(t *testing.T) {
	repo := januaryRepo()
	r := setupRouter(repo, true)

	w := doJSON(r, http.MethodPost, "/reports/data",
		`{"startDate":"2024-01-01T00:00:00.000Z","endDate":"2024-01-31T00:00:00.000Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReportDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, ReportSummary{TotalBookings: 3, TotalTurnover: 120000}, resp.Summary)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, StatusComplete, resp.Rows[0].Status)
	assert.Equal(t, StatusUpcoming, resp.Rows[1].Status)
	assert.Equal(t, StatusUpcoming, resp.Rows[2].Status)
	assert.Equal(t, "50,000.00", resp.Rows[2].Amount)
	repo.AssertExpectations(t)
}

func TestHandler_GetReportDataValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantKind    ErrorKind
		wantMessage string
	}{
		{"malformed json", `{"startDate":`, KindInvalidJSON, "Invalid JSON in request body"},
		{"empty body", ``, KindInvalidJSON, "Invalid JSON in request body"},
		{"missing end", `{"startDate":"2024-01-01"}`, KindMissingParameters, "Both startDate and endDate are required"},
		{"bad date", `{"startDate":"yesterday","endDate":"2024-01-31"}`, KindInvalidDateRange, "Invalid date format"},
		{"reversed", `{"startDate":"2024-01-31","endDate":"2024-01-01"}`, KindInvalidDateRange, "Start date must be before or equal to end date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			r := setupRouter(repo, true)

			w := doJSON(r, http.MethodPost, "/reports/data", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeError(t, w)
			assert.Equal(t, tt.wantKind, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
			repo.AssertNotCalled(t, "FindEventsInRange", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_GetReportDataStorageFailure(t *testing.T) {
	for _, expose := range []bool{true, false} {
		repo := new(mockRepository)
		repo.On("FindEventsInRange", mock.Anything, januaryGTE, januaryLTE).Return(nil, errors.New("Database connection failed"))
		r := setupRouter(repo, expose)

		w := doJSON(r, http.MethodPost, "/reports/data", `{"startDate":"2024-01-01","endDate":"2024-01-31"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		body := decodeError(t, w)
		assert.Equal(t, KindServer, body.Error)
		assert.Equal(t, "Failed to fetch report data", body.Message)
		if expose {
			assert.Contains(t, body.Details, "Database connection failed")
		} else {
			assert.Empty(t, body.Details)
		}
	}
}

func TestHandler_DownloadReportPDF(t *testing.T) {
	r := setupRouter(januaryRepo(), true)

	w := doJSON(r, http.MethodPost, "/reports/download",
		`{"startDate":"2024-01-01","endDate":"2024-01-31","format":"pdf"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, MimePDF, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="event-report_2024-01-01_to_2024-01-31.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, w.Body.Len(), mustAtoi(t, w.Header().Get("Content-Length")))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestHandler_DownloadReportExcelEndToEnd(t *testing.T) {
	r := setupRouter(januaryRepo(), true)

	w := doJSON(r, http.MethodPost, "/reports/download",
		`{"startDate":"2024-01-01","endDate":"2024-01-31","format":"excel"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MimeXLSX, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="event-report_2024-01-01_to_2024-01-31.xlsx"`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	for row, want := range map[string]string{"G5": "Complete", "G6": "Upcoming", "G7": "Upcoming", "B10": "3", "B11": "1,20,000.00"} {
		got, err := f.GetCellValue(excelSheet, row)
		require.NoError(t, err)
		assert.Equal(t, want, got, row)
	}
}

func TestHandler_DownloadReportQuery(t *testing.T) {
	r := setupRouter(januaryRepo(), true)

	req := httptest.NewRequest(http.MethodGet, "/reports/download?startDate=2024-01-01&endDate=2024-01-31&format=excel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MimeXLSX, w.Header().Get("Content-Type"))
}

func TestHandler_DownloadReportValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind ErrorKind
	}{
		{"malformed json", `not json`, KindInvalidJSON},
		{"missing format", `{"startDate":"2024-01-01","endDate":"2024-01-31"}`, KindMissingParameters},
		{"missing start", `{"endDate":"2024-01-31","format":"pdf"}`, KindMissingParameters},
		{"unknown format", `{"startDate":"2024-01-01","endDate":"2024-01-31","format":"csv"}`, KindInvalidFormat},
		{"format checked before dates", `{"startDate":"bad","endDate":"worse","format":"docx"}`, KindInvalidFormat},
		{"reversed", `{"startDate":"2024-01-31","endDate":"2024-01-01","format":"excel"}`, KindInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			r := setupRouter(repo, true)

			w := doJSON(r, http.MethodPost, "/reports/download", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantKind, decodeError(t, w).Error)
			repo.AssertNotCalled(t, "FindEventsInRange", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_DownloadReportStorageFailureHidesDetailsInProduction(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindEventsInRange", mock.Anything, januaryGTE, januaryLTE).Return(nil, errors.New("pq: relation \"events\" does not exist"))
	r := setupRouter(repo, false)

	w := doJSON(r, http.MethodPost, "/reports/download", `{"startDate":"2024-01-01","endDate":"2024-01-31","format":"pdf"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, KindServer, body.Error)
	assert.Equal(t, "Failed to generate report file", body.Message)
	assert.Empty(t, body.Details)
	assert.NotContains(t, w.Body.String(), "relation")
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
