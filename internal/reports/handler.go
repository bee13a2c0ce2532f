package reports

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sharath018/venue-booking-backend/middleware"
)

const (
	dataFailureMessage     = "Failed to fetch report data"
	downloadFailureMessage = "Failed to generate report file"
)

// Handler exposes the report preview and download endpoints.
type Handler struct {
	service       ReportService
	loc           *time.Location
	exposeDetails bool
}

// NewHandler creates a new reports handler. exposeDetails adds the raw cause
// to 500 responses and must be false in production.
func NewHandler(svc ReportService, loc *time.Location, exposeDetails bool) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service:       svc,
		loc:           loc,
		exposeDetails: exposeDetails,
	}
}

// GetReportData godoc
// @Summary      Preview report rows
// @Description  Returns display rows and summary for bookings in the inclusive date range
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request  body      ReportDataRequest  true  "Date range"
// @Success      200      {object}  ReportDataResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /reports/data [post]
func (h *Handler) GetReportData(c *gin.Context) {
	var req ReportDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, newReportError(KindInvalidJSON, "Invalid JSON in request body", err), dataFailureMessage)
		return
	}

	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		h.fail(c, newReportError(KindMissingParameters, "Both startDate and endDate are required", nil), dataFailureMessage)
		return
	}

	dr, err := ParseDateRange(req.StartDate, req.EndDate, h.loc)
	if err != nil {
		h.fail(c, invalidDateRange(err), dataFailureMessage)
		return
	}

	resp, err := h.service.GetReportData(c.Request.Context(), dr, requesterFrom(c))
	if err != nil {
		h.fail(c, err, dataFailureMessage)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadReport godoc
// @Summary      Download report
// @Description  Generates a PDF or Excel report for bookings in the inclusive date range
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body      DownloadReportRequest  true  "Date range and format"
// @Success      200      {file}    binary
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /reports/download [post]
func (h *Handler) DownloadReport(c *gin.Context) {
	var req DownloadReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, newReportError(KindInvalidJSON, "Invalid JSON in request body", err), downloadFailureMessage)
		return
	}
	h.download(c, req)
}

// DownloadReportQuery godoc
// @Summary      Download report (query string)
// @Description  Same as POST /reports/download with startDate, endDate and format as query parameters
// @Tags         reports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        startDate  query     string  true  "ISO-8601 start date"
// @Param        endDate    query     string  true  "ISO-8601 end date"
// @Param        format     query     string  true  "pdf or excel"
// @Success      200        {file}    binary
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /reports/download [get]
func (h *Handler) DownloadReportQuery(c *gin.Context) {
	req := DownloadReportRequest{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Format:    c.Query("format"),
	}
	h.download(c, req)
}

func (h *Handler) download(c *gin.Context, req DownloadReportRequest) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" || format == "" {
		h.fail(c, newReportError(KindMissingParameters, "startDate, endDate, and format are required", nil), downloadFailureMessage)
		return
	}

	if format != FormatPDF && format != FormatExcel {
		h.fail(c, newReportError(KindInvalidFormat, `Format must be either "pdf" or "excel"`, nil), downloadFailureMessage)
		return
	}

	dr, err := ParseDateRange(req.StartDate, req.EndDate, h.loc)
	if err != nil {
		h.fail(c, invalidDateRange(err), downloadFailureMessage)
		return
	}

	doc, err := h.service.DownloadReport(c.Request.Context(), dr, format, requesterFrom(c))
	if err != nil {
		h.fail(c, err, downloadFailureMessage)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	c.Header("Content-Length", strconv.Itoa(len(doc.Content)))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *Handler) fail(c *gin.Context, err error, fallbackMessage string) {
	status, body := ToErrorResponse(err, fallbackMessage, h.exposeDetails)
	logger := zerolog.Ctx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg(fallbackMessage)
	} else {
		logger.Debug().Err(err).Str("kind", string(body.Error)).Msg("rejected report request")
	}
	c.AbortWithStatusJSON(status, body)
}

func requesterFrom(c *gin.Context) Requester {
	return Requester{
		UserID: middleware.GetUserIDFromContext(c),
		IP:     middleware.GetIPFromContext(c),
	}
}
