package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sharath018/venue-booking-backend/internal/auditlog"
)

// Requester identifies who asked for a report, for the audit trail.
type Requester struct {
	UserID *uint
	IP     string
}

// ReportService performs business logic and coordinates repo + exporter.
type ReportService interface {
	// FetchEventsByDateRange is all-or-nothing: events or a STORAGE_ERROR.
	FetchEventsByDateRange(ctx context.Context, dr DateRange) (FilteredEventsResult, error)
	GetReportData(ctx context.Context, dr DateRange, who Requester) (ReportDataResponse, error)
	DownloadReport(ctx context.Context, dr DateRange, format string, who Requester) (GeneratedDocument, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
	auditSvc auditlog.Service
	loc      *time.Location
	now      func() time.Time
}

// NewReportService wires the reporting pipeline. auditSvc may be nil; loc
// drives display dates and file names.
func NewReportService(repo ReportRepository, exporter ReportExporter, auditSvc auditlog.Service, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{
		repo:     repo,
		exporter: exporter,
		auditSvc: auditSvc,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *reportService) FetchEventsByDateRange(ctx context.Context, dr DateRange) (FilteredEventsResult, error) {
	if err := ValidateDateRange(dr); err != nil {
		return FilteredEventsResult{}, invalidDateRange(err)
	}

	start, end := NormalizeRange(dr)
	events, err := s.repo.FindEventsInRange(ctx, start, end)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Time("gte", start).Time("lte", end).
			Msg("fetch events by date range")
		return FilteredEventsResult{}, newReportError(KindStorage, "Failed to fetch events from database", err)
	}

	return FilteredEventsResult{Events: events, Count: len(events)}, nil
}

func (s *reportService) GetReportData(ctx context.Context, dr DateRange, who Requester) (ReportDataResponse, error) {
	result, err := s.FetchEventsByDateRange(ctx, dr)
	if err != nil {
		return ReportDataResponse{}, err
	}

	resp := ReportDataResponse{
		Rows:    TransformEvents(result.Events, ModePlain, s.now(), s.loc),
		Summary: CalculateSummary(result.Events),
		Count:   result.Count,
	}

	s.audit(ctx, who, auditlog.ActionReportDataViewed, auditlog.StatusSuccess, map[string]interface{}{
		"format":       "json_preview",
		"start_date":   dr.StartDate.Format(time.RFC3339),
		"end_date":     dr.EndDate.Format(time.RFC3339),
		"record_count": result.Count,
	})

	return resp, nil
}

func (s *reportService) DownloadReport(ctx context.Context, dr DateRange, format string, who Requester) (GeneratedDocument, error) {
	details := map[string]interface{}{
		"format":     format,
		"start_date": dr.StartDate.Format(time.RFC3339),
		"end_date":   dr.EndDate.Format(time.RFC3339),
	}

	doc, err := s.buildDocument(ctx, dr, format)
	if err != nil {
		details["error"] = err.Error()
		s.audit(ctx, who, auditlog.ActionReportDownloadFailed, auditlog.StatusFailure, details)
		return GeneratedDocument{}, err
	}

	details["filename"] = doc.FileName
	details["record_count"] = doc.RecordCount
	s.audit(ctx, who, auditlog.ActionReportDownloaded, auditlog.StatusSuccess, details)

	return doc, nil
}

func (s *reportService) buildDocument(ctx context.Context, dr DateRange, format string) (GeneratedDocument, error) {
	mode, ext, err := resolveFormat(format)
	if err != nil {
		return GeneratedDocument{}, err
	}

	result, err := s.FetchEventsByDateRange(ctx, dr)
	if err != nil {
		return GeneratedDocument{}, err
	}

	opts := GeneratorOptions{
		Rows:      TransformEvents(result.Events, mode, s.now(), s.loc),
		Summary:   CalculateSummary(result.Events),
		DateRange: dr,
		Location:  s.loc,
	}

	content, contentType, err := s.exporter.Export(format, opts)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("format", format).Int("rows", len(opts.Rows)).
			Msg("report generation failed")
		return GeneratedDocument{}, newReportError(KindGeneration, "Failed to generate report file", err)
	}

	return GeneratedDocument{
		Content:     content,
		ContentType: contentType,
		FileName:    GenerateReportFileName(dr.StartDate, dr.EndDate, ext, s.loc),
		RecordCount: result.Count,
	}, nil
}

// resolveFormat maps the request token onto row mode and file extension.
func resolveFormat(format string) (RowMode, string, error) {
	switch format {
	case FormatPDF:
		return ModePDF, ExtPDF, nil
	case FormatExcel:
		return ModePlain, ExtXLSX, nil
	default:
		return ModePlain, "", newReportError(KindInvalidFormat, `Format must be either "pdf" or "excel"`,
			fmt.Errorf("unsupported format: %q", format))
	}
}

func (s *reportService) audit(ctx context.Context, who Requester, action, status string, details map[string]interface{}) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.LogAction(ctx, who.UserID, action, details, who.IP, status); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("action", action).Msg("audit log write failed")
	}
}
