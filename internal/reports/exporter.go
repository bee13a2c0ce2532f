package reports

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders report rows into a downloadable document.
type ReportExporter interface {
	GeneratePDF(opts GeneratorOptions) ([]byte, error)
	GenerateExcel(opts GeneratorOptions) ([]byte, error)
	// Export dispatches on the format token and returns content + MIME type.
	Export(format string, opts GeneratorOptions) ([]byte, string, error)
}

type reportExporter struct {
	compressPDF bool
}

func NewReportExporter() ReportExporter {
	return &reportExporter{compressPDF: true}
}

func (e *reportExporter) Export(format string, opts GeneratorOptions) ([]byte, string, error) {
	switch format {
	case FormatPDF:
		data, err := e.GeneratePDF(opts)
		if err != nil {
			return nil, "", err
		}
		return data, MimePDF, nil

	case FormatExcel:
		data, err := e.GenerateExcel(opts)
		if err != nil {
			return nil, "", err
		}
		return data, MimeXLSX, nil

	default:
		return nil, "", fmt.Errorf("unsupported format: %s", format)
	}
}

var reportColumns = []struct {
	pdfHeader   string
	excelHeader string
	width       float64 // mm in PDF
	colWidth    float64 // characters in Excel
	pdfAlign    string
	excelAlign  string
}{
	{"Sr No", "Sr No", 15, 8, "C", "center"},
	{"Name", "Name", 35, 20, "L", "left"},
	{"Event Type", "Event Type", 35, 20, "L", "left"},
	{"Date", "Date", 25, 12, "C", "center"},
	{"Contact", "Contact", 30, 15, "C", "left"},
	{"Amount (Rs.)", "Amount (₹)", 28, 15, "C", "right"},
	{"Status", "Status", 22, 12, "C", "center"},
}

func rowCells(r ReportRow) []string {
	return []string{
		strconv.Itoa(r.SrNo),
		r.Name,
		r.EventType,
		r.Date,
		r.Contact,
		r.Amount,
		string(r.Status),
	}
}

func dateRangeLine(opts GeneratorOptions) string {
	return fmt.Sprintf("From %s to %s",
		FormatDisplayDate(opts.DateRange.StartDate, opts.Location),
		FormatDisplayDate(opts.DateRange.EndDate, opts.Location))
}

//// ============================
/// PDF
//// ============================

const (
	pdfMargin         = 10.0
	pdfTableTop       = 45.0
	pdfHeaderHeight   = 8.0
	pdfLineHeight     = 5.0
	pdfCellPadding    = 1.5
	pdfSummaryGap     = 20.0
	pdfSummaryWidth   = 80.0
	pdfSummaryRowH    = 8.0
	pdfSummaryReserve = 80.0
	pdfNoteOffset     = 60.0
	pdfNewPageSummary = 30.0
	pdfNewPageNote    = 90.0
)

// GeneratePDF renders an A4 portrait report. The table header repeats on
// every page the table spans. Cells are folded to ASCII before layout and a
// library panic comes back as an error.
func (e *reportExporter) GeneratePDF(opts GeneratorOptions) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("failed to generate PDF: %v", r)
		}
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compressPDF)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(ReportTitle, false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetLineWidth(0.3)

	pdf.SetFont("Helvetica", "B", 19)
	centeredText(pdf, pageW, 20, ReportTitle)

	pdf.SetFont("Helvetica", "", 13)
	centeredText(pdf, pageW, 30, ProcessPDFText(dateRangeLine(opts)))

	y := drawPDFTableHeader(pdf, pdfTableTop)
	pdf.SetFont("Helvetica", "", 10)
	for i, row := range opts.Rows {
		cells := rowCells(row)
		for c := range cells {
			cells[c] = ProcessPDFText(cells[c])
		}
		lines := make([][]string, len(cells))
		maxLines := 1
		for c, txt := range cells {
			lines[c] = pdf.SplitText(txt, reportColumns[c].width-2*pdfCellPadding)
			if len(lines[c]) > maxLines {
				maxLines = len(lines[c])
			}
		}
		rowH := float64(maxLines)*pdfLineHeight + 2*pdfCellPadding

		if y+rowH > pageH-pdfMargin {
			pdf.AddPage()
			y = drawPDFTableHeader(pdf, pdfTableTop)
			pdf.SetFont("Helvetica", "", 10)
		}

		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(248, 248, 248)
		}
		x := pdfMargin
		for c, col := range reportColumns {
			style := "D"
			if fill {
				style = "FD"
			}
			pdf.Rect(x, y, col.width, rowH, style)
			for l, txt := range lines[c] {
				pdf.SetXY(x+pdfCellPadding, y+pdfCellPadding+float64(l)*pdfLineHeight)
				pdf.CellFormat(col.width-2*pdfCellPadding, pdfLineHeight, txt, "", 0, col.pdfAlign, false, 0, "")
			}
			x += col.width
		}
		y += rowH
	}

	summaryY := y + pdfSummaryGap
	noteY := summaryY + pdfNoteOffset
	if summaryY > pageH-pdfSummaryReserve {
		pdf.AddPage()
		summaryY = pdfNewPageSummary
		noteY = pdfNewPageNote
	}
	drawPDFSummary(pdf, pageW, summaryY, opts.Summary)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(20, noteY, PDFTextProcessingNote)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func centeredText(pdf *gofpdf.Fpdf, pageW, y float64, txt string) {
	pdf.Text((pageW-pdf.GetStringWidth(txt))/2, y, txt)
}

// drawPDFTableHeader draws the grey header row at y and returns the next y.
func drawPDFTableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetXY(pdfMargin, y)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, pdfHeaderHeight, col.pdfHeader, "1", 0, "C", true, 0, "")
	}
	return y + pdfHeaderHeight
}

func drawPDFSummary(pdf *gofpdf.Fpdf, pageW, y float64, summary ReportSummary) {
	left := (pageW - pdfSummaryWidth) / 2
	half := pdfSummaryWidth / 2
	rows := [][2]string{
		{"Summary", ""},
		{"Total Bookings", strconv.Itoa(summary.TotalBookings)},
		{"Total Turnover (Rs.)", FormatAmountForPDF(summary.TotalTurnover)},
	}

	pdf.SetFillColor(240, 240, 240)
	for i, r := range rows {
		pdf.SetXY(left, y+float64(i)*pdfSummaryRowH)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(half, pdfSummaryRowH, r[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(half, pdfSummaryRowH, r[1], "1", 0, "C", false, 0, "")
	}
}

//// ============================
/// EXCEL
//// ============================

const (
	excelSheet     = "Event Report"
	excelHeaderRow = 4
)

// GenerateExcel renders the report into a single-sheet workbook. Amounts are
// written as the formatted strings so the grouping survives.
func (e *reportExporter) GenerateExcel(opts GeneratorOptions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeExcelReport(f, opts); err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func writeExcelReport(f *excelize.File, opts GeneratorOptions) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	rangeStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	cellStyles := make([]int, len(reportColumns))
	for i, col := range reportColumns {
		cellStyles[i], err = f.NewStyle(&excelize.Style{
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Horizontal: col.excelAlign, Vertical: "center"},
		})
		if err != nil {
			return err
		}
	}
	summaryTitleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	valueStyle, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "left"}})
	if err != nil {
		return err
	}

	// Title and date range
	if err := f.SetCellValue(excelSheet, "A1", ReportTitle); err != nil {
		return err
	}
	if err := f.MergeCell(excelSheet, "A1", "G1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(excelSheet, "A1", "G1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(excelSheet, "A2", dateRangeLine(opts)); err != nil {
		return err
	}
	if err := f.MergeCell(excelSheet, "A2", "G2"); err != nil {
		return err
	}
	if err := f.SetCellStyle(excelSheet, "A2", "G2", rangeStyle); err != nil {
		return err
	}

	// Header
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, excelHeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(excelSheet, cell, col.excelHeader); err != nil {
			return err
		}
		if err := f.SetCellStyle(excelSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	// Data rows
	for rIdx, r := range opts.Rows {
		row := excelHeaderRow + 1 + rIdx
		values := []interface{}{r.SrNo, r.Name, r.EventType, r.Date, r.Contact, r.Amount, string(r.Status)}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(excelSheet, cell, v); err != nil {
				return err
			}
			if err := f.SetCellStyle(excelSheet, cell, cell, cellStyles[c]); err != nil {
				return err
			}
		}
	}

	// Summary, after one blank row
	summaryRow := excelHeaderRow + len(opts.Rows) + 2
	entries := []struct {
		cell  string
		value interface{}
		style int
	}{
		{fmt.Sprintf("A%d", summaryRow), "Summary", summaryTitleStyle},
		{fmt.Sprintf("A%d", summaryRow+1), "Total Bookings", labelStyle},
		{fmt.Sprintf("B%d", summaryRow+1), opts.Summary.TotalBookings, valueStyle},
		{fmt.Sprintf("A%d", summaryRow+2), "Total Turnover", labelStyle},
		{fmt.Sprintf("B%d", summaryRow+2), FormatAmount(opts.Summary.TotalTurnover), valueStyle},
	}
	for _, en := range entries {
		if err := f.SetCellValue(excelSheet, en.cell, en.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(excelSheet, en.cell, en.cell, en.style); err != nil {
			return err
		}
	}

	for i, col := range reportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(excelSheet, name, name, col.colWidth); err != nil {
			return err
		}
	}
	return nil
}
