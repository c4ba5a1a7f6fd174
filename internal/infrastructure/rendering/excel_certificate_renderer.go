package rendering

import (
	"context"
	"fmt"
	"strings"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	certificateSheet = "Certificate"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var pointHeader = []string{"#", "Test", "Unit", "Criterion", "Measured", "Result"}

var logoExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
}

// ExcelCertificateRenderer lays a certificate payload out as a single-sheet
// xlsx workbook. It performs no lookups; everything comes from the payload.
type ExcelCertificateRenderer struct {
	logger *zap.Logger
}

var _ interfaces.IDocumentRenderer = (*ExcelCertificateRenderer)(nil)

func NewExcelCertificateRenderer(logger *zap.Logger) *ExcelCertificateRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExcelCertificateRenderer{logger: logger}
}

type sheetWriter struct {
	f      *excelize.File
	row    int
	styles sheetStyles
}

type sheetStyles struct {
	title, label, header, cell, approved, rejected, warning int
}

func (r *ExcelCertificateRenderer) Render(ctx context.Context, p entities.CertificatePayload) (interfaces.RenderedDocument, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.RenderedDocument{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(certificateSheet)
	if err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return interfaces.RenderedDocument{}, err
	}
	w := &sheetWriter{f: f, row: 1, styles: styles}

	for col, width := range map[string]float64{"A": 20, "B": 42, "C": 10, "D": 18, "E": 16, "F": 18} {
		if err := f.SetColWidth(certificateSheet, col, col, width); err != nil {
			return interfaces.RenderedDocument{}, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	r.addLogo(f, p.Company)
	steps := []func(entities.CertificatePayload) error{
		w.writeCompany,
		w.writeHeader,
		w.writeEquipment,
		w.writeTraceability,
		w.writePoints,
		w.writeSummary,
	}
	for _, step := range steps {
		if err := step(p); err != nil {
			return interfaces.RenderedDocument{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	r.logger.Debug("certificate rendered",
		zap.String("execution_id", p.ExecutionID),
		zap.Int("bytes", buf.Len()),
	)
	return interfaces.RenderedDocument{
		FileName:    fileName(p),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}

// addLogo places the company logo at the top right. A logo excelize cannot
// decode is skipped.
func (r *ExcelCertificateRenderer) addLogo(f *excelize.File, c entities.CertificateCompany) {
	ext, ok := logoExtensions[c.LogoContentType]
	if len(c.Logo) == 0 || !ok {
		return
	}
	err := f.AddPictureFromBytes(certificateSheet, "E1", &excelize.Picture{
		Extension: ext,
		File:      c.Logo,
		Format:    &excelize.GraphicOptions{LockAspectRatio: true, OffsetX: 4, OffsetY: 4},
	})
	if err != nil {
		r.logger.Warn("logo skipped", zap.Error(err))
	}
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	defs := []*excelize.Style{
		{Font: &excelize.Font{Bold: true, Size: 14}},
		{Font: &excelize.Font{Bold: true}},
		{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		},
		{Border: border, Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"}},
		{Font: &excelize.Font{Bold: true, Color: "#1E7B34"}},
		{Font: &excelize.Font{Bold: true, Color: "#B3261E"}},
		{Font: &excelize.Font{Italic: true, Color: "#B3261E"}},
	}
	var s sheetStyles
	targets := []*int{&s.title, &s.label, &s.header, &s.cell, &s.approved, &s.rejected, &s.warning}
	for i, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return sheetStyles{}, fmt.Errorf("failed to create style: %w", err)
		}
		*targets[i] = id
	}
	return s, nil
}

func (w *sheetWriter) cell(col int) string {
	name, _ := excelize.CoordinatesToCellName(col, w.row)
	return name
}

func (w *sheetWriter) set(col int, value any, style int) error {
	c := w.cell(col)
	if err := w.f.SetCellValue(certificateSheet, c, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", c, err)
	}
	if style > 0 {
		if err := w.f.SetCellStyle(certificateSheet, c, c, style); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", c, err)
		}
	}
	return nil
}

func (w *sheetWriter) line(label, value string) error {
	if err := w.set(1, label, w.styles.label); err != nil {
		return err
	}
	if err := w.set(2, value, 0); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) title(text string) error {
	w.row++
	if err := w.set(1, text, w.styles.title); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) writeCompany(p entities.CertificatePayload) error {
	if err := w.set(1, p.Company.Name, w.styles.title); err != nil {
		return err
	}
	w.row++
	for _, v := range []string{
		"Tax ID: " + p.Company.TaxID,
		p.Company.Address,
		p.Company.Phone + " | " + p.Company.Email,
	} {
		if err := w.set(1, v, 0); err != nil {
			return err
		}
		w.row++
	}
	return nil
}

func (w *sheetWriter) writeHeader(p entities.CertificatePayload) error {
	if err := w.title("Electrical Safety Test Certificate"); err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"Certificate", p.ExecutionID},
		{"Service order", p.OrderID},
		{"Test date", p.TestDate},
		{"Applicable norm", p.ApplicableNorm},
		{"Test profile", p.ProfileName},
		{"Classification", p.ProfileClassification},
	} {
		if err := w.line(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeEquipment(p entities.CertificatePayload) error {
	if err := w.title("Client and equipment"); err != nil {
		return err
	}
	e := p.Equipment
	for _, kv := range [][2]string{
		{"Client", p.Client.Name},
		{"Client tax ID", p.Client.TaxID},
		{"Address", strings.Join([]string{p.Client.Address, p.Client.City, p.Client.State}, ", ")},
		{"Equipment", e.Description},
		{"Technology", e.Technology},
		{"Manufacturer", e.Manufacturer},
		{"Model", e.Model},
		{"Serial number", e.SerialNumber},
		{"Asset tag", e.AssetTag},
		{"Location", e.Location},
		{"Risk class", e.RiskClass},
	} {
		if err := w.line(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeTraceability(p entities.CertificatePayload) error {
	if err := w.title("Measurement traceability"); err != nil {
		return err
	}
	for _, l := range p.Traceability.Lines {
		if err := w.line(l.Label, l.Value); err != nil {
			return err
		}
	}
	if p.Traceability.ExpiredAtTestDate {
		if err := w.set(1, "Standard calibration was expired on the test date.", w.styles.warning); err != nil {
			return err
		}
		w.row++
	}
	return nil
}

func (w *sheetWriter) writePoints(p entities.CertificatePayload) error {
	if err := w.title("Test results"); err != nil {
		return err
	}
	for col, h := range pointHeader {
		if err := w.set(col+1, h, w.styles.header); err != nil {
			return err
		}
	}
	w.row++

	for _, pt := range p.Points {
		if pt.Kind == string(entities.KindSection) {
			if err := w.set(1, pt.Name, w.styles.label); err != nil {
				return err
			}
			if err := w.f.MergeCell(certificateSheet, w.cell(1), fmt.Sprintf("F%d", w.row)); err != nil {
				return err
			}
			w.row++
			continue
		}
		values := []any{pt.Index, pt.Name, pt.Unit, pt.Criterion, pt.MeasuredValue, pt.Result}
		for col, v := range values {
			if err := w.set(col+1, v, w.styles.cell); err != nil {
				return err
			}
		}
		w.row++
	}
	return nil
}

func (w *sheetWriter) writeSummary(p entities.CertificatePayload) error {
	w.row++
	resultStyle := w.styles.approved
	if p.OverallResult == entities.OverallResultRejected {
		resultStyle = w.styles.rejected
	}
	if err := w.set(1, "Overall result", w.styles.label); err != nil {
		return err
	}
	if err := w.set(2, string(p.OverallResult), resultStyle); err != nil {
		return err
	}
	w.row++

	for _, kv := range [][2]string{
		{"Points", fmt.Sprintf("%d total, %d pending, %d failed", p.TotalPoints, p.PendingPoints, p.FailedPoints)},
		{"Notes", p.Notes},
		{"Technician", p.Technician.Name},
		{"Registration", p.Technician.Registration},
		{"Role", p.Technician.Role},
		{"Issued at", p.GeneratedAt.Format("02/01/2006 15:04 MST")},
	} {
		if err := w.line(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func fileName(p entities.CertificatePayload) string {
	return fmt.Sprintf("tse-certificate-%s-%s.xlsx", safeName(p.OrderID), safeName(p.ExecutionID))
}

func safeName(s string) string {
	if s == entities.Placeholder {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
