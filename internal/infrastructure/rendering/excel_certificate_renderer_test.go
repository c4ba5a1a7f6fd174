package rendering

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"engclin_tse/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePayload() entities.CertificatePayload {
	return entities.CertificatePayload{
		ExecutionID:    "0190a1b2-0000-7000-8000-000000000001",
		OrderID:        "OS 2026/15",
		TenantID:       "tenant-a",
		TestDate:       "10/03/2026",
		ApplicableNorm: "IEC 62353",
		ProfileName:    "Class I Type BF",
		OverallResult:  entities.OverallResultRejected,
		Notes:          entities.Placeholder,
		Company:        entities.CertificateCompany{Name: "EngClin Ltda", TaxID: "00.000.000/0001-00"},
		Client:         entities.CertificateClient{Name: "Hospital Santa Luzia"},
		Equipment:      entities.CertificateEquipment{Description: "Electrosurgical unit", SerialNumber: "SN-77"},
		Technician:     entities.CertificateTechnician{Name: "Ana Souza"},
		Traceability: entities.CertificateTraceability{
			Mode:              entities.SnapshotModeStructured,
			Lines:             []entities.TraceabilityLine{{Label: "Certificate number", Value: "CAL-42"}},
			ExpiredAtTestDate: true,
		},
		Points: []entities.CertificatePointRow{
			{Index: 1, Kind: string(entities.KindSection), Name: "Visual inspection", Result: entities.ResultLabelNA},
			{Index: 2, Kind: string(entities.KindMeasurement), Name: "Earth leakage", Unit: "mA", Criterion: "<= 0.5 mA", MeasuredValue: "0.7", Result: entities.LabelNonConforming},
		},
		TotalPoints:  2,
		FailedPoints: 1,
		GeneratedAt:  time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}
}

func allText(t *testing.T, content []byte) string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{certificateSheet}, f.GetSheetList())
	rows, err := f.GetRows(certificateSheet)
	require.NoError(t, err)

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "|"))
		b.WriteString("\n")
	}
	return b.String()
}

func TestExcelCertificateRenderer_Render(t *testing.T) {
	r := NewExcelCertificateRenderer(nil)

	t.Run("renders payload content", func(t *testing.T) {
		doc, err := r.Render(context.Background(), samplePayload())
		require.NoError(t, err)
		assert.Equal(t, xlsxContentType, doc.ContentType)
		assert.Equal(t, "tse-certificate-OS_2026_15-0190a1b2-0000-7000-8000-000000000001.xlsx", doc.FileName)

		text := allText(t, doc.Content)
		for _, want := range []string{
			"EngClin Ltda",
			"Hospital Santa Luzia",
			"CAL-42",
			"Earth leakage",
			"<= 0.5 mA",
			entities.LabelNonConforming,
			string(entities.OverallResultRejected),
			"Standard calibration was expired on the test date.",
			"Ana Souza",
		} {
			assert.Contains(t, text, want)
		}
	})

	t.Run("skips undecodable logo", func(t *testing.T) {
		p := samplePayload()
		p.Company.Logo = []byte("not an image")
		p.Company.LogoContentType = "image/png"

		doc, err := r.Render(context.Background(), p)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Content)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Render(ctx, samplePayload())
		assert.ErrorIs(t, err, context.Canceled)
	})
}
