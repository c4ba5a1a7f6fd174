package entities

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder replaces any missing descriptive value in a certificate payload.
const Placeholder = "-"

const certificateDateLayout = "02/01/2006"

const (
	ResultLabelPending = "Pending"
	ResultLabelNA      = "N/A"
)

type CertificateEquipment struct {
	Description        string `json:"description"`
	Manufacturer       string `json:"manufacturer"`
	Model              string `json:"model"`
	SerialNumber       string `json:"serial_number"`
	AssetTag           string `json:"asset_tag"`
	Location           string `json:"location"`
	Technology         string `json:"technology"`
	TechnologyCategory string `json:"technology_category"`
	RiskClass          string `json:"risk_class"`
}

type CertificateClient struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type CertificateTechnician struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Role         string `json:"role"`
	SignatureURL string `json:"signature_url"`
}

type CertificateCompany struct {
	Name            string `json:"name"`
	TaxID           string `json:"tax_id"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	LogoURL         string `json:"logo_url"`
	Logo            []byte `json:"logo,omitempty"`
	LogoContentType string `json:"logo_content_type"`
}

type TraceabilityLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CertificateTraceability struct {
	Mode              SnapshotMode       `json:"mode"`
	Lines             []TraceabilityLine `json:"lines"`
	ExpiredAtTestDate bool               `json:"expired_at_test_date"`
	Snapshot          StandardSnapshot   `json:"snapshot"`
}

type CertificatePointRow struct {
	Index         int    `json:"index"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	Criterion     string `json:"criterion"`
	MeasuredValue string `json:"measured_value"`
	Result        string `json:"result"`
}

// CertificatePayload is the fully joined, renderer-ready certificate data.
// Every string is populated (Placeholder when unknown); the renderer does no
// further lookups.
type CertificatePayload struct {
	ExecutionID           string                  `json:"execution_id"`
	OrderID               string                  `json:"order_id"`
	TenantID              string                  `json:"tenant_id"`
	TestDate              string                  `json:"test_date"`
	ApplicableNorm        string                  `json:"applicable_norm"`
	ProfileName           string                  `json:"profile_name"`
	ProfileClassification string                  `json:"profile_classification"`
	OverallResult         OverallResult           `json:"overall_result"`
	Notes                 string                  `json:"notes"`
	Equipment             CertificateEquipment    `json:"equipment"`
	Client                CertificateClient       `json:"client"`
	Technician            CertificateTechnician   `json:"technician"`
	Company               CertificateCompany      `json:"company"`
	Traceability          CertificateTraceability `json:"traceability"`
	Points                []CertificatePointRow   `json:"points"`
	TotalPoints           int                     `json:"total_points"`
	PendingPoints         int                     `json:"pending_points"`
	FailedPoints          int                     `json:"failed_points"`
	GeneratedAt           time.Time               `json:"generated_at"`
}

// CertificateSources groups everything the assembler resolved. Zero-valued
// entities are treated as missing.
type CertificateSources struct {
	Execution    TestExecution
	Profile      TestProfile
	Equipment    Equipment
	Client       Client
	Technology   Technology
	Technician   Technician
	TenantConfig TenantConfig
	Logo         []byte
	LogoType     string
	GeneratedAt  time.Time
}

func BuildCertificatePayload(src CertificateSources) CertificatePayload {
	e := src.Execution
	norm := e.ApplicableNorm
	if strings.TrimSpace(norm) == "" {
		norm = src.Profile.ApplicableNorm
	}

	p := CertificatePayload{
		ExecutionID:           orPlaceholder(e.ID),
		OrderID:               orPlaceholder(e.OrderID),
		TenantID:              orPlaceholder(e.TenantID),
		TestDate:              formatDate(&e.TestDate),
		ApplicableNorm:        orPlaceholder(norm),
		ProfileName:           orPlaceholder(src.Profile.Name),
		ProfileClassification: orPlaceholder(src.Profile.Classification),
		OverallResult:         e.OverallResult,
		Notes:                 orPlaceholder(e.Notes),
		Equipment: CertificateEquipment{
			Description:        orPlaceholder(src.Equipment.Description),
			Manufacturer:       orPlaceholder(src.Equipment.Manufacturer),
			Model:              orPlaceholder(src.Equipment.Model),
			SerialNumber:       orPlaceholder(src.Equipment.SerialNumber),
			AssetTag:           orPlaceholder(src.Equipment.AssetTag),
			Location:           orPlaceholder(src.Equipment.Location),
			Technology:         orPlaceholder(src.Technology.Name),
			TechnologyCategory: orPlaceholder(src.Technology.Category),
			RiskClass:          orPlaceholder(src.Technology.RiskClass),
		},
		Client: CertificateClient{
			Name:    orPlaceholder(src.Client.Name),
			TaxID:   orPlaceholder(src.Client.TaxID),
			Address: orPlaceholder(src.Client.Address),
			City:    orPlaceholder(src.Client.City),
			State:   orPlaceholder(src.Client.State),
		},
		Technician: CertificateTechnician{
			Name:         orPlaceholder(src.Technician.Name),
			Registration: orPlaceholder(src.Technician.Registration),
			Role:         orPlaceholder(src.Technician.Role),
			SignatureURL: orPlaceholder(src.Technician.SignatureURL),
		},
		Company: CertificateCompany{
			Name:            orPlaceholder(src.TenantConfig.CompanyName),
			TaxID:           orPlaceholder(src.TenantConfig.TaxID),
			Address:         orPlaceholder(src.TenantConfig.Address),
			Phone:           orPlaceholder(src.TenantConfig.Phone),
			Email:           orPlaceholder(src.TenantConfig.Email),
			LogoURL:         orPlaceholder(src.TenantConfig.LogoURL),
			Logo:            src.Logo,
			LogoContentType: orPlaceholder(src.LogoType),
		},
		Traceability: buildTraceability(e.StandardSnapshot, e.TestDate),
		TotalPoints:  len(e.Points),
		GeneratedAt:  src.GeneratedAt.UTC(),
	}
	if p.OverallResult == "" {
		p.OverallResult = AggregateResult(e.Points)
	}

	p.Points = make([]CertificatePointRow, 0, len(e.Points))
	for i, pt := range e.Points {
		row := CertificatePointRow{
			Index:         i + 1,
			Kind:          string(pt.Kind),
			Name:          orPlaceholder(pt.Name),
			Unit:          orPlaceholder(pt.Unit),
			Criterion:     criterion(pt),
			MeasuredValue: orPlaceholder(pt.MeasuredValue),
			Result:        resultLabel(pt),
		}
		if pt.IsPending() {
			p.PendingPoints++
		}
		if pt.IsFailing() {
			p.FailedPoints++
		}
		p.Points = append(p.Points, row)
	}
	return p
}

func buildTraceability(s StandardSnapshot, testDate time.Time) CertificateTraceability {
	t := CertificateTraceability{Mode: s.Mode, Snapshot: s.Clone()}
	switch s.Mode {
	case SnapshotModeStructured:
		t.Lines = []TraceabilityLine{
			{Label: "Standard", Value: orPlaceholder(s.Name)},
			{Label: "Manufacturer", Value: orPlaceholder(s.Manufacturer)},
			{Label: "Model", Value: orPlaceholder(s.Model)},
			{Label: "Serial number", Value: orPlaceholder(s.SerialNumber)},
			{Label: "Calibration laboratory", Value: orPlaceholder(s.CalibrationLab)},
			{Label: "Certificate number", Value: orPlaceholder(s.CertificateNumber)},
			{Label: "Calibration date", Value: formatDate(s.CalibrationDate)},
			{Label: "Valid until", Value: formatDate(s.ExpiryDate)},
		}
		t.ExpiredAtTestDate = s.ExpiredAt(testDate)
	case SnapshotModeFreeText:
		t.Lines = []TraceabilityLine{{Label: "Standard", Value: orPlaceholder(s.Description)}}
	default:
		t.Lines = []TraceabilityLine{{Label: "Standard", Value: Placeholder}}
	}
	return t
}

func criterion(p TestPoint) string {
	k, err := p.ResolveKind()
	if err != nil {
		return Placeholder
	}
	m, ok := k.(MeasurementKind)
	if !ok {
		return Placeholder
	}
	c := string(m.Operator) + " " + strconv.FormatFloat(m.Limit, 'f', -1, 64)
	if u := strings.TrimSpace(p.Unit); u != "" {
		c += " " + u
	}
	return c
}

func resultLabel(p TestPoint) string {
	switch {
	case p.IsSection():
		return ResultLabelNA
	case p.Conformity == nil:
		return ResultLabelPending
	case *p.Conformity:
		return LabelConforming
	default:
		return LabelNonConforming
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return t.UTC().Format(certificateDateLayout)
}

func orPlaceholder(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return Placeholder
}
