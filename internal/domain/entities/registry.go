package entities

// Registry entities are owned by the field-service application (equipment
// registry, clients, technicians, company settings). This service only reads
// them; an empty ID means the record was not found.

type Equipment struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	ClientID     string `json:"client_id"`
	TechnologyID string `json:"technology_id"`
	Description  string `json:"description"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	AssetTag     string `json:"asset_tag"`
	Location     string `json:"location"`
}

type Client struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// Technology is the equipment type/model family (e.g. "Electrosurgical unit").
type Technology struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	RiskClass string `json:"risk_class"`
}

type Technician struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Role         string `json:"role"`
	SignatureURL string `json:"signature_url"`
}

// TenantConfig is the company identity printed on certificates.
type TenantConfig struct {
	TenantID    string `json:"tenant_id"`
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoURL     string `json:"logo_url"`
}
