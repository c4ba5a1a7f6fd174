package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter definition")
	ErrProfileWithoutParams = errors.New("test profile has no parameters")
	ErrInvalidProfileName   = errors.New("invalid test profile name")
)

// ParameterDef is one row of a test profile template.
//
// The row is stored flat (kind/operator/limit columns); ResolveKind turns it into
// the closed ParameterKind variant used by the evaluation engine.
type ParameterDef struct {
	ID       string            `json:"id"`
	Kind     ParameterKindName `json:"kind"`
	Name     string            `json:"name"`
	Unit     string            `json:"unit,omitempty"`
	Operator string            `json:"operator,omitempty"`
	Limit    *float64          `json:"limit,omitempty"`
}

func (d ParameterDef) ResolveKind() (ParameterKind, error) {
	return BuildKind(d.Kind, d.Operator, d.Limit)
}

// TestProfile is a tenant-owned template of ordered parameters implementing a
// regulatory norm (e.g. IEC 60601-1 / NBR IEC 62353).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
type TestProfile struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenant_id"`
	Name           string         `json:"name"`
	ApplicableNorm string         `json:"applicable_norm"`
	Classification string         `json:"classification,omitempty"`
	Parameters     []ParameterDef `json:"parameters"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Validate checks the profile is usable as a template. Unknown operators are
// refused here, at authoring time, instead of surfacing during evaluation.
func (p TestProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProfileName
	}
	if len(p.Parameters) == 0 {
		return ErrProfileWithoutParams
	}
	for _, def := range p.Parameters {
		if strings.TrimSpace(def.Name) == "" {
			return ErrInvalidParameter
		}
		if _, err := def.ResolveKind(); err != nil {
			return err
		}
	}
	return nil
}
