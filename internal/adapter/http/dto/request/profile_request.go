package request

import (
	"engclin_tse/internal/domain/entities"
)

type ParameterRequest struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Unit     string   `json:"unit"`
	Operator string   `json:"operator"`
	Limit    *float64 `json:"limit"`
}

// ProfileRequest creates or replaces a test profile. Parameters keep the
// order in which they are sent.
type ProfileRequest struct {
	Name           string             `json:"name" binding:"required"`
	ApplicableNorm string             `json:"applicable_norm"`
	Classification string             `json:"classification"`
	Parameters     []ParameterRequest `json:"parameters" binding:"required,min=1,dive"`
}

func (r ProfileRequest) ToEntity(id string) entities.TestProfile {
	params := make([]entities.ParameterDef, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		params = append(params, entities.ParameterDef{
			ID:       p.ID,
			Kind:     entities.ParameterKindName(p.Kind),
			Name:     p.Name,
			Unit:     p.Unit,
			Operator: p.Operator,
			Limit:    p.Limit,
		})
	}
	return entities.TestProfile{
		ID:             id,
		Name:           r.Name,
		ApplicableNorm: r.ApplicableNorm,
		Classification: r.Classification,
		Parameters:     params,
	}
}
