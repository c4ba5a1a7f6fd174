package response

import (
	"time"

	"engclin_tse/internal/domain/entities"
)

type ParameterResponse struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit,omitempty"`
	Operator string   `json:"operator,omitempty"`
	Limit    *float64 `json:"limit,omitempty"`
}

type ProfileResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	ApplicableNorm string              `json:"applicable_norm"`
	Classification string              `json:"classification,omitempty"`
	Parameters     []ParameterResponse `json:"parameters"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func FromProfile(p entities.TestProfile) ProfileResponse {
	params := make([]ParameterResponse, 0, len(p.Parameters))
	for _, d := range p.Parameters {
		params = append(params, ParameterResponse{
			ID:       d.ID,
			Kind:     string(d.Kind),
			Name:     d.Name,
			Unit:     d.Unit,
			Operator: d.Operator,
			Limit:    d.Limit,
		})
	}
	return ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		ApplicableNorm: p.ApplicableNorm,
		Classification: p.Classification,
		Parameters:     params,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProfiles(ps []entities.TestProfile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProfile(p))
	}
	return out
}
