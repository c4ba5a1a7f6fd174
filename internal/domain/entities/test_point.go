package entities

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrMalformedMeasurement = errors.New("malformed measured value")

const (
	LabelConforming    = "Conforming"
	LabelNonConforming = "Non-conforming"
)

// TestPoint is the per-execution instance of a ParameterDef.
//
// Conformity is tri-state: nil means pending (not yet measured/decided).
type TestPoint struct {
	ParameterID   string            `json:"parameter_id"`
	Kind          ParameterKindName `json:"kind"`
	Name          string            `json:"name"`
	Unit          string            `json:"unit,omitempty"`
	Operator      string            `json:"operator,omitempty"`
	Limit         *float64          `json:"limit,omitempty"`
	MeasuredValue string            `json:"measured_value"`
	Conformity    *bool             `json:"conformity"`
}

func (p TestPoint) ResolveKind() (ParameterKind, error) {
	return BuildKind(p.Kind, p.Operator, p.Limit)
}

func (p TestPoint) IsSection() bool {
	_, ok := p.variant().(SectionKind)
	return ok
}

func (p TestPoint) IsPending() bool {
	return !p.IsSection() && p.Conformity == nil
}

func (p TestPoint) IsFailing() bool {
	return !p.IsSection() && p.Conformity != nil && !*p.Conformity
}

// variant returns the resolved kind. A row that cannot be resolved (unknown
// kind, unknown operator, missing limit) yields invalidKind carrying the cause.
func (p TestPoint) variant() ParameterKind {
	k, err := p.ResolveKind()
	if err != nil {
		return invalidKind{err: err}
	}
	return k
}

func (p TestPoint) Clone() TestPoint {
	out := p
	out.Limit = cloneFloat(p.Limit)
	out.Conformity = cloneBool(p.Conformity)
	return out
}

// NewTestPoint instantiates a point from its definition: values empty,
// conformity pending, except sections which start (and stay) conforming.
func NewTestPoint(def ParameterDef) TestPoint {
	p := TestPoint{
		ParameterID: def.ID,
		Kind:        def.Kind,
		Name:        def.Name,
		Unit:        def.Unit,
		Operator:    def.Operator,
		Limit:       cloneFloat(def.Limit),
	}
	if p.IsSection() {
		p.Conformity = boolPtr(true)
	}
	return p
}

// EvaluatePoint recomputes the conformity of a single point.
//
// It never fails hard: a malformed measured value or an unknown operator
// leaves the point pending and is reported through the returned error.
func EvaluatePoint(p TestPoint) (TestPoint, error) {
	out := p.Clone()
	switch k := out.variant().(type) {
	case SectionKind:
		out.Conformity = boolPtr(true)
		return out, nil
	case BooleanKind:
		// conformity is the technician's explicit choice
		return out, nil
	case MeasurementKind:
		raw := strings.TrimSpace(out.MeasuredValue)
		if raw == "" {
			out.Conformity = nil
			return out, nil
		}
		value, err := ParseMeasurement(raw)
		if err != nil {
			out.Conformity = nil
			return out, err
		}
		ok, err := k.Operator.Compare(value, k.Limit)
		if err != nil {
			out.Conformity = nil
			return out, err
		}
		out.Conformity = boolPtr(ok)
		return out, nil
	case invalidKind:
		out.Conformity = nil
		return out, k.err
	default:
		out.Conformity = nil
		return out, ErrUnknownParameterKind
	}
}

// SetMeasuredValue stores the raw value typed by the technician and
// re-evaluates the point.
func SetMeasuredValue(p TestPoint, raw string) (TestPoint, error) {
	out := p.Clone()
	if out.IsSection() {
		return out, nil
	}
	if _, isBool := out.variant().(BooleanKind); isBool {
		return out, ErrInvalidParameter
	}
	out.MeasuredValue = raw
	return EvaluatePoint(out)
}

// SetBooleanChoice records the technician's conforming/non-conforming choice
// on a boolean point. The measured value gets a display label so boolean and
// measurement rows render alike.
func SetBooleanChoice(p TestPoint, conforming bool) (TestPoint, error) {
	out := p.Clone()
	if _, isBool := out.variant().(BooleanKind); !isBool {
		return out, ErrInvalidParameter
	}
	out.Conformity = boolPtr(conforming)
	if conforming {
		out.MeasuredValue = LabelConforming
	} else {
		out.MeasuredValue = LabelNonConforming
	}
	return out, nil
}

// ParseMeasurement accepts both "0.05" and the decimal comma form "0,05".
func ParseMeasurement(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedMeasurement
	}
	return v, nil
}

// InstantiatePoints expands a profile into one point per parameter, in
// definition order.
func InstantiatePoints(profile TestProfile) []TestPoint {
	points := make([]TestPoint, 0, len(profile.Parameters))
	for _, def := range profile.Parameters {
		points = append(points, NewTestPoint(def))
	}
	return points
}

func boolPtr(v bool) *bool { return &v }

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
