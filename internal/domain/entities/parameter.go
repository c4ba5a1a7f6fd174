package entities

import (
	"errors"
	"strings"
)

var (
	ErrUnknownOperator      = errors.New("unknown comparison operator")
	ErrUnknownParameterKind = errors.New("unknown parameter kind")
)

// ParameterKindName is the storage/wire representation of a ParameterKind.
type ParameterKindName string

const (
	KindSection     ParameterKindName = "section"
	KindBoolean     ParameterKindName = "boolean"
	KindMeasurement ParameterKindName = "measurement"
)

// Operator is the comparison applied between a measured value and the limit.
type Operator string

const (
	OperatorLessOrEqual    Operator = "<="
	OperatorGreaterOrEqual Operator = ">="
)

func ParseOperator(raw string) (Operator, error) {
	switch op := Operator(strings.TrimSpace(raw)); op {
	case OperatorLessOrEqual, OperatorGreaterOrEqual:
		return op, nil
	default:
		return "", ErrUnknownOperator
	}
}

// Compare reports whether value satisfies the operator against limit.
func (o Operator) Compare(value, limit float64) (bool, error) {
	switch o {
	case OperatorLessOrEqual:
		return value <= limit, nil
	case OperatorGreaterOrEqual:
		return value >= limit, nil
	default:
		return false, ErrUnknownOperator
	}
}

// ParameterKind is the closed set of template row kinds.
//
// Implementations:
//   - SectionKind: a header row, never evaluated
//   - BooleanKind: conformity chosen directly by the technician
//   - MeasurementKind: numeric value compared against Limit with Operator
type ParameterKind interface {
	Name() ParameterKindName
	isParameterKind()
}

type SectionKind struct{}

type BooleanKind struct{}

type MeasurementKind struct {
	Operator Operator
	Limit    float64
}

func (SectionKind) Name() ParameterKindName     { return KindSection }
func (BooleanKind) Name() ParameterKindName     { return KindBoolean }
func (MeasurementKind) Name() ParameterKindName { return KindMeasurement }

func (SectionKind) isParameterKind()     {}
func (BooleanKind) isParameterKind()     {}
func (MeasurementKind) isParameterKind() {}

// invalidKind stands in for a stored row that no longer resolves; it is
// evaluated as pending.
type invalidKind struct{ err error }

func (invalidKind) Name() ParameterKindName { return "" }
func (invalidKind) isParameterKind()        {}

// BuildKind converts the flat storage columns into a ParameterKind.
// operator and limit are ignored for non-measurement kinds.
func BuildKind(kind ParameterKindName, operator string, limit *float64) (ParameterKind, error) {
	switch ParameterKindName(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case KindSection:
		return SectionKind{}, nil
	case KindBoolean:
		return BooleanKind{}, nil
	case KindMeasurement:
		op, err := ParseOperator(operator)
		if err != nil {
			return nil, err
		}
		if limit == nil {
			return nil, ErrInvalidParameter
		}
		return MeasurementKind{Operator: op, Limit: *limit}, nil
	default:
		return nil, ErrUnknownParameterKind
	}
}
