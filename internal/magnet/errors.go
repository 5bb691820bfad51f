package magnet

import (
	"errors"
	"fmt"

	"github.com/handiism/magnet-calculator/internal/model"
)

// ErrDivisionByZero reports a degenerate geometry whose formula
// denominator is zero.
var ErrDivisionByZero = errors.New("division by zero")

// CalcError ties a calculation failure to the geometry it came from.
type CalcError struct {
	Geometry model.Geometry
	Err      error
}

// Error returns the user-facing message, e.g.
// "Division by zero in ring_magnet calculation."
func (e *CalcError) Error() string {
	if errors.Is(e.Err, ErrDivisionByZero) {
		return fmt.Sprintf("Division by zero in %s calculation.", functionName(e.Geometry))
	}
	return fmt.Sprintf("%s calculation failed: %v", functionName(e.Geometry), e.Err)
}

func (e *CalcError) Unwrap() error {
	return e.Err
}

func divisionByZero(g model.Geometry) error {
	return &CalcError{Geometry: g, Err: ErrDivisionByZero}
}

func functionName(g model.Geometry) string {
	switch g {
	case model.GeometryBlock:
		return "block_magnet"
	case model.GeometryRing:
		return "ring_magnet"
	case model.GeometryCylinder:
		return "cylinder_magnet"
	default:
		return "magnet"
	}
}
