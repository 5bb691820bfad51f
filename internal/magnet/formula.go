package magnet

import (
	"errors"
	"fmt"
	"math"

	"github.com/handiism/magnet-calculator/internal/model"
)

const mmPerMeter = 1000

// Block returns the flux density of a rectangular block magnet.
//
// The two widths are averaged. All lengths stay in millimeters:
//
//	B = Br/π · atan(2H·√(L² + W² + 4H²) / (L·W))
//
// Returns ErrDivisionByZero (wrapped in *CalcError) when the length or
// the average width is zero.
func Block(remanenceT, heightMm, lengthMm, widthODMm, widthIDMm float64) (float64, error) {
	averageWidth := (widthODMm + widthIDMm) / 2
	if averageWidth == 0 || lengthMm == 0 {
		return 0, divisionByZero(model.GeometryBlock)
	}

	sqrtInner := lengthMm*lengthMm + averageWidth*averageWidth + 4*heightMm*heightMm
	numerator := 2 * heightMm * math.Sqrt(sqrtInner)
	denominator := lengthMm * averageWidth

	// Can still underflow to zero for tiny non-zero inputs.
	if denominator == 0 {
		return 0, divisionByZero(model.GeometryBlock)
	}

	return (remanenceT / math.Pi) * math.Atan(numerator/denominator), nil
}

// Ring returns the flux density of a ring magnet with outer diameter
// odMm and inner diameter idMm:
//
//	B = Br/2 · (H/√(Ro² + H²) − H/√(Ri² + H²))
//
// Lengths are converted to meters first. Equal diameters give exactly 0.
func Ring(remanenceT, heightMm, odMm, idMm float64) (float64, error) {
	heightM := heightMm / mmPerMeter
	rOuter := odMm / mmPerMeter / 2
	rInner := idMm / mmPerMeter / 2

	outerSq := rOuter*rOuter + heightM*heightM
	innerSq := rInner*rInner + heightM*heightM
	if outerSq == 0 || innerSq == 0 {
		return 0, divisionByZero(model.GeometryRing)
	}

	outerTerm := heightM / math.Sqrt(outerSq)
	innerTerm := heightM / math.Sqrt(innerSq)
	return (remanenceT / 2) * (outerTerm - innerTerm), nil
}

// Cylinder returns the flux density of a solid cylinder magnet:
//
//	B = Br/2 · H/√(R² + H²)
//
// Lengths are converted to meters first.
func Cylinder(remanenceT, heightMm, diameterMm float64) (float64, error) {
	heightM := heightMm / mmPerMeter
	radius := diameterMm / mmPerMeter / 2

	sq := radius*radius + heightM*heightM
	if sq == 0 {
		return 0, divisionByZero(model.GeometryCylinder)
	}

	return (remanenceT / 2) * (heightM / math.Sqrt(sq)), nil
}

// Calculate dispatches on the concrete parameter record.
func Calculate(p model.Params) model.Result {
	switch p := p.(type) {
	case model.BlockParams:
		return model.FromValue(Block(p.Remanence, p.Height, p.Length, p.WidthOD, p.WidthID))
	case model.RingParams:
		return model.FromValue(Ring(p.Remanence, p.Height, p.OD, p.ID))
	case model.CylinderParams:
		return model.FromValue(Cylinder(p.Remanence, p.Height, p.Diameter))
	case nil:
		return model.Err(errors.New("no magnet parameters"))
	default:
		return model.Err(fmt.Errorf("unsupported magnet parameters %T", p))
	}
}
