// Package magnet implements closed-form approximations of the on-axis
// flux density of permanent magnets.
//
// Three geometries are supported:
//
//	b, err := magnet.Block(1.2, 3, 10, 10, 6)   // rectangular block
//	b, err := magnet.Ring(1.2, 5, 20, 10)       // ring / annulus
//	b, err := magnet.Cylinder(1.2, 5, 10)       // solid cylinder
//
// Remanence is given in Tesla and every dimension in millimeters. The
// block formula works directly in millimeters; the ring and cylinder
// formulas convert to meters first. Both choices follow the source
// approximations and must not be unified.
//
// # Degenerate Inputs
//
// When a denominator vanishes the functions return a *CalcError that
// wraps ErrDivisionByZero:
//
//	_, err := magnet.Cylinder(1.0, 0, 0)
//	if errors.Is(err, magnet.ErrDivisionByZero) {
//	    // zero height and zero diameter
//	}
//
// Other non-finite results (for example from infinite inputs) are
// returned as-is.
package magnet
