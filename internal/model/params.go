package model

// Geometry identifies one of the supported magnet shapes.
type Geometry int

const (
	// GeometryBlock is a rectangular prism magnet.
	GeometryBlock Geometry = iota + 1

	// GeometryRing is an annular (ring) magnet.
	GeometryRing

	// GeometryCylinder is a solid cylindrical magnet.
	GeometryCylinder
)

// Geometries lists the shapes in menu order.
var Geometries = []Geometry{GeometryBlock, GeometryRing, GeometryCylinder}

// String returns the name used in menus and headings.
//
// Returns:
//   - "Block" for GeometryBlock
//   - "Ring" for GeometryRing
//   - "Cylinder" for GeometryCylinder
func (g Geometry) String() string {
	switch g {
	case GeometryBlock:
		return "Block"
	case GeometryRing:
		return "Ring"
	case GeometryCylinder:
		return "Cylinder"
	default:
		return "Unknown"
	}
}

// Valid reports whether g is one of the supported shapes.
func (g Geometry) Valid() bool {
	return g >= GeometryBlock && g <= GeometryCylinder
}

// Params is implemented by the three parameter records.
type Params interface {
	Geometry() Geometry
}

// BlockParams holds the inputs of the block magnet approximation.
//
// WidthOD and WidthID are averaged by the formula, so a plain
// rectangular block uses the same value for both.
type BlockParams struct {
	// Remanence is the material remanence Br in Tesla.
	Remanence float64

	// Height is the magnet height H in millimeters.
	Height float64

	// Length is the magnet length L in millimeters.
	Length float64

	// WidthOD is the first width W1 in millimeters.
	WidthOD float64

	// WidthID is the second width W2 in millimeters.
	WidthID float64
}

// Geometry returns GeometryBlock.
func (BlockParams) Geometry() Geometry { return GeometryBlock }

// RingParams holds the inputs of the ring magnet approximation.
type RingParams struct {
	Remanence float64
	Height    float64
	OD        float64
	ID        float64
}

// Geometry returns GeometryRing.
func (RingParams) Geometry() Geometry { return GeometryRing }

// CylinderParams holds the inputs of the cylinder magnet approximation.
type CylinderParams struct {
	Remanence float64
	Height    float64
	Diameter  float64
}

// Geometry returns GeometryCylinder.
func (CylinderParams) Geometry() Geometry { return GeometryCylinder }
