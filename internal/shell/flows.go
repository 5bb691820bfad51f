package shell

import (
	"fmt"

	"github.com/handiism/magnet-calculator/internal/model"
)

// Field is one numeric input of a flow.
type Field struct {
	// Label is the short name shown by the TUI, e.g. "Height (H) [mm]".
	Label string

	// Prompt is the line-shell prompt, e.g. "Enter Height (H) in mm: ".
	Prompt string
}

// Flow describes how to collect the parameters of one geometry.
type Flow struct {
	Geometry model.Geometry
	Fields   []Field

	// Build turns the collected values, in Fields order, into the
	// parameter record.
	Build func(values []float64) model.Params
}

// Heading returns the line printed when the flow starts,
// e.g. "--- Ring Magnet Calculator ---".
func (f Flow) Heading() string {
	return fmt.Sprintf("--- %s Magnet Calculator ---", f.Geometry)
}

// MenuLabel returns the menu entry text, e.g. "Calculate for Ring Magnet".
func (f Flow) MenuLabel() string {
	return fmt.Sprintf("Calculate for %s Magnet", f.Geometry)
}

var (
	remanenceField = Field{Label: "Remanence (Br) [T]", Prompt: "Enter Remanence (Br) in Tesla: "}
	heightField    = Field{Label: "Height (H) [mm]", Prompt: "Enter Height (H) in mm: "}
)

var flows = map[model.Geometry]Flow{
	model.GeometryBlock: {
		Geometry: model.GeometryBlock,
		Fields: []Field{
			remanenceField,
			heightField,
			{Label: "Length (L) [mm]", Prompt: "Enter Length (L) in mm: "},
			{Label: "First Width (W1_OD) [mm]", Prompt: "Enter First Width (W1_OD) in mm: "},
			{Label: "Second Width (W2_ID) [mm]", Prompt: "Enter Second Width (W2_ID) in mm: "},
		},
		Build: func(v []float64) model.Params {
			return model.BlockParams{Remanence: v[0], Height: v[1], Length: v[2], WidthOD: v[3], WidthID: v[4]}
		},
	},
	model.GeometryRing: {
		Geometry: model.GeometryRing,
		Fields: []Field{
			remanenceField,
			heightField,
			{Label: "Outer Diameter (OD) [mm]", Prompt: "Enter Outer Diameter (OD) in mm: "},
			{Label: "Inner Diameter (ID) [mm]", Prompt: "Enter Inner Diameter (ID) in mm: "},
		},
		Build: func(v []float64) model.Params {
			return model.RingParams{Remanence: v[0], Height: v[1], OD: v[2], ID: v[3]}
		},
	},
	model.GeometryCylinder: {
		Geometry: model.GeometryCylinder,
		Fields: []Field{
			remanenceField,
			heightField,
			{Label: "Diameter (D) [mm]", Prompt: "Enter Diameter (D) in mm: "},
		},
		Build: func(v []float64) model.Params {
			return model.CylinderParams{Remanence: v[0], Height: v[1], Diameter: v[2]}
		},
	},
}

// Flows returns the flows in menu order, which is model.Geometries order.
func Flows() []Flow {
	out := make([]Flow, 0, len(model.Geometries))
	for _, g := range model.Geometries {
		if f, ok := FlowFor(g); ok {
			out = append(out, f)
		}
	}
	return out
}

// FlowFor returns the flow of geometry g.
func FlowFor(g model.Geometry) (Flow, bool) {
	if !g.Valid() {
		return Flow{}, false
	}
	f, ok := flows[g]
	return f, ok
}
