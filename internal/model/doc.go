// Package model defines the value objects passed between the shell,
// the TUI and the formula engine of magnet-calculator.
//
// # Parameters
//
// Each magnet geometry has its own parameter record. They share the
// Remanence and Height fields by convention only; there is no common
// base type:
//
//	p := model.CylinderParams{Remanence: 1.2, Height: 5, Diameter: 10}
//
// Remanence is in Tesla, every length is in millimeters.
//
// # Result
//
// Result is a tagged success/failure value:
//
//	r := model.Ok(0.424264)
//	if r.IsOk() {
//	    fmt.Printf("%.6f T\n", r.Value())
//	}
//
//	r = model.Err(err)
//	fmt.Println(r.Err())
package model
