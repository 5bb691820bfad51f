// Package shell implements the interactive line-oriented calculator.
//
// A Shell is threaded with a read-line and a write-line capability
// rather than the process-wide standard streams, so it can be driven by
// a script in tests:
//
//	sh := shell.New(
//	    ioutils.NewScanReader(os.Stdin),
//	    ioutils.NewStreamWriter(os.Stdout),
//	    shell.WithExitOption(true),
//	)
//	if err := sh.Run(ctx); err != nil {
//	    // read/write failure or cancelled context
//	}
//
// # States
//
// The shell alternates between the menu and one of three flows:
//
//	MenuPrompt -> {BlockFlow, RingFlow, CylinderFlow} -> MenuPrompt
//
// Each flow asks for its numeric fields in a fixed order, runs the
// matching magnet formula and prints the result framed by separator
// lines. Run returns nil when the input is exhausted or, if enabled,
// when the user picks the exit entry.
//
// # Numeric Input
//
// By default numbers are parsed leniently: the longest numeric prefix
// of the line is used, so "12abc" reads as 12. WithStrictNumbers makes
// any trailing text a parse failure.
package shell
