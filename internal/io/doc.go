// Package ioutils provides the line-oriented input/output capabilities
// used by the interactive shell, plus small file helpers.
//
// # Line I/O
//
// The shell never touches os.Stdin or os.Stdout directly. It is handed
// a LineReader and a LineWriter:
//
//	r := ioutils.NewScanReader(os.Stdin)
//	w := ioutils.NewStreamWriter(os.Stdout)
//
//	w.Write("Enter your choice (1-3): ")
//	line, err := r.ReadLine()
//	if errors.Is(err, io.EOF) {
//	    // input closed
//	}
//
// Tests use a ScriptReader instead, which replays fixed lines:
//
//	r := ioutils.NewScriptReader("1", "abc", "1.2")
//
// # File Helpers
//
//	err := ioutils.EnsureDir("/path/to/dir")
//	err := ioutils.WriteFile("/path/to/dir/settings.json", data)
package ioutils
