package ioutils

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader supplies one line of user input at a time.
//
// ReadLine returns the line without its terminator. It returns io.EOF
// once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter receives shell output.
type LineWriter interface {
	// Write emits s as-is. Used for prompts.
	Write(s string) error

	// WriteLine emits s followed by a newline.
	WriteLine(s string) error
}

// ScanReader reads lines from an io.Reader. Lines may be of any
// length.
type ScanReader struct {
	r *bufio.Reader
}

// NewScanReader creates a LineReader over r. Both "\n" and "\r\n"
// line endings are accepted, and a final line without a terminator is
// still returned.
func NewScanReader(r io.Reader) *ScanReader {
	return &ScanReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line, or io.EOF when r is exhausted.
// Read failures of the underlying reader are returned unchanged.
func (s *ScanReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// StreamWriter writes shell output to an io.Writer.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a LineWriter over w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Write emits str without a trailing newline.
func (s *StreamWriter) Write(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// WriteLine emits str followed by "\n".
func (s *StreamWriter) WriteLine(str string) error {
	_, err := io.WriteString(s.w, str+"\n")
	return err
}

// ScriptReader replays a fixed sequence of lines, then returns io.EOF.
//
// It stands in for a terminal in tests:
//
//	r := NewScriptReader("2", "1.2", "5", "20", "10")
type ScriptReader struct {
	lines []string
	next  int
}

// NewScriptReader creates a ScriptReader over lines.
func NewScriptReader(lines ...string) *ScriptReader {
	return &ScriptReader{lines: lines}
}

// ReadLine returns the next scripted line.
func (s *ScriptReader) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Remaining reports how many scripted lines have not been read.
func (s *ScriptReader) Remaining() int {
	return len(s.lines) - s.next
}
