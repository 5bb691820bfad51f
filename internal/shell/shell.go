package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/handiism/magnet-calculator/internal/config"
	ioutils "github.com/handiism/magnet-calculator/internal/io"
	"github.com/handiism/magnet-calculator/internal/magnet"
	"github.com/handiism/magnet-calculator/internal/model"
)

// Messages printed by the shell.
const (
	MenuTitle      = "===== Magnet Calculator Menu ====="
	InvalidNumber  = "Invalid input. Please enter a numeric value."
	exitMenuLabel  = "Exit"
	exitMenuChoice = "4"
)

// Shell is the interactive menu loop. It holds no state between
// calculations.
type Shell struct {
	in     ioutils.LineReader
	out    ioutils.LineWriter
	parse  ParseFunc
	exit   bool
	logger *zap.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithStrictNumbers rejects numeric input with trailing text.
func WithStrictNumbers(strict bool) Option {
	return func(s *Shell) {
		if strict {
			s.parse = ParseFloatStrict
		} else {
			s.parse = ParseFloat
		}
	}
}

// WithExitOption adds a "4. Exit" menu entry.
func WithExitOption(enabled bool) Option {
	return func(s *Shell) {
		s.exit = enabled
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// OptionsFromSettings converts settings to shell options.
func OptionsFromSettings(settings *config.Settings) []Option {
	return []Option{
		WithStrictNumbers(settings.StrictNumericInput),
		WithExitOption(settings.ShowExitOption),
	}
}

// New creates a Shell reading from in and writing to out.
func New(in ioutils.LineReader, out ioutils.LineWriter, opts ...Option) *Shell {
	s := &Shell{
		in:     in,
		out:    out,
		parse:  ParseFloat,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the input is exhausted, the exit entry is
// chosen or ctx is cancelled. Exhausted input is a clean exit and
// returns nil.
func (s *Shell) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed")
		return nil
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.showMenu(); err != nil {
			return err
		}

		choice, err := s.readLine(s.choicePrompt())
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		s.logger.Debug("menu choice", zap.String("choice", choice))

		if s.exit && choice == exitMenuChoice {
			s.logger.Debug("exit chosen")
			return nil
		}

		flow, ok := s.flowForChoice(choice)
		if !ok {
			if err := s.out.WriteLine(s.invalidChoice()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		}

		if err := s.runFlow(ctx, flow); err != nil {
			return err
		}
	}
}

func (s *Shell) showMenu() error {
	lines := []string{"", MenuTitle}
	for i, f := range Flows() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, f.MenuLabel()))
	}
	if s.exit {
		lines = append(lines, fmt.Sprintf("%s. %s", exitMenuChoice, exitMenuLabel))
	}
	return s.writeLines(lines...)
}

func (s *Shell) choicePrompt() string {
	return fmt.Sprintf("Enter your choice (1-%d): ", s.choiceCount())
}

func (s *Shell) invalidChoice() string {
	return fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d", s.choiceCount())
}

func (s *Shell) choiceCount() int {
	if s.exit {
		return len(model.Geometries) + 1
	}
	return len(model.Geometries)
}

func (s *Shell) flowForChoice(choice string) (Flow, bool) {
	for i, f := range Flows() {
		if choice == fmt.Sprint(i+1) {
			return f, true
		}
	}
	return Flow{}, false
}

func (s *Shell) runFlow(ctx context.Context, flow Flow) error {
	if err := s.writeLines("", flow.Heading()); err != nil {
		return err
	}

	values := make([]float64, 0, len(flow.Fields))
	for _, field := range flow.Fields {
		v, err := s.ReadFloat(ctx, field.Prompt)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	result := magnet.Calculate(flow.Build(values))
	if result.IsOk() {
		s.logger.Debug("calculated",
			zap.Stringer("geometry", flow.Geometry),
			zap.Float64s("inputs", values),
			zap.Float64("tesla", result.Value()))
	} else {
		s.logger.Debug("calculation failed",
			zap.Stringer("geometry", flow.Geometry),
			zap.Float64s("inputs", values),
			zap.Error(result.Err()))
	}

	return s.PrintResult(result)
}

// ReadFloat prompts until a line parses as a number, printing
// InvalidNumber after each rejected line.
func (s *Shell) ReadFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		v, err := s.parse(line)
		if err == nil {
			return v, nil
		}

		s.logger.Debug("rejected input", zap.String("prompt", prompt), zap.Error(err))
		if err := s.out.WriteLine(InvalidNumber); err != nil {
			return 0, fmt.Errorf("write output: %w", err)
		}
	}
}

// PrintResult writes r framed by separator lines.
func (s *Shell) PrintResult(r model.Result) error {
	return s.writeLines(FormatResult(r)...)
}

func (s *Shell) readLine(prompt string) (string, error) {
	if err := s.out.Write(prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := s.in.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (s *Shell) writeLines(lines ...string) error {
	for _, line := range lines {
		if err := s.out.WriteLine(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
