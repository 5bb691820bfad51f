package shell

import (
	"errors"
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1.2", 1.2, false},
		{"  5 ", 5, false},
		{"-3", -3, false},
		{"+4.5", 4.5, false},
		{".5", 0.5, false},
		{"7.", 7, false},
		{"1e3", 1000, false},
		{"2.5E-1", 0.25, false},
		{"12abc", 12, false},
		{"3.14.15", 3.14, false},
		{"1e", 1, false},
		{"10 mm", 10, false},
		{"abc", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"-", 0, true},
		{".", 0, true},
		{"mm10", 0, true},
		{"nan", 0, true},
		{"inf", 0, true},
		{"0x10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFloat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotNumeric) {
					t.Errorf("ParseFloat(%q) error = %v, want ErrNotNumeric", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFloat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloat_Infinity(t *testing.T) {
	tests := []struct {
		input string
		sign  int
	}{
		{"Infinity", 1},
		{"+Infinity", 1},
		{"-Infinity", -1},
		{"1e999", 1},
		{"-1e999", -1},
	}

	for _, tt := range tests {
		got, err := ParseFloat(tt.input)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error = %v", tt.input, err)
		}
		if !math.IsInf(got, tt.sign) {
			t.Errorf("ParseFloat(%q) = %v, want Inf(%d)", tt.input, got, tt.sign)
		}
	}
}

func TestParseFloatStrict(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1.2", 1.2, false},
		{" 5 ", 5, false},
		{"-1e2", -100, false},
		{"12abc", 0, true},
		{"10 mm", 0, true},
		{"-Infinity", math.Inf(-1), false},
		{"1e999", math.Inf(1), false},
		{"abc", 0, true},
		{"", 0, true},
		{"nan", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"Inf", 0, true},
		{"0x10", 0, true},
		{"1_000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFloatStrict(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotNumeric) {
					t.Errorf("ParseFloatStrict(%q) error = %v, want ErrNotNumeric", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFloatStrict(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFloatStrict(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
