package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pxl"
)

// Script is a TOML render script:
//
//	width = 320
//	height = 200
//	background = "#202040"
//	palette = ["#000000", "#ff0000"]
//	resampler = "catmullrom"
//
//	[[op]]
//	kind = "fill_circle"
//	args = [160, 100, 40]
//	color = "#ff000080"
//
//	[[op]]
//	kind = "line"
//	args = [0, 0, 319, 199]
//	index = 1
type Script struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Background string   `toml:"background"`
	Palette    []string `toml:"palette"`
	Resampler  string   `toml:"resampler"`
	Font       string   `toml:"font"`
	Ops        []Op     `toml:"op"`
}

// Op is one drawing command.
type Op struct {
	Kind string `toml:"kind"`
	Args []int  `toml:"args"`

	// Colour source: Color wins over Index, Pattern over both.
	Color   string `toml:"color"`
	Index   *int   `toml:"index"`
	Pattern string `toml:"pattern"`

	// text
	Text string  `toml:"text"`
	Size float64 `toml:"size"`

	// image
	Path   string  `toml:"path"`
	Scale  float64 `toml:"scale"`
	Smooth bool    `toml:"smooth"`
	Blend  bool    `toml:"blend"`
}

// argCount is the number of integer arguments each kind takes.
var argCount = map[string]int{
	"clear":        0,
	"fill":         0,
	"fill_rect":    4,
	"clip":         4,
	"unclip":       0,
	"offset":       2,
	"pixel":        2,
	"line":         4,
	"line_aa":      4,
	"rect":         4,
	"rect_aa":      4,
	"circle":       3,
	"circle_aa":    3,
	"fill_circle":  3,
	"triangle":     6,
	"polygon":      -1,
	"polygon_aa":   -1,
	"fill_polygon": -1,
	"text":         2,
	"image":        2,
}

// Errors.
var (
	errNoOps    = errors.New("script has no ops")
	errBadKind  = errors.New("unknown op kind")
	errBadArgs  = errors.New("wrong number of args")
	errBadColor = errors.New("invalid colour")
)

// decodeScript reads and validates a script. Unknown keys are errors.
func decodeScript(r io.Reader) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("script: %s", strict.String())
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("script: %w: %dx%d", pxl.ErrInvalidSize, s.Width, s.Height)
	}
	if len(s.Ops) == 0 {
		return fmt.Errorf("script: %w", errNoOps)
	}
	if s.Background != "" && !validHex(s.Background) {
		return fmt.Errorf("script: background: %w: %q", errBadColor, s.Background)
	}
	for i, c := range s.Palette {
		if !validHex(c) {
			return fmt.Errorf("script: palette[%d]: %w: %q", i, errBadColor, c)
		}
	}
	for i, op := range s.Ops {
		n, ok := argCount[op.Kind]
		if !ok {
			return fmt.Errorf("script: op %d: %w: %q", i, errBadKind, op.Kind)
		}
		switch {
		case n < 0 && (len(op.Args) < 6 || len(op.Args)%2 != 0):
			return fmt.Errorf("script: op %d (%s): %w: want an even count of at least 6, got %d", i, op.Kind, errBadArgs, len(op.Args))
		case n >= 0 && len(op.Args) != n:
			return fmt.Errorf("script: op %d (%s): %w: want %d, got %d", i, op.Kind, errBadArgs, n, len(op.Args))
		}
		if op.Color != "" && !validHex(op.Color) {
			return fmt.Errorf("script: op %d (%s): %w: %q", i, op.Kind, errBadColor, op.Color)
		}
	}
	return nil
}

// validHex reports whether s is a colour pxl.Hex accepts.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
