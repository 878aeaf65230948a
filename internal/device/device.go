// Package device classifies the output terminal so rendering code can
// adapt layout density. Quality classification itself never consults it.
package device

import (
	"golang.org/x/term"
)

// Breakpoint names a terminal width class.
type Breakpoint string

const (
	BreakpointXS Breakpoint = "xs" // < 60 columns
	BreakpointSM Breakpoint = "sm" // < 80 columns
	BreakpointMD Breakpoint = "md" // < 120 columns
	BreakpointLG Breakpoint = "lg"
)

// Viewport describes the terminal the indicator renders into.
type Viewport struct {
	Width      int
	Height     int
	Breakpoint Breakpoint
	Landscape  bool
	TTY        bool
}

// DefaultViewport is used when the output is not a terminal.
var DefaultViewport = Viewport{
	Width:      80,
	Height:     24,
	Breakpoint: BreakpointMD,
	Landscape:  true,
	TTY:        false,
}

// Detect inspects the given file descriptor (normally stdout) and returns
// its viewport. Non-terminal outputs get DefaultViewport.
func Detect(fd int) Viewport {
	if !term.IsTerminal(fd) {
		return DefaultViewport
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultViewport
	}
	return Viewport{
		Width:      width,
		Height:     height,
		Breakpoint: BreakpointFor(width),
		Landscape:  width >= height,
		TTY:        true,
	}
}

// BreakpointFor maps a column count to its breakpoint class.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < 60:
		return BreakpointXS
	case width < 80:
		return BreakpointSM
	case width < 120:
		return BreakpointMD
	default:
		return BreakpointLG
	}
}

// Narrow reports whether the viewport is too tight for side-by-side
// layout; callers stack blocks vertically instead.
func (v Viewport) Narrow() bool {
	return v.Breakpoint == BreakpointXS || v.Breakpoint == BreakpointSM
}
