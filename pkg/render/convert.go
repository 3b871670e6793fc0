package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// ToPDF converts SVG bytes to PDF using rsvg-convert.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "-f", "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1.0
	}
	return convert(svg, "-f", "png", "-z", fmt.Sprintf("%g", scale))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("rsvg-convert: %s: %w", stderr.String(), err)
		}
		return nil, fmt.Errorf("rsvg-convert (is librsvg installed?): %w", err)
	}
	return out.Bytes(), nil
}
