package sink

import (
	"github.com/matzehuels/stairforge/pkg/render"
	"github.com/matzehuels/stairforge/pkg/scene"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(l scene.Layout, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(l, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders the layout as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(l scene.Layout, scale float64, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(l, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
