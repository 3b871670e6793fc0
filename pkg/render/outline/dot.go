package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stairforge/pkg/render"
	"github.com/matzehuels/stairforge/pkg/scene"
)

// Options configures scene outline rendering.
type Options struct {
	// Detailed includes primitive kind and dimensions in node labels.
	// When false, only the primitive name is shown.
	Detailed bool
}

// ToDOT converts a layout's group hierarchy to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Group nodes are rendered with a grey fill to distinguish them from
// primitive leaves.
func ToDOT(l scene.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, g := range l.Groups {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled\", fillcolor=lightgrey];\n", g.Name, g.Name)
	}
	for i := range l.Primitives {
		p := &l.Primitives[i]
		fmt.Fprintf(&buf, "  %q [label=%q];\n", p.Name, fmtLabel(p, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, g := range l.Groups {
		if g.Parent != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", g.Parent, g.Name)
		}
	}
	for i := range l.Primitives {
		p := &l.Primitives[i]
		if p.Group != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.Group, p.Name)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p *scene.Primitive, detailed bool) string {
	if !detailed {
		return p.Name
	}

	parts := []string{fmt.Sprintf("kind: %s", p.Kind)}
	if p.IsSphere() {
		parts = append(parts, fmt.Sprintf("radius: %g", p.Radius))
	} else {
		parts = append(parts, fmt.Sprintf("dims: %g x %g x %g", p.Width, p.Height, p.Depth))
	}
	if p.Yaw != 0 {
		parts = append(parts, fmt.Sprintf("yaw: %g", p.Yaw))
	}

	return p.Name + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
