// Package sink provides output format renderers for staircase layouts.
//
// # Overview
//
// A "sink" transforms a generated [scene.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Orthographic drawings (plan and elevation views)
//   - OBJ: Wavefront mesh export for 3D tooling
//   - JSON: Layout data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces an orthographic projection of the layout:
//
//	svg, err := sink.RenderSVG(layout,
//	    sink.WithView(sink.ViewElevation),
//	    sink.WithScale(80),
//	    sink.WithLabels(),
//	)
//
// # SVG Options
//
//   - [WithView]: Projection plane ([ViewPlan] top-down or [ViewElevation] side-on)
//   - [WithScale]: Pixels per world unit (default 50)
//   - [WithLabels]: Annotate each primitive with its name
//
// Steps are drawn with a flat grey fill matching the scene material; railing
// primitives are drawn darker so the two element classes read apart at a
// glance.
//
// # OBJ Output
//
// [RenderOBJ] exports the layout as a Wavefront OBJ mesh. Boxes become
// eight-vertex cuboids with their yaw applied; railing markers become small
// octahedra. Group membership is preserved through `g` records so importers
// keep the stairs/railings split.
//
// # JSON Output
//
// [RenderJSON] exports the complete layout as JSON, enabling:
//
//   - Integration with external visualization tools
//   - Caching of generated layouts
//   - Round-trip rendering (re-import and render identically)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG].
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(l scene.Layout, opts ...Option) ([]byte, error)
//  2. Access l.Primitives for placed geometry, l.Groups for the hierarchy
//  3. Register in pkg/pipeline for CLI and API support
//
// The existing sinks provide examples: svg.go for drawing output, obj.go for
// mesh export, json.go for data export.
//
// [scene.Layout]: github.com/matzehuels/stairforge/pkg/scene.Layout
// [render.ToPDF]: github.com/matzehuels/stairforge/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/stairforge/pkg/render.ToPNG
package sink
