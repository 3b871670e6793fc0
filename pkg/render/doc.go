// Package render provides visualization rendering for staircase layouts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms generated
// staircase layouts into visual and exchange outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Orthographic drawings and 3D export (in [sink] subpackage)
//   - Scene outline diagrams (in [outline] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// the drawing and outline renderers.
//
//	svg, err := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Drawings and Exports
//
// The [sink] subpackage renders layouts as orthographic SVG drawings (plan
// and elevation views), Wavefront OBJ meshes for 3D tooling, and JSON for
// external consumers.
//
// # Scene Outlines
//
// The [outline] subpackage renders the group/primitive hierarchy of a layout
// as a Graphviz diagram. Groups appear as boxes connected to their children.
//
//	dot := outline.ToDOT(layout, outline.Options{})
//	svg, err := outline.RenderSVG(dot)
//
// [sink]: github.com/matzehuels/stairforge/pkg/render/sink
// [outline]: github.com/matzehuels/stairforge/pkg/render/outline
package render
