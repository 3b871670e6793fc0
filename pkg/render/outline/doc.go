// Package outline renders the group/primitive hierarchy of a layout as a
// Graphviz diagram.
//
// Scene outlines are a structural view, not a geometric one: groups appear as
// labelled boxes connected to their children, which makes the parenting tree
// of a generated staircase easy to inspect without a 3D host.
//
//	dot := outline.ToDOT(layout, outline.Options{Detailed: true})
//	svg, err := outline.RenderSVG(dot)
package outline
