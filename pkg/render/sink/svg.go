package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/scene"
)

// =============================================================================
// Views — Single Source of Truth
// =============================================================================

// View selects the projection plane for orthographic drawings.
type View string

const (
	// ViewPlan looks straight down the vertical axis (top-down footprint).
	ViewPlan View = "plan"

	// ViewElevation looks along the horizontal axis (side-on profile).
	ViewElevation View = "elevation"
)

// Views lists every legal view value, in display order.
var Views = []View{ViewPlan, ViewElevation}

// ParseView converts a string into a View, rejecting unknown values.
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidView,
		"unknown view %q (valid: plan, elevation)", s)
}

// =============================================================================
// Options
// =============================================================================

// DefaultScale is the pixel density applied when WithScale is not given.
const DefaultScale = 50.0

// drawingMargin is the whitespace around the geometry, in world units.
const drawingMargin = 0.5

// SVGOption configures SVG drawing output.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	view   View
	scale  float64
	labels bool
}

// WithView selects the projection plane (default ViewPlan).
func WithView(v View) SVGOption { return func(r *svgRenderer) { r.view = v } }

// WithScale sets pixels per world unit (default DefaultScale).
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithLabels annotates each primitive with its name.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// Primitive colors. Steps take the scene's flat grey material; railings are
// drawn darker so the two element classes read apart.
const (
	stepFill      = "#b8b8b8"
	stepStroke    = "#555555"
	railingFill   = "#6e6e6e"
	railingStroke = "#333333"
)

// =============================================================================
// Rendering
// =============================================================================

// RenderSVG draws the layout as an orthographic SVG projection.
func RenderSVG(l scene.Layout, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{view: ViewPlan, scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = DefaultScale
	}
	if _, err := ParseView(string(r.view)); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	min, max := l.Bounds()
	minU, minV := project(min, r.view)
	maxU, maxV := project(max, r.view)
	if maxU < minU {
		minU, maxU = maxU, minU
	}
	if maxV < minV {
		minV, maxV = maxV, minV
	}

	width := (maxU - minU + 2*drawingMargin) * r.scale
	height := (maxV - minV + 2*drawingMargin) * r.scale

	toX := func(u float64) float64 { return (u - minU + drawingMargin) * r.scale }
	// World "up" (and plan-view "forward") increases upward; SVG y grows down.
	toY := func(v float64) float64 { return (maxV - v + drawingMargin) * r.scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for i := range l.Primitives {
		r.renderPrimitive(&buf, &l.Primitives[i], toX, toY)
	}
	if r.labels {
		for i := range l.Primitives {
			r.renderLabel(&buf, &l.Primitives[i], toX, toY)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// project maps a world point onto the drawing plane of the given view.
func project(p scene.Vec3, view View) (u, v float64) {
	if view == ViewElevation {
		return p.Z, p.Y
	}
	return p.X, p.Z
}

func (r *svgRenderer) renderPrimitive(buf *bytes.Buffer, p *scene.Primitive, toX, toY func(float64) float64) {
	fill, stroke := stepFill, stepStroke
	if p.Group == scene.GroupRailings {
		fill, stroke = railingFill, railingStroke
	}

	cu, cv := project(p.Position, r.view)
	cx, cy := toX(cu), toY(cv)

	if p.IsSphere() {
		fmt.Fprintf(buf, `  <circle id="prim-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			p.Name, cx, cy, p.Radius*r.scale, fill, stroke)
		return
	}

	w, h := r.footprint(p)
	w *= r.scale
	h *= r.scale
	x, y := cx-w/2, cy-h/2

	if r.view == ViewPlan && p.Yaw != 0 {
		// SVG rotates clockwise in screen coordinates; the flipped v axis
		// inverts the sense of a yaw about the vertical axis.
		fmt.Fprintf(buf, `  <rect id="prim-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1" transform="rotate(%.2f %.2f %.2f)"/>`+"\n",
			p.Name, x, y, w, h, fill, stroke, -p.Yaw, cx, cy)
		return
	}

	fmt.Fprintf(buf, `  <rect id="prim-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		p.Name, x, y, w, h, fill, stroke)
}

// footprint returns the drawing-plane extents of a box, in world units.
// Elevation draws the unrotated profile; yaw only affects the plan view.
func (r *svgRenderer) footprint(p *scene.Primitive) (w, h float64) {
	if r.view == ViewElevation {
		return p.Depth, p.Height
	}
	return p.Width, p.Depth
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, p *scene.Primitive, toX, toY func(float64) float64) {
	cu, cv := project(p.Position, r.view)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="#222222">%s</text>`+"\n",
		toX(cu), toY(cv), r.scale*0.18, p.Name)
}
