package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/matzehuels/stairforge/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Primitive kinds.
const (
	KindBox    = "box"
	KindSphere = "sphere"
)

// Well-known group names. Hosts delete the previous stairs group by this
// name before applying a new layout.
const (
	GroupStairs   = "Modular_Stairs"
	GroupRailings = "Railings"
)

// MaterialFlatGray is the shared material assigned to the stairs group.
const MaterialFlatGray = "flat_gray"

// =============================================================================
// Vec3 - World-Space Position
// =============================================================================

// Vec3 is a world-space position.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IsFinite reports whether all components are finite (no NaN/Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// =============================================================================
// Primitive - One Placed Shape
// =============================================================================

// Primitive is one placed shape in a layout. Box primitives use
// Width/Height/Depth; sphere primitives use Radius. Position is the shape
// center. Yaw, when non-zero, is an absolute rotation around the vertical
// axis in degrees.
type Primitive struct {
	Name     string  `json:"name" bson:"name"`
	Kind     string  `json:"kind" bson:"kind"`
	Width    float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height   float64 `json:"height,omitempty" bson:"height,omitempty"`
	Depth    float64 `json:"depth,omitempty" bson:"depth,omitempty"`
	Radius   float64 `json:"radius,omitempty" bson:"radius,omitempty"`
	Position Vec3    `json:"position" bson:"position"`
	Yaw      float64 `json:"yaw,omitempty" bson:"yaw,omitempty"`
	Group    string  `json:"group" bson:"group"`
}

// IsBox reports whether the primitive is a box.
func (p *Primitive) IsBox() bool { return p.Kind == KindBox }

// IsSphere reports whether the primitive is a sphere.
func (p *Primitive) IsSphere() bool { return p.Kind == KindSphere }

// =============================================================================
// Group - Parent/Child Relation
// =============================================================================

// Group is one node of the layout's grouping tree. A group with an empty
// Parent is a root.
type Group struct {
	Name   string `json:"name" bson:"name"`
	Parent string `json:"parent,omitempty" bson:"parent,omitempty"`
}

// =============================================================================
// Layout - Generator Output
// =============================================================================

// Layout is the complete output of one generator invocation: placed
// primitives in creation order plus the group tree. StairsGroup and
// RailingsGroup carry the well-known group names as plain fields so no
// process-wide naming state is needed.
type Layout struct {
	Primitives []Primitive `json:"primitives" bson:"primitives"`
	Groups     []Group     `json:"groups" bson:"groups"`

	StairsGroup   string `json:"stairs_group" bson:"stairs_group"`
	RailingsGroup string `json:"railings_group,omitempty" bson:"railings_group,omitempty"`
}

// Steps returns the primitives tagged into the stairs group.
func (l *Layout) Steps() []Primitive {
	return l.byGroup(l.StairsGroup)
}

// RailingPrimitives returns the primitives tagged into the railings group.
// The slice is empty when the layout was generated without railings.
func (l *Layout) RailingPrimitives() []Primitive {
	if l.RailingsGroup == "" {
		return nil
	}
	return l.byGroup(l.RailingsGroup)
}

func (l *Layout) byGroup(group string) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks structural invariants: known kinds, finite positions and
// dimensions, non-empty names, and group tags that resolve to declared
// groups.
func (l *Layout) Validate() error {
	groups := make(map[string]bool, len(l.Groups))
	for _, g := range l.Groups {
		if err := errors.ValidateGroupName(g.Name); err != nil {
			return err
		}
		groups[g.Name] = true
	}
	for _, g := range l.Groups {
		if g.Parent != "" && !groups[g.Parent] {
			return errors.New(errors.ErrCodeInvalidLayout, "group %q has unknown parent %q", g.Name, g.Parent)
		}
	}

	for i, p := range l.Primitives {
		if p.Name == "" {
			return errors.New(errors.ErrCodeInvalidLayout, "primitive %d has no name", i)
		}
		if p.Kind != KindBox && p.Kind != KindSphere {
			return errors.New(errors.ErrCodeInvalidLayout, "primitive %q has unknown kind %q", p.Name, p.Kind)
		}
		if !p.Position.IsFinite() {
			return errors.New(errors.ErrCodeInvalidLayout, "primitive %q has non-finite position", p.Name)
		}
		if !groups[p.Group] {
			return errors.New(errors.ErrCodeInvalidLayout, "primitive %q tagged with unknown group %q", p.Name, p.Group)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box over all primitive extents.
// Box extents ignore yaw and use the conservative half-diagonal in the
// horizontal plane so rotated steps stay inside the bounds.
// Returns zero vectors for an empty layout.
func (l *Layout) Bounds() (min, max Vec3) {
	if len(l.Primitives) == 0 {
		return Vec3{}, Vec3{}
	}
	min = Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for _, p := range l.Primitives {
		var rx, ry, rz float64
		if p.IsSphere() {
			rx, ry, rz = p.Radius, p.Radius, p.Radius
		} else {
			half := math.Hypot(p.Width/2, p.Depth/2)
			if p.Yaw == 0 {
				rx, rz = p.Width/2, p.Depth/2
			} else {
				rx, rz = half, half
			}
			ry = p.Height / 2
		}
		min.X = math.Min(min.X, p.Position.X-rx)
		min.Y = math.Min(min.Y, p.Position.Y-ry)
		min.Z = math.Min(min.Z, p.Position.Z-rz)
		max.X = math.Max(max.X, p.Position.X+rx)
		max.Y = math.Max(max.Y, p.Position.Y+ry)
		max.Z = math.Max(max.Z, p.Position.Z+rz)
	}
	return min, max
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout converts a layout to JSON bytes.
// Primitive order is preserved, so identical layouts marshal identically.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLayoutTo(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout deserializes JSON bytes to a Layout and validates it.
func UnmarshalLayout(data []byte) (Layout, error) {
	return readLayoutFrom(bytes.NewReader(data))
}

// WriteLayoutFile writes a layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeLayoutTo(l, f)
}

// WriteLayout writes a layout as JSON to an io.Writer.
func WriteLayout(l Layout, w io.Writer) error {
	return writeLayoutTo(l, w)
}

// ReadLayoutFile reads a JSON file and returns the decoded layout.
// Returns validation errors for structurally malformed layouts.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readLayoutFrom(f)
}

// ReadLayout decodes a JSON layout from an io.Reader.
func ReadLayout(r io.Reader) (Layout, error) {
	return readLayoutFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeLayoutTo(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readLayoutFrom(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
