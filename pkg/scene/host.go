package scene

import (
	"context"
	"fmt"
)

// Host is the boundary to an application that owns a live scene graph.
// Implementations adapt these calls to whatever object model the target
// system exposes (DCC scripting bridge, engine API, file exporter).
//
// Object and group names are unique within one applied layout. Hosts may
// assume names were validated before Apply calls them.
type Host interface {
	// DeleteGroup removes a group and everything parented under it.
	// Deleting a group that does not exist is not an error.
	DeleteGroup(ctx context.Context, name string) error

	// CreateGroup creates an empty transform/group node.
	CreateGroup(ctx context.Context, name string) error

	// CreateBox creates a box primitive with the given dimensions,
	// centered at the origin.
	CreateBox(ctx context.Context, name string, width, height, depth float64) error

	// CreateSphere creates a sphere primitive centered at the origin.
	CreateSphere(ctx context.Context, name string, radius float64) error

	// Move translates an object to an absolute world-space position.
	Move(ctx context.Context, name string, pos Vec3) error

	// Rotate applies an absolute yaw rotation in degrees around the
	// vertical axis.
	Rotate(ctx context.Context, name string, yawDegrees float64) error

	// Parent attaches child under parent in the scene hierarchy.
	Parent(ctx context.Context, child, parent string) error

	// AssignMaterial assigns a named material to a group and everything
	// under it.
	AssignMaterial(ctx context.Context, group, material string) error
}

// Apply instantiates a layout on a host with replace-not-merge semantics:
// the previous stairs group is deleted by its well-known name, then groups
// and primitives are created in order, transformed, parented, and finally
// the shared flat-gray material is assigned to the whole stairs group.
//
// Apply stops at the first host error. Callers that need all-or-nothing
// scene state should serialize Apply calls per host; the layout itself is
// immutable and can be re-applied safely.
func Apply(ctx context.Context, h Host, l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}

	if err := h.DeleteGroup(ctx, l.StairsGroup); err != nil {
		return fmt.Errorf("delete previous group %s: %w", l.StairsGroup, err)
	}

	for _, g := range l.Groups {
		if err := h.CreateGroup(ctx, g.Name); err != nil {
			return fmt.Errorf("create group %s: %w", g.Name, err)
		}
	}
	for _, g := range l.Groups {
		if g.Parent == "" {
			continue
		}
		if err := h.Parent(ctx, g.Name, g.Parent); err != nil {
			return fmt.Errorf("parent group %s under %s: %w", g.Name, g.Parent, err)
		}
	}

	for _, p := range l.Primitives {
		if err := applyPrimitive(ctx, h, p); err != nil {
			return err
		}
	}

	if err := h.AssignMaterial(ctx, l.StairsGroup, MaterialFlatGray); err != nil {
		return fmt.Errorf("assign material to %s: %w", l.StairsGroup, err)
	}
	return nil
}

func applyPrimitive(ctx context.Context, h Host, p Primitive) error {
	switch p.Kind {
	case KindBox:
		if err := h.CreateBox(ctx, p.Name, p.Width, p.Height, p.Depth); err != nil {
			return fmt.Errorf("create box %s: %w", p.Name, err)
		}
	case KindSphere:
		if err := h.CreateSphere(ctx, p.Name, p.Radius); err != nil {
			return fmt.Errorf("create sphere %s: %w", p.Name, err)
		}
	default:
		return fmt.Errorf("unknown primitive kind %q", p.Kind)
	}

	if err := h.Move(ctx, p.Name, p.Position); err != nil {
		return fmt.Errorf("move %s: %w", p.Name, err)
	}
	if p.Yaw != 0 {
		if err := h.Rotate(ctx, p.Name, p.Yaw); err != nil {
			return fmt.Errorf("rotate %s: %w", p.Name, err)
		}
	}
	if err := h.Parent(ctx, p.Name, p.Group); err != nil {
		return fmt.Errorf("parent %s under %s: %w", p.Name, p.Group, err)
	}
	return nil
}
