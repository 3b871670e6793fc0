package scene

import (
	"context"
	"sync"
)

// Op records one host call made against a MemoryHost.
type Op struct {
	Kind   string  // "delete_group", "create_group", "create_box", ...
	Name   string  // primary object name
	Target string  // parent or material, when applicable
	Pos    Vec3    // for "move"
	Value  float64 // yaw or radius, when applicable
}

// Object is the recorded state of one instantiated object.
type Object struct {
	Name     string
	Kind     string // "group", "box", or "sphere"
	Width    float64
	Height   float64
	Depth    float64
	Radius   float64
	Position Vec3
	Yaw      float64
	Parent   string
	Material string
}

// MemoryHost is an in-process Host that records every call. It backs tests
// and dry runs, and doubles as the reference for what a real adapter must
// implement. Safe for concurrent use.
type MemoryHost struct {
	mu      sync.Mutex
	ops     []Op
	objects map[string]*Object
}

// NewMemoryHost creates an empty recording host.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{objects: make(map[string]*Object)}
}

// Ops returns a copy of the recorded call sequence.
func (m *MemoryHost) Ops() []Op {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Op, len(m.ops))
	copy(out, m.ops)
	return out
}

// Object returns the recorded object with the given name, if present.
func (m *MemoryHost) Object(name string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[name]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

// ObjectCount returns the number of live objects, groups included.
func (m *MemoryHost) ObjectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Children returns the names of objects parented directly under parent.
func (m *MemoryHost) Children(parent string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for name, o := range m.objects {
		if o.Parent == parent {
			out = append(out, name)
		}
	}
	return out
}

// DeleteGroup removes a group and, transitively, everything under it.
func (m *MemoryHost) DeleteGroup(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "delete_group", Name: name})
	m.deleteTree(name)
	return nil
}

func (m *MemoryHost) deleteTree(name string) {
	if _, ok := m.objects[name]; !ok {
		return
	}
	delete(m.objects, name)
	for child, o := range m.objects {
		if o.Parent == name {
			m.deleteTree(child)
		}
	}
}

// CreateGroup creates an empty group node.
func (m *MemoryHost) CreateGroup(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "create_group", Name: name})
	m.objects[name] = &Object{Name: name, Kind: "group"}
	return nil
}

// CreateBox creates a box primitive at the origin.
func (m *MemoryHost) CreateBox(ctx context.Context, name string, width, height, depth float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "create_box", Name: name})
	m.objects[name] = &Object{Name: name, Kind: KindBox, Width: width, Height: height, Depth: depth}
	return nil
}

// CreateSphere creates a sphere primitive at the origin.
func (m *MemoryHost) CreateSphere(ctx context.Context, name string, radius float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "create_sphere", Name: name, Value: radius})
	m.objects[name] = &Object{Name: name, Kind: KindSphere, Radius: radius}
	return nil
}

// Move translates an object.
func (m *MemoryHost) Move(ctx context.Context, name string, pos Vec3) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "move", Name: name, Pos: pos})
	if o, ok := m.objects[name]; ok {
		o.Position = pos
	}
	return nil
}

// Rotate applies an absolute yaw in degrees.
func (m *MemoryHost) Rotate(ctx context.Context, name string, yawDegrees float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "rotate", Name: name, Value: yawDegrees})
	if o, ok := m.objects[name]; ok {
		o.Yaw = yawDegrees
	}
	return nil
}

// Parent attaches child under parent.
func (m *MemoryHost) Parent(ctx context.Context, child, parent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "parent", Name: child, Target: parent})
	if o, ok := m.objects[child]; ok {
		o.Parent = parent
	}
	return nil
}

// AssignMaterial assigns a material to a group and everything under it.
func (m *MemoryHost) AssignMaterial(ctx context.Context, group, material string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, Op{Kind: "assign_material", Name: group, Target: material})
	m.assignTree(group, material)
	return nil
}

func (m *MemoryHost) assignTree(name, material string) {
	o, ok := m.objects[name]
	if !ok {
		return
	}
	o.Material = material
	for child, c := range m.objects {
		if c.Parent == name {
			m.assignTree(child, material)
		}
	}
}

// Ensure MemoryHost implements Host.
var _ Host = (*MemoryHost)(nil)
