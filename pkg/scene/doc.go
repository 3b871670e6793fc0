// Package scene defines the placed-primitive data model produced by the
// staircase generator, its canonical JSON serialization, and the narrow
// boundary to host applications that own live scene graphs.
//
// A [Layout] is a flat, ordered list of [Primitive] values plus a small
// group tree. It is plain data: generating one has no side effects, and the
// same layout can be serialized, cached, rendered to artifacts, or applied
// to a [Host].
//
// # Serialization
//
// Layouts round-trip through JSON with deterministic output:
//
//	data, err := scene.MarshalLayout(l)
//	l2, err := scene.UnmarshalLayout(data)
//
// # Host boundary
//
// Host applications (DCC tools, engines, exporters) implement [Host]. The
// [Apply] function translates a layout into host calls with
// replace-not-merge semantics: the previous stairs group is deleted by its
// well-known name before any primitive is instantiated.
package scene
