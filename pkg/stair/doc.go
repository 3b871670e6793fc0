// Package stair implements the parametric staircase layout generator.
//
// [Generate] is a pure function: given a validated [Parameters] value it
// produces a [scene.Layout] describing every step and railing primitive with
// world-space transforms and the group tree. No state persists between
// invocations and identical parameters yield bit-identical layouts, which is
// what makes content-addressed caching of layouts and artifacts sound.
//
// # Geometry
//
// Straight staircases place step i at (0, height·i·dir, depth·i) where dir
// is +1, -1, or 0 for upward, downward, and flat runs. Curved staircases
// distribute steps over a full circle of the configured radius, each step
// yawed to face tangentially along the arc. Railings are either two long
// boxes flanking a straight run or a series of sphere markers tracing the
// outer edge of a curved run.
package stair
