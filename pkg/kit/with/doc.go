// Package with builds modified copies of values.
//
//	moved := with.With(point, func(p *Point) { p.X = 10 })
//
// The mutation always runs on a copy. With copies shallowly, so slices, maps and
// pointers are shared with the original; implement Cloner and use WithClone when
// the mutation touches them.
package with
