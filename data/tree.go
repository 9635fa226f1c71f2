// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

// TreeNew creates a new tree rooted at an empty object.
func TreeNew() *Tree {
	return TreeFromObject(ObjectNew())
}

// TreeFromObject creates a tree rooted at the supplied object.
func TreeFromObject(obj *Object) *Tree {
	return &Tree{
		root: ValueNew(obj),
	}
}

// TreeFromValue creates a tree rooted at the supplied value.
func TreeFromValue(v *Value) *Tree {
	return &Tree{
		root: v,
	}
}

// Tree represents a document. It is rooted at any value and is indexed
// using Paths instead of single keys. Trees are immutable and any
// mutation operation will return a new structurally shared copy of the
// tree with the changes made. This allows for cheap copies of the tree
// and for it to be shared easily.
type Tree struct {
	root *Value
}

// Root returns the tree's root value.
func (t *Tree) Root() *Value {
	return t.root
}

// Merge merges two trees together by recursively calling Merge on the roots.
func (t *Tree) Merge(new *Tree) *Tree {
	return TreeFromValue(t.Root().Merge(new.Root()))
}

// At returns the Value at the path provided, or nil if the path does
// not resolve. Absence is a normal result, At never panics.
func (t *Tree) At(path *Path) *Value {
	v, _ := t.Find(path)
	return v
}

// Find returns the value at the path, and whether the path resolved.
// Descending through null or absent nodes, off the end of an array, or
// with a step kind the container cannot satisfy yields (nil, false)
// rather than an error. The empty path resolves to the root. Index
// steps applied to objects read the decimal string key, mirroring how
// Assoc writes them.
func (t *Tree) Find(path *Path) (*Value, bool) {
	cur := t.root
	for _, s := range path.Steps() {
		if cur == nil || cur.IsNull() {
			return nil, false
		}
		var next *Value
		var ok bool
		switch {
		case cur.IsObject():
			next, ok = cur.AsObject().Find(s.objectKey())
		case cur.IsArray():
			if !s.IsIndex() {
				return nil, false
			}
			next, ok = cur.AsArray().Find(s.Index())
		default:
			return nil, false
		}
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Contains returns whether the path points to a node in the tree.
func (t *Tree) Contains(path *Path) bool {
	_, found := t.Find(path)
	return found
}

// Assoc associates the value provided at the location pointed to by the
// path, returning a new tree. Every node along the path is a fresh,
// structurally shared copy; every node off the path is shared by
// reference with the original tree. The empty path replaces the whole
// document with the value. Absent or non-container intermediates are
// synthesized as empty objects, so Assoc can extend a document along a
// path that does not exist yet; present containers keep their runtime
// kind (an array stays an array, an object stays an object).
func (t *Tree) Assoc(path *Path, value interface{}) *Tree {
	v := ValueNew(value)
	if path.Length() == 0 {
		return TreeFromValue(v)
	}

	// Collect the source node at each prefix of the path. The new
	// tree is then built bottom up against the pre-edit sources, so
	// untouched siblings stay reference-identical.
	steps := path.Steps()
	srcs := make([]*Value, len(steps))
	cur := t.root
	for i, s := range steps {
		srcs[i] = cur
		cur = sourceChild(cur, s)
	}

	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		src := srcs[i]
		switch {
		case src != nil && src.IsObject():
			v = ValueNew(src.AsObject().Assoc(s.objectKey(), v))
		case src != nil && src.IsArray():
			if s.IsIndex() {
				v = ValueNew(src.AsArray().Assoc(s.Index(), v))
			} else {
				// A field step has nowhere to land in a
				// sequence; the write is dropped and the
				// array carries forward unchanged.
				v = ValueNew(src.AsArray())
			}
		default:
			v = ValueNew(ObjectNew().Assoc(s.objectKey(), v))
		}
	}
	return TreeFromValue(v)
}

// sourceChild reads the child a step addresses in the pre-edit tree.
// Index steps applied to objects read the decimal string key; field
// steps applied to arrays are absent.
func sourceChild(v *Value, s Step) *Value {
	if v == nil || v.IsNull() {
		return nil
	}
	switch {
	case v.IsObject():
		return v.AsObject().At(s.objectKey())
	case v.IsArray():
		if !s.IsIndex() {
			return nil
		}
		return v.AsArray().At(s.Index())
	default:
		return nil
	}
}

// Delete removes the node the path points to from the tree. Paths that
// do not resolve, and the empty path, return the tree unchanged.
func (t *Tree) Delete(path *Path) *Tree {
	if path.Length() == 0 {
		return t
	}
	_, found := t.Find(path)
	if !found {
		return t
	}
	parent := path.Parent()
	last, _ := path.Last()
	v := t.At(parent)
	v = v.Perform(
		func(o *Object) *Value {
			return ValueNew(o.Delete(last.objectKey()))
		},
		func(a *Array) *Value {
			return ValueNew(a.Delete(last.Index()))
		},
	).(*Value)
	if parent.Length() == 0 {
		return TreeFromValue(v)
	}
	return t.Assoc(parent, v)
}

// Length returns the number of nodes in the tree.
func (t *Tree) Length() int {
	var count int
	t.Range(func(*Value) {
		count++
	})
	return count
}

// Range iterates depth-first over the tree's nodes, the root included.
// Range can take a set of functions matched by type. If the function
// returns a bool this is treated as a loop termination variable, if
// false the loop will terminate.
//
//	func(*Path, *Value) iterates over paths and values.
//	func(*Path, *Value) bool
//	func(string, *Value) iterates over rendered paths and values.
//	func(string, *Value) bool
//	func(*Path) iterates over only the paths.
//	func(*Path) bool
//	func(string) iterates over only the rendered paths.
//	func(string) bool
//	func(*Value) iterates over only the values.
//	func(*Value) bool
func (t *Tree) Range(fn interface{}) *Tree {
	rangeFn := genTreeRangeFunc(fn)
	var recur func(*Path, *Value) bool
	recur = func(path *Path, elem *Value) bool {
		out := elem.Perform(func(o *Object) bool {
			if !rangeFn(path, elem) {
				return false
			}
			cont := true
			o.Range(func(key string, v *Value) bool {
				cont = recur(path.push(key), v)
				return cont
			})
			return cont
		}, func(a *Array) bool {
			if !rangeFn(path, elem) {
				return false
			}
			cont := true
			a.Range(func(i int, v *Value) bool {
				cont = recur(path.pushIndex(i), v)
				return cont
			})
			return cont
		}, func(other interface{}) bool {
			return rangeFn(path, elem)
		})
		if out == nil {
			return rangeFn(path, elem)
		}
		return out.(bool)
	}
	recur(RootPath(), t.root)
	return t
}

func genTreeRangeFunc(fn interface{}) func(path *Path, v *Value) bool {
	switch f := fn.(type) {
	case func(*Path, *Value) bool:
		return f
	case func(*Path, *Value):
		return func(path *Path, value *Value) bool {
			f(path, value)
			return true
		}
	case func(string, *Value) bool:
		return func(path *Path, value *Value) bool {
			return f(path.String(), value)
		}
	case func(string, *Value):
		return func(path *Path, value *Value) bool {
			f(path.String(), value)
			return true
		}
	case func(*Value) bool:
		return func(_ *Path, value *Value) bool {
			return f(value)
		}
	case func(*Value):
		return func(_ *Path, value *Value) bool {
			f(value)
			return true
		}
	case func(*Path) bool:
		return func(path *Path, _ *Value) bool {
			return f(path)
		}
	case func(*Path):
		return func(path *Path, _ *Value) bool {
			f(path)
			return true
		}
	case func(string) bool:
		return func(path *Path, _ *Value) bool {
			return f(path.String())
		}
	case func(string):
		return func(path *Path, _ *Value) bool {
			f(path.String())
			return true
		}
	default:
		panic("invalid range function")
	}
}

// Equal implements equality for the tree. It compares the roots for
// equality.
func (t *Tree) Equal(other interface{}) bool {
	ot, isTree := other.(*Tree)
	if !isTree {
		return false
	}
	return equal(t.Root(), ot.Root())
}

// String returns a compact JSON representation of the tree.
func (t *Tree) String() string {
	return t.Root().String()
}

// Diff compares two trees and returns the operations required to edit
// the original to produce the other one.
func (t *Tree) Diff(other *Tree) *EditOperation {
	return &EditOperation{
		Actions: t.Root().diff(other.Root(), RootPath()),
	}
}

// Edit applies an EditOperation to the tree. This allows for capturing
// large change sets as a piece of data that can be evaluated as tree
// operations and applied to the tree.
func (t *Tree) Edit(edit *EditOperation) *Tree {
	op := edit.eval()
	return op(t)
}
