// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"errors"
	"strconv"
	"strings"
)

// PathNew builds a path from the supplied steps. A step may be a
// string (a field name), a non-negative int (a sequence index), or a
// Step. PathNew panics on any other step type and on negative indices.
func PathNew(steps ...interface{}) *Path {
	out := &Path{steps: make([]Step, 0, len(steps))}
	for _, s := range steps {
		switch v := s.(type) {
		case string:
			out.steps = append(out.steps, FieldStep(v))
		case int:
			out.steps = append(out.steps, IndexStep(v))
		case Step:
			out.steps = append(out.steps, v)
		default:
			panic(errors.New("invalid path step, must be a field name or index"))
		}
	}
	return out
}

// RootPath returns the empty path, which addresses the whole document.
func RootPath() *Path {
	return &Path{}
}

// Path is an ordered sequence of steps addressing a position inside a
// nested document. A path is meaningful only relative to a specific
// document shape; the empty path addresses the document root. Paths are
// never mutated in place, any derivation produces a new Path.
type Path struct {
	steps []Step
}

// FieldStep returns a step that descends into a keyed map member.
func FieldStep(name string) Step {
	return Step{field: name}
}

// IndexStep returns a step that descends into a sequence element.
// It panics if the index is negative.
func IndexStep(i int) Step {
	if i < 0 {
		panic(errors.New("path index steps must be non-negative"))
	}
	return Step{index: i, isIndex: true}
}

// Step is a single path element: a field name or a non-negative index.
type Step struct {
	field   string
	index   int
	isIndex bool
}

// IsIndex reports whether the step is a sequence index.
func (s Step) IsIndex() bool { return s.isIndex }

// Field returns the field name of a field step; it is "" for index steps.
func (s Step) Field() string { return s.field }

// Index returns the index of an index step; it is 0 for field steps.
func (s Step) Index() int { return s.index }

// objectKey is the key a step addresses when descending into a keyed
// map: index steps address the decimal string form of the index, which
// mirrors how uniformly-indexed engines treat numeric keys on maps.
func (s Step) objectKey() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.field
}

// String renders a step in bracketed index notation: ["name"] or [3].
func (s Step) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "[" + strconv.Quote(s.field) + "]"
}

// Length returns the number of steps in the path.
func (p *Path) Length() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}

// Steps returns the path's steps in order. The returned slice is a copy.
func (p *Path) Steps() []Step {
	if p == nil {
		return nil
	}
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Parent returns the path with the final step removed, or nil for the
// empty path.
func (p *Path) Parent() *Path {
	if p.Length() == 0 {
		return nil
	}
	out := &Path{steps: make([]Step, len(p.steps)-1)}
	copy(out.steps, p.steps[:len(p.steps)-1])
	return out
}

// Last returns the final step of the path and whether one exists.
func (p *Path) Last() (Step, bool) {
	if p.Length() == 0 {
		return Step{}, false
	}
	return p.steps[len(p.steps)-1], true
}

func (p *Path) push(field string) *Path {
	return p.pushStep(FieldStep(field))
}

func (p *Path) pushIndex(i int) *Path {
	return p.pushStep(IndexStep(i))
}

func (p *Path) pushStep(s Step) *Path {
	var steps []Step
	if p != nil {
		steps = p.steps
	}
	out := &Path{steps: make([]Step, len(steps), len(steps)+1)}
	copy(out.steps, steps)
	out.steps = append(out.steps, s)
	return out
}

// Equal determines if two paths address the same position.
// It implements a common equality interface so other must be
// interface{}.
func (p *Path) Equal(other interface{}) bool {
	op, isPath := other.(*Path)
	return isPath && op.String() == p.String()
}

// String formats a path in the read-only bracketed index notation used
// for display: the root is "$", otherwise $["users"][0]["name"]. This
// rendering is display-only and is never parsed back.
func (p *Path) String() string {
	if p.Length() == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p.steps {
		b.WriteString(s.String())
	}
	return b.String()
}
