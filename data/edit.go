// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// EditAssoc is the edit action associated with the Assoc operation.
	EditAssoc EditAction = "assoc"
	// EditDelete is the edit action associated with the Delete operation.
	EditDelete EditAction = "delete"
	// EditMerge is the edit action associated with the Merge operation.
	EditMerge EditAction = "merge"
)

// EditAction is an action that can be performed by the edit engine.
type EditAction string

// String returns the EditAction as a string.
func (e EditAction) String() string {
	return string(e)
}

// EditEntry contains the action to perform as well as the path to
// perform it at and the value, if any, to be used.
type EditEntry struct {
	Action EditAction
	Path   *Path
	Value  *Value
}

// String returns a display form of the entry. The path rendering is
// display-only and is never parsed back.
func (e EditEntry) String() string {
	var b strings.Builder
	b.WriteString(`{"action":`)
	b.WriteString(strconv.Quote(e.Action.String()))
	b.WriteString(`,"path":`)
	b.WriteString(strconv.Quote(e.Path.String()))
	if e.Value != nil {
		b.WriteString(`,"value":`)
		b.WriteString(e.Value.String())
	}
	b.WriteString("}")
	return b.String()
}

func (e *EditEntry) evalAssoc() func(*Tree) *Tree {
	path, value := e.Path, e.Value
	return func(t *Tree) *Tree {
		return t.Assoc(path, value)
	}
}

func (e *EditEntry) evalDelete() func(*Tree) *Tree {
	path := e.Path
	return func(t *Tree) *Tree {
		return t.Delete(path)
	}
}

func (e *EditEntry) evalMerge() func(*Tree) *Tree {
	path, value := e.Path, e.Value
	return func(t *Tree) *Tree {
		val := t.At(path)
		val = val.Merge(value)
		return t.Assoc(path, val)
	}
}

func (e *EditEntry) eval() func(*Tree) *Tree {
	switch e.Action {
	case EditAssoc:
		return e.evalAssoc()
	case EditDelete:
		return e.evalDelete()
	case EditMerge:
		return e.evalMerge()
	default:
		panic(fmt.Errorf("unknown edit-action %v", e.Action))
	}
}

// EditOperation holds edit actions captured as data.
type EditOperation struct {
	Actions []EditEntry
}

// String returns a display form of the operation.
func (e *EditOperation) String() string {
	entries := make([]string, len(e.Actions))
	for i, action := range e.Actions {
		entries[i] = action.String()
	}
	return `{"actions":[` + strings.Join(entries, ",") + "]}"
}

func (e *EditOperation) eval() func(*Tree) *Tree {
	actions := make([]func(*Tree) *Tree, len(e.Actions))
	for i, action := range e.Actions {
		actions[i] = action.eval()
	}
	return func(t *Tree) *Tree {
		for _, action := range actions {
			t = action(t)
		}
		return t
	}
}

// EditOperationNew produces a new EditOperation from the
// provided entries. This allows one to declaratively build an
// EditOperation.
func EditOperationNew(entries ...EditEntry) *EditOperation {
	return &EditOperation{
		Actions: entries,
	}
}

type editEntryOptions struct {
	value *Value
}

// EditEntryOption is a constructor for the optional parts of an EditEntry.
type EditEntryOption func(*editEntryOptions)

// EditEntryValue produces an EditEntryOption that populates the value
// field of an EditEntry.
func EditEntryValue(val interface{}) EditEntryOption {
	return func(o *editEntryOptions) {
		o.value = ValueNew(val)
	}
}

// EditEntryNew constructs a new EditEntry from the provided parameters.
// The last option in wins if they write the same option.
func EditEntryNew(action EditAction, path *Path, options ...EditEntryOption) EditEntry {
	var opts editEntryOptions
	for _, option := range options {
		option(&opts)
	}
	return EditEntry{
		Action: action,
		Path:   path,
		Value:  opts.value,
	}
}
