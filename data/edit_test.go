// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"testing"
)

func TestEdit(t *testing.T) {
	t.Run("assoc entry", func(t *testing.T) {
		doc := TreeFromObject(ObjectFrom(map[string]interface{}{
			"a": 1,
		}))
		op := EditOperationNew(
			EditEntryNew(EditAssoc, PathNew("a"), EditEntryValue(2)),
		)
		got := doc.Edit(op)
		assert(equal(got.At(PathNew("a")), ValueNew(2)), func() {
			t.Fatalf("expected 2, got %v\n", got.At(PathNew("a")))
		})
	})
	t.Run("delete entry", func(t *testing.T) {
		doc := TreeFromObject(ObjectFrom(map[string]interface{}{
			"a": 1,
			"b": 2,
		}))
		op := EditOperationNew(
			EditEntryNew(EditDelete, PathNew("a")),
		)
		got := doc.Edit(op)
		assert(!got.Contains(PathNew("a")) && got.Contains(PathNew("b")),
			func() {
				t.Fatalf("expected only b to survive, got %v\n", got)
			})
	})
	t.Run("merge entry", func(t *testing.T) {
		doc := TreeFromObject(ObjectFrom(map[string]interface{}{
			"container": map[string]interface{}{"foo": 1},
		}))
		op := EditOperationNew(
			EditEntryNew(EditMerge, PathNew("container"),
				EditEntryValue(map[string]interface{}{"bar": 2})),
		)
		got := doc.Edit(op)
		expected := TreeFromObject(ObjectFrom(map[string]interface{}{
			"container": map[string]interface{}{"foo": 1, "bar": 2},
		}))
		assert(got.Equal(expected), func() {
			t.Fatalf("expected %v, got %v\n", expected, got)
		})
	})
	t.Run("entries apply in order", func(t *testing.T) {
		doc := TreeNew()
		op := EditOperationNew(
			EditEntryNew(EditAssoc, PathNew("a"), EditEntryValue(1)),
			EditEntryNew(EditAssoc, PathNew("a"), EditEntryValue(2)),
			EditEntryNew(EditDelete, PathNew("a")),
			EditEntryNew(EditAssoc, PathNew("b"), EditEntryValue(3)),
		)
		got := doc.Edit(op)
		expected := TreeFromObject(ObjectFrom(map[string]interface{}{
			"b": 3,
		}))
		assert(got.Equal(expected), func() {
			t.Fatalf("expected %v, got %v\n", expected, got)
		})
	})
}

func TestDiff(t *testing.T) {
	t.Run("diff then edit reproduces the target", func(t *testing.T) {
		one := TreeFromObject(ObjectFrom(map[string]interface{}{
			"keep":   "same",
			"change": 1,
			"drop":   true,
			"nested": map[string]interface{}{
				"x": 1,
				"y": 2,
			},
		}))
		two := TreeFromObject(ObjectFrom(map[string]interface{}{
			"keep":   "same",
			"change": 2,
			"add":    "new",
			"nested": map[string]interface{}{
				"x": 1,
				"y": 3,
			},
		}))
		got := one.Edit(one.Diff(two))
		assert(got.Equal(two), func() {
			t.Fatalf("expected %v, got %v\n", two, got)
		})
	})
	t.Run("diff against self is empty", func(t *testing.T) {
		doc := testDocument()
		op := doc.Diff(doc)
		assert(len(op.Actions) == 0, func() {
			t.Fatalf("expected no actions, got %v\n", op)
		})
	})
	t.Run("array element changes diff at the element", func(t *testing.T) {
		one := TreeFromObject(ObjectFrom(map[string]interface{}{
			"xs": []interface{}{1, 2, 3},
		}))
		two := TreeFromObject(ObjectFrom(map[string]interface{}{
			"xs": []interface{}{1, 9, 3},
		}))
		got := one.Edit(one.Diff(two))
		assert(got.Equal(two), func() {
			t.Fatalf("expected %v, got %v\n", two, got)
		})
	})
}
