// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LabibUF/jsoncrack.com/data"
	"github.com/LabibUF/jsoncrack.com/graph"
	"github.com/LabibUF/jsoncrack.com/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// newTestSession wires a real store and graph builder around the
// supplied document.
func newTestSession(t *testing.T, doc string, path *data.Path) (*Session, *store.Store) {
	t.Helper()
	log := quietLogger()
	builder := graph.BuilderNew(graph.WithLogger(log))
	st := store.StoreNew(
		store.WithGraph(builder),
		store.WithLogger(log),
	)
	st.Set(doc)
	return SessionNew(st, builder, path, WithLogger(log)), st
}

func documentAt(t *testing.T, st *store.Store, path *data.Path) *data.Value {
	t.Helper()
	tree, err := data.TreeFromJSON([]byte(st.Get()))
	require.NoError(t, err)
	return tree.At(path)
}

func TestSessionModeSelection(t *testing.T) {
	t.Run("objects edit structured", func(t *testing.T) {
		s, _ := newTestSession(t, `{"user":{"name":"ada"}}`,
			data.PathNew("user"))
		assert.Equal(t, ModeStructured, s.Mode())
	})
	t.Run("scalars edit raw", func(t *testing.T) {
		s, _ := newTestSession(t, `{"name":"ada"}`,
			data.PathNew("name"))
		assert.Equal(t, ModeRaw, s.Mode())
		assert.Equal(t, "ada", s.Raw())
	})
	t.Run("arrays edit raw", func(t *testing.T) {
		s, _ := newTestSession(t, `{"xs":[1,2]}`, data.PathNew("xs"))
		assert.Equal(t, ModeRaw, s.Mode())
	})
}

func TestSessionDrafts(t *testing.T) {
	s, _ := newTestSession(t,
		`{"user":{"name":"ada","age":36,"admin":true,"tags":["x"]}}`,
		data.PathNew("user"))

	// Container members are preserved on save, not drafted.
	assert.Equal(t, []string{"admin", "age", "name"}, s.Fields())

	draft, ok := s.Draft("age")
	require.True(t, ok)
	assert.Equal(t, "36", draft)

	draft, ok = s.Draft("admin")
	require.True(t, ok)
	assert.Equal(t, "true", draft)

	_, ok = s.Draft("tags")
	assert.False(t, ok)
}

func TestSessionRawSeed(t *testing.T) {
	t.Run("numbers seed their display string", func(t *testing.T) {
		s, _ := newTestSession(t, `{"n":2.5}`, data.PathNew("n"))
		assert.Equal(t, "2.5", s.Raw())
	})
	t.Run("null seeds the null literal", func(t *testing.T) {
		s, _ := newTestSession(t, `{"n":null}`, data.PathNew("n"))
		assert.Equal(t, "null", s.Raw())
	})
	t.Run("arrays seed an index-keyed object of primitives", func(t *testing.T) {
		s, _ := newTestSession(t, `{"xs":["a",1,{"skip":true}]}`,
			data.PathNew("xs"))
		assert.Equal(t, "{\n  \"0\": \"a\",\n  \"1\": 1\n}", s.Raw())
	})
}

func TestSessionSaveStructured(t *testing.T) {
	s, st := newTestSession(t,
		`{"user":{"name":"ada","age":36,"tags":["x"]}}`,
		data.PathNew("user"))

	s.Edit()
	require.True(t, s.Editing())
	s.SetDraft("age", "37")
	s.SetDraft("name", "grace")
	require.NoError(t, s.Save())
	assert.False(t, s.Editing())

	saved := documentAt(t, st, data.PathNew("user")).AsObject()
	assert.True(t, saved.At("age").Equal(data.ValueNew(37)))
	assert.True(t, saved.At("name").Equal(data.ValueNew("grace")))
	// Untouched container members survive the save.
	assert.True(t, saved.Contains("tags"))
}

func TestSessionSaveIgnoresUnknownFieldDrafts(t *testing.T) {
	s, st := newTestSession(t, `{"user":{"age":36}}`, data.PathNew("user"))

	s.Edit()
	s.SetDraft("nickname", "lovelace")
	require.NoError(t, s.Save())

	saved := documentAt(t, st, data.PathNew("user")).AsObject()
	assert.False(t, saved.Contains("nickname"))
	assert.True(t, saved.At("age").Equal(data.ValueNew(36)))
}

func TestSessionSaveCoercesTypes(t *testing.T) {
	s, st := newTestSession(t, `{"user":{"age":42}}`, data.PathNew("user"))

	s.Edit()
	s.SetDraft("age", "abc")
	require.NoError(t, s.Save())

	// Unparseable numeric drafts keep the original value.
	saved := documentAt(t, st, data.PathNew("user", "age"))
	assert.True(t, saved.Equal(data.ValueNew(42)))
}

func TestSessionReadOnlyField(t *testing.T) {
	s, st := newTestSession(t,
		`{"node":{"color":"red","label":"a"}}`,
		data.PathNew("node"))

	assert.True(t, s.ReadOnly("color"))
	assert.False(t, s.ReadOnly("label"))

	s.Edit()
	s.SetDraft("color", "blue")
	s.SetDraft("label", "b")
	require.NoError(t, s.Save())

	saved := documentAt(t, st, data.PathNew("node")).AsObject()
	assert.True(t, saved.At("color").Equal(data.ValueNew("red")))
	assert.True(t, saved.At("label").Equal(data.ValueNew("b")))
}

func TestSessionReadOnlyKeyOverride(t *testing.T) {
	log := quietLogger()
	st := store.StoreNew(store.WithLogger(log))
	st.Set(`{"node":{"locked":"yes","color":"red"}}`)
	s := SessionNew(st, nil, data.PathNew("node"),
		WithReadOnlyKey("locked"), WithLogger(log))

	assert.True(t, s.ReadOnly("locked"))
	assert.False(t, s.ReadOnly("color"))
}

func TestSessionSaveRaw(t *testing.T) {
	t.Run("valid JSON commits the parsed value", func(t *testing.T) {
		s, st := newTestSession(t, `{"n":1}`, data.PathNew("n"))
		s.Edit()
		s.SetRaw(`{"replaced":true}`)
		require.NoError(t, s.Save())

		saved := documentAt(t, st, data.PathNew("n"))
		require.True(t, saved.IsObject())
		assert.True(t, saved.AsObject().At("replaced").
			Equal(data.ValueNew(true)))
	})
	t.Run("invalid JSON commits the raw text as a string", func(t *testing.T) {
		s, st := newTestSession(t, `{"n":1}`, data.PathNew("n"))
		s.Edit()
		s.SetRaw("not json {")
		require.NoError(t, s.Save())

		saved := documentAt(t, st, data.PathNew("n"))
		assert.True(t, saved.Equal(data.ValueNew("not json {")))
	})
	t.Run("trailing data commits the raw text as a string", func(t *testing.T) {
		s, st := newTestSession(t, `{"n":1}`, data.PathNew("n"))
		s.Edit()
		s.SetRaw("1 2")
		require.NoError(t, s.Save())

		saved := documentAt(t, st, data.PathNew("n"))
		assert.True(t, saved.Equal(data.ValueNew("1 2")))
	})
}

func TestSessionSaveRefreshesNode(t *testing.T) {
	s, _ := newTestSession(t, `{"user":{"age":36}}`, data.PathNew("user"))

	s.Edit()
	s.SetDraft("age", "37")
	require.NoError(t, s.Save())

	node := s.Node()
	require.NotNil(t, node)
	assert.Equal(t, `$["user"]`, node.ID)
	assert.Equal(t, "{1 keys}", node.Display)

	// Drafts are re-derived from the committed document.
	draft, ok := s.Draft("age")
	require.True(t, ok)
	assert.Equal(t, "37", draft)
}

func TestSessionCancel(t *testing.T) {
	s, st := newTestSession(t, `{"user":{"age":36}}`, data.PathNew("user"))
	before := st.Get()

	s.Edit()
	s.SetDraft("age", "99")
	s.Cancel()

	assert.False(t, s.Editing())
	assert.Equal(t, before, st.Get())
	draft, _ := s.Draft("age")
	assert.Equal(t, "36", draft)
}

func TestCoerce(t *testing.T) {
	for _, tc := range []struct {
		name     string
		original *data.Value
		draft    string
		want     *data.Value
	}{
		{"number parses", data.ValueNew(42), "17", data.ValueNew(17)},
		{"number parses floats", data.ValueNew(1), "2.5", data.ValueNew(2.5)},
		{"number trims space", data.ValueNew(1), " 3 ", data.ValueNew(3)},
		{"number keeps original on garbage", data.ValueNew(42), "abc", data.ValueNew(42)},
		{"boolean true", data.ValueNew(false), "true", data.ValueNew(true)},
		{"boolean case-insensitive", data.ValueNew(false), " TRUE ", data.ValueNew(true)},
		{"boolean keeps original on garbage", data.ValueNew(true), "yes", data.ValueNew(true)},
		{"null stays null", data.ValueNew(nil), "null", data.ValueNew(nil)},
		{"null becomes string", data.ValueNew(nil), "hello", data.ValueNew("hello")},
		{"string verbatim", data.ValueNew("x"), "123", data.ValueNew("123")},
		{"string keeps spaces", data.ValueNew("x"), " padded ", data.ValueNew(" padded ")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Coerce(tc.original, tc.draft)
			assert.True(t, got.Equal(tc.want),
				"expected %v, got %v", tc.want, got)
		})
	}
}
