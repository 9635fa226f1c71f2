// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package editor implements the edit-session contract for mutating one
// sub-value of the current document. A session reads the sub-value at
// its target path, holds per-field or raw text drafts while the user
// edits, coerces the drafts back toward their original runtime types,
// and commits the assembled value through the store. Drafts live only
// in the session; they are re-derived from the document whenever the
// target changes and are never part of the document itself.
package editor

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/LabibUF/jsoncrack.com/data"
	"github.com/LabibUF/jsoncrack.com/graph"
)

// Mode selects how the session edits its target.
type Mode int

const (
	// ModeStructured edits a keyed map one primitive field at a time.
	ModeStructured Mode = iota
	// ModeRaw edits the value's textual representation as one draft.
	ModeRaw
)

// DefaultReadOnlyKey is the reserved field that is rendered disabled
// and always re-committed with its original value.
const DefaultReadOnlyKey = "color"

// DocumentStore is the slice of the store a session needs.
type DocumentStore interface {
	Get() string
	UpdateAtPath(path *data.Path, value interface{}) error
}

// Index is the graph collaborator's lookup used to refresh the
// session's displayed node after a commit.
type Index interface {
	NodeByID(id string) (*graph.Node, bool)
}

// Option configures a Session.
type Option func(*Session)

// WithReadOnlyKey overrides the reserved read-only field name.
func WithReadOnlyKey(key string) Option {
	return func(s *Session) { s.readOnlyKey = key }
}

// WithLogger overrides the session's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// SessionNew creates an edit session for the sub-value at path and
// seeds its drafts from the current document.
func SessionNew(store DocumentStore, index Index, path *data.Path, opts ...Option) *Session {
	s := &Session{
		store:       store,
		index:       index,
		path:        path,
		readOnlyKey: DefaultReadOnlyKey,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// Session is one edit session over a single sub-value.
type Session struct {
	store       DocumentStore
	index       Index
	path        *data.Path
	readOnlyKey string
	log         logrus.FieldLogger

	mode    Mode
	editing bool
	value   *data.Value
	drafts  map[string]string
	raw     string
	node    *graph.Node
}

// reset discards all drafts and re-derives them from the current
// document.
func (s *Session) reset() {
	s.value = s.currentValue()
	s.drafts = nil
	s.raw = ""
	if s.value != nil && s.value.IsObject() {
		s.mode = ModeStructured
		s.drafts = make(map[string]string)
		s.value.AsObject().Range(func(key string, v *data.Value) {
			if v != nil && !v.IsPrimitive() {
				// Container fields are not editable per
				// field; they are preserved on save.
				return
			}
			s.drafts[key] = v.DisplayString()
		})
		return
	}
	s.mode = ModeRaw
	s.raw = s.rawSeed()
}

func (s *Session) currentValue() *data.Value {
	text := s.store.Get()
	if text == "" {
		text = "{}"
	}
	tree, err := data.TreeFromJSON([]byte(text))
	if err != nil {
		s.log.WithError(err).Warn("current document is malformed")
		return nil
	}
	return tree.At(s.path)
}

// rawSeed builds the raw-mode draft: the scalar's display string for
// primitives, otherwise a pretty-printed object synthesized from the
// value's primitive-typed members (array rows summarized by index).
func (s *Session) rawSeed() string {
	v := s.value
	if v == nil || v.IsPrimitive() {
		return v.DisplayString()
	}
	synth := data.ObjectNew()
	v.AsArray().Range(func(i int, elem *data.Value) {
		if elem == nil || !elem.IsPrimitive() {
			return
		}
		synth = synth.Assoc(strconv.Itoa(i), elem)
	})
	msg, err := data.ValueNew(synth).MarshalIndent("  ")
	if err != nil {
		return v.DisplayString()
	}
	return string(msg)
}

// Mode returns the session's editing mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Editing returns whether the session is in edit mode.
func (s *Session) Editing() bool {
	return s.editing
}

// Edit switches the session into edit mode.
func (s *Session) Edit() {
	s.editing = true
}

// Path returns the session's target path.
func (s *Session) Path() *data.Path {
	return s.path
}

// Value returns the session's read-only view of the sub-value.
func (s *Session) Value() *data.Value {
	return s.value
}

// Node returns the graph node the session last refreshed, if any.
func (s *Session) Node() *graph.Node {
	return s.node
}

// Fields returns the structured-mode draft field names in sorted order.
func (s *Session) Fields() []string {
	out := make([]string, 0, len(s.drafts))
	for k := range s.drafts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ReadOnly reports whether the field is the reserved read-only key.
// Read-only drafts are rendered disabled and never coerced or applied.
func (s *Session) ReadOnly(field string) bool {
	return field == s.readOnlyKey
}

// Draft returns the draft text for a structured-mode field.
func (s *Session) Draft(field string) (string, bool) {
	d, ok := s.drafts[field]
	return d, ok
}

// SetDraft replaces the draft text for a structured-mode field. Drafts
// for unknown or read-only fields are accepted but ignored on save.
func (s *Session) SetDraft(field, text string) {
	if s.drafts == nil {
		return
	}
	s.drafts[field] = text
}

// Raw returns the raw-mode draft text.
func (s *Session) Raw() string {
	return s.raw
}

// SetRaw replaces the raw-mode draft text.
func (s *Session) SetRaw(text string) {
	s.raw = text
}

// Cancel discards every draft, re-derives them from the current
// unedited sub-value, and leaves edit mode. The store is not touched.
func (s *Session) Cancel() {
	s.reset()
	s.editing = false
}

// Save assembles the new sub-value from the drafts, commits it through
// the store, leaves edit mode, and refreshes the session's node from
// the graph index once the commit has completed.
func (s *Session) Save() error {
	var out interface{}
	switch s.mode {
	case ModeStructured:
		out = s.assembleStructured()
	default:
		out = s.assembleRaw()
	}
	if err := s.store.UpdateAtPath(s.path, out); err != nil {
		return err
	}
	s.editing = false
	s.reset()
	if s.index != nil {
		if node, ok := s.index.NodeByID(s.path.String()); ok {
			s.node = node
		}
	}
	return nil
}

// assembleStructured starts from the original object so container
// fields and the read-only key are re-sent unchanged, then applies the
// coerced draft of every editable field. Drafts for fields absent from
// the original object are ignored; editing never adds members.
func (s *Session) assembleStructured() *data.Object {
	obj := s.value.AsObject()
	for field, draft := range s.drafts {
		if field == s.readOnlyKey {
			continue
		}
		original, ok := obj.Find(field)
		if !ok {
			continue
		}
		obj = obj.Assoc(field, Coerce(original, draft))
	}
	return obj
}

// assembleRaw deserializes the raw draft; when the draft is not valid
// JSON the save proceeds anyway with the raw text as the committed
// value, surfacing the failure only as a diagnostic.
func (s *Session) assembleRaw() *data.Value {
	v, err := data.ValueFromJSON([]byte(s.raw))
	if err != nil {
		s.log.WithError(err).WithField("path", s.path.String()).
			Warn("draft is not valid JSON, committing raw text")
		return data.ValueNew(s.raw)
	}
	return v
}

// Coerce converts an edited field's draft text back toward the original
// value's runtime type:
//
//   - number originals parse the draft as a number, keeping the
//     original when parsing fails
//   - boolean originals accept the trimmed, case-insensitive literals
//     "true" and "false", keeping the original otherwise
//   - null originals accept the trimmed, case-insensitive literal
//     "null" to remain null; any other draft becomes a string value
//   - string originals take the draft verbatim
//
// A field's type is therefore preserved across an edit unless the user
// deliberately types a recognizable alternate-type literal.
func Coerce(original *data.Value, draft string) *data.Value {
	switch {
	case original == nil || original.IsNull():
		if strings.EqualFold(strings.TrimSpace(draft), "null") {
			return data.ValueNew(nil)
		}
		return data.ValueNew(draft)
	case original.IsNumber():
		f, err := strconv.ParseFloat(strings.TrimSpace(draft), 64)
		if err != nil {
			return original
		}
		return data.ValueNew(f)
	case original.IsBoolean():
		switch strings.ToLower(strings.TrimSpace(draft)) {
		case "true":
			return data.ValueNew(true)
		case "false":
			return data.ValueNew(false)
		default:
			return original
		}
	default:
		return data.ValueNew(draft)
	}
}
