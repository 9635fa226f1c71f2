// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package store holds the single current document a process is editing.
// The store keeps the document in serialized form, applies path
// addressed updates through the data package's immutable tree, and fans
// every committed document out to its collaborators: the graph model
// rebuilder and the on-disk file mirror. The store is an explicit,
// injectable container; callers construct one and pass it where it is
// needed rather than reaching for a global.
package store

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"jsouthworth.net/go/try"

	"github.com/LabibUF/jsoncrack.com/data"
)

// Rebuilder is the graph collaborator. It receives the full serialized
// document on every commit and must tolerate the empty document.
type Rebuilder interface {
	Rebuild(text string)
}

// FileMirror is the persisted-file collaborator. Implementations tag
// their own writes so the reciprocal change notification does not loop
// back into the store.
type FileMirror interface {
	Mirror(text string) error
}

// Option configures a Store.
type Option func(*Store)

// WithGraph wires the graph-rebuild collaborator.
func WithGraph(g Rebuilder) Option {
	return func(s *Store) { s.graph = g }
}

// WithMirror wires the file-mirror collaborator.
func WithMirror(m FileMirror) Option {
	return func(s *Store) { s.mirror = m }
}

// WithLogger overrides the store's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithIndent overrides the indentation used when a path update rewrites
// the serialized document. The default is two spaces.
func WithIndent(indent string) Option {
	return func(s *Store) { s.indent = indent }
}

// StoreNew creates a document store with an empty document.
func StoreNew(opts ...Option) *Store {
	s := &Store{
		indent: "  ",
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store owns the current serialized document. All mutation goes through
// Set, Clear, and UpdateAtPath; readers always observe a fully
// committed value because the new document is built in full before the
// single assignment inside Set.
type Store struct {
	mu      sync.Mutex
	text    string
	loading bool

	graph  Rebuilder
	mirror FileMirror
	indent string
	log    logrus.FieldLogger
}

// Get returns the current serialized document.
func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Loading returns whether a document load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetLoading marks a document load as in flight. Set and Clear reset it.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Set stores text verbatim as the new current document, clears the
// loading flag, and synchronously notifies both collaborators. Both
// observe the new text before Set returns; the return is the commit
// completion signal callers sequence their refresh on.
func (s *Store) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.loading = false
	s.mu.Unlock()
	s.notify(text)
}

// Clear resets the store to the empty document and notifies both
// collaborators so they reset alongside it.
func (s *Store) Clear() {
	s.mu.Lock()
	s.text = ""
	s.loading = false
	s.mu.Unlock()
	s.notify("")
}

func (s *Store) notify(text string) {
	if s.graph != nil {
		s.graph.Rebuild(text)
	}
	if s.mirror != nil {
		if err := s.mirror.Mirror(text); err != nil {
			s.log.WithError(err).Warn("file mirror update failed")
		}
	}
}

// UpdateAtPath replaces the sub-value at the path with the supplied
// value and commits the resulting document through Set. The update
// fails closed: if the current document does not deserialize, or the
// value is not representable, the store is left untouched, no
// collaborator is notified, and the error is returned as a diagnostic.
func (s *Store) UpdateAtPath(path *data.Path, value interface{}) error {
	text := s.Get()
	if text == "" {
		text = "{}"
	}
	tree, err := data.TreeFromJSON([]byte(text))
	if err != nil {
		s.log.WithError(err).WithField("path", path.String()).
			Warn("current document is malformed, update skipped")
		return fmt.Errorf("current document is not valid JSON: %w", err)
	}
	// ValueNew panics on unrepresentable values; contain that at
	// the store boundary so the operation degrades to a no-op.
	out, err := try.Apply(func() *data.Tree {
		return tree.Assoc(path, value)
	})
	if err != nil {
		s.log.WithError(err).WithField("path", path.String()).
			Warn("update value rejected")
		return err
	}
	msg, err := out.(*data.Tree).MarshalIndent(s.indent)
	if err != nil {
		return err
	}
	s.Set(string(msg))
	return nil
}
