// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package mirror keeps an on-disk file in sync with the document store.
// Writes flow both ways: every committed document is written through to
// the file, and external modifications of the file are pushed back into
// the store. The mirror remembers the hash of its own last write so the
// filesystem event caused by the write-through is suppressed instead of
// looping back into the store.
package mirror

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DocumentSetter receives the document text read from an externally
// modified file. The store satisfies this.
type DocumentSetter interface {
	Set(text string)
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithLogger overrides the mirror's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Mirror) { m.log = log }
}

// MirrorNew creates a mirror that writes through to the file at path.
func MirrorNew(path string, opts ...Option) *Mirror {
	m := &Mirror{
		path: path,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mirror is the persisted-file collaborator of the document store.
type Mirror struct {
	path string
	log  logrus.FieldLogger

	mu          sync.Mutex
	lastWritten [sha256.Size]byte
	hasWritten  bool
}

// Path returns the mirrored file's path.
func (m *Mirror) Path() string {
	return m.path
}

// Mirror writes the document text to the file and tags the write so the
// resulting filesystem event is not reflected back into the store.
func (m *Mirror) Mirror(text string) error {
	m.mu.Lock()
	m.lastWritten = sha256.Sum256([]byte(text))
	m.hasWritten = true
	m.mu.Unlock()
	return os.WriteFile(m.path, []byte(text), 0o644)
}

// selfWrite reports whether content matches the mirror's own last
// write, meaning the filesystem event it caused should be skipped.
func (m *Mirror) selfWrite(content []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasWritten && sha256.Sum256(content) == m.lastWritten
}

// Watch follows the mirrored file until the context is cancelled and
// pushes externally made changes into dst. Events caused by the
// mirror's own write-through are suppressed.
func (m *Mirror) Watch(ctx context.Context, dst DocumentSetter) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory rather than the file so editors that
	// replace the file (write to temp, rename over) stay tracked.
	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.log.WithError(err).Warn("file watch error")
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			m.reload(dst)
		}
	}
}

func (m *Mirror) reload(dst DocumentSetter) {
	content, err := os.ReadFile(m.path)
	if err != nil {
		m.log.WithError(err).WithField("file", m.path).
			Warn("mirrored file unreadable")
		return
	}
	if m.selfWrite(content) {
		return
	}
	m.log.WithField("file", m.path).Info("external change, document reloaded")
	dst.Set(string(content))
}
