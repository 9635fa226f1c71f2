// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package graph maintains the visual node/edge model derived from the
// current document. The builder rebuilds the whole model from the
// serialized document on every commit and indexes nodes by a stable
// identifier, the path's bracketed rendering, so consumers can find
// the same logical node again after a rebuild.
package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/LabibUF/jsoncrack.com/data"
)

// Node is one drawable element of the document graph.
type Node struct {
	// ID is the stable identifier: the bracketed path rendering.
	ID string
	// Label is the last path step's display form; "$" for the root.
	Label string
	// Kind is the node's variant: object, array, string, number,
	// boolean, or null.
	Kind string
	// Path addresses the node's value in the document.
	Path *data.Path
	// Display is the node's rendered text: the scalar's display
	// string for leaves, a size summary for containers.
	Display string
}

// Edge connects a parent node to one of its children by node ID.
type Edge struct {
	From string
	To   string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger overrides the builder's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Builder) { b.log = log }
}

// BuilderNew creates an empty graph builder.
func BuilderNew(opts ...Option) *Builder {
	b := &Builder{
		index: make(map[string]*Node),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Builder rebuilds and indexes the node/edge model. It tolerates empty
// and malformed documents: both yield an empty graph.
type Builder struct {
	mu    sync.Mutex
	nodes []*Node
	edges []Edge
	index map[string]*Node
	log   logrus.FieldLogger
}

// Rebuild regenerates the node/edge model from the serialized document.
// The previous model is replaced wholesale.
func (b *Builder) Rebuild(text string) {
	nodes, edges := buildModel(text, b.log)
	index := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}
	b.mu.Lock()
	b.nodes, b.edges, b.index = nodes, edges, index
	b.mu.Unlock()
}

func buildModel(text string, log logrus.FieldLogger) ([]*Node, []Edge) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	tree, err := data.TreeFromJSON([]byte(text))
	if err != nil {
		log.WithError(err).Warn("document is malformed, graph reset")
		return nil, nil
	}
	var nodes []*Node
	var edges []Edge
	tree.Range(func(path *data.Path, v *data.Value) {
		node := nodeNew(path, v)
		nodes = append(nodes, node)
		if parent := path.Parent(); parent != nil {
			edges = append(edges, Edge{
				From: parent.String(),
				To:   node.ID,
			})
		}
	})
	return nodes, edges
}

func nodeNew(path *data.Path, v *data.Value) *Node {
	label := "$"
	if last, ok := path.Last(); ok {
		label = last.String()
	}
	return &Node{
		ID:      path.String(),
		Label:   label,
		Kind:    kindOf(v),
		Path:    path,
		Display: displayOf(v),
	}
}

func kindOf(v *data.Value) string {
	switch {
	case v.IsNull():
		return "null"
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.IsString():
		return "string"
	case v.IsNumber():
		return "number"
	case v.IsBoolean():
		return "boolean"
	default:
		return "null"
	}
}

func displayOf(v *data.Value) string {
	switch {
	case v.IsObject():
		return fmt.Sprintf("{%d keys}", v.AsObject().Length())
	case v.IsArray():
		return fmt.Sprintf("[%d items]", v.AsArray().Length())
	default:
		return v.DisplayString()
	}
}

// NodeByID looks a node up by its stable identifier.
func (b *Builder) NodeByID(id string) (*Node, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.index[id]
	return n, ok
}

// Nodes returns the current node list.
func (b *Builder) Nodes() []*Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

// Edges returns the current edge list.
func (b *Builder) Edges() []Edge {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// Len returns the number of nodes in the model.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes)
}
