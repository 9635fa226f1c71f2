// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Command jsoncrack is the document engine behind the JSON Crack graph
// editor. It reads and rewrites one JSON document by path, keeps the
// on-disk file and the graph model in sync with every edit, and can
// watch the file for edits made outside the process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LabibUF/jsoncrack.com/config"
	"github.com/LabibUF/jsoncrack.com/data"
	"github.com/LabibUF/jsoncrack.com/editor"
	"github.com/LabibUF/jsoncrack.com/graph"
	"github.com/LabibUF/jsoncrack.com/mirror"
	"github.com/LabibUF/jsoncrack.com/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	log    *logrus.Logger
	store  *store.Store
	graph  *graph.Builder
	mirror *mirror.Mirror
}

func rootCmd() *cobra.Command {
	var cfgPath string
	var file string
	a := &app{}
	root := &cobra.Command{
		Use:          "jsoncrack",
		Short:        "path-addressed JSON document editor engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cfgPath, file)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"YAML config file")
	root.PersistentFlags().StringVarP(&file, "file", "f", "",
		"document file (overrides config)")
	root.AddCommand(getCmd(a), setCmd(a), editCmd(a), graphCmd(a),
		watchCmd(a))
	return root
}

func (a *app) setup(cfgPath, file string) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if file != "" {
		cfg.File = file
	}
	a.cfg = cfg

	a.log = logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)

	a.graph = graph.BuilderNew(graph.WithLogger(a.log))
	// The watch command reuses this same mirror instance; the
	// self-write hash recorded by the store's write-through is what
	// lets Watch suppress the resulting filesystem event.
	a.mirror = mirror.MirrorNew(cfg.File, mirror.WithLogger(a.log))
	a.store = store.StoreNew(
		store.WithGraph(a.graph),
		store.WithMirror(a.mirror),
		store.WithIndent(cfg.Indent),
		store.WithLogger(a.log),
	)
	return nil
}

// load seeds the store from the document file. A missing file means the
// empty document.
func (a *app) load() error {
	a.store.SetLoading(true)
	content, err := os.ReadFile(a.cfg.File)
	if os.IsNotExist(err) {
		a.store.Set("{}")
		return nil
	}
	if err != nil {
		return err
	}
	a.store.Set(string(content))
	return nil
}

// parsePath turns command arguments into a path: all-digit arguments
// are index steps, everything else is a field step.
func parsePath(args []string) *data.Path {
	steps := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if i, err := strconv.Atoi(arg); err == nil && i >= 0 {
			steps = append(steps, i)
			continue
		}
		steps = append(steps, arg)
	}
	return data.PathNew(steps...)
}

func getCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [step...]",
		Short: "print the sub-value at a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			path := parsePath(args)
			tree, err := data.TreeFromJSON([]byte(a.store.Get()))
			if err != nil {
				return err
			}
			v, ok := tree.Find(path)
			if !ok {
				return fmt.Errorf("no value at %s", path)
			}
			msg, err := v.MarshalIndent(a.cfg.Indent)
			if err != nil {
				return err
			}
			cmd.Println(string(msg))
			return nil
		},
	}
}

func setCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <step...> <value>",
		Short: "replace the sub-value at a path and rewrite the file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			path := parsePath(args[:len(args)-1])
			raw := args[len(args)-1]
			// Values that do not parse as JSON are committed
			// as text, matching the editor's raw-save rule.
			var value interface{}
			v, err := data.ValueFromJSON([]byte(raw))
			if err != nil {
				a.log.WithError(err).
					Warn("value is not valid JSON, storing raw text")
				value = raw
			} else {
				value = v
			}
			if err := a.store.UpdateAtPath(path, value); err != nil {
				return err
			}
			cmd.Printf("updated %s\n", path)
			return nil
		},
	}
}

func editCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <step...> <field> <value>",
		Short: "edit one field of the object at a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			path := parsePath(args[:len(args)-2])
			field := args[len(args)-2]
			draft := args[len(args)-1]
			sess := editor.SessionNew(a.store, a.graph, path,
				editor.WithReadOnlyKey(a.cfg.ReadOnlyField),
				editor.WithLogger(a.log))
			if sess.Mode() != editor.ModeStructured {
				return fmt.Errorf("value at %s is not an object", path)
			}
			if sess.ReadOnly(field) {
				return fmt.Errorf("field %q is read-only", field)
			}
			if _, ok := sess.Draft(field); !ok {
				return fmt.Errorf("no editable field %q at %s",
					field, path)
			}
			sess.Edit()
			sess.SetDraft(field, draft)
			if err := sess.Save(); err != nil {
				return err
			}
			cmd.Printf("updated %s\n", path)
			return nil
		},
	}
}

func graphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "print the document's node/edge model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			for _, n := range a.graph.Nodes() {
				cmd.Printf("%s\t%s\t%s\n", n.ID, n.Kind, n.Display)
			}
			for _, e := range a.graph.Edges() {
				cmd.Printf("%s -> %s\n", e.From, e.To)
			}
			return nil
		},
	}
}

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "mirror the document file and follow external edits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()
			a.log.WithField("file", a.cfg.File).Info("watching document")
			err := a.mirror.Watch(ctx, a.store)
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}
