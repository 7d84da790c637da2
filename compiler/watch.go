package compiler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/strenum/compiler/gen"
)

// Watch generates the enums of the schema file at path, then regenerates
// them whenever the file changes until ctx is done. Edits that leave the
// loaded schemas, features and package unchanged do not trigger a run.
// Schema and generation errors are logged and watching continues.
func Watch(ctx context.Context, path string, opts ...gen.Option) error {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("compiler: resolve schema path: %w", err)
	}
	w := &watcher{path: abs, opts: opts, log: cfg.Log().With("schema", abs)}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("compiler: create watcher: %w", err)
	}
	defer fw.Close()
	// Editors often replace files on save; watch the directory.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("compiler: watch directory: %w", err)
	}

	w.run(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			w.log.Debug("schema file changed", "op", event.Op.String())
			w.run(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("file watcher error", "error", err)
		}
	}
}

type watcher struct {
	path string
	opts []gen.Option
	log  *slog.Logger
	last []byte
}

// run regenerates the enums if the schema file changed since the last
// successful run.
func (w *watcher) run(ctx context.Context) {
	g, err := LoadGraph(w.path, w.opts...)
	if err != nil {
		w.log.Error("load schema failed", "error", err)
		return
	}
	key, err := snapshot(g)
	if err != nil {
		w.log.Error("snapshot schema failed", "error", err)
		return
	}
	if w.last != nil && bytes.Equal(key, w.last) {
		w.log.Debug("schema unchanged")
		return
	}
	if err := g.Gen(ctx); err != nil {
		w.log.Error("generation failed", "error", err)
		return
	}
	w.last = key
	w.log.Info("enums generated", "count", len(g.Nodes))
}

// snapshot returns the identity of a generation run: the schema snapshot
// followed by the package and the sorted feature names.
func snapshot(g *gen.Graph) ([]byte, error) {
	buf, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(g.Features))
	for i, f := range g.Features {
		names[i] = f.Name
	}
	slices.Sort(names)
	buf = append(buf, 0)
	buf = append(buf, g.Package...)
	buf = append(buf, 0)
	buf = append(buf, strings.Join(names, ",")...)
	return buf, nil
}
