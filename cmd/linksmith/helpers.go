// Shared helpers for linksmith CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-robotics/linksmith/internal/sqlite"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := model.Config{
		Backend: model.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// fetchLinks returns all stored links hydrated to *model.Link.
func fetchLinks(backend *sqlite.Backend) ([]*model.Link, error) {
	table, err := backend.GetTable(model.LinksTable)
	if err != nil {
		return nil, err
	}
	entities, err := table.Fetch(nil)
	if err != nil {
		return nil, err
	}
	links := make([]*model.Link, 0, len(entities))
	for _, e := range entities {
		if l, ok := e.(*model.Link); ok {
			links = append(links, l)
		}
	}
	return links, nil
}

// resolveSelection returns the links named by the comma-separated spec,
// matched by ID or name. An empty spec selects every stored link.
func resolveSelection(backend *sqlite.Backend, spec string) ([]*model.Link, error) {
	links, err := fetchLinks(backend)
	if err != nil {
		return nil, err
	}
	if spec == "" {
		return links, nil
	}

	byKey := make(map[string]*model.Link, 2*len(links))
	for _, l := range links {
		byKey[l.LinkID] = l
		byKey[l.Name] = l
	}

	var selected []*model.Link
	for _, raw := range strings.Split(spec, ",") {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		l, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("link %q: %w", key, model.ErrNotFound)
		}
		selected = append(selected, l)
	}
	return selected, nil
}

// findLink returns the single link matching the given ID or name.
func findLink(backend *sqlite.Backend, key string) (*model.Link, error) {
	selected, err := resolveSelection(backend, key)
	if err != nil {
		return nil, err
	}
	if len(selected) != 1 {
		return nil, fmt.Errorf("link %q: %w", key, model.ErrNotFound)
	}
	return selected[0], nil
}

// saveLink persists a mutated link back to the store.
func saveLink(backend *sqlite.Backend, link *model.Link) error {
	table, err := backend.GetTable(model.LinksTable)
	if err != nil {
		return err
	}
	_, err = table.Set(link.LinkID, link)
	return err
}

// parseVector parses a comma-separated "x,y,z" triple.
func parseVector(s string) (model.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model.Vector3{}, fmt.Errorf("expected x,y,z but got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.Vector3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return model.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
