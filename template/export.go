package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"walrus/palette"
)

//go:embed builtin
var builtinFS embed.FS

// JSONExport is the name of the JSON export.
const JSONExport = "colors.json"

// Builtins lists the exports written for every palette.
func Builtins() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}

	names := []string{JSONExport}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

// RenderBuiltin renders the named embedded export.
func RenderBuiltin(name string, vars map[string]string) ([]byte, error) {
	content, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown export %q: %w", name, err)
	}
	return []byte(Render(string(content), vars)), nil
}

// WriteExports writes every builtin export of p into dir.
func WriteExports(dir string, p palette.Palette, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create output folder %q: %w", dir, err)
	}

	vars := Bindings(p, opts)

	var (
		g       errgroup.Group
		mu      sync.Mutex
		written []string
	)
	for _, name := range Builtins() {
		g.Go(func() error {
			var data []byte
			var err error
			if name == JSONExport {
				data, err = MarshalJSON(p, opts)
			} else {
				data, err = RenderBuiltin(name, vars)
			}
			if err != nil {
				return err
			}

			path, err := WriteFile(dir, name, data)
			if err != nil {
				return err
			}

			mu.Lock()
			written = append(written, path)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	slices.Sort(written)
	return written, err
}

// WriteFile replaces dir/name with data, going through a temporary file in
// the same folder.
func WriteFile(dir, name string, data []byte) (string, error) {
	return WriteFileMode(dir, name, data, 0o644)
}

// WriteFileMode is WriteFile with the permissions of the written file.
func WriteFileMode(dir, name string, data []byte, perm os.FileMode) (path string, err error) {
	path = filepath.Join(dir, name)

	outFile, err := os.CreateTemp(dir, name)
	if err != nil {
		return path, fmt.Errorf("could not create temporary destination %q: %w", name, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", name, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", name, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", name, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		return path, fmt.Errorf("could not write destination %q: %w", name, err)
	}
	if err = outFile.Chmod(perm); err != nil {
		return path, fmt.Errorf("could not set mode of destination %q: %w", name, err)
	}

	canRename = true
	return path, nil
}
