package template

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"

	"walrus/parallel"
)

var tokenRe = regexp.MustCompile(`\{([a-zA-Z0-9._]+)\}`)

// Render replaces every known {name} token of content. Unknown tokens are
// kept as they are.
func Render(content string, vars map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(content, func(tok string) string {
		if v, ok := vars[tok[1:len(tok)-1]]; ok {
			return v
		}
		return tok
	})
}

// RenderFile renders the template at src into dest, keeping the permissions
// of src.
func RenderFile(src, dest string, vars map[string]string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat template %q: %w", src, err)
	}

	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("could not read template %q: %w", src, err)
	}

	rendered := []byte(Render(string(content), vars))
	if _, err := WriteFileMode(filepath.Dir(dest), filepath.Base(dest), rendered, info.Mode().Perm()); err != nil {
		return err
	}
	return nil
}

// ProcessDir renders every regular file of srcDir, symlinks followed, into
// destDir under the same name, returning the sorted list of written files.
func ProcessDir(srcDir, destDir string, vars map[string]string, workers int) ([]string, error) {
	files, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", srcDir, err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create destination folder %q: %w", destDir, err)
	}

	var (
		mu        sync.Mutex
		processed []string
		errs      []error
	)
	pool := parallel.Start(workers)
	for _, file := range files {
		src := filepath.Join(srcDir, file.Name())
		if info, err := os.Stat(src); err != nil || !info.Mode().IsRegular() {
			continue
		}

		pool.Do(func() {
			dest := filepath.Join(destDir, file.Name())
			err := RenderFile(src, dest, vars)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("could not process template", "file", src, "error", err)
				errs = append(errs, err)
				return
			}
			processed = append(processed, dest)
		})
	}
	pool.Wait()

	slices.Sort(processed)
	return processed, errors.Join(errs...)
}

// SearchDirs lists the template directories in lookup order.
func SearchDirs(explicit, configDir string) []string {
	var dirs []string
	if explicit != "" {
		dirs = append(dirs, explicit)
	}
	if configDir != "" {
		dirs = append(dirs, filepath.Join(configDir, "templates"))
	}
	return append(dirs, "templates", "/usr/share/walrus/templates")
}

// ProcessFirst renders the first directory of dirs that yields at least one
// file. An empty dir means no template directory had any file.
func ProcessFirst(dirs []string, destDir string, vars map[string]string, workers int) (string, []string, error) {
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}

		processed, err := ProcessDir(dir, destDir, vars, workers)
		if err != nil {
			return dir, processed, err
		}
		if len(processed) > 0 {
			return dir, processed, nil
		}
	}
	return "", nil, nil
}
