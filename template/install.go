package template

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrNoTemplates is returned when none of the template sources exist.
var ErrNoTemplates = errors.New("could not find a templates directory")

// InstallSources lists where bundled templates are looked up, relative to
// the working directory and to the executable.
func InstallSources(exeDir string) []string {
	return []string{
		"templates",
		"/usr/share/walrus/templates",
		filepath.Join(exeDir, "templates"),
		filepath.Join(filepath.Dir(exeDir), "templates"),
	}
}

// Install copies every file of the first existing source directory into
// destDir, replacing files already there. A source that is destDir itself
// is skipped. It returns the copied names.
func Install(sources []string, destDir string) ([]string, error) {
	destInfo, _ := os.Stat(destDir)

	var srcDir string
	for _, dir := range sources {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if destInfo != nil && os.SameFile(info, destInfo) {
			slog.Warn("skipping templates source, same as destination", "dir", dir, "dest", destDir)
			continue
		}
		srcDir = dir
		break
	}
	if srcDir == "" {
		return nil, ErrNoTemplates
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create templates folder %q: %w", destDir, err)
	}

	files, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", srcDir, err)
	}

	var copied []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		src := filepath.Join(srcDir, file.Name())
		if err := copyFile(src, filepath.Join(destDir, file.Name())); err != nil {
			return copied, err
		}
		copied = append(copied, file.Name())
	}

	return copied, nil
}

func copyFile(src, dest string) error {
	slog.Info("copying", "from", src, "to", dest)

	srcFileInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot copy non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}

	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	outFile, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			slog.Error("could not close destination file", "name", dest, "error", closeErr)
		}
	}()

	if _, err = io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("could not copy from %q to %q: %w", src, dest, err)
	}

	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}
