package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/matzehuels/prismview/pkg/errors"
)

// outputTarget decides where rendered artifacts land. exact is honored
// only when a single artifact is written; otherwise files are named
// base.<format>.
type outputTarget struct {
	exact string
	base  string
}

// newOutputTarget derives a target from an -o value and a fallback base.
func newOutputTarget(output, fallback string) outputTarget {
	if output == "" {
		return outputTarget{base: fallback}
	}
	return outputTarget{exact: output, base: basePath(output)}
}

func (t outputTarget) path(format string, n int) string {
	if t.exact != "" && n == 1 {
		return t.exact
	}
	return t.base + "." + format
}

// writeArtifacts writes each artifact and returns the paths in format order.
func writeArtifacts(t outputTarget, artifacts map[string][]byte) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		p := t.path(f, len(formats))
		if err := writeFile(p, artifacts[f]); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := validateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// validateOutputPath checks the path syntax and rejects paths that name an
// existing directory.
func validateOutputPath(path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.New(errors.ErrCodeInvalidInput, "output path %s is a directory", path)
	}
	return nil
}
