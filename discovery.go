// FILE: lixenwraith/dotenv/discovery.go
package dotenv

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// readSource resolves name to file content.
// Absolute paths are read directly; relative names are searched upward from the
// working directory. A source that cannot be read yields empty content and no path.
func (e *Env) readSource(name string) (content string, path string) {
	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			e.logger.Debug("env file not readable", zap.String("path", name), zap.Error(err))
			return "", ""
		}
		return string(data), name
	}

	start, err := e.searchRoot()
	if err != nil {
		e.logger.Debug("cannot determine search root", zap.String("name", name), zap.Error(err))
		return "", ""
	}

	for _, candidate := range ancestorPaths(start, name) {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		return string(data), candidate
	}

	e.logger.Debug("env file not found", zap.String("name", name), zap.String("from", start))
	return "", ""
}

// searchRoot returns the directory where upward search begins.
func (e *Env) searchRoot() (string, error) {
	if e.workDir != "" {
		return e.workDir, nil
	}
	return os.Getwd()
}

// ancestorPaths lists dir/name for dir and each of its ancestors, nearest first.
func ancestorPaths(dir, name string) []string {
	var paths []string
	dir = filepath.Clean(dir)
	for {
		paths = append(paths, filepath.Join(dir, name))
		parent := filepath.Dir(dir)
		if parent == dir {
			return paths
		}
		dir = parent
	}
}
