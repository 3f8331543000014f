// File: lixenwraith/dotenv/builder.go
package dotenv

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for building an Env
type Builder struct {
	store   Store
	files   []string
	workDir string
	logger  *zap.Logger
	load    bool
	paths   []string
	err     error
}

// NewBuilder creates a new Env builder bound to the process environment
func NewBuilder() *Builder {
	return &Builder{
		files: append([]string(nil), DefaultFiles...),
	}
}

// WithStore sets the backing store
func (b *Builder) WithStore(store Store) *Builder {
	b.store = store
	return b
}

// WithFiles sets the file set Load reads when called without paths
func (b *Builder) WithFiles(files ...string) *Builder {
	b.files = append([]string(nil), files...)
	return b
}

// WithWorkDir sets the directory where upward file search starts
func (b *Builder) WithWorkDir(dir string) *Builder {
	abs, err := filepath.Abs(dir)
	if err != nil {
		b.err = fmt.Errorf("invalid work directory %q: %w", dir, err)
		return b
	}
	b.workDir = abs
	return b
}

// WithLogger sets the logger for load diagnostics
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithLoad loads the given files (or the default set) when Build runs
func (b *Builder) WithLoad(paths ...string) *Builder {
	b.load = true
	b.paths = append([]string(nil), paths...)
	return b
}

// Build creates the Env with all specified options
func (b *Builder) Build() (*Env, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.workDir != "" {
		info, err := os.Stat(b.workDir)
		if err != nil {
			return nil, fmt.Errorf("invalid work directory %q: %w", b.workDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("work directory %q is not a directory", b.workDir)
		}
	}

	e := New(b.store)
	e.files = b.files
	e.workDir = b.workDir
	if b.logger != nil {
		e.logger = b.logger
	}

	if b.load {
		e.Load(b.paths...)
	}

	return e, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Env {
	e, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("env build failed: %v", err))
	}
	return e
}
