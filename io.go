// FILE: lixenwraith/dotenv/io.go
package dotenv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Export and Save.
type Format string

const (
	FormatDotenv Format = "env"
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

// Snapshot returns the current values of keys.
// Without keys it returns every key committed by Load. Absent keys are omitted.
func (e *Env) Snapshot(keys ...string) map[string]string {
	if len(keys) == 0 {
		keys = e.Loaded()
	}

	snapshot := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := e.store.Lookup(key); ok {
			snapshot[key] = value
		}
	}
	return snapshot
}

// Export writes a Snapshot of keys to w in the given format.
// Dotenv output loads back to the same values, except that ${NAME}
// references inside values are expanded again on load.
func (e *Env) Export(w io.Writer, format Format, keys ...string) error {
	snapshot := e.Snapshot(keys...)

	switch format {
	case FormatDotenv, "":
		return writeDotenv(w, snapshot)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(snapshot); err != nil {
			return fmt.Errorf("failed to marshal env data to TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("failed to marshal env data to YAML: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal env data to JSON: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return nil
}

// Save writes a Snapshot of keys to path atomically.
// The format is chosen from the file extension; unknown extensions use dotenv.
func (e *Env) Save(path string, keys ...string) error {
	var buf bytes.Buffer
	if err := e.Export(&buf, detectFileFormat(path), keys...); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatDotenv
	}
}

// writeDotenv emits KEY='value' lines in key order.
func writeDotenv(w io.Writer, snapshot map[string]string) error {
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		line, err := formatAssignment(key, snapshot[key])
		if err != nil {
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// formatAssignment quotes value so that ParseLine recovers it exactly.
// Values holding a quote or backslash use the doubly-quoted escaped form.
func formatAssignment(key, value string) (string, error) {
	if _, ok := ParseLine(key + "="); !ok {
		return "", fmt.Errorf("key %q cannot be written as a dotenv assignment", key)
	}
	if strings.IndexFunc(value, isLineBreak) >= 0 {
		return "", fmt.Errorf("value of %s spans multiple lines", key)
	}

	if !strings.ContainsAny(value, `'\`) {
		return key + "='" + value + "'", nil
	}

	var b strings.Builder
	b.WriteString(key)
	b.WriteString("=''")
	for i := 0; i < len(value); i++ {
		if c := value[i]; c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteString("''")
	return b.String(), nil
}

// atomicWriteFile writes data to a temp file beside path and renames it over path.
// The temp file is removed if any step fails.
func atomicWriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create env directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("cannot write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("cannot sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("cannot set mode on %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}
