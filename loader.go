// FILE: lixenwraith/dotenv/loader.go
package dotenv

import (
	"sort"

	"go.uber.org/zap"
)

// Load reads the given dotenv files, in order, into the store.
// Without paths the Env's default file set is used (".env", ".env.local").
//
// Keys already present are never overwritten: the existing environment and
// earlier files take precedence over later ones, and repeated loads are no-ops
// for keys already set. Variable references are expanded against the store as
// each line is committed. Missing or unreadable files contribute nothing.
//
// Load returns the resolved paths of the files that were read.
func (e *Env) Load(paths ...string) []string {
	if len(paths) == 0 {
		paths = e.files
	}

	var loaded []string
	for _, name := range paths {
		content, path := e.readSource(name)
		if path == "" {
			continue
		}
		loaded = append(loaded, path)
		e.loadContent(content, path)
	}
	return loaded
}

// LoadString applies dotenv content directly, as if read from a file named origin.
func (e *Env) LoadString(content, origin string) {
	e.loadContent(content, origin)
}

// loadContent commits each assignment in content with set-if-absent semantics.
func (e *Env) loadContent(content, origin string) {
	committed := 0
	for _, a := range Parse(content) {
		if e.Has(a.Key) {
			continue
		}

		value := Expand(a.Value, e.store.Lookup)
		if err := e.store.Set(a.Key, value); err != nil {
			// The OS rejects some names (e.g. empty on Windows); skip like an unreadable line
			e.logger.Debug("env value rejected by store",
				zap.String("key", a.Key), zap.String("origin", origin), zap.Error(err))
			continue
		}

		e.mutex.Lock()
		e.origins[a.Key] = origin
		e.mutex.Unlock()
		committed++
	}

	e.logger.Debug("env file loaded", zap.String("origin", origin), zap.Int("committed", committed))
}

// Origin reports which file committed key during Load.
// Keys set explicitly, or present before loading, have no origin.
func (e *Env) Origin(key string) (string, bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	origin, ok := e.origins[key]
	return origin, ok
}

// Loaded returns the keys committed by Load, in sorted order.
func (e *Env) Loaded() []string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	keys := make([]string, 0, len(e.origins))
	for k := range e.origins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
