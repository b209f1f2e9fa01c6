package services

import (
	"os"
	"sync"

	"badgegen/internal/errors"
)

// FontRegistry maps logical font names to TTF file paths. It replaces
// process-global font registration: build one in main, register the
// configured fonts once, and hand it to the composer. Lookups are safe from
// concurrent workers.
type FontRegistry struct {
	mu    sync.RWMutex
	paths map[string]string
}

// NewFontRegistry creates an empty font registry
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		paths: make(map[string]string),
	}
}

// Register associates a logical font name with a TTF file path
func (r *FontRegistry) Register(name, path string) error {
	if _, err := os.Stat(path); err != nil {
		return &errors.AssetNotFoundError{Path: path}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[name] = path
	return nil
}

// Path returns the file path registered for a font name
func (r *FontRegistry) Path(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, ok := r.paths[name]
	if !ok {
		return "", &errors.UnknownFontError{Font: name}
	}
	return path, nil
}
