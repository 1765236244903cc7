// Package loader defines how a schema is produced and keeps a registry of
// named loader constructors.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ridoystarlord/erd/database"
	"github.com/ridoystarlord/erd/schema"
)

// Loader produces a Schema from some external source.
type Loader interface {
	// Load returns the full schema or a typed error. It never returns a
	// partial schema.
	Load(ctx context.Context) (*schema.Schema, error)
}

// Options carries everything a factory may need. Each loader reads only
// the settings relevant to it.
type Options struct {
	// Database is the resolved connection config for database loaders.
	Database database.Config
	// File is the snapshot path for file based loaders.
	File string
}

// Factory builds a Loader. Construction may open connections.
type Factory func(ctx context.Context, opts Options) (Loader, error)

// ErrUnknownLoader is returned by New for a name nothing registered.
var ErrUnknownLoader = errors.New("unknown loader")

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a loader available by name. It panics on duplicates, as
// that can only be a programming error.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("loader: Register called twice for %q", name))
	}
	registry[name] = f
}

// New builds the loader registered under name.
func New(ctx context.Context, name string, opts Options) (Loader, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoader, name)
	}
	return f(ctx, opts)
}

// Names lists registered loaders in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases the loader's resources if it holds any.
func Close(ctx context.Context, l Loader) error {
	if c, ok := l.(interface{ Close(context.Context) error }); ok {
		return c.Close(ctx)
	}
	return nil
}
