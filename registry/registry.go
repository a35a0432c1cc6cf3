// Package registry holds the process-wide FileReaderRegistry: the
// ordered list of format Matchers and the keyed map of
// FileReaderDescriptors, plus the selection policy that picks a
// descriptor for a given (Format, Codec) pair.
package registry

import (
	"sync"

	"github.com/go-accuraterip/arcsdec/format"
)

// Registry holds registered Matchers and FileReaderDescriptors. It is
// built once via Bootstrap (or assembled manually with Register* for
// tests) and is safe for concurrent lookup once registration is
// finished. The Register* methods take no lock, so calling them while
// other goroutines look up the same Registry is not safe.
type Registry struct {
	matchers []format.Matcher
	readers  map[string]format.FileReaderDescriptor
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{readers: make(map[string]format.FileReaderDescriptor)}
}

// RegisterMatcher appends a Matcher. Registration order determines the
// order Matchers are probed in during type inference.
func (r *Registry) RegisterMatcher(m format.Matcher) {
	r.matchers = append(r.matchers, m)
}

// RegisterDescriptor adds a descriptor, keyed by its ID.
func (r *Registry) RegisterDescriptor(d format.FileReaderDescriptor) {
	r.readers[d.ID] = d
}

// Matchers returns the registered Matchers in registration order.
func (r *Registry) Matchers() []format.Matcher {
	return r.matchers
}

// Descriptors returns the keyed map of registered descriptors. Callers
// must not mutate the returned map.
func (r *Registry) Descriptors() map[string]format.FileReaderDescriptor {
	return r.readers
}

// Descriptor looks up a descriptor by ID.
func (r *Registry) Descriptor(id string) (format.FileReaderDescriptor, bool) {
	d, ok := r.readers[id]
	return d, ok
}

// HasFormat reports whether some registered Matcher recognizes f.
func (r *Registry) HasFormat(f format.Format) bool {
	for _, m := range r.matchers {
		if m.Format() == f {
			return true
		}
	}
	return false
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, building it on first use
// via Bootstrap. Subsequent calls return the same instance. This
// replaces the source library's static-constructor registration hooks
// with an explicit, lazily-evaluated one-shot initializer.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = Bootstrap()
	})
	return defaultReg
}
