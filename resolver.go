package lz4pack

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// Resolver looks up the serialization capability for a Go type. The returned
// value is a Formatter[T] for the looked-up T; GetFormatter performs the
// lookup and the assertion in one step.
type Resolver interface {
	Lookup(t reflect.Type) (any, bool)
}

// Registry is the standard Resolver: a concurrent type-to-formatter map.
// Registration and lookup are safe from any goroutine.
type Registry struct {
	m *xsync.Map[reflect.Type, any]
}

var _ Resolver = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{m: xsync.NewMap[reflect.Type, any]()}
}

// Lookup implements Resolver.
func (r *Registry) Lookup(t reflect.Type) (any, bool) {
	return r.m.Load(t)
}

// Register binds a formatter to T in the registry, replacing any previous
// binding for the same type.
func Register[T any](r *Registry, f Formatter[T]) {
	r.m.Store(reflect.TypeOf((*T)(nil)).Elem(), f)
}

// GetFormatter resolves the Formatter for T, or ErrNoFormatter when the
// resolver has no usable binding.
func GetFormatter[T any](r Resolver) (Formatter[T], error) {
	if r == nil {
		return nil, ErrNilResolver
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := r.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFormatter, t)
	}
	f, ok := v.(Formatter[T])
	if !ok {
		return nil, fmt.Errorf("%w: binding for %s is a %T", ErrNoFormatter, t, v)
	}
	return f, nil
}

var (
	defaultResolverOnce sync.Once
	defaultResolver     Resolver
)

// DefaultResolver returns the process-wide resolver used by the entry points
// without an explicit Resolver argument. On first use it is initialized,
// exactly once, to a Registry pre-loaded with the builtin formatters.
func DefaultResolver() Resolver {
	defaultResolverOnce.Do(func() {
		r := NewRegistry()
		Register[[]byte](r, BytesFormatter{})
		Register[string](r, StringFormatter{})
		defaultResolver = r
	})
	return defaultResolver
}

// SetDefaultResolver replaces the process-wide resolver. The replacement is
// observed by all subsequent calls. Replacing it while another goroutine is
// triggering the first lazy initialization is a race the package does not
// guard against; install a custom resolver before serving traffic.
func SetDefaultResolver(r Resolver) {
	defaultResolverOnce.Do(func() {})
	defaultResolver = r
}
