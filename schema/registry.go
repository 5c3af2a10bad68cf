package schema

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"record-mapper/convention"
	"record-mapper/internal/diagnostic"
)

// Registry caches the schemas of record types. Nested record types reachable
// from a built type are built along with it. Types that were not registered
// with options of their own inherit the flavor and convention of the record
// they are nested in.
type Registry struct {
	mu       sync.RWMutex
	schemas  map[reflect.Type]*Schema
	options  map[reflect.Type][]Option
	defaults settings
	logger   *zap.Logger
}

// Default is the process-wide registry.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[reflect.Type]*Schema),
		options: make(map[reflect.Type][]Option),
		logger:  zap.NewNop(),
	}
}

// SetLogger replaces the no-op logger.
func (r *Registry) SetLogger(logger *zap.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger = logger
}

// SetDefaults sets the flavor and convention of record types that are neither
// configured nor nested in another record. Cached schemas are dropped.
func (r *Registry) SetDefaults(f Flavor, c convention.Convention) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults = settings{flavor: f, convention: c}
	r.schemas = make(map[reflect.Type]*Schema)
}

// Register records options for t, added to any registered before.
// Cached schemas are dropped, they may have been built from older options.
func (r *Registry) Register(t reflect.Type, opts ...Option) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.options[t] = append(r.options[t], opts...)
	r.schemas = make(map[reflect.Type]*Schema)
}

// Register records options for T in r.
func Register[T any](r *Registry, opts ...Option) {
	r.Register(reflect.TypeFor[T](), opts...)
}

// For returns the schema of T from the default registry.
func For[T any](opts ...Option) (*Schema, error) {
	return Default.Build(reflect.TypeFor[T](), opts...)
}

// Lookup returns the cached schema of t.
func (r *Registry) Lookup(t reflect.Type) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[t]
	return s, ok
}

// Build returns the schema of t built from its registered options followed
// by opts. Without extra options a cached schema is returned when there is one.
// Freshly built schemas are cached unless another one got there first.
func (r *Registry) Build(t reflect.Type, opts ...Option) (*Schema, error) {
	if len(opts) == 0 {
		if s, ok := r.Lookup(t); ok {
			return s, nil
		}
	}

	r.mu.RLock()
	defaults, logger := r.defaults, r.logger
	r.mu.RUnlock()

	var (
		d     dealer
		diags diagnostic.Diagnostics
		built = make(map[reflect.Type]*Schema)
		fresh []*Schema
	)

	d.Needs(t, defaults)
	for next, inherited, ok := d.NextNeeds(); ok; next, inherited, ok = d.NextNeeds() {
		registered := r.registered(next)

		if next != t {
			if existing, ok := r.Lookup(next); ok && (registered != nil || existing.inherits(inherited)) {
				built[next] = existing
				continue
			}
		}

		o := registered
		if next == t {
			o = append(o, opts...)
		}

		s, nested := buildRecord(next, inherited, collect(o), &diags)
		built[next] = s
		fresh = append(fresh, s)

		for _, n := range nested {
			d.Needs(n, settings{flavor: s.Flavor, convention: s.Convention})
		}
	}

	if diags.HasErrors() {
		logger.Debug("record schema rejected", zap.Stringer("type", t), zap.Int("errors", len(diags.Errors)))
		return nil, &SchemaError{Type: t.String(), Diagnostics: diags}
	}

	for _, s := range fresh {
		for _, f := range s.Fields {
			if f.Elem.IsRecord() {
				f.Elem.Nested = built[f.Elem.Value()]
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range fresh {
		if _, exists := r.schemas[s.Type]; exists {
			continue
		}

		r.schemas[s.Type] = s
		logger.Debug("record schema built",
			zap.Stringer("type", s.Type),
			zap.Int("fields", len(s.Fields)),
			zap.Stringer("flavor", s.Flavor),
			zap.String("convention", s.Convention.Name()),
		)
	}

	if existing, ok := r.schemas[t]; ok && len(opts) == 0 {
		return existing, nil
	}

	return built[t], nil
}

func (r *Registry) registered(t reflect.Type) []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts, ok := r.options[t]
	if !ok {
		return nil
	}

	return append([]Option{}, opts...)
}

func (s *Schema) inherits(inherited settings) bool {
	return s.Flavor == inherited.flavor && s.Convention == inherited.convention
}
