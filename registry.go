package coerce

import "reflect"

// Resolver resolves compact qualified type names for the type-descriptor
// category. Implementations must be read-only while conversions run;
// population is an external lifecycle concern.
type Resolver interface {
	// Resolve maps a compact qualified name to a type.
	Resolve(name string) (reflect.Type, bool)
	// Name produces the compact qualified name of a type.
	Name(t reflect.Type) string
}

// TypeRegistry is a map-backed Resolver. Register all types before handing
// the registry to an engine; it performs no locking.
type TypeRegistry struct {
	byName map[string]reflect.Type
}

// NewTypeRegistry creates a registry pre-populated with the given types.
func NewTypeRegistry(types ...reflect.Type) *TypeRegistry {
	registry := &TypeRegistry{byName: make(map[string]reflect.Type, len(types))}
	for _, t := range types {
		registry.Register(t)
	}
	return registry
}

// Register adds a type under its compact qualified name.
func (r *TypeRegistry) Register(t reflect.Type) {
	r.byName[r.Name(t)] = t
}

// Resolve implements Resolver.
func (r *TypeRegistry) Resolve(name string) (reflect.Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Name implements Resolver using the short package-qualified notation, e.g.
// "time.Time".
func (r *TypeRegistry) Name(t reflect.Type) string {
	return t.String()
}
