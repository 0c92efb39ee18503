package model

import "fmt"

// Registry holds every declared schema and maps ingestion directives to
// schemas. Registration is explicit: a schema the registry was never told
// about is never dispatched. Register everything at startup, before the
// first ByDirective call; the directive index is built lazily and memoized.
type Registry struct {
	schemas     map[string]*Schema
	order       []string
	byDirective map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema to the registry. The schema must be concrete
// (see Schema.Validate) and its name and directive must not collide with an
// already-registered schema.
func (r *Registry) Register(sc *Schema) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	if _, ok := r.schemas[sc.Name]; ok {
		return fmt.Errorf("schema %q already registered", sc.Name)
	}
	if sc.Directive != "" {
		for _, name := range r.order {
			if other := r.schemas[name]; other.Directive == sc.Directive {
				return fmt.Errorf("directive %q already bound to schema %q", sc.Directive, other.Name)
			}
		}
	}
	r.schemas[sc.Name] = sc
	r.order = append(r.order, sc.Name)
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init-time declarations.
func (r *Registry) MustRegister(sc *Schema) {
	if err := r.Register(sc); err != nil {
		panic(err)
	}
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, error) {
	sc, ok := r.schemas[name]
	if !ok {
		return nil, &NotRegisteredError{Name: name}
	}
	return sc, nil
}

// Schemas returns all registered schemas in registration order.
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemas[name])
	}
	return out
}

// ByDirective returns the directive-to-schema index. The index is built on
// first call and memoized; schemas registered afterwards are not picked up.
// Schemas without a directive are omitted.
func (r *Registry) ByDirective() map[string]*Schema {
	if r.byDirective == nil {
		idx := make(map[string]*Schema)
		for _, name := range r.order {
			sc := r.schemas[name]
			if sc.Directive != "" {
				idx[sc.Directive] = sc
			}
		}
		r.byDirective = idx
	}
	return r.byDirective
}
