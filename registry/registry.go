package registry

import (
	"sync"

	"github.com/blingdigital/pix"
)

// Constructor builds a behavior instance for a freshly promoted object.
// Behaviors typically embed *pix.Object and add methods on top of it.
type Constructor func(obj *pix.Object) any

// Registry maps PIX class names to the ordered list of behavior
// constructors bound when a type is built for that name.
//
// Registration is append-only and expected to happen during process
// startup, before any data is walked; after that the registry is read
// concurrently by factories. Registering the same constructor twice for a
// name is not deduplicated; the bases list keeps the repeat.
type Registry struct {
	mu    sync.RWMutex
	bases map[string][]Constructor
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{bases: make(map[string][]Constructor)}
}

// Register appends ctor to the constructors for name and returns ctor
// unchanged, so a registration can sit in a package-level var declaration
// next to the behavior it registers:
//
//	var newProject = registry.Register("PIXProject", func(o *pix.Object) any {
//	    return &Project{Object: o}
//	})
//
// Later registrations for the same name accumulate rather than replace.
func (r *Registry) Register(name string, ctor Constructor) Constructor {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases[name] = append(r.bases[name], ctor)
	return ctor
}

// Build returns a fresh Type for name. The type carries whatever
// constructors are registered for name, in registration order; a name with
// no registrations yields a type whose instances are plain pix.Object
// values with no behaviors. Build never fails and performs no caching.
//
// name is only a lookup key; any string works, including ones that are not
// valid Go identifiers.
func (r *Registry) Build(name string) Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bases := make([]Constructor, len(r.bases[name]))
	copy(bases, r.bases[name])
	return Type{name: name, bases: bases}
}

// Names returns the registered class names, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.bases))
	for name := range r.bases {
		names = append(names, name)
	}
	return names
}

// Type is a synthesized PIX class: a display name plus the behavior
// constructors registered for it at build time.
type Type struct {
	name  string
	bases []Constructor
}

// Name returns the class name the type was built for, verbatim.
func (t Type) Name() string { return t.name }

// NumBases returns how many behavior constructors the type carries.
func (t Type) NumBases() int { return len(t.bases) }

// New instantiates the type: it wraps data in a pix.Object and binds one
// behavior per registered constructor, in registration order. Every call
// produces an independent instance.
func (t Type) New(factory pix.Objectifier, session pix.Session, data map[string]any) *pix.Object {
	obj := pix.NewObject(factory, session, t.name, data)
	for _, ctor := range t.bases {
		obj.Bind(ctor(obj))
	}
	return obj
}

// Default is the process-wide registry used by the package-level Register
// and Build functions. Behaviors shipped with this module register here
// from their init functions.
var Default = New()

// Register appends ctor for name in the Default registry.
func Register(name string, ctor Constructor) Constructor {
	return Default.Register(name, ctor)
}

// Build returns a fresh Type for name from the Default registry.
func Build(name string) Type {
	return Default.Build(name)
}
