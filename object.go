/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package pix

import (
	"context"
	"fmt"
	"iter"
	"sort"
)

// Session is the contract promoted objects use to issue further calls back
// into the PIX API. The promotion layer itself only holds and forwards the
// session; it never calls any of these methods.
type Session interface {
	Get(ctx context.Context, path string) (any, error)
	Put(ctx context.Context, path string, payload any) (any, error)
	Post(ctx context.Context, path string, payload any) (any, error)
	Delete(ctx context.Context, path string, payload any) (any, error)
}

// Objectifier is the part of the factory an Object needs to transform and
// walk its own data. It is satisfied by factory.Factory and exists so that
// objects can carry a back-reference to the factory that built them without
// an import cycle.
type Objectifier interface {
	// Objectify deep-transforms raw data, promoting discriminated mappings.
	Objectify(data any) any
	// Contents lazily yields the immediate mapping-valued children of node.
	Contents(node map[string]any) iter.Seq[map[string]any]
	// Children lazily yields promoted objects found within node.
	Children(node map[string]any, recursive bool) iter.Seq[*Object]
}

// Object is the default promoted object. It wraps a raw mapping returned
// from a PIX endpoint and exposes dictionary-style access to its entries,
// the owning session, and any behaviors bound for its class name.
//
// Every promotion produces a fresh Object; promoting the same raw mapping
// twice yields two independent instances.
type Object struct {
	class     string
	factory   Objectifier
	session   Session
	raw       map[string]any
	entries   map[string]any
	behaviors []any
}

// NewObject wraps data in an Object of the given class. Entry values are
// objectified up front, so nested discriminated mappings come back as
// nested objects.
func NewObject(factory Objectifier, session Session, class string, data map[string]any) *Object {
	entries := make(map[string]any, len(data))
	for k, v := range data {
		entries[k] = factory.Objectify(v)
	}
	return &Object{
		class:   class,
		factory: factory,
		session: session,
		raw:     data,
		entries: entries,
	}
}

// Class returns the PIX class name this object was promoted as.
func (o *Object) Class() string { return o.class }

// Session returns the owning session, as supplied to the factory.
func (o *Object) Session() Session { return o.session }

// Factory returns the factory that built this object.
func (o *Object) Factory() Objectifier { return o.factory }

// Raw returns the original mapping this object wraps, untransformed.
// The returned map is shared; callers must treat it as read-only.
func (o *Object) Raw() map[string]any { return o.raw }

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.entries) }

// Has reports whether the object carries an entry for key.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Keys returns the entry keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the objectified value for key, or nil when absent.
func (o *Object) Get(key string) any { return o.entries[key] }

// Lookup returns the objectified value for key and whether it was present.
func (o *Object) Lookup(key string) (any, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// GetString returns the value for key if it is a string, otherwise "".
func (o *Object) GetString(key string) string {
	s, _ := o.entries[key].(string)
	return s
}

// GetBool returns the value for key if it is a bool, otherwise false.
func (o *Object) GetBool(key string) bool {
	b, _ := o.entries[key].(bool)
	return b
}

// GetMap returns the value for key if it is a plain mapping, otherwise nil.
func (o *Object) GetMap(key string) map[string]any {
	m, _ := o.entries[key].(map[string]any)
	return m
}

// GetList returns the value for key if it is a sequence, otherwise nil.
func (o *Object) GetList(key string) []any {
	l, _ := o.entries[key].([]any)
	return l
}

// GetObject returns the value for key if it is a promoted object,
// otherwise nil.
func (o *Object) GetObject(key string) *Object {
	obj, _ := o.entries[key].(*Object)
	return obj
}

// Identifier returns the object's "label" entry, falling back to "id".
func (o *Object) Identifier() string {
	if s := o.GetString("label"); s != "" {
		return s
	}
	return o.GetString("id")
}

// ID returns the object's "id" entry.
func (o *Object) ID() string { return o.GetString("id") }

func (o *Object) String() string {
	return fmt.Sprintf("<%s(%q)>", o.class, o.Identifier())
}

// Children finds all promoted objects downstream of this one. The walk
// starts at the object's contents rather than the object itself, so the
// result never includes the receiver.
func (o *Object) Children() []*Object {
	var results []*Object
	for data := range o.factory.Contents(o.raw) {
		for child := range o.factory.Children(data, true) {
			results = append(results, child)
		}
	}
	return results
}

// Bind appends a behavior instance to the object. It is called by
// registry.Type.New in registration order and is not normally needed by
// application code.
func (o *Object) Bind(behavior any) { o.behaviors = append(o.behaviors, behavior) }

// Behaviors returns the bound behavior instances in registration order.
func (o *Object) Behaviors() []any { return o.behaviors }

// As returns the first behavior of o satisfying type T.
//
//	if project, ok := pix.As[*model.Project](obj); ok {
//	    ...
//	}
func As[T any](o *Object) (T, bool) {
	for _, b := range o.Behaviors() {
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
