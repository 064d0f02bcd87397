/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package factory

import (
	"iter"
	"sort"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/registry"
)

// ClassKey is the discriminator entry that marks a mapping as promotable.
const ClassKey = "class"

// Factory promotes raw PIX response data into objects. It holds the owning
// session so every promoted object can issue further API calls, and a
// registry that supplies behaviors per class name.
//
// A Factory performs no I/O and no locking of its own; it operates purely
// on already-fetched in-memory trees.
type Factory struct {
	session pix.Session
	reg     *registry.Registry
}

// Option configures a Factory.
type Option func(*Factory)

// WithRegistry makes the factory resolve class names against reg instead
// of registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(f *Factory) { f.reg = reg }
}

// New returns a Factory bound to session. The session is held opaquely and
// forwarded to every promoted object; the factory never calls it.
func New(session pix.Session, opts ...Option) *Factory {
	f := &Factory{session: session, reg: registry.Default}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Session returns the session the factory forwards to promoted objects.
func (f *Factory) Session() pix.Session { return f.session }

// className returns the mapping's class discriminator, or "" when the
// mapping carries none. A discriminator that is not a non-empty string is
// treated as absent.
func className(data map[string]any) string {
	name, _ := data[ClassKey].(string)
	return name
}

// promote builds the type for data's class name and wraps data in a fresh
// instance.
func (f *Factory) promote(name string, data map[string]any) *pix.Object {
	return f.reg.Build(name).New(f, f.session, data)
}

// Objectify deep-transforms data, replacing any mapping that carries a
// class discriminator with a promoted object. Container shape is preserved
// recursively: maps stay maps (unless promoted), slices stay slices in
// order, sets stay sets. Scalars and unrecognized values are returned
// unchanged.
//
// A promoted mapping's descendants are not transformed again by this call;
// the object promotes its own entries at construction.
func (f *Factory) Objectify(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if name := className(v); name != "" {
			return f.promote(name, v)
		}
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = f.Objectify(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = f.Objectify(e)
		}
		return out
	case pix.Set:
		out := make(pix.Set, len(v))
		for e := range v {
			out.Add(f.Objectify(e))
		}
		return out
	default:
		return data
	}
}

// Contents lazily yields the immediate mapping-valued children of node:
// entry values that are mappings, plus mappings found directly inside
// slice- or set-valued entries. It does not recurse, and non-mapping
// values are skipped.
//
// Entries are visited in sorted key order, then in sequence order within
// each slice-valued entry. The sequence is restartable; each range starts
// a fresh traversal. (Set members cannot be mappings, see pix.Set.)
func (f *Factory) Contents(node map[string]any) iter.Seq[map[string]any] {
	return func(yield func(map[string]any) bool) {
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v := node[k].(type) {
			case map[string]any:
				if !yield(v) {
					return
				}
			case []any:
				for _, e := range v {
					if m, ok := e.(map[string]any); ok {
						if !yield(m) {
							return
						}
					}
				}
			}
		}
	}
}

// Children lazily yields the promoted objects found within node,
// depth-first and pre-order: node's own promotion (when it carries a class
// discriminator) comes before its descendants'.
//
// recursive gates only the first level of descent; once the walk has
// descended it always continues to the bottom. With recursive false only
// node itself is considered.
func (f *Factory) Children(node map[string]any, recursive bool) iter.Seq[*pix.Object] {
	return func(yield func(*pix.Object) bool) {
		f.children(node, recursive, yield)
	}
}

func (f *Factory) children(node map[string]any, recursive bool, yield func(*pix.Object) bool) bool {
	if name := className(node); name != "" {
		if !yield(f.promote(name, node)) {
			return false
		}
	}
	if !recursive {
		return true
	}
	for data := range f.Contents(node) {
		if !f.children(data, true, yield) {
			return false
		}
	}
	return true
}
