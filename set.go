/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package pix

import "sort"

// Set is an unordered collection node. Elements must be comparable; note
// that plain maps and slices therefore cannot be Set members, while
// promoted *Object values can.
type Set map[any]struct{}

// NewSet returns a Set containing elems, deduplicated by equality.
func NewSet(elems ...any) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts v into the set.
func (s Set) Add(v any) { s[v] = struct{}{} }

// Has reports whether v is a member of the set.
func (s Set) Has(v any) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Values returns the members in unspecified order.
func (s Set) Values() []any {
	out := make([]any, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Strings returns the string members in sorted order, ignoring any
// non-string members.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	sort.Strings(out)
	return out
}
