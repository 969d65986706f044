// Package agenda holds the session-id set behind a user's registrations.
package agenda

import "sort"

// Set is an unordered set of session ids.
type Set map[string]struct{}

// NewSet returns a set holding the given ids; duplicates collapse.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. Adding a member leaves the set unchanged.
func (s Set) Add(id string) { s[id] = struct{}{} }

// Remove deletes id. Removing a non-member is a no-op.
func (s Set) Remove(id string) { delete(s, id) }

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// IDs returns the members in ascending order.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
