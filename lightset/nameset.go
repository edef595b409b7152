// Package lightset keeps the named lights, groups and locations a program
// can discover, as ordered sets that support successor and predecessor
// queries.
package lightset

import (
	"github.com/google/btree"
)

const degree = 8

// NameSet is a set of names kept in lexical order. The zero value is not
// usable; create sets with NewNameSet.
type NameSet struct {
	tree *btree.BTreeG[string]
}

// NewNameSet returns a set holding the given names.
func NewNameSet(names ...string) *NameSet {
	s := &NameSet{tree: btree.NewOrderedG[string](degree)}
	for _, name := range names {
		s.tree.ReplaceOrInsert(name)
	}
	return s
}

// Add inserts a name. It returns false if the name was already present.
func (s *NameSet) Add(name string) bool {
	_, existed := s.tree.ReplaceOrInsert(name)
	return !existed
}

// Remove deletes a name. It returns false if the name was not present.
func (s *NameSet) Remove(name string) bool {
	_, removed := s.tree.Delete(name)
	return removed
}

// Has reports whether the name is in the set.
func (s *NameSet) Has(name string) bool {
	return s.tree.Has(name)
}

// Len returns the number of names in the set.
func (s *NameSet) Len() int {
	return s.tree.Len()
}

// First returns the lowest name.
func (s *NameSet) First() (string, bool) {
	return s.tree.Min()
}

// Last returns the highest name.
func (s *NameSet) Last() (string, bool) {
	return s.tree.Max()
}

// Next returns the name immediately after the given one. It returns false
// if name is the last one or isn't in the set.
func (s *NameSet) Next(name string) (string, bool) {
	if !s.tree.Has(name) {
		return "", false
	}
	var next string
	var found bool
	s.tree.AscendGreaterOrEqual(name, func(item string) bool {
		if item == name {
			return true
		}
		next, found = item, true
		return false
	})
	return next, found
}

// Prev returns the name immediately before the given one. It returns false
// if name is the first one or isn't in the set.
func (s *NameSet) Prev(name string) (string, bool) {
	if !s.tree.Has(name) {
		return "", false
	}
	var prev string
	var found bool
	s.tree.DescendLessOrEqual(name, func(item string) bool {
		if item == name {
			return true
		}
		prev, found = item, true
		return false
	})
	return prev, found
}

// Names returns every name in order.
func (s *NameSet) Names() []string {
	names := make([]string, 0, s.tree.Len())
	s.tree.Ascend(func(item string) bool {
		names = append(names, item)
		return true
	})
	return names
}

// Clone returns an independent copy of the set. Copying is lazy, so a clone
// is cheap until one side is modified.
func (s *NameSet) Clone() *NameSet {
	return &NameSet{tree: s.tree.Clone()}
}
