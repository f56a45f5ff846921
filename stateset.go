package fa

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

var _ IntSet = &StateSet{}

// StateSet A mutable set of states. Ids are caller chosen and may be sparse, so members
// are kept in a map rather than indexed directly.
type StateSet struct {
	members     map[State]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(states ...State) *StateSet {
	s := &StateSet{
		members: make(map[State]struct{}, len(states)),
	}
	for _, state := range states {
		s.Add(state)
	}
	return s
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add Inserts state; negative ids are ignored.
func (s *StateSet) Add(state State) {
	if state < 0 || s.Contains(state) {
		return
	}
	s.members[state] = struct{}{}
	s.keyChanged()
}

func (s *StateSet) Contains(state State) bool {
	_, ok := s.members[state]
	return ok
}

// AddAll Inserts every member of other.
func (s *StateSet) AddAll(other *StateSet) {
	for state := range other.members {
		s.Add(state)
	}
}

// Intersects Returns true if s and other share at least one state.
func (s *StateSet) Intersects(other *StateSet) bool {
	small, large := s, other
	if small.Size() > large.Size() {
		small, large = large, small
	}
	for state := range small.members {
		if large.Contains(state) {
			return true
		}
	}
	return false
}

func (s *StateSet) Size() int {
	return len(s.members)
}

func (s *StateSet) IsEmpty() bool {
	return len(s.members) == 0
}

// All Iterates the members in ascending order.
func (s *StateSet) All() iter.Seq[State] {
	return slices.Values(s.GetArray())
}

func (s *StateSet) GetArray() []int {
	return slices.Sorted(maps.Keys(s.members))
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashInts(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok || is == nil {
		return false
	}
	if o, ok := other.(*StateSet); ok {
		if o == nil || o.Size() != s.Size() {
			return false
		}
		for state := range s.members {
			if !o.Contains(state) {
				return false
			}
		}
		return true
	}
	return sameInts(s, is)
}

// Freeze Returns an immutable snapshot of s tagged with the given result state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}

func (s *StateSet) String() string {
	parts := make([]string, 0, s.Size())
	for state := range s.All() {
		parts = append(parts, fmt.Sprint(state))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of ints, remembering the state it was assigned to.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Compares members only; the tagged state does not take part.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	switch o := other.(type) {
	case *FrozenIntSet:
		if f == nil || o == nil {
			return f == nil && o == nil
		}
	case *StateSet:
		if f == nil || o == nil {
			return f == nil && o == nil
		}
	}
	if f == nil {
		return false
	}
	return sameInts(f, is)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the result state this set was assigned to.
func (f *FrozenIntSet) State() int {
	return f.state
}
