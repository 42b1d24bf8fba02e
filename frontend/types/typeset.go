package types

import (
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
)

// TypeSet is a finite set of types, or the universal set containing every
// type. Members are kept in a map sorted by qualified name, so enumeration
// and rendering are deterministic. The zero value is the empty set.
type TypeSet struct {
	all   bool
	types *immutable.SortedMap[string, Type]
}

func NewTypeSet(members ...Type) TypeSet {
	var s TypeSet
	for _, t := range members {
		s.Insert(t)
	}
	return s
}

// UniversalTypeSet returns the set containing every type. It cannot be
// enumerated; lattice operations treat it as an absorbing element.
func UniversalTypeSet() TypeSet {
	return TypeSet{all: true}
}

func (s TypeSet) IsAll() bool { return s.all }

func (s TypeSet) Empty() bool {
	return !s.all && (s.types == nil || s.types.Len() == 0)
}

// Size is the number of members. The universal set has no meaningful size.
func (s TypeSet) Size() int {
	if s.all {
		panic("types: size of the universal type set")
	}
	if s.types == nil {
		return 0
	}
	return s.types.Len()
}

// Insert adds a member. Inserting into the universal set is a no-op.
func (s *TypeSet) Insert(t Type) {
	if s.all {
		return
	}
	if s.types == nil {
		s.types = immutable.NewSortedMap[string, Type](nil)
	}
	s.types = s.types.Set(t.Name().String(), t)
}

// InsertSet adds every member of other. A universal operand absorbs the
// receiver's content.
func (s *TypeSet) InsertSet(other TypeSet) {
	if s.all {
		return
	}
	if other.all {
		s.all = true
		s.types = nil
		return
	}
	for t := range other.All() {
		s.Insert(t)
	}
}

func (s TypeSet) Contains(t Type) bool {
	if s.all {
		return true
	}
	if s.types == nil {
		return false
	}
	found, ok := s.types.Get(t.Name().String())
	return ok && found == t
}

// All enumerates the members in qualified-name order.
func (s TypeSet) All() iter.Seq[Type] {
	if s.all {
		panic("types: cannot enumerate the universal type set")
	}
	return func(yield func(Type) bool) {
		if s.types == nil {
			return
		}
		itr := s.types.Iterator()
		for !itr.Done() {
			_, t, _ := itr.Next()
			if !yield(t) {
				return
			}
		}
	}
}

// Equal compares by membership, not by how the sets were built.
func (s TypeSet) Equal(other TypeSet) bool {
	if s.all || other.all {
		return s.all == other.all
	}
	if s.Size() != other.Size() {
		return false
	}
	for t := range s.All() {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

func (s TypeSet) String() string {
	if s.all {
		return "{*}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for t := range s.All() {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(t.Name().String())
	}
	sb.WriteString("}")
	return sb.String()
}
