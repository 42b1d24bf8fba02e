package types

import "fmt"

func checkSameEnvironment(a, b Type) {
	env := a.Environment()
	if !env.IsType(a) || !env.IsType(b) {
		panic(fmt.Sprintf("types: lattice query across environments: %s, %s", a.Name(), b.Name()))
	}
}

// LeastCommonSupertypes computes the minimal common supertypes of a and b.
// When neither type bounds the other, every type of the environment is
// tested as a candidate and the candidates that have a strict subtype among
// the candidates are discarded. Mutually equivalent candidates (unions with
// the same members) do not discard each other, so the result may hold
// several incomparable least supertypes.
func LeastCommonSupertypes(a, b Type) TypeSet {
	checkSameEnvironment(a, b)

	if a == b {
		return NewTypeSet(a)
	}

	if IsSubtypeOf(a, b) {
		return NewTypeSet(b)
	}
	if IsSubtypeOf(b, a) {
		return NewTypeSet(a)
	}

	// every t with a <: t and b <: t
	candidates := NewTypeSet()
	for t := range a.Environment().GetAllTypes().All() {
		if IsSubtypeOf(a, t) && IsSubtypeOf(b, t) {
			candidates.Insert(t)
		}
	}

	least := NewTypeSet()
	for c := range candidates.All() {
		isLeast := true
		for t := range candidates.All() {
			if t != c && IsSubtypeOf(t, c) && !IsSubtypeOf(c, t) {
				isLeast = false
				break
			}
		}
		if isLeast {
			least.Insert(c)
		}
	}
	return least
}

// LeastCommonSupertypesOf reduces the operation over a whole set, refining
// a running result against each member in turn. The universal set has no
// common supertype.
func LeastCommonSupertypesOf(set TypeSet) TypeSet {
	if set.Empty() {
		return set
	}
	if set.IsAll() {
		return NewTypeSet()
	}

	var res TypeSet
	first := true
	for t := range set.All() {
		if first {
			res = NewTypeSet(t)
			first = false
			continue
		}
		next := NewTypeSet()
		for cur := range res.All() {
			next.InsertSet(LeastCommonSupertypes(cur, t))
		}
		res = next
	}
	return res
}

// LeastCommonSupertypesOfSets is the pairwise product form: the result of
// the two-argument operation over every pair drawn from a and b. An empty
// operand makes the result empty; a universal operand is the identity.
func LeastCommonSupertypesOfSets(a, b TypeSet) TypeSet {
	if a.Empty() {
		return a
	}
	if b.Empty() {
		return b
	}
	if a.IsAll() {
		return b
	}
	if b.IsAll() {
		return a
	}

	res := NewTypeSet()
	for x := range a.All() {
		for y := range b.All() {
			res.InsertSet(LeastCommonSupertypes(x, y))
		}
	}
	return res
}

// GreatestCommonSubtypes computes the common subtypes of a and b. Beyond
// the reflexive and one-bounds-the-other cases, common subtypes only exist
// between two unions: a's element tree is walked through nested unions and
// every reachable element that is a subtype of b is collected, without
// expanding past a match. Any other pair has no common subtype.
func GreatestCommonSubtypes(a, b Type) TypeSet {
	checkSameEnvironment(a, b)

	if a == b {
		return NewTypeSet(a)
	}

	if IsSubtypeOf(a, b) {
		return NewTypeSet(a)
	}
	if IsSubtypeOf(b, a) {
		return NewTypeSet(b)
	}

	res := NewTypeSet()
	if _, ok := a.(*UnionType); !ok {
		return res
	}
	if _, ok := b.(*UnionType); !ok {
		return res
	}

	var collect func(Type)
	collect = func(t Type) {
		if IsSubtypeOf(t, b) {
			res.Insert(t)
			return
		}
		if u, ok := t.(*UnionType); ok {
			for _, e := range u.elements {
				collect(e)
			}
		}
	}
	collect(a)
	return res
}

// GreatestCommonSubtypesOf reduces the operation over a whole set, the
// same way LeastCommonSupertypesOf does.
func GreatestCommonSubtypesOf(set TypeSet) TypeSet {
	if set.Empty() {
		return set
	}
	if set.IsAll() {
		return NewTypeSet()
	}

	var res TypeSet
	first := true
	for t := range set.All() {
		if first {
			res = NewTypeSet(t)
			first = false
			continue
		}
		next := NewTypeSet()
		for cur := range res.All() {
			next.InsertSet(GreatestCommonSubtypes(cur, t))
		}
		res = next
	}
	return res
}

// GreatestCommonSubtypesOfSets is the pairwise product form, with the same
// empty/universal special cases as LeastCommonSupertypesOfSets.
func GreatestCommonSubtypesOfSets(a, b TypeSet) TypeSet {
	if a.Empty() {
		return a
	}
	if b.Empty() {
		return b
	}
	if a.IsAll() {
		return b
	}
	if b.IsAll() {
		return a
	}

	res := NewTypeSet()
	for x := range a.All() {
		for y := range b.All() {
			res.InsertSet(GreatestCommonSubtypes(x, y))
		}
	}
	return res
}
