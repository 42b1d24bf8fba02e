package types

import (
	"fmt"
	"slices"

	"github.com/ragu-lang/ragu/util"
)

// IsSubtypeOf reports whether a is a subtype of b. Both types must belong
// to the same environment.
//
// The relation is reflexive, follows refinement chains up to b, and treats
// a union on the right existentially for non-union a and universally for
// union a. Recursive records are deliberately incomparable to everything
// but themselves: the lattice operations are not defined for them.
func IsSubtypeOf(a, b Type) bool {
	env := a.Environment()
	if !env.IsType(a) || !env.IsType(b) {
		panic(fmt.Sprintf("types: subtype query across environments: %s, %s", a.Name(), b.Name()))
	}

	if a == b {
		return true
	}

	if IsOfRootType(a, b) {
		return true
	}

	if IsRecursiveType(a) || IsRecursiveType(b) {
		return false
	}

	if unionB, ok := b.(*UnionType); ok {
		if unionA, ok := a.(*UnionType); ok {
			return util.All(slices.Values(unionA.elements), func(e Type) bool {
				return IsSubtypeOf(e, b)
			})
		}
		return util.Any(slices.Values(unionB.elements), func(e Type) bool {
			return IsSubtypeOf(a, e)
		})
	}

	return false
}

// AreSubtypesOf reports whether every member of s is a subtype of b.
func AreSubtypesOf(s TypeSet, b Type) bool {
	return util.All(s.All(), func(t Type) bool {
		return IsSubtypeOf(t, b)
	})
}
