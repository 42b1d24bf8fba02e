package types_test

import (
	"testing"

	"github.com/ragu-lang/ragu/frontend/types"
	"github.com/stretchr/testify/assert"
)

func TestIsNumberType(t *testing.T) {
	env := types.NewTypeEnvironment()

	N := env.GetType("number")
	A := env.NewSubsetTypeOf("A", types.Signed)
	B := env.NewSubsetTypeOf("B", types.Signed)
	C := env.NewSubsetTypeOf("C", types.Symbol)

	assert.True(t, types.IsNumberType(N))
	assert.True(t, types.IsNumberType(A))
	assert.True(t, types.IsNumberType(B))
	assert.True(t, types.IsSymbolType(C))

	assert.False(t, types.IsSymbolType(N))
	assert.False(t, types.IsSymbolType(A))
	assert.False(t, types.IsSymbolType(B))
	assert.False(t, types.IsNumberType(C))

	// a union is a number type only when every element is, and never
	// when it has no elements
	U := env.NewUnionType("U")
	assert.False(t, types.IsNumberType(U))
	assert.False(t, types.IsSymbolType(U))
	U.Add(A)
	assert.True(t, types.IsNumberType(U))
	assert.False(t, types.IsSymbolType(U))
	U.Add(B)
	assert.True(t, types.IsNumberType(U))
	U.Add(C)
	assert.False(t, types.IsNumberType(U))
	assert.False(t, types.IsSymbolType(U))

	// a self-referential union terminates and is not a number type:
	// the cycle resolves to the in-progress result
	U2 := env.NewUnionType("U2")
	U2.Add(A)
	assert.True(t, types.IsNumberType(U2))
	U2.Add(U2)
	assert.False(t, types.IsNumberType(U2))
}

func TestIsNumberTypeSubsetUnionCycle(t *testing.T) {
	env := types.NewTypeEnvironment()

	// S refines U while U contains S; the chain re-enters itself and
	// must resolve to the in-progress result instead of looping
	U := env.NewUnionType("U")
	S := env.NewSubsetType("S", U)
	U.Add(S)

	assert.False(t, types.IsNumberType(S))
	assert.False(t, types.IsNumberType(U))
	assert.False(t, types.IsOfRootType(S, env.GetType("number")))
	assert.False(t, types.IsOfRootType(S, U))
	assert.True(t, types.IsSubtypeOf(S, U))

	// the cycle does not leak into a sibling branch of another union
	V := env.NewUnionType("V")
	V.Add(S)
	V.Add(env.GetType("number"))
	assert.False(t, types.IsNumberType(V))
}

func TestSubsetChains(t *testing.T) {
	env := types.NewTypeEnvironment()

	A := env.NewSubsetTypeOf("A", types.Unsigned)
	A2 := env.NewSubsetType("A2", A)
	A3 := env.NewSubsetType("A3", A2)

	assert.True(t, types.IsUnsignedType(A3))
	assert.False(t, types.IsNumberType(A3))
	assert.True(t, types.IsOfRootType(A3, A))
	assert.True(t, types.IsOfRootType(A3, env.GetType("unsigned")))
	assert.False(t, types.IsOfRootType(A, A3))
}

func TestTypeSetPredicates(t *testing.T) {
	env := types.NewTypeEnvironment()

	A := env.NewSubsetTypeOf("A", types.Signed)
	B := env.NewSubsetTypeOf("B", types.Signed)
	C := env.NewSubsetTypeOf("C", types.Symbol)
	R := env.NewRecordType("R")

	// the plain predicates answer "definitely all are": the empty set
	// and the universal set satisfy none of them
	assert.False(t, types.NewTypeSet().IsNumberType())
	assert.False(t, types.UniversalTypeSet().IsNumberType())
	assert.False(t, types.UniversalTypeSet().IsRecordType())

	assert.True(t, types.NewTypeSet(A, B).IsNumberType())
	assert.False(t, types.NewTypeSet(A, C).IsNumberType())
	assert.True(t, types.NewTypeSet(C).IsSymbolType())
	assert.True(t, types.NewTypeSet(R).IsRecordType())
	assert.False(t, types.NewTypeSet(R, A).IsRecordType())

	// the has-family answers "could contain": the universal set
	// trivially satisfies it
	assert.True(t, types.UniversalTypeSet().HasSignedType())
	assert.True(t, types.UniversalTypeSet().HasUnsignedType())
	assert.True(t, types.UniversalTypeSet().HasFloatType())
	assert.True(t, types.NewTypeSet(A, C).HasSignedType())
	assert.False(t, types.NewTypeSet(C).HasSignedType())
	assert.False(t, types.NewTypeSet().HasFloatType())
}

func TestIsRecursiveType(t *testing.T) {
	env := types.NewTypeEnvironment()

	A := env.NewSubsetTypeOf("A", types.Signed)
	B := env.NewSubsetTypeOf("B", types.Signed)

	U := env.NewUnionType("U")
	R := env.NewRecordType("R")
	R.Add("h", A)
	R.Add("t", U)
	U.Add(R)

	// primitive and subset types are never recursive
	assert.False(t, types.IsRecursiveType(A))
	// neither are unions, even self-reaching ones
	assert.False(t, types.IsRecursiveType(U))
	// but R = ( h : A , t : U ) with U = R reaches itself
	assert.True(t, types.IsRecursiveType(R))

	List := env.NewRecordType("List")
	assert.False(t, types.IsRecursiveType(List))
	List.Add("head", A)
	assert.False(t, types.IsRecursiveType(List))
	List.Add("tail", List)
	assert.True(t, types.IsRecursiveType(List))

	// mutually recursive records
	E := env.NewRecordType("E")
	O := env.NewRecordType("O")

	assert.False(t, types.IsRecursiveType(E))
	assert.False(t, types.IsRecursiveType(O))

	E.Add("head", A)
	E.Add("tail", O)
	assert.False(t, types.IsRecursiveType(E))
	assert.False(t, types.IsRecursiveType(O))

	O.Add("head", B)
	O.Add("tail", E)
	assert.True(t, types.IsRecursiveType(E))
	assert.True(t, types.IsRecursiveType(O))
}
