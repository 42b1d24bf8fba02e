package types_test

import (
	"testing"

	"github.com/ragu-lang/ragu/frontend/ast"
	"github.com/ragu-lang/ragu/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	env := types.NewTypeEnvironment()

	for _, name := range []ast.QualifiedName{
		"numberConstant", "floatConstant", "symbolConstant", "unsignedConstant",
		"number", "float", "symbol", "unsigned",
	} {
		assert.True(t, env.HasType(name), "missing built-in %s", name)
	}
	assert.Equal(t, 8, env.GetAllTypes().Size())

	assert.True(t, types.IsNumberType(env.GetType("number")))
	assert.True(t, types.IsSymbolType(env.GetType("symbol")))
	assert.True(t, types.IsFloatType(env.GetType("float")))
	assert.True(t, types.IsUnsignedType(env.GetType("unsigned")))
	assert.False(t, types.IsNumberType(env.GetType("symbol")))
}

func TestRendering(t *testing.T) {
	env := types.NewTypeEnvironment()

	A := env.NewSubsetTypeOf("A", types.Signed)
	B := env.NewSubsetTypeOf("B", types.Symbol)

	U := env.NewUnionType("U")
	U.Add(A)
	U.Add(B)

	R := env.NewRecordType("R")
	R.Add("a", A)
	R.Add("b", B)

	E := env.NewRecordType("E")

	assert.Equal(t, "A <: number", A.String())
	assert.Equal(t, "B <: symbol", B.String())
	assert.Equal(t, "U = A | B", U.String())
	assert.Equal(t, "R = ( a : A , b : B )", R.String())
	assert.Equal(t, "E = ()", E.String())

	assert.Equal(t, "{A,B}", types.NewTypeSet(B, A).String())
}

func TestEnvironmentString(t *testing.T) {
	env := types.NewTypeEnvironment()
	env.NewSubsetTypeOf("A", types.Signed)

	expected := "Types:\n" +
		"\tA <: number\n" +
		"\tfloat\n" +
		"\tfloatConstant\n" +
		"\tnumber\n" +
		"\tnumberConstant\n" +
		"\tsymbol\n" +
		"\tsymbolConstant\n" +
		"\tunsigned\n" +
		"\tunsignedConstant\n"
	assert.Equal(t, expected, env.String())
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	env := types.NewTypeEnvironment()
	env.NewSubsetTypeOf("A", types.Signed)

	assert.Panics(t, func() { env.NewSubsetTypeOf("A", types.Signed) })
	assert.Panics(t, func() { env.NewUnionType("number") })
}

func TestUnknownTypePanics(t *testing.T) {
	env := types.NewTypeEnvironment()

	assert.Panics(t, func() { env.GetType("missing") })

	_, ok := env.LookupType("missing")
	assert.False(t, ok)
}

func TestIsTypeGuardsEnvironments(t *testing.T) {
	env1 := types.NewTypeEnvironment()
	env2 := types.NewTypeEnvironment()

	a1 := env1.NewSubsetTypeOf("A", types.Signed)
	a2 := env2.NewSubsetTypeOf("A", types.Signed)

	require.True(t, env1.IsType(a1))
	assert.False(t, env1.IsType(a2))
	assert.False(t, env2.IsType(a1))

	// a subtype query across environments is a programming error
	assert.Panics(t, func() { types.IsSubtypeOf(a1, a2) })

	// so is inserting a foreign type into a union
	u := env1.NewUnionType("U")
	assert.Panics(t, func() { u.Add(a2) })
}

func TestConstantTypeOf(t *testing.T) {
	env := types.NewTypeEnvironment()

	assert.Equal(t, env.GetType("numberConstant"), types.Type(env.ConstantTypeOf(types.Signed)))
	assert.Equal(t, env.GetType("unsignedConstant"), types.Type(env.ConstantTypeOf(types.Unsigned)))
	assert.Equal(t, env.GetType("floatConstant"), types.Type(env.ConstantTypeOf(types.Float)))
	assert.Equal(t, env.GetType("symbolConstant"), types.Type(env.ConstantTypeOf(types.Symbol)))
	assert.Panics(t, func() { env.ConstantTypeOf(types.Record) })
}
