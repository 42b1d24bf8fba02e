package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ragu-lang/ragu/frontend/ast"
)

// TypeEnvironment owns every type of one compilation unit, indexed by
// qualified name. It is the sole factory for types: a Type is valid exactly
// as long as its environment, and two types are comparable only when they
// share one.
//
// Environments follow a single-writer-then-many-readers discipline: all
// declarations and union/record additions happen before the first query.
type TypeEnvironment struct {
	types     map[ast.QualifiedName]Type
	constants map[TypeAttribute]*ConstantType
}

// NewTypeEnvironment creates an environment pre-populated with the four
// constant roots and the four primitive aliases number, float, symbol
// and unsigned.
func NewTypeEnvironment() *TypeEnvironment {
	env := &TypeEnvironment{
		types:     make(map[ast.QualifiedName]Type),
		constants: make(map[TypeAttribute]*ConstantType),
	}
	env.initializeConstantTypes()
	env.initializePrimitiveTypes()
	return env
}

func (env *TypeEnvironment) initializeConstantTypes() {
	for _, c := range []struct {
		name ast.QualifiedName
		attr TypeAttribute
	}{
		{"numberConstant", Signed},
		{"floatConstant", Float},
		{"symbolConstant", Symbol},
		{"unsignedConstant", Unsigned},
	} {
		constant := &ConstantType{typeBase: typeBase{name: c.name, env: env}, attribute: c.attr}
		env.register(constant)
		env.constants[c.attr] = constant
	}
}

func (env *TypeEnvironment) initializePrimitiveTypes() {
	for _, p := range []struct {
		name ast.QualifiedName
		attr TypeAttribute
	}{
		{"number", Signed},
		{"float", Float},
		{"symbol", Symbol},
		{"unsigned", Unsigned},
	} {
		primitive := &PrimitiveType{SubsetType{
			typeBase: typeBase{name: p.name, env: env},
			base:     env.constants[p.attr],
		}}
		env.register(primitive)
	}
}

// register indexes a freshly constructed type under its name. Registering
// the same name twice is a bug in the declaring stage.
func (env *TypeEnvironment) register(t Type) {
	if _, present := env.types[t.Name()]; present {
		panic(fmt.Sprintf("types: registering present type %s", t.Name()))
	}
	env.types[t.Name()] = t
}

// NewSubsetType declares a refinement of base under the given name.
func (env *TypeEnvironment) NewSubsetType(name ast.QualifiedName, base Type) *SubsetType {
	t := &SubsetType{typeBase: typeBase{name: name, env: env}, base: base}
	env.register(t)
	return t
}

// NewSubsetTypeOf declares a refinement of the primitive type carrying the
// given attribute.
func (env *TypeEnvironment) NewSubsetTypeOf(name ast.QualifiedName, attribute TypeAttribute) *SubsetType {
	var primitive ast.QualifiedName
	switch attribute {
	case Signed:
		primitive = "number"
	case Unsigned:
		primitive = "unsigned"
	case Float:
		primitive = "float"
	case Symbol:
		primitive = "symbol"
	default:
		panic(fmt.Sprintf("types: no primitive type for attribute %s", attribute))
	}
	return env.NewSubsetType(name, env.GetType(primitive))
}

// NewUnionType declares an empty union under the given name.
func (env *TypeEnvironment) NewUnionType(name ast.QualifiedName) *UnionType {
	t := &UnionType{typeBase: typeBase{name: name, env: env}}
	env.register(t)
	return t
}

// NewRecordType declares a fieldless record under the given name.
func (env *TypeEnvironment) NewRecordType(name ast.QualifiedName) *RecordType {
	t := &RecordType{typeBase: typeBase{name: name, env: env}}
	env.register(t)
	return t
}

// GetType resolves a name that is known to be declared. Resolving an
// undeclared name is a bug in the caller; use LookupType when absence is
// a legitimate outcome.
func (env *TypeEnvironment) GetType(name ast.QualifiedName) Type {
	t, ok := env.types[name]
	if !ok {
		panic(fmt.Sprintf("types: unknown type %s", name))
	}
	return t
}

// LookupType resolves a name, reporting whether it is declared.
func (env *TypeEnvironment) LookupType(name ast.QualifiedName) (Type, bool) {
	t, ok := env.types[name]
	return t, ok
}

// HasType reports whether a name is declared in this environment.
func (env *TypeEnvironment) HasType(name ast.QualifiedName) bool {
	_, ok := env.types[name]
	return ok
}

// IsType reports whether t is the very type registered under its name in
// this environment, guarding against types leaking across environments.
func (env *TypeEnvironment) IsType(t Type) bool {
	found, ok := env.types[t.Name()]
	return ok && found == t
}

// GetAllTypes snapshots every registered type. Callers must not rely on
// any particular insertion order; the returned set enumerates by name.
func (env *TypeEnvironment) GetAllTypes() TypeSet {
	res := NewTypeSet()
	for _, t := range env.types {
		res.Insert(t)
	}
	return res
}

// ConstantTypeOf returns the constant root for one of the four primitive
// attributes. Record has no constant root.
func (env *TypeEnvironment) ConstantTypeOf(attribute TypeAttribute) *ConstantType {
	c, ok := env.constants[attribute]
	if !ok {
		panic(fmt.Sprintf("types: no constant type for attribute %s", attribute))
	}
	return c
}

func (env *TypeEnvironment) String() string {
	names := make([]ast.QualifiedName, 0, len(env.types))
	for name := range env.types {
		names = append(names, name)
	}
	slices.Sort(names)
	var sb strings.Builder
	sb.WriteString("Types:\n")
	for _, name := range names {
		sb.WriteString("\t")
		sb.WriteString(env.types[name].String())
		sb.WriteString("\n")
	}
	return sb.String()
}
