// Package types implements the declared-type lattice of the compiler:
// primitive, subset, union and record types, the subtype relation over
// them, and the join/meet operations consumed by semantic analysis.
package types

import (
	"fmt"

	"github.com/ragu-lang/ragu/frontend/ast"
	"github.com/ragu-lang/ragu/util"
)

// Type is a named node of the type lattice. Concrete variants are
// ConstantType, PrimitiveType, SubsetType, UnionType and RecordType.
// Identity is pointer identity: each name maps to exactly one Type value
// within its owning environment.
type Type interface {
	fmt.Stringer
	Name() ast.QualifiedName
	Environment() *TypeEnvironment
}

type typeBase struct {
	name ast.QualifiedName
	env  *TypeEnvironment
}

func (t *typeBase) Name() ast.QualifiedName       { return t.name }
func (t *typeBase) Environment() *TypeEnvironment { return t.env }

// ConstantType is the top element of one primitive sublattice. The four
// constants are created once per environment during bootstrap and are never
// user-declared.
type ConstantType struct {
	typeBase
	attribute TypeAttribute
}

func (t *ConstantType) Attribute() TypeAttribute { return t.attribute }

func (t *ConstantType) String() string { return t.name.String() }

// SubsetType is a user-declared refinement of exactly one base type.
type SubsetType struct {
	typeBase
	base Type
}

func (t *SubsetType) BaseType() Type { return t.base }

func (t *SubsetType) String() string {
	return fmt.Sprintf("%s <: %s", t.name, t.base.Name())
}

// PrimitiveType is a built-in alias for one of the constant roots. It
// behaves as a subset of its constant in every traversal.
type PrimitiveType struct {
	SubsetType
}

func (t *PrimitiveType) Constant() *ConstantType { return t.base.(*ConstantType) }

func (t *PrimitiveType) String() string { return t.name.String() }

// subsetLike matches the two variants that refine a single base type:
// SubsetType and PrimitiveType.
type subsetLike interface {
	Type
	BaseType() Type
}

var (
	_ subsetLike = (*SubsetType)(nil)
	_ subsetLike = (*PrimitiveType)(nil)
)

// UnionType is a sum type: a value of any element type is a value of the
// union. Elements keep insertion order and may repeat.
type UnionType struct {
	typeBase
	elements []Type
}

// Add appends an element type. The element must be registered in the same
// environment as the union.
func (t *UnionType) Add(element Type) {
	if !t.env.IsType(element) {
		panic(fmt.Sprintf("types: union %s: element %s is not a member of the environment", t.name, element.Name()))
	}
	t.elements = append(t.elements, element)
}

func (t *UnionType) ElementTypes() []Type { return t.elements }

func (t *UnionType) String() string {
	return fmt.Sprintf("%s = %s", t.name, util.JoinFunc(t.elements, " | ", func(e Type) string {
		return e.Name().String()
	}))
}

// Field is one named component of a RecordType.
type Field struct {
	Name string
	Type Type
}

// RecordType is a product type: an ordered sequence of named fields.
// Fields may reference the record itself, directly or through other
// types, which makes the type recursive.
type RecordType struct {
	typeBase
	fields []Field
}

// Add appends a field. The field type must be registered in the same
// environment as the record.
func (t *RecordType) Add(name string, fieldType Type) {
	if !t.env.IsType(fieldType) {
		panic(fmt.Sprintf("types: record %s: field %s is not a member of the environment", t.name, fieldType.Name()))
	}
	t.fields = append(t.fields, Field{Name: name, Type: fieldType})
}

func (t *RecordType) Fields() []Field { return t.fields }

func (t *RecordType) String() string {
	if len(t.fields) == 0 {
		return fmt.Sprintf("%s = ()", t.name)
	}
	return fmt.Sprintf("%s = ( %s )", t.name, util.JoinFunc(t.fields, " , ", func(f Field) string {
		return fmt.Sprintf("%s : %s", f.Name, f.Type.Name())
	}))
}
