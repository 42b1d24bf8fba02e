package types

import "fmt"

// TypeAttribute is the primitive-kind tag of a type: which of the four
// constant roots it ultimately refines, or Record for product types.
type TypeAttribute uint8

const (
	Signed TypeAttribute = iota
	Unsigned
	Float
	Symbol
	Record
)

func (a TypeAttribute) String() string {
	switch a {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case Symbol:
		return "symbol"
	case Record:
		return "record"
	}
	panic(fmt.Sprintf("types: unknown attribute %d", uint8(a)))
}

// getTypeAttribute resolves the attribute of a type by testing which
// constant root it reaches. Types that reach no root and are not records
// have no attribute; asking for it is a caller bug.
func getTypeAttribute(t Type) TypeAttribute {
	switch {
	case IsNumberType(t):
		return Signed
	case IsUnsignedType(t):
		return Unsigned
	case IsFloatType(t):
		return Float
	case IsSymbolType(t):
		return Symbol
	case IsRecordType(t):
		return Record
	}
	panic(fmt.Sprintf("types: type %s has no attribute", t.Name()))
}
