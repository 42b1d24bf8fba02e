package types

import (
	"slices"

	"github.com/ragu-lang/ragu/util"
)

// IsOfRootType reports whether t reaches root: by being root, by refining a
// type that reaches root, or, for a non-empty union, by every element
// reaching root. Constants and records reach only themselves.
func IsOfRootType(t Type, root Type) bool {
	once := &visitOnce[bool]{}
	once.Constant = func(c *ConstantType) bool {
		return c == root
	}
	once.Subset = func(s subsetLike) bool {
		return s == root || once.Visit(s.BaseType())
	}
	once.Union = func(u *UnionType) bool {
		return len(u.elements) > 0 && util.All(slices.Values(u.elements), once.Visit)
	}
	return once.Visit(t)
}

// IsNumberType reports whether t reaches the signed constant root.
func IsNumberType(t Type) bool {
	return IsOfRootType(t, t.Environment().ConstantTypeOf(Signed))
}

// IsUnsignedType reports whether t reaches the unsigned constant root.
func IsUnsignedType(t Type) bool {
	return IsOfRootType(t, t.Environment().ConstantTypeOf(Unsigned))
}

// IsFloatType reports whether t reaches the float constant root.
func IsFloatType(t Type) bool {
	return IsOfRootType(t, t.Environment().ConstantTypeOf(Float))
}

// IsSymbolType reports whether t reaches the symbol constant root.
func IsSymbolType(t Type) bool {
	return IsOfRootType(t, t.Environment().ConstantTypeOf(Symbol))
}

// IsRecordType reports whether t is a record. Unlike the root predicates
// this is a plain variant test, no traversal involved.
func IsRecordType(t Type) bool {
	_, ok := t.(*RecordType)
	return ok
}

// The TypeSet forms of the predicates hold when every member holds
// individually. The empty and the universal set satisfy none of them:
// they answer "definitely all are", not "could contain".

func (s TypeSet) IsNumberType() bool   { return s.allSatisfy(IsNumberType) }
func (s TypeSet) IsUnsignedType() bool { return s.allSatisfy(IsUnsignedType) }
func (s TypeSet) IsFloatType() bool    { return s.allSatisfy(IsFloatType) }
func (s TypeSet) IsSymbolType() bool   { return s.allSatisfy(IsSymbolType) }
func (s TypeSet) IsRecordType() bool   { return s.allSatisfy(IsRecordType) }

func (s TypeSet) allSatisfy(pred func(Type) bool) bool {
	return !s.Empty() && !s.IsAll() && util.All(s.All(), pred)
}

// The Has family answers "could the set contain such a type": the
// universal set trivially satisfies it.

func (s TypeSet) HasSignedType() bool   { return s.IsAll() || util.Any(s.All(), IsNumberType) }
func (s TypeSet) HasUnsignedType() bool { return s.IsAll() || util.Any(s.All(), IsUnsignedType) }
func (s TypeSet) HasFloatType() bool    { return s.IsAll() || util.Any(s.All(), IsFloatType) }

// IsRecursiveType reports whether t is a record one of whose fields reaches
// t again, possibly through unions and other records. Only records can be
// recursive; every other variant answers false. The result is recomputed on
// every call: the reachability memo lives for one check only, because the
// type may still gain elements between checks.
func IsRecursiveType(t Type) bool {
	record, ok := t.(*RecordType)
	if !ok {
		return false
	}

	once := &visitOnce[bool]{}
	var reachesOrigin func(Type) bool
	reachesOrigin = func(cur Type) bool {
		if cur == t {
			return true
		}
		return once.Visit(cur)
	}
	once.Union = func(u *UnionType) bool {
		return util.Any(slices.Values(u.elements), reachesOrigin)
	}
	once.Record = func(r *RecordType) bool {
		return util.Any(slices.Values(r.fields), func(f Field) bool {
			return reachesOrigin(f.Type)
		})
	}

	return util.Any(slices.Values(record.fields), func(f Field) bool {
		return reachesOrigin(f.Type)
	})
}
