package types

import "fmt"

// typeVisitor maps a type to a result by variant. Unset variant funcs fall
// back to Default; an unset Default yields the zero value. PrimitiveType
// dispatches to Subset, matching its behaviour as a refinement of its
// constant root.
type typeVisitor[R any] struct {
	Constant func(*ConstantType) R
	Subset   func(subsetLike) R
	Union    func(*UnionType) R
	Record   func(*RecordType) R
	Default  func(Type) R
}

func (v *typeVisitor[R]) Visit(t Type) R {
	switch t := t.(type) {
	case *ConstantType:
		if v.Constant != nil {
			return v.Constant(t)
		}
	case *UnionType:
		if v.Union != nil {
			return v.Union(t)
		}
	case *RecordType:
		if v.Record != nil {
			return v.Record(t)
		}
	case subsetLike:
		if v.Subset != nil {
			return v.Subset(t)
		}
	default:
		panic(fmt.Sprintf("types: unsupported type variant %T", t))
	}
	if v.Default != nil {
		return v.Default(t)
	}
	var zero R
	return zero
}

// visitOnce is a traversal that visits every node at most once per
// top-level call. Before dispatching into a node it records the zero value
// as that node's in-progress result, so a cyclic path terminates with the
// placeholder instead of recursing forever. Handlers recurse through Visit
// to stay under the memo.
type visitOnce[R any] struct {
	typeVisitor[R]
	seen map[Type]R
}

func (v *visitOnce[R]) Visit(t Type) R {
	if v.seen == nil {
		v.seen = make(map[Type]R)
	}
	if r, ok := v.seen[t]; ok {
		return r
	}
	var zero R
	v.seen[t] = zero
	r := v.typeVisitor.Visit(t)
	v.seen[t] = r
	return r
}
