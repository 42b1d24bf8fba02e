package types

import "strings"

// TypeQualifier produces the canonical string encoding of a type shape:
// a one-letter attribute tag and the qualified name, with unions appending
// their bracketed element encodings and records their braced fields.
//
// The base tag and name are written into the memo before the children are
// expanded, so a field or element that references back into an enclosing
// type resolves to the enclosing type's base encoding instead of expanding
// again. Every shape therefore encodes to a finite, deterministic string.
func TypeQualifier(t Type) string {
	once := &visitOnce[string]{}

	base := func(t Type) string {
		var sb strings.Builder
		switch getTypeAttribute(t) {
		case Signed:
			sb.WriteString("i")
		case Unsigned:
			sb.WriteString("u")
		case Float:
			sb.WriteString("f")
		case Symbol:
			sb.WriteString("s")
		case Record:
			sb.WriteString("r")
		}
		sb.WriteString(":")
		sb.WriteString(t.Name().String())
		str := sb.String()
		once.seen[t] = str
		return str
	}

	once.Union = func(u *UnionType) string {
		var sb strings.Builder
		sb.WriteString(base(u))
		sb.WriteString("[")
		for i, e := range u.elements {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(once.Visit(e))
		}
		sb.WriteString("]")
		return sb.String()
	}
	once.Record = func(r *RecordType) string {
		var sb strings.Builder
		sb.WriteString(base(r))
		sb.WriteString("{")
		for i, f := range r.fields {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(f.Name)
			sb.WriteString("#")
			sb.WriteString(once.Visit(f.Type))
		}
		sb.WriteString("}")
		return sb.String()
	}
	once.Default = base

	return once.Visit(t)
}
