package ast

import (
	"cmp"
	"fmt"
)

// SrcPoint is a line/column pair inside a source file, both 1-based.
type SrcPoint struct {
	Line, Column int
}

func (p SrcPoint) Compare(other SrcPoint) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, other.Column)
}

// SrcLocation is the span of a syntactic element in its source file.
type SrcLocation struct {
	Filename   string
	Start, End SrcPoint
}

// Compare orders locations by filename, then start point, then end point.
func (l SrcLocation) Compare(other SrcLocation) int {
	if c := cmp.Compare(l.Filename, other.Filename); c != 0 {
		return c
	}
	if c := l.Start.Compare(other.Start); c != 0 {
		return c
	}
	return l.End.Compare(other.End)
}

func (l SrcLocation) String() string {
	if l.Start == l.End {
		return fmt.Sprintf("%s [%d:%d]", l.Filename, l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("%s [%d:%d-%d:%d]", l.Filename, l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
