package ast_test

import (
	"testing"

	"github.com/ragu-lang/ragu/frontend/ast"
	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	name := ast.QualifiedNameOf("graph", "Node")
	assert.Equal(t, ast.QualifiedName("graph.Node"), name)
	assert.Equal(t, []string{"graph", "Node"}, name.Parts())
	assert.Equal(t, "graph.Node", name.String())
	assert.Nil(t, ast.QualifiedName("").Parts())
}

func TestSrcLocationCompare(t *testing.T) {
	at := func(file string, line, col int) ast.SrcLocation {
		return ast.SrcLocation{Filename: file, Start: ast.SrcPoint{Line: line, Column: col}}
	}

	assert.Equal(t, 0, at("a.rg", 1, 1).Compare(at("a.rg", 1, 1)))
	assert.Negative(t, at("a.rg", 1, 1).Compare(at("a.rg", 1, 2)))
	assert.Negative(t, at("a.rg", 1, 9).Compare(at("a.rg", 2, 1)))
	assert.Negative(t, at("a.rg", 9, 9).Compare(at("b.rg", 1, 1)))
	assert.Positive(t, at("a.rg", 2, 1).Compare(at("a.rg", 1, 5)))
}

func TestSrcLocationString(t *testing.T) {
	loc := ast.SrcLocation{
		Filename: "f.rg",
		Start:    ast.SrcPoint{Line: 1, Column: 2},
		End:      ast.SrcPoint{Line: 1, Column: 2},
	}
	assert.Equal(t, "f.rg [1:2]", loc.String())

	loc.End = ast.SrcPoint{Line: 3, Column: 4}
	assert.Equal(t, "f.rg [1:2-3:4]", loc.String())
}
