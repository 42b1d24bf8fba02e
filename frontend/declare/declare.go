// Package declare builds a type environment from a declarative manifest of
// type declarations, and runs the queries the manifest asks for. It is the
// stage that turns the type engine's results into located diagnostics.
package declare

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/ragu-lang/ragu/frontend/ast"
	"github.com/ragu-lang/ragu/frontend/reports"
	"github.com/ragu-lang/ragu/frontend/types"
	"github.com/ragu-lang/ragu/internal/log"
	"gopkg.in/yaml.v3"
)

var logger = log.DefaultLogger.With("section", "declare")

// Result is a loaded manifest: the populated environment and the rendered
// answer of every query, in manifest order.
type Result struct {
	Env     *types.TypeEnvironment
	Answers []string
}

type manifest struct {
	Types   []typeDecl  `yaml:"types"`
	Queries []queryDecl `yaml:"queries"`
}

type typeDecl struct {
	Subset   yaml.Node   `yaml:"subset"`
	Of       yaml.Node   `yaml:"of"`
	Union    yaml.Node   `yaml:"union"`
	Elements []yaml.Node `yaml:"elements"`
	Record   yaml.Node   `yaml:"record"`
	Fields   []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name string    `yaml:"name"`
	Type yaml.Node `yaml:"type"`
}

type queryDecl struct {
	Subtype   []yaml.Node `yaml:"subtype"`
	Lub       []yaml.Node `yaml:"lub"`
	Glb       []yaml.Node `yaml:"glb"`
	Qualifier yaml.Node   `yaml:"qualifier"`
}

// LoadFile reads and loads a manifest from disk. I/O failures are returned
// as errors; problems with the manifest's content go to report.
func LoadFile(path string, report *reports.ErrorReport) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}
	return Load(src, path, report), nil
}

// Load builds a fresh environment from manifest source. Malformed
// declarations and queries become diagnostics in report; the returned
// result always carries a usable environment.
func Load(src []byte, filename string, report *reports.ErrorReport) *Result {
	loader := &loader{
		filename: filename,
		env:      types.NewTypeEnvironment(),
		report:   report,
	}

	var m manifest
	if err := yaml.Unmarshal(src, &m); err != nil {
		report.AddDiagnostic(reports.NewDiagnostic(reports.Error,
			reports.NewMessage(fmt.Sprintf("malformed manifest %s: %v", filename, err))))
		return &Result{Env: loader.env}
	}

	loader.declare(m.Types)
	answers := loader.runQueries(m.Queries)

	logger.Debug("manifest loaded",
		"file", filename,
		"declarations", len(m.Types),
		"queries", len(m.Queries),
		"issues", report.NumIssues(),
	)
	return &Result{Env: loader.env, Answers: answers}
}

type loader struct {
	filename string
	env      *types.TypeEnvironment
	report   *reports.ErrorReport
}

func (l *loader) locOf(n yaml.Node) ast.SrcLocation {
	return ast.SrcLocation{
		Filename: l.filename,
		Start:    ast.SrcPoint{Line: n.Line, Column: n.Column},
		End:      ast.SrcPoint{Line: n.Line, Column: n.Column + len(n.Value)},
	}
}

// declare populates the environment in three passes: unions and records
// first so later declarations can reference them, then subsets in manifest
// order, then union elements and record fields. Records referencing
// themselves or later declarations therefore resolve naturally.
func (l *loader) declare(decls []typeDecl) {
	accepted := make([]bool, len(decls))

	for i, d := range decls {
		switch {
		case !d.Union.IsZero():
			if l.checkFresh(d.Union) {
				l.env.NewUnionType(ast.QualifiedName(d.Union.Value))
				accepted[i] = true
			}
		case !d.Record.IsZero():
			if l.checkFresh(d.Record) {
				l.env.NewRecordType(ast.QualifiedName(d.Record.Value))
				accepted[i] = true
			}
		case !d.Subset.IsZero():
			// second pass
		default:
			l.report.AddDiagnostic(reports.NewDiagnostic(reports.Error,
				reports.NewMessage("declaration must be one of subset, union or record")))
		}
	}

	for _, d := range decls {
		if d.Subset.IsZero() {
			continue
		}
		if !l.checkFresh(d.Subset) {
			continue
		}
		base, ok := l.resolve(d.Of)
		if !ok {
			continue
		}
		l.env.NewSubsetType(ast.QualifiedName(d.Subset.Value), base)
	}

	for i, d := range decls {
		if !accepted[i] {
			continue
		}
		switch {
		case !d.Union.IsZero():
			union := l.env.GetType(ast.QualifiedName(d.Union.Value)).(*types.UnionType)
			for _, elem := range d.Elements {
				if t, ok := l.resolve(elem); ok {
					union.Add(t)
				}
			}
			if len(d.Elements) == 0 {
				l.report.AddWarning(fmt.Sprintf("union %s has no elements", d.Union.Value), l.locOf(d.Union))
			}
		case !d.Record.IsZero():
			record := l.env.GetType(ast.QualifiedName(d.Record.Value)).(*types.RecordType)
			for _, f := range d.Fields {
				if t, ok := l.resolve(f.Type); ok {
					record.Add(f.Name, t)
				}
			}
		}
	}
}

// checkFresh reports whether the name is not yet taken, adding an error
// when it is.
func (l *loader) checkFresh(name yaml.Node) bool {
	if l.env.HasType(ast.QualifiedName(name.Value)) {
		l.report.AddError(fmt.Sprintf("type %s already declared", name.Value), l.locOf(name))
		return false
	}
	return true
}

// resolve looks a referenced type name up, adding an error when unknown.
func (l *loader) resolve(name yaml.Node) (types.Type, bool) {
	t, ok := l.env.LookupType(ast.QualifiedName(name.Value))
	if !ok {
		l.report.AddError(fmt.Sprintf("unknown type %s", name.Value), l.locOf(name))
	}
	return t, ok
}

func (l *loader) runQueries(queries []queryDecl) []string {
	var answers []string
	for _, q := range queries {
		switch {
		case len(q.Subtype) == 2:
			a, okA := l.resolve(q.Subtype[0])
			b, okB := l.resolve(q.Subtype[1])
			if !okA || !okB {
				continue
			}
			answers = append(answers, fmt.Sprintf("%s <: %s: %v", a.Name(), b.Name(), types.IsSubtypeOf(a, b)))
		case len(q.Subtype) != 0:
			l.report.AddError("subtype query takes exactly two operands", l.locOf(q.Subtype[0]))
		case len(q.Lub) > 0:
			operands, ok := l.resolveSet(q.Lub)
			if !ok {
				continue
			}
			answers = append(answers, fmt.Sprintf("lub%s = %s", renderOperands(q.Lub), types.LeastCommonSupertypesOf(operands)))
		case len(q.Glb) > 0:
			operands, ok := l.resolveSet(q.Glb)
			if !ok {
				continue
			}
			answers = append(answers, fmt.Sprintf("glb%s = %s", renderOperands(q.Glb), types.GreatestCommonSubtypesOf(operands)))
		case !q.Qualifier.IsZero():
			t, ok := l.resolve(q.Qualifier)
			if !ok {
				continue
			}
			answers = append(answers, fmt.Sprintf("qualifier(%s) = %s", t.Name(), types.TypeQualifier(t)))
		}
	}
	return answers
}

func (l *loader) resolveSet(names []yaml.Node) (types.TypeSet, bool) {
	operands := types.NewTypeSet()
	ok := true
	for _, name := range names {
		t, found := l.resolve(name)
		if !found {
			ok = false
			continue
		}
		operands.Insert(t)
	}
	return operands, ok
}

func renderOperands(names []yaml.Node) string {
	out := "("
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n.Value
	}
	return out + ")"
}
