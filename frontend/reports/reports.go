// Package reports collects the located errors and warnings produced while
// analysing a compilation unit. The type engine itself never reports here;
// the surrounding analysis stage turns its boolean and set results into
// located diagnostics.
package reports

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/ragu-lang/ragu/frontend/ast"
)

type DiagnosticKind uint8

const (
	Error DiagnosticKind = iota
	Warning
)

func (k DiagnosticKind) String() string {
	if k == Error {
		return "Error"
	}
	return "Warning"
}

// DiagnosticMessage is one line of a diagnostic, optionally anchored to a
// source location.
type DiagnosticMessage struct {
	message string
	hasLoc  bool
	loc     ast.SrcLocation
}

func NewMessage(message string) DiagnosticMessage {
	return DiagnosticMessage{message: message}
}

func NewLocatedMessage(message string, loc ast.SrcLocation) DiagnosticMessage {
	return DiagnosticMessage{message: message, hasLoc: true, loc: loc}
}

func (m DiagnosticMessage) Message() string { return m.message }

func (m DiagnosticMessage) HasLocation() bool { return m.hasLoc }

// Location returns the anchor of a located message. Asking a location-less
// message for one is a caller bug.
func (m DiagnosticMessage) Location() ast.SrcLocation {
	if !m.hasLoc {
		panic("reports: message has no location")
	}
	return m.loc
}

func (m DiagnosticMessage) compare(other DiagnosticMessage) int {
	if m.hasLoc != other.hasLoc {
		if m.hasLoc {
			return -1
		}
		return 1
	}
	if m.hasLoc {
		if c := m.loc.Compare(other.loc); c != 0 {
			return c
		}
	}
	return cmp.Compare(m.message, other.message)
}

func (m DiagnosticMessage) String() string {
	if m.hasLoc {
		return fmt.Sprintf("%s in %s", m.message, m.loc)
	}
	return m.message
}

// Diagnostic is an error or warning with a primary message and any number
// of additional notes.
type Diagnostic struct {
	kind       DiagnosticKind
	primary    DiagnosticMessage
	additional []DiagnosticMessage
}

func NewDiagnostic(kind DiagnosticKind, primary DiagnosticMessage, additional ...DiagnosticMessage) Diagnostic {
	return Diagnostic{kind: kind, primary: primary, additional: additional}
}

func (d Diagnostic) Kind() DiagnosticKind                    { return d.kind }
func (d Diagnostic) PrimaryMessage() DiagnosticMessage       { return d.primary }
func (d Diagnostic) AdditionalMessages() []DiagnosticMessage { return d.additional }

// Compare orders diagnostics for presentation: located ones first, then by
// location, then errors before warnings, then by message text. Additional
// messages break the remaining ties, so the order is total over distinct
// diagnostics.
func (d Diagnostic) Compare(other Diagnostic) int {
	if d.primary.hasLoc != other.primary.hasLoc {
		if d.primary.hasLoc {
			return -1
		}
		return 1
	}
	if d.primary.hasLoc {
		if c := d.primary.loc.Compare(other.primary.loc); c != 0 {
			return c
		}
	}
	if d.kind != other.kind {
		return cmp.Compare(d.kind, other.kind)
	}
	if c := cmp.Compare(d.primary.message, other.primary.message); c != 0 {
		return c
	}
	for i := range min(len(d.additional), len(other.additional)) {
		if c := d.additional[i].compare(other.additional[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(d.additional), len(other.additional))
}

// Hash identifies structurally identical diagnostics for deduplication.
func (d Diagnostic) Hash() uint64 {
	h := fnv.New64a()
	writeMessage := func(m DiagnosticMessage) {
		_, _ = fmt.Fprintf(h, "%d|%s|%v|%v;", d.kind, m.message, m.hasLoc, m.loc)
	}
	writeMessage(d.primary)
	for _, m := range d.additional {
		writeMessage(m)
	}
	return h.Sum64()
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.kind.String())
	sb.WriteString(": ")
	sb.WriteString(d.primary.String())
	for _, m := range d.additional {
		sb.WriteString("\n")
		sb.WriteString(m.String())
	}
	return sb.String()
}

// ErrorReport accumulates deduplicated diagnostics for one compilation
// unit and renders them in presentation order.
type ErrorReport struct {
	diagnostics *set.HashSet[Diagnostic, uint64]
	noWarn      bool
}

// NewErrorReport creates an empty report. With suppressWarnings set,
// warnings are silently dropped and only errors accumulate.
func NewErrorReport(suppressWarnings bool) *ErrorReport {
	return &ErrorReport{
		diagnostics: set.NewHashSet[Diagnostic, uint64](0),
		noWarn:      suppressWarnings,
	}
}

// AddError records an error anchored at loc.
func (r *ErrorReport) AddError(message string, loc ast.SrcLocation) {
	r.diagnostics.Insert(NewDiagnostic(Error, NewLocatedMessage(message, loc)))
}

// AddWarning records a warning anchored at loc, unless warnings are
// suppressed.
func (r *ErrorReport) AddWarning(message string, loc ast.SrcLocation) {
	if r.noWarn {
		return
	}
	r.diagnostics.Insert(NewDiagnostic(Warning, NewLocatedMessage(message, loc)))
}

func (r *ErrorReport) AddDiagnostic(d Diagnostic) {
	if r.noWarn && d.kind == Warning {
		return
	}
	r.diagnostics.Insert(d)
}

func (r *ErrorReport) NumErrors() int {
	n := 0
	for _, d := range r.diagnostics.Slice() {
		if d.kind == Error {
			n++
		}
	}
	return n
}

func (r *ErrorReport) NumWarnings() int {
	n := 0
	for _, d := range r.diagnostics.Slice() {
		if d.kind == Warning {
			n++
		}
	}
	return n
}

func (r *ErrorReport) NumIssues() int {
	return r.diagnostics.Size()
}

// Diagnostics returns the collected diagnostics in presentation order.
func (r *ErrorReport) Diagnostics() []Diagnostic {
	out := r.diagnostics.Slice()
	slices.SortFunc(out, Diagnostic.Compare)
	return out
}

func (r *ErrorReport) String() string {
	var sb strings.Builder
	for _, d := range r.Diagnostics() {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ExitIfErrors prints the report and terminates the process when at least
// one error has been collected. Warnings alone do not terminate.
func (r *ErrorReport) ExitIfErrors() {
	numErrors := r.NumErrors()
	if numErrors == 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s%d errors generated, evaluation aborted\n", r, numErrors)
	os.Exit(1)
}
