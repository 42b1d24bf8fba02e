package ast

import "strings"

// QualifiedName is a dot-separated identifier path, such as `graph.Node`.
// It is the unique key a type is registered under in its environment.
type QualifiedName string

func QualifiedNameOf(parts ...string) QualifiedName {
	return QualifiedName(strings.Join(parts, "."))
}

// Parts splits the name into its identifier segments.
func (n QualifiedName) Parts() []string {
	if n == "" {
		return nil
	}
	return strings.Split(string(n), ".")
}

func (n QualifiedName) String() string {
	return string(n)
}
