// Package omexmeta reads and writes OMEX Metadata: RDF graphs describing
// COMBINE archives and their contents. It offers two representations of a
// metadata file: a flat triple list, and a projection of the graph onto
// the fixed BioSimulations attribute schema. The inverse transform writes
// either representation back to a choice of RDF serializations.
package omexmeta

import "fmt"

// NodeKind tags the variants of an RDF node.
type NodeKind int

const (
	// KindIRI is a URI reference.
	KindIRI NodeKind = iota

	// KindBlank is a blank (anonymous) node. Identity is graph-local.
	KindBlank

	// KindLiteral is a literal value.
	KindLiteral
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case KindIRI:
		return "uri"
	case KindBlank:
		return "bnode"
	case KindLiteral:
		return "literal"
	}
	return "unknown"
}

// Node is a tagged RDF node: a URI reference, a blank node, or a
// literal. Blank nodes carry a graph-local identifier, never a raw URI,
// so identifiers from independently parsed graphs cannot collide with
// real resources.
type Node struct {
	Kind NodeKind

	// Value is the IRI for KindIRI, the local identifier for KindBlank,
	// and the lexical form for KindLiteral.
	Value string
}

// IRI creates a URI-reference node.
func IRI(value string) Node {
	return Node{Kind: KindIRI, Value: value}
}

// Blank creates a blank node with a graph-local identifier.
func Blank(id string) Node {
	return Node{Kind: KindBlank, Value: id}
}

// Literal creates a literal node.
func Literal(value string) Node {
	return Node{Kind: KindLiteral, Value: value}
}

// key returns the identity under which the node is indexed during
// projection. Blank identifiers are prefixed so they cannot collide with
// IRIs; equal literals share a key, which is harmless because literals
// never have outgoing statements.
func (n Node) key() string {
	switch n.Kind {
	case KindBlank:
		return "_:" + n.Value
	case KindLiteral:
		return "\"" + n.Value + "\""
	}
	return n.Value
}

// String renders the node for diagnostics.
func (n Node) String() string {
	switch n.Kind {
	case KindBlank:
		return "_:" + n.Value
	case KindLiteral:
		return fmt.Sprintf("%q", n.Value)
	}
	return "<" + n.Value + ">"
}

// Triple is one RDF statement.
type Triple struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// String renders the triple for diagnostics.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}
