// Package rdf provides the minimal triple model the crosswalk emits:
// IRI and literal terms, triples, and an idempotent in-memory graph.
package rdf

// TermKind distinguishes relation objects from literal values.
type TermKind int

const (
	// KindIRI is a reference to another entity.
	KindIRI TermKind = iota
	// KindLiteral is a plain or typed literal value.
	KindLiteral
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is the object position of a triple. Terms are comparable, so equal
// terms collapse when used as map keys.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string // only for literals; empty means a plain string literal
}

// IRI returns a relation object referencing the entity identified by iri.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Literal returns a plain string literal.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// TypedLiteral returns a literal typed with the given datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term references an entity.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}
