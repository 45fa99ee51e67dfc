package rdf

import (
	"cmp"
	"slices"
)

// Triple is a single (subject, predicate, object) assertion.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Sink accepts triples. Adding a triple that is already present has no
// additional effect.
type Sink interface {
	Add(subject, predicate string, object Term)
}

// Graph is an in-memory set of triples. It is not safe for concurrent use.
type Graph struct {
	triples map[Triple]struct{}
}

// Ensure Graph implements Sink
var _ Sink = (*Graph)(nil)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts a triple.
func (g *Graph) Add(subject, predicate string, object Term) {
	g.triples[Triple{Subject: subject, Predicate: predicate, Object: object}] = struct{}{}
}

// AddTriple inserts an existing Triple value.
func (g *Graph) AddTriple(t Triple) {
	g.triples[t] = struct{}{}
}

// Has reports whether the graph contains the triple.
func (g *Graph) Has(subject, predicate string, object Term) bool {
	_, ok := g.triples[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Merge adds every triple of other to g.
func (g *Graph) Merge(other *Graph) {
	for t := range other.triples {
		g.triples[t] = struct{}{}
	}
}

// Objects returns the objects of all triples matching subject and predicate,
// in sorted order.
func (g *Graph) Objects(subject, predicate string) []Term {
	var result []Term
	for t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			result = append(result, t.Object)
		}
	}
	slices.SortFunc(result, compareTerms)
	return result
}

// Subjects returns the distinct subjects having predicate with the given
// object, in sorted order.
func (g *Graph) Subjects(predicate string, object Term) []string {
	seen := make(map[string]bool)
	var result []string
	for t := range g.triples {
		if t.Predicate == predicate && t.Object == object && !seen[t.Subject] {
			seen[t.Subject] = true
			result = append(result, t.Subject)
		}
	}
	slices.Sort(result)
	return result
}

// Triples returns all triples sorted by subject, predicate and object so
// that serialized output is deterministic.
func (g *Graph) Triples() []Triple {
	result := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b Triple) int {
		return cmp.Or(
			cmp.Compare(a.Subject, b.Subject),
			cmp.Compare(a.Predicate, b.Predicate),
			compareTerms(a.Object, b.Object),
		)
	})
	return result
}

func compareTerms(a, b Term) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Value, b.Value),
		cmp.Compare(a.Datatype, b.Datatype),
	)
}
