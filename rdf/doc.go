// Package rdf provides a compact RDF model: terms, triples, an
// in-memory graph, a statement-level model and minimal I/O.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package is the base layer the permissions façade wraps:
//   - Terms: IRI, BlankNode, Literal and the Wildcard used in find
//     patterns (rdf.Any, rdf.AnyTriple).
//   - Graph: the triple-store contract plus MemGraph, an in-memory
//     implementation with insertion-order iteration and blank-node
//     aware isomorphism.
//   - Model: statements over a graph, with set algebra, property
//     lookup, typed literals, reification, RDF lists and containers.
//   - Events: GraphEventManager fans change notifications out to
//     GraphListener implementations.
//   - I/O: N-Triples and JSON-LD (via json-gold) through
//     Model.ReadFrom and Model.WriteTo.
//
// Example (populating and querying a model):
//
//	m := rdf.NewMemModel(rdf.IRI{Value: "http://example.org/g"})
//	s := rdf.IRI{Value: "http://example.org/s"}
//	p := rdf.IRI{Value: "http://example.org/p"}
//	if err := m.AddLiteral(s, p, "hello"); err != nil {
//	    // handle error
//	}
//	stmt, ok := m.GetProperty(s, p)
//
// Graphs are thread-compatible, not thread-safe: callers serialize
// concurrent access to one instance.
package rdf
