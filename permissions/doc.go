// Package permissions provides a permissioned façade over the rdf
// package: every read, add, update and delete routed through a
// SecuredGraph or SecuredModel is mediated by a pluggable
// SecurityEvaluator that decides, per principal and per triple,
// whether the operation is permitted.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The façade never relaxes RDF semantics and never leaks forbidden
// data:
//   - Iterators are lazily filtered so forbidden triples cannot escape
//     through Find, Size, IsEmpty, Contains or isomorphism checks.
//   - Mutations are fail-closed: a denial anywhere in a bulk operation
//     leaves the base unchanged.
//   - Reified statements, lists and containers decompose into the
//     per-triple checks of their constituent triples.
//   - The event manager suppresses notifications a listener's
//     principal may not read.
//
// Evaluators run in one of two read modes: hard-read raises
// ErrReadDenied for denied reads, soft-read returns empty results.
//
// Example:
//
//	base := rdf.NewMemModel(rdf.IRI{Value: "http://example.org/g"})
//	secured := permissions.NewSecuredModel(base, evaluator)
//	if err := secured.Add(stmt); err != nil {
//	    if errors.Is(err, permissions.ErrAccessDenied) {
//	        // denied
//	    }
//	}
//
// The principal is obtained from the evaluator on every call, never
// stored on the façade, so one secured model can serve concurrent
// tenants with context-scoped principals. The façade itself is
// thread-compatible: concurrent access to one instance is serialized
// by the caller.
package permissions
