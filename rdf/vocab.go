package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// RDF namespace terms used by reification, lists and containers.
const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS = "http://www.w3.org/2001/XMLSchema#"
)

var (
	// RDFType is rdf:type.
	RDFType = IRI{Value: rdfNS + "type"}
	// RDFStatement is rdf:Statement, the class of reified statements.
	RDFStatement = IRI{Value: rdfNS + "Statement"}
	// RDFSubject is rdf:subject.
	RDFSubject = IRI{Value: rdfNS + "subject"}
	// RDFPredicate is rdf:predicate.
	RDFPredicate = IRI{Value: rdfNS + "predicate"}
	// RDFObject is rdf:object.
	RDFObject = IRI{Value: rdfNS + "object"}
	// RDFFirst is rdf:first.
	RDFFirst = IRI{Value: rdfNS + "first"}
	// RDFRest is rdf:rest.
	RDFRest = IRI{Value: rdfNS + "rest"}
	// RDFNil is rdf:nil, the empty list.
	RDFNil = IRI{Value: rdfNS + "nil"}
	// RDFList is rdf:List.
	RDFList = IRI{Value: rdfNS + "List"}
	// RDFBag is rdf:Bag.
	RDFBag = IRI{Value: rdfNS + "Bag"}
	// RDFAlt is rdf:Alt.
	RDFAlt = IRI{Value: rdfNS + "Alt"}
	// RDFSeq is rdf:Seq.
	RDFSeq = IRI{Value: rdfNS + "Seq"}
)

// XSD datatypes emitted by the typed-literal helpers.
var (
	XSDString   = IRI{Value: xsdNS + "string"}
	XSDBoolean  = IRI{Value: xsdNS + "boolean"}
	XSDInteger  = IRI{Value: xsdNS + "integer"}
	XSDDouble   = IRI{Value: xsdNS + "double"}
	XSDDateTime = IRI{Value: xsdNS + "dateTime"}
)

// Ordinal returns the container membership property rdf:_n for a
// 1-based index.
func Ordinal(n int) IRI {
	return IRI{Value: fmt.Sprintf("%s_%d", rdfNS, n)}
}

// OrdinalIndex returns the 1-based index of a container membership
// property, or 0 if the IRI is not one.
func OrdinalIndex(p Term) int {
	iri, ok := p.(IRI)
	if !ok {
		return 0
	}
	rest, ok := strings.CutPrefix(iri.Value, rdfNS+"_")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
