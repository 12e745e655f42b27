package rdf

// Statement is a triple reinterpreted with typed roles: a resource
// subject (IRI or blank node), a property predicate (IRI) and an
// arbitrary object. A statement is value-equal to its triple.
type Statement struct {
	// Subject is the statement subject.
	Subject Term
	// Predicate is the statement predicate.
	Predicate Term
	// Object is the statement object.
	Object Term
}

// NewStatement builds a statement from its parts.
func NewStatement(s, p, o Term) Statement {
	return Statement{Subject: s, Predicate: p, Object: o}
}

// StatementFromTriple reinterprets a triple as a statement.
func StatementFromTriple(t Triple) Statement {
	return Statement{Subject: t.S, Predicate: t.P, Object: t.O}
}

// AsTriple returns the statement as a triple.
func (s Statement) AsTriple() Triple {
	return Triple{S: s.Subject, P: s.Predicate, O: s.Object}
}

// String returns a string representation of the statement.
func (s Statement) String() string { return s.AsTriple().String() }

// StatementIterator adapts a TripleIterator to statements.
type StatementIterator struct {
	it TripleIterator
}

// NewStatementIterator wraps a triple iterator.
func NewStatementIterator(it TripleIterator) *StatementIterator {
	return &StatementIterator{it: it}
}

// Next returns the next statement, or false when exhausted.
func (si *StatementIterator) Next() (Statement, bool) {
	t, ok := si.it.Next()
	if !ok {
		return Statement{}, false
	}
	return StatementFromTriple(t), true
}

// Close releases the underlying iterator.
func (si *StatementIterator) Close() { si.it.Close() }

// CollectStatements drains a statement iterator and closes it.
func CollectStatements(si *StatementIterator) []Statement {
	defer si.Close()
	var out []Statement
	for {
		s, ok := si.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
