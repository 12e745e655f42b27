package rdf

// ReificationTriples returns the four triples that reify the statement
// as the resource r: rdf:type rdf:Statement plus rdf:subject,
// rdf:predicate and rdf:object.
func ReificationTriples(r Term, s Statement) []Triple {
	return []Triple{
		{S: r, P: RDFType, O: RDFStatement},
		{S: r, P: RDFSubject, O: s.Subject},
		{S: r, P: RDFPredicate, O: s.Predicate},
		{S: r, P: RDFObject, O: s.Object},
	}
}

// CreateReifiedStatement reifies the statement as r, adding the four
// reification triples. A nil r allocates a fresh blank node. Returns
// the reifying resource.
func (m *Model) CreateReifiedStatement(r Term, s Statement) (Term, error) {
	if r == nil {
		r = NewBlankNode()
	}
	for _, t := range ReificationTriples(r, s) {
		if err := m.graph.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ReificationsOf returns the resources that reify the statement: every
// R whose rdf:subject, rdf:predicate and rdf:object triples match the
// statement. The rdf:type triple is implicit and not required.
func (m *Model) ReificationsOf(s Statement) []Term {
	var out []Term
	it := m.graph.Find(Triple{S: Any, P: RDFSubject, O: s.Subject})
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		r := t.S
		if m.graph.Contains(Triple{S: r, P: RDFPredicate, O: s.Predicate}) &&
			m.graph.Contains(Triple{S: r, P: RDFObject, O: s.Object}) {
			out = append(out, r)
		}
	}
}

// IsReified reports whether at least one resource reifies the
// statement.
func (m *Model) IsReified(s Statement) bool {
	return len(m.ReificationsOf(s)) > 0
}

// AnyReifiedStatement returns an existing reification of the statement
// or creates a fresh one.
func (m *Model) AnyReifiedStatement(s Statement) (Term, error) {
	if rs := m.ReificationsOf(s); len(rs) > 0 {
		return rs[0], nil
	}
	return m.CreateReifiedStatement(nil, s)
}

// ReificationStatements returns the reification triples of r that are
// present in the model.
func (m *Model) ReificationStatements(r Term) []Triple {
	var out []Triple
	for _, p := range []IRI{RDFSubject, RDFPredicate, RDFObject} {
		out = append(out, Collect(m.graph.Find(Triple{S: r, P: p, O: Any}))...)
	}
	if m.graph.Contains(Triple{S: r, P: RDFType, O: RDFStatement}) {
		out = append(out, Triple{S: r, P: RDFType, O: RDFStatement})
	}
	return out
}

// RemoveReification deletes every reification triple of r.
func (m *Model) RemoveReification(r Term) error {
	for _, t := range m.ReificationStatements(r) {
		if err := m.graph.Delete(t); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAllReifications deletes every reification of the statement.
func (m *Model) RemoveAllReifications(s Statement) error {
	for _, r := range m.ReificationsOf(s) {
		if err := m.RemoveReification(r); err != nil {
			return err
		}
	}
	return nil
}
