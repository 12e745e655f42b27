package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// reificationCheckTriples returns the four triples checked when
// reifying a statement as r. A nil r stands for a not-yet-materialized
// resource and is replaced by FutureNode.
func reificationCheckTriples(r rdf.Term, s rdf.Statement) []rdf.Triple {
	if r == nil {
		r = FutureNode
	}
	return rdf.ReificationTriples(r, s)
}

// CreateReifiedStatement reifies the statement as r (nil allocates a
// fresh blank node) after Update and per-constituent Create checks.
func (m *SecuredModel) CreateReifiedStatement(r rdf.Term, s rdf.Statement) (rdf.Term, error) {
	if err := m.checkUpdate(); err != nil {
		return nil, err
	}
	for _, t := range reificationCheckTriples(r, s) {
		if err := m.checkCreate(t); err != nil {
			return nil, err
		}
	}
	return m.base.CreateReifiedStatement(r, s)
}

// readableReification reports whether every reification triple of r
// present in the base is readable by the current principal.
func (m *SecuredModel) readableReification(r rdf.Term) bool {
	for _, t := range m.base.ReificationStatements(r) {
		readable, err := m.canReadTriple(t)
		if err != nil || !readable {
			return false
		}
	}
	return true
}

// ListReifiedStatements returns the resources reifying the statement
// whose constituent triples are all readable.
func (m *SecuredModel) ListReifiedStatements(s rdf.Statement) ([]rdf.Term, error) {
	proceed, err := m.checkSoftRead()
	if err != nil || !proceed {
		return nil, err
	}
	var out []rdf.Term
	for _, r := range m.base.ReificationsOf(s) {
		if m.readableReification(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// IsReified reports whether at least one readable reification of the
// statement exists.
func (m *SecuredModel) IsReified(s rdf.Statement) (bool, error) {
	rs, err := m.ListReifiedStatements(s)
	if err != nil {
		return false, err
	}
	return len(rs) > 0, nil
}

// AnyReifiedStatement returns the first readable reification of the
// statement, or creates one when none is readable. Creation requires
// Update and per-constituent Create as for CreateReifiedStatement.
func (m *SecuredModel) AnyReifiedStatement(s rdf.Statement) (rdf.Term, error) {
	rs, err := m.ListReifiedStatements(s)
	if err != nil {
		return nil, err
	}
	if len(rs) > 0 {
		return rs[0], nil
	}
	return m.CreateReifiedStatement(nil, s)
}

// RemoveReification deletes the reification triples of r after Update
// and per-triple Delete checks. A denial leaves the base unchanged.
func (m *SecuredModel) RemoveReification(r rdf.Term) error {
	if err := m.checkUpdate(); err != nil {
		return err
	}
	triples := m.base.ReificationStatements(r)
	for _, t := range triples {
		if err := m.checkDelete(t); err != nil {
			return err
		}
	}
	for _, t := range triples {
		if err := m.base.Graph().Delete(t); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAllReifications deletes every reification of the statement,
// pre-checking all constituent triples first.
func (m *SecuredModel) RemoveAllReifications(s rdf.Statement) error {
	if err := m.checkUpdate(); err != nil {
		return err
	}
	var triples []rdf.Triple
	for _, r := range m.base.ReificationsOf(s) {
		triples = append(triples, m.base.ReificationStatements(r)...)
	}
	for _, t := range triples {
		if err := m.checkDelete(t); err != nil {
			return err
		}
	}
	for _, t := range triples {
		if err := m.base.Graph().Delete(t); err != nil {
			return err
		}
	}
	return nil
}
