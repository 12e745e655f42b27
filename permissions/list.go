package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// SecuredList mediates access to an RDF collection. Member reads are
// filtered per-cell; mutations decompose into the standard list
// create checks.
type SecuredList struct {
	item securedItem
	base *rdf.List
}

// CreateList builds an RDF collection after Update and the
// per-element Create checks: the rdf:nil marker, one
// (ANY, rdf:first, member) per member, and (ANY, rdf:rest, ANY).
func (m *SecuredModel) CreateList(members ...rdf.Term) (*SecuredList, error) {
	if err := m.checkUpdate(); err != nil {
		return nil, err
	}
	if err := m.checkCreate(rdf.Triple{S: rdf.RDFNil, P: IgnoreNode, O: IgnoreNode}); err != nil {
		return nil, err
	}
	for _, member := range members {
		if err := m.checkCreate(rdf.Triple{S: rdf.Any, P: rdf.RDFFirst, O: member}); err != nil {
			return nil, err
		}
		if err := m.checkCreate(rdf.Triple{S: rdf.Any, P: rdf.RDFRest, O: rdf.Any}); err != nil {
			return nil, err
		}
	}
	base, err := m.base.CreateList(members...)
	if err != nil {
		return nil, err
	}
	return &SecuredList{item: m.securedItem, base: base}, nil
}

// ListFrom wraps an existing collection head.
func (m *SecuredModel) ListFrom(head rdf.Term) *SecuredList {
	return &SecuredList{item: m.securedItem, base: m.base.ListFrom(head)}
}

// Head returns the first cell of the list.
func (l *SecuredList) Head() rdf.Term { return l.base.Head() }

// IsEmpty reports whether the list is rdf:nil.
func (l *SecuredList) IsEmpty() bool { return l.base.IsEmpty() }

// Members returns the members whose rdf:first triples are readable.
// An unreadable cell hides its member but not the rest of the walk.
func (l *SecuredList) Members() ([]rdf.Term, error) {
	proceed, err := l.item.checkSoftRead()
	if err != nil || !proceed {
		return nil, err
	}
	model := l.base.Model()
	var out []rdf.Term
	cell := l.base.Head()
	for cell != rdf.Term(rdf.RDFNil) {
		first, ok := model.GetProperty(cell, rdf.RDFFirst)
		if !ok {
			break
		}
		if readable, err := l.item.canReadTriple(first.AsTriple()); err == nil && readable {
			out = append(out, first.Object)
		}
		rest, ok := model.GetProperty(cell, rdf.RDFRest)
		if !ok {
			break
		}
		cell = rest.Object
	}
	return out, nil
}

// Size returns the number of readable members.
func (l *SecuredList) Size() (int, error) {
	members, err := l.Members()
	if err != nil {
		return 0, err
	}
	return len(members), nil
}

// Index returns the 0-based position of the member among the readable
// members, or -1.
func (l *SecuredList) Index(member rdf.Term) (int, error) {
	members, err := l.Members()
	if err != nil {
		return -1, err
	}
	for i, m := range members {
		if m == member {
			return i, nil
		}
	}
	return -1, nil
}

// Append adds a member to the end of the list after Update and the
// list Create checks. Appending to a non-empty list relinks the last
// cell's rdf:rest triple, so that delete-plus-create pair is checked
// too; any denial aborts before the base is touched.
func (l *SecuredList) Append(member rdf.Term) error {
	if err := l.item.checkUpdate(); err != nil {
		return err
	}
	if err := l.item.checkCreate(rdf.Triple{S: rdf.Any, P: rdf.RDFFirst, O: member}); err != nil {
		return err
	}
	if err := l.item.checkCreate(rdf.Triple{S: rdf.Any, P: rdf.RDFRest, O: rdf.Any}); err != nil {
		return err
	}
	if last, ok := l.lastCell(); ok {
		if err := l.item.checkDelete(rdf.Triple{S: last, P: rdf.RDFRest, O: rdf.RDFNil}); err != nil {
			return err
		}
		if err := l.item.checkCreate(rdf.Triple{S: last, P: rdf.RDFRest, O: rdf.Any}); err != nil {
			return err
		}
	}
	return l.base.Append(member)
}

// lastCell returns the final cell of a non-empty list.
func (l *SecuredList) lastCell() (rdf.Term, bool) {
	if l.base.IsEmpty() {
		return nil, false
	}
	model := l.base.Model()
	cell := l.base.Head()
	for {
		rest, ok := model.GetProperty(cell, rdf.RDFRest)
		if !ok || rest.Object == rdf.Term(rdf.RDFNil) {
			return cell, true
		}
		cell = rest.Object
	}
}
