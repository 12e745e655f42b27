package rdf

// List is a cursor over an RDF collection (rdf:first/rdf:rest chain).
type List struct {
	model *Model
	head  Term
}

// CreateList builds an RDF collection holding the members and returns
// it. An empty member slice yields the rdf:nil list.
func (m *Model) CreateList(members ...Term) (*List, error) {
	if len(members) == 0 {
		return &List{model: m, head: RDFNil}, nil
	}
	var head Term = RDFNil
	// Build the chain back to front so each cell links the next.
	for i := len(members) - 1; i >= 0; i-- {
		cell := NewBlankNode()
		if err := m.graph.Add(Triple{S: cell, P: RDFFirst, O: members[i]}); err != nil {
			return nil, err
		}
		if err := m.graph.Add(Triple{S: cell, P: RDFRest, O: head}); err != nil {
			return nil, err
		}
		head = cell
	}
	return &List{model: m, head: head}, nil
}

// ListFrom wraps an existing collection head.
func (m *Model) ListFrom(head Term) *List {
	return &List{model: m, head: head}
}

// Head returns the first cell of the list (rdf:nil for the empty
// list).
func (l *List) Head() Term { return l.head }

// Model returns the model holding the list.
func (l *List) Model() *Model { return l.model }

// IsEmpty reports whether the list is rdf:nil.
func (l *List) IsEmpty() bool { return l.head == Term(RDFNil) }

// Members returns the member terms in order. Malformed cells (missing
// rdf:first or rdf:rest) terminate the walk.
func (l *List) Members() []Term {
	var out []Term
	cell := l.head
	for cell != Term(RDFNil) {
		first, ok := l.model.GetProperty(cell, RDFFirst)
		if !ok {
			return out
		}
		out = append(out, first.Object)
		rest, ok := l.model.GetProperty(cell, RDFRest)
		if !ok {
			return out
		}
		cell = rest.Object
	}
	return out
}

// Size returns the number of members.
func (l *List) Size() int { return len(l.Members()) }

// Index returns the 0-based position of the first member equal to the
// term, or -1.
func (l *List) Index(member Term) int {
	for i, m := range l.Members() {
		if m == member {
			return i
		}
	}
	return -1
}

// Append adds a member to the end of the list. When the list was
// empty the new cell becomes its head.
func (l *List) Append(member Term) error {
	cell := NewBlankNode()
	if err := l.model.Graph().Add(Triple{S: cell, P: RDFFirst, O: member}); err != nil {
		return err
	}
	if err := l.model.Graph().Add(Triple{S: cell, P: RDFRest, O: RDFNil}); err != nil {
		return err
	}
	if l.IsEmpty() {
		l.head = cell
		return nil
	}
	// Relink the last cell.
	last := l.head
	for {
		rest, ok := l.model.GetProperty(last, RDFRest)
		if !ok || rest.Object == Term(RDFNil) {
			break
		}
		last = rest.Object
	}
	if err := l.model.Graph().Delete(Triple{S: last, P: RDFRest, O: RDFNil}); err != nil {
		return err
	}
	return l.model.Graph().Add(Triple{S: last, P: RDFRest, O: cell})
}
