package rdf

// Model is a statement-level view over a Graph with helpers for typed
// literals, set algebra, reification, lists and containers.
type Model struct {
	graph Graph
}

// NewModel wraps an existing graph.
func NewModel(g Graph) *Model {
	return &Model{graph: g}
}

// NewMemModel creates a model over a fresh in-memory graph.
func NewMemModel(name IRI) *Model {
	return &Model{graph: NewMemGraph(name)}
}

// Graph returns the underlying graph.
func (m *Model) Graph() Graph { return m.graph }

// Name returns the underlying graph IRI.
func (m *Model) Name() IRI { return m.graph.Name() }

// Add inserts a statement.
func (m *Model) Add(s Statement) error {
	return m.graph.Add(s.AsTriple())
}

// AddAll inserts every statement in the slice.
func (m *Model) AddAll(stmts []Statement) error {
	for _, s := range stmts {
		if err := m.graph.Add(s.AsTriple()); err != nil {
			return err
		}
	}
	return nil
}

// AddModel inserts every statement of the other model.
func (m *Model) AddModel(other *Model) error {
	for _, t := range Collect(other.graph.Find(AnyTriple)) {
		if err := m.graph.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// AddLiteral adds a statement whose object is the canonical literal of
// the value.
func (m *Model) AddLiteral(s, p Term, value any) error {
	return m.Add(m.CreateLiteralStatement(s, p, value))
}

// Remove deletes a statement.
func (m *Model) Remove(s Statement) error {
	return m.graph.Delete(s.AsTriple())
}

// RemoveAll deletes every statement in the slice.
func (m *Model) RemoveAll(stmts []Statement) error {
	for _, s := range stmts {
		if err := m.graph.Delete(s.AsTriple()); err != nil {
			return err
		}
	}
	return nil
}

// RemoveModel deletes every statement of the other model.
func (m *Model) RemoveModel(other *Model) error {
	for _, t := range Collect(other.graph.Find(AnyTriple)) {
		if err := m.graph.Delete(t); err != nil {
			return err
		}
	}
	return nil
}

// RemoveMatches deletes every statement matching the pattern.
func (m *Model) RemoveMatches(s, p, o Term) error {
	return m.graph.Remove(Triple{S: s, P: p, O: o})
}

// Contains reports whether the statement is present.
func (m *Model) Contains(s Statement) bool {
	return m.graph.Contains(s.AsTriple())
}

// ContainsMatch reports whether any statement matches the pattern.
func (m *Model) ContainsMatch(s, p, o Term) bool {
	return m.graph.Contains(Triple{S: s, P: p, O: o})
}

// ContainsResource reports whether the term appears as the subject or
// object of any statement.
func (m *Model) ContainsResource(r Term) bool {
	return m.graph.Contains(Triple{S: r, P: Any, O: Any}) ||
		m.graph.Contains(Triple{S: Any, P: Any, O: r})
}

// ContainsAll reports whether every statement of the other model is
// present.
func (m *Model) ContainsAll(other *Model) bool {
	it := other.graph.Find(AnyTriple)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return true
		}
		if !m.graph.Contains(t) {
			return false
		}
	}
}

// ContainsAny reports whether at least one statement of the other
// model is present.
func (m *Model) ContainsAny(other *Model) bool {
	it := other.graph.Find(AnyTriple)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return false
		}
		if m.graph.Contains(t) {
			return true
		}
	}
}

// ListStatements returns an iterator over statements matching the
// pattern.
func (m *Model) ListStatements(s, p, o Term) *StatementIterator {
	return NewStatementIterator(m.graph.Find(Triple{S: s, P: p, O: o}))
}

// Statements returns all statements in insertion order.
func (m *Model) Statements() []Statement {
	return CollectStatements(m.ListStatements(Any, Any, Any))
}

// Query returns the statements accepted by the selector.
func (m *Model) Query(selector func(Statement) bool) []Statement {
	var out []Statement
	for _, s := range m.Statements() {
		if selector(s) {
			out = append(out, s)
		}
	}
	return out
}

// Union returns a new in-memory model holding the union of both
// models. Prefix bindings of both sides are merged, self winning on
// conflicts.
func (m *Model) Union(other *Model) *Model {
	out := NewMemModel(m.Name())
	_ = out.Graph().PrefixMapping().SetNsPrefixes(other.graph.PrefixMapping().NsPrefixMap())
	_ = out.Graph().PrefixMapping().SetNsPrefixes(m.graph.PrefixMapping().NsPrefixMap())
	_ = out.AddModel(other)
	_ = out.AddModel(m)
	return out
}

// Intersection returns a new in-memory model holding the statements
// present in both models.
func (m *Model) Intersection(other *Model) *Model {
	out := NewMemModel(m.Name())
	it := m.graph.Find(AnyTriple)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		if other.graph.Contains(t) {
			_ = out.Graph().Add(t)
		}
	}
}

// Difference returns a new in-memory model holding the statements of
// this model not present in the other.
func (m *Model) Difference(other *Model) *Model {
	out := NewMemModel(m.Name())
	it := m.graph.Find(AnyTriple)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		if !other.graph.Contains(t) {
			_ = out.Graph().Add(t)
		}
	}
}

// GetProperty returns the first statement with the given subject and
// predicate.
func (m *Model) GetProperty(s, p Term) (Statement, bool) {
	it := m.graph.Find(Triple{S: s, P: p, O: Any})
	defer it.Close()
	t, ok := it.Next()
	if !ok {
		return Statement{}, false
	}
	return StatementFromTriple(t), true
}

// GetPropertyLang returns the first statement with the given subject
// and predicate whose object is a literal with the language tag. The
// empty tag matches only untagged literals.
func (m *Model) GetPropertyLang(s, p Term, lang string) (Statement, bool) {
	it := m.graph.Find(Triple{S: s, P: p, O: Any})
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return Statement{}, false
		}
		if lit, ok := t.O.(Literal); ok && lit.Lang == lang {
			return StatementFromTriple(t), true
		}
	}
}

// GetRequiredProperty is GetProperty raising ErrPropertyNotFound when
// no statement matches.
func (m *Model) GetRequiredProperty(s, p Term) (Statement, error) {
	stmt, ok := m.GetProperty(s, p)
	if !ok {
		return Statement{}, ErrPropertyNotFound
	}
	return stmt, nil
}

// GetRequiredPropertyLang is GetPropertyLang raising
// ErrPropertyNotFound when no statement matches.
func (m *Model) GetRequiredPropertyLang(s, p Term, lang string) (Statement, error) {
	stmt, ok := m.GetPropertyLang(s, p, lang)
	if !ok {
		return Statement{}, ErrPropertyNotFound
	}
	return stmt, nil
}

// CreateResource allocates a fresh anonymous resource. No statements
// are added.
func (m *Model) CreateResource() Term { return NewBlankNode() }

// CreateProperty builds a property IRI from a namespace and local
// name.
func (m *Model) CreateProperty(namespace, localName string) IRI {
	return IRI{Value: namespace + localName}
}

// CreateStatement builds a statement without adding it.
func (m *Model) CreateStatement(s, p, o Term) Statement {
	return NewStatement(s, p, o)
}

// CreateLiteralStatement builds a statement whose object is the
// canonical literal of the value, without adding it.
func (m *Model) CreateLiteralStatement(s, p Term, value any) Statement {
	return NewStatement(s, p, NewLiteral(value))
}

// Size returns the number of statements.
func (m *Model) Size() int { return m.graph.Size() }

// IsEmpty reports whether the model holds no statements.
func (m *Model) IsEmpty() bool { return m.graph.IsEmpty() }

// PrefixMapping returns the graph's prefix mapping.
func (m *Model) PrefixMapping() PrefixMapping { return m.graph.PrefixMapping() }

// Close closes the underlying graph.
func (m *Model) Close() error { return m.graph.Close() }

// IsClosed reports whether the underlying graph is closed.
func (m *Model) IsClosed() bool { return m.graph.IsClosed() }
