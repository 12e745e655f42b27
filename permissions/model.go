package permissions

import (
	"errors"
	"io"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

// SecuredModel is the statement-level façade over a base model. It
// composes SecuredGraph for triple mediation and adds the bulk,
// algebra, reification, list and container operations with their
// per-triple check decomposition.
//
// Bulk mutations are pre-checked: every element's check must pass
// before any element reaches the base, so a denial leaves the base
// unchanged (the in-memory base offers no rollback).
type SecuredModel struct {
	securedItem
	base  *rdf.Model
	graph *SecuredGraph
}

// NewSecuredModel wraps a base model with the evaluator.
func NewSecuredModel(base *rdf.Model, evaluator SecurityEvaluator) *SecuredModel {
	return &SecuredModel{
		securedItem: securedItem{evaluator: evaluator, graph: base.Name()},
		base:        base,
		graph:       NewSecuredGraph(base.Graph(), evaluator),
	}
}

// Name returns the graph IRI.
func (m *SecuredModel) Name() rdf.IRI { return m.graph.Name() }

// Graph returns the secured graph façade.
func (m *SecuredModel) Graph() *SecuredGraph { return m.graph }

// Add inserts one statement after Update and Create checks.
func (m *SecuredModel) Add(s rdf.Statement) error {
	return m.graph.Add(s.AsTriple())
}

// AddAll inserts the statements. Every Create check must pass before
// any statement is applied.
func (m *SecuredModel) AddAll(stmts []rdf.Statement) error {
	if err := m.checkUpdate(); err != nil {
		return err
	}
	for _, s := range stmts {
		if err := m.checkCreate(s.AsTriple()); err != nil {
			return err
		}
	}
	return m.base.AddAll(stmts)
}

// AddModel inserts every statement of the other model, pre-checked.
func (m *SecuredModel) AddModel(other *rdf.Model) error {
	return m.AddAll(other.Statements())
}

// AddIterator inserts every statement yielded by the iterator,
// pre-checked. The iterator is drained and closed.
func (m *SecuredModel) AddIterator(it *rdf.StatementIterator) error {
	return m.AddAll(rdf.CollectStatements(it))
}

// AddLiteral adds a statement whose object is the canonical literal
// of the value.
func (m *SecuredModel) AddLiteral(s, p rdf.Term, value any) error {
	return m.Add(rdf.NewStatement(s, p, rdf.NewLiteral(value)))
}

// Remove deletes one statement after Update and Delete checks.
func (m *SecuredModel) Remove(s rdf.Statement) error {
	return m.graph.Delete(s.AsTriple())
}

// RemoveAll deletes the statements. Every Delete check must pass
// before any statement is applied.
func (m *SecuredModel) RemoveAll(stmts []rdf.Statement) error {
	if err := m.checkUpdate(); err != nil {
		return err
	}
	for _, s := range stmts {
		if err := m.checkDelete(s.AsTriple()); err != nil {
			return err
		}
	}
	return m.base.RemoveAll(stmts)
}

// RemoveModel deletes every statement of the other model, pre-checked.
func (m *SecuredModel) RemoveModel(other *rdf.Model) error {
	return m.RemoveAll(other.Statements())
}

// RemoveMatches deletes every statement matching the pattern.
func (m *SecuredModel) RemoveMatches(s, p, o rdf.Term) error {
	return m.graph.Remove(rdf.Triple{S: s, P: p, O: o})
}

// Contains reports whether the statement is present and readable.
func (m *SecuredModel) Contains(s rdf.Statement) (bool, error) {
	return m.graph.Contains(s.AsTriple())
}

// ContainsMatch reports whether any readable statement matches the
// pattern.
func (m *SecuredModel) ContainsMatch(s, p, o rdf.Term) (bool, error) {
	return m.graph.Contains(rdf.Triple{S: s, P: p, O: o})
}

// ContainsResource reports whether the term appears in any readable
// statement as subject or object.
func (m *SecuredModel) ContainsResource(r rdf.Term) (bool, error) {
	ok, err := m.graph.Contains(rdf.Triple{S: r, P: rdf.Any, O: rdf.Any})
	if err != nil || ok {
		return ok, err
	}
	return m.graph.Contains(rdf.Triple{S: rdf.Any, P: rdf.Any, O: r})
}

// ContainsAll reports whether every statement of the other model is
// present and readable.
func (m *SecuredModel) ContainsAll(other *rdf.Model) (bool, error) {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	if ok, err := m.canReadTriple(rdf.AnyTriple); err == nil && ok {
		return m.base.ContainsAll(other), nil
	}
	for _, s := range other.Statements() {
		t := s.AsTriple()
		if !m.base.Graph().Contains(t) {
			return false, nil
		}
		readable, err := m.canReadTriple(t)
		if err != nil || !readable {
			return false, nil
		}
	}
	return true, nil
}

// ContainsAny reports whether at least one statement of the other
// model is present and readable. When none is readable the result is
// false, not an error.
func (m *SecuredModel) ContainsAny(other *rdf.Model) (bool, error) {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	readAll, err := m.canReadTriple(rdf.AnyTriple)
	readAll = err == nil && readAll
	for _, s := range other.Statements() {
		t := s.AsTriple()
		if !m.base.Graph().Contains(t) {
			continue
		}
		if readAll {
			return true, nil
		}
		if readable, err := m.canReadTriple(t); err == nil && readable {
			return true, nil
		}
	}
	return false, nil
}

// ListStatements returns an iterator over the readable statements
// matching the pattern.
func (m *SecuredModel) ListStatements(s, p, o rdf.Term) (*rdf.StatementIterator, error) {
	it, err := m.graph.Find(rdf.Triple{S: s, P: p, O: o})
	if err != nil {
		return nil, err
	}
	return rdf.NewStatementIterator(it), nil
}

// Statements returns all readable statements.
func (m *SecuredModel) Statements() ([]rdf.Statement, error) {
	it, err := m.ListStatements(rdf.Any, rdf.Any, rdf.Any)
	if err != nil {
		return nil, err
	}
	return rdf.CollectStatements(it), nil
}

// Query returns the readable statements accepted by the selector.
func (m *SecuredModel) Query(selector func(rdf.Statement) bool) ([]rdf.Statement, error) {
	stmts, err := m.Statements()
	if err != nil {
		return nil, err
	}
	var out []rdf.Statement
	for _, s := range stmts {
		if selector(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// readableModel copies the readable projection into a fresh unsecured
// model, carrying the prefix bindings over.
func (m *SecuredModel) readableModel() (*rdf.Model, error) {
	projection, err := m.graph.ReadableProjection()
	if err != nil {
		return nil, err
	}
	out := rdf.NewModel(projection)
	_ = out.PrefixMapping().SetNsPrefixes(m.base.PrefixMapping().NsPrefixMap())
	return out, nil
}

// Difference returns a new unsecured model holding the readable
// statements of this model not present in the other.
func (m *SecuredModel) Difference(other *rdf.Model) (*rdf.Model, error) {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return nil, err
	}
	if !proceed {
		return rdf.NewMemModel(m.Name()), nil
	}
	readable, err := m.readableModel()
	if err != nil {
		return nil, err
	}
	return readable.Difference(other), nil
}

// Union returns a new unsecured model holding the union of the
// readable projection of this model with the other model.
func (m *SecuredModel) Union(other *rdf.Model) (*rdf.Model, error) {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return nil, err
	}
	if !proceed {
		out := rdf.NewMemModel(m.Name())
		_ = out.AddModel(other)
		return out, nil
	}
	readable, err := m.readableModel()
	if err != nil {
		return nil, err
	}
	return readable.Union(other), nil
}

// Intersection returns a new unsecured model holding the statements
// present both in the readable projection of this model and in the
// other model.
func (m *SecuredModel) Intersection(other *rdf.Model) (*rdf.Model, error) {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return nil, err
	}
	if !proceed {
		return rdf.NewMemModel(m.Name()), nil
	}
	readable, err := m.readableModel()
	if err != nil {
		return nil, err
	}
	return readable.Intersection(other), nil
}

// GetProperty returns the first readable statement with the given
// subject and predicate.
func (m *SecuredModel) GetProperty(s, p rdf.Term) (rdf.Statement, bool, error) {
	proceed, err := m.checkSoftRead()
	if err != nil || !proceed {
		return rdf.Statement{}, false, err
	}
	it := m.base.Graph().Find(rdf.Triple{S: s, P: p, O: rdf.Any})
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return rdf.Statement{}, false, nil
		}
		if readable, err := m.canReadTriple(t); err == nil && readable {
			return rdf.StatementFromTriple(t), true, nil
		}
	}
}

// GetPropertyLang is GetProperty restricted to literal objects with
// the language tag; the empty tag matches only untagged literals.
func (m *SecuredModel) GetPropertyLang(s, p rdf.Term, lang string) (rdf.Statement, bool, error) {
	proceed, err := m.checkSoftRead()
	if err != nil || !proceed {
		return rdf.Statement{}, false, err
	}
	it := m.base.Graph().Find(rdf.Triple{S: s, P: p, O: rdf.Any})
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return rdf.Statement{}, false, nil
		}
		lit, isLit := t.O.(rdf.Literal)
		if !isLit || lit.Lang != lang {
			continue
		}
		if readable, err := m.canReadTriple(t); err == nil && readable {
			return rdf.StatementFromTriple(t), true, nil
		}
	}
}

// GetRequiredProperty is GetProperty raising rdf.ErrPropertyNotFound
// when nothing matches. When the principal may not read (s, p, ANY)
// the absence itself is withheld and ReadDenied is raised instead.
func (m *SecuredModel) GetRequiredProperty(s, p rdf.Term) (rdf.Statement, error) {
	stmt, ok, err := m.GetProperty(s, p)
	if err != nil {
		return rdf.Statement{}, err
	}
	if ok {
		return stmt, nil
	}
	return rdf.Statement{}, m.requiredPropertyMiss(s, p)
}

// GetRequiredPropertyLang is the language-tagged form of
// GetRequiredProperty.
func (m *SecuredModel) GetRequiredPropertyLang(s, p rdf.Term, lang string) (rdf.Statement, error) {
	stmt, ok, err := m.GetPropertyLang(s, p, lang)
	if err != nil {
		return rdf.Statement{}, err
	}
	if ok {
		return stmt, nil
	}
	return rdf.Statement{}, m.requiredPropertyMiss(s, p)
}

func (m *SecuredModel) requiredPropertyMiss(s, p rdf.Term) error {
	pattern := rdf.Triple{S: s, P: p, O: rdf.Any}
	if readable, err := m.canReadTriple(pattern); err == nil && readable {
		return rdf.ErrPropertyNotFound
	}
	return m.denied(ActionRead, &pattern)
}

// CreateResource allocates a fresh anonymous resource after Update and
// Create checks for the implied future statement.
func (m *SecuredModel) CreateResource() (rdf.Term, error) {
	if err := m.checkUpdate(); err != nil {
		return nil, err
	}
	if err := m.checkCreate(rdf.Triple{S: FutureNode, P: IgnoreNode, O: IgnoreNode}); err != nil {
		return nil, err
	}
	return m.base.CreateResource(), nil
}

// CreateProperty builds a property IRI; no checks apply.
func (m *SecuredModel) CreateProperty(namespace, localName string) rdf.IRI {
	return m.base.CreateProperty(namespace, localName)
}

// CreateStatement builds a statement after Update and Create checks,
// without adding it.
func (m *SecuredModel) CreateStatement(s, p, o rdf.Term) (rdf.Statement, error) {
	if err := m.checkUpdate(); err != nil {
		return rdf.Statement{}, err
	}
	stmt := rdf.NewStatement(s, p, o)
	if err := m.checkCreate(stmt.AsTriple()); err != nil {
		return rdf.Statement{}, err
	}
	return stmt, nil
}

// CreateLiteralStatement builds a statement whose object is the
// canonical literal of the value, after Update and Create checks.
func (m *SecuredModel) CreateLiteralStatement(s, p rdf.Term, value any) (rdf.Statement, error) {
	return m.CreateStatement(s, p, rdf.NewLiteral(value))
}

// ReadFrom parses statements and adds them, pre-checking every
// parsed triple.
func (m *SecuredModel) ReadFrom(r io.Reader, format rdf.Format) error {
	if err := m.checkUpdate(); err != nil {
		return err
	}
	triples, err := rdf.ParseTriples(r, format)
	if err != nil {
		return err
	}
	for _, t := range triples {
		if err := m.checkCreate(t); err != nil {
			return err
		}
	}
	for _, t := range triples {
		if err := m.base.Graph().Add(t); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo serializes the readable projection. With a graph-wide Read
// grant the base is serialized directly; otherwise a readable-only
// temporary model is materialized and written, so filtered triples
// never reach the output.
func (m *SecuredModel) WriteTo(w io.Writer, format rdf.Format) error {
	proceed, err := m.checkSoftRead()
	if err != nil {
		return err
	}
	if !proceed {
		return rdf.NewMemModel(m.Name()).WriteTo(w, format)
	}
	if ok, err := m.canReadTriple(rdf.AnyTriple); err == nil && ok {
		return m.base.WriteTo(w, format)
	}
	readable, err := m.readableModel()
	if err != nil {
		return err
	}
	return readable.WriteTo(w, format)
}

// Size returns the number of readable statements.
func (m *SecuredModel) Size() (int, error) { return m.graph.Size() }

// IsEmpty reports whether the model has no readable statements.
func (m *SecuredModel) IsEmpty() (bool, error) { return m.graph.IsEmpty() }

// IsIsomorphicWith compares the readable projection with the other
// model.
func (m *SecuredModel) IsIsomorphicWith(other *rdf.Model) (bool, error) {
	return m.graph.IsIsomorphicWith(other.Graph())
}

// PrefixMapping returns the secured prefix mapping.
func (m *SecuredModel) PrefixMapping() *SecuredPrefixMapping {
	return m.graph.PrefixMapping()
}

// EventManager returns the secured event manager.
func (m *SecuredModel) EventManager() *SecuredGraphEventManager {
	return m.graph.EventManager()
}

// Close closes the base model.
func (m *SecuredModel) Close() error { return m.base.Close() }

// IsClosed mirrors the base model.
func (m *SecuredModel) IsClosed() bool { return m.base.IsClosed() }

// IsPropertyNotFound reports whether the error is the base
// PropertyNotFound condition (as opposed to a denial).
func IsPropertyNotFound(err error) bool {
	return errors.Is(err, rdf.ErrPropertyNotFound)
}
