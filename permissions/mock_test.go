package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// mockEvaluator is a configurable evaluator for tests. Graph-level
// actions and triple patterns are denied by listing them; everything
// else is allowed. A triple-level check on a non-concrete triple is a
// graph-wide assertion: it passes only when no pattern for the action
// is denied.
type mockEvaluator struct {
	principal   Principal
	requireAuth bool
	hardRead    bool
	graphDeny   map[Action]bool
	tripleDeny  map[Action][]rdf.Triple
	calls       int
}

func newMockEvaluator() *mockEvaluator {
	return &mockEvaluator{
		principal:  Principal("alice"),
		graphDeny:  map[Action]bool{},
		tripleDeny: map[Action][]rdf.Triple{},
	}
}

func (e *mockEvaluator) denyGraph(actions ...Action) *mockEvaluator {
	for _, a := range actions {
		e.graphDeny[a] = true
	}
	return e
}

func (e *mockEvaluator) denyTriple(action Action, pattern rdf.Triple) *mockEvaluator {
	e.tripleDeny[action] = append(e.tripleDeny[action], pattern)
	return e
}

func (e *mockEvaluator) authGate(p Principal) error {
	if e.requireAuth && !e.IsPrincipalAuthenticated(p) {
		return ErrAuthenticationRequired
	}
	return nil
}

func (e *mockEvaluator) Evaluate(p Principal, a Action, g rdf.IRI) (bool, error) {
	e.calls++
	if err := e.authGate(p); err != nil {
		return false, err
	}
	return !e.graphDeny[a], nil
}

func (e *mockEvaluator) EvaluateTriple(p Principal, a Action, g rdf.IRI, t rdf.Triple) (bool, error) {
	e.calls++
	if err := e.authGate(p); err != nil {
		return false, err
	}
	// A non-concrete check triple is a graph-wide assertion: it is
	// denied whenever a deny pattern could match some triple it
	// stands for.
	for _, pattern := range e.tripleDeny[a] {
		if overlaps(t, pattern) {
			return false, nil
		}
	}
	return true, nil
}

func overlaps(t, pattern rdf.Triple) bool {
	return termOverlaps(t.S, pattern.S) &&
		termOverlaps(t.P, pattern.P) &&
		termOverlaps(t.O, pattern.O)
}

func termOverlaps(a, b rdf.Term) bool {
	if a == nil || a.Kind() == rdf.TermWildcard || b == nil || b.Kind() == rdf.TermWildcard {
		return true
	}
	return a == b
}

func (e *mockEvaluator) EvaluateAny(p Principal, actions []Action, g rdf.IRI) (bool, error) {
	for _, a := range actions {
		ok, err := e.Evaluate(p, a, g)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (e *mockEvaluator) EvaluateAnyTriple(p Principal, actions []Action, g rdf.IRI, t rdf.Triple) (bool, error) {
	for _, a := range actions {
		ok, err := e.EvaluateTriple(p, a, g, t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (e *mockEvaluator) EvaluateUpdate(p Principal, g rdf.IRI, from, to rdf.Triple) (bool, error) {
	del, err := e.EvaluateTriple(p, ActionDelete, g, from)
	if err != nil || !del {
		return false, err
	}
	return e.EvaluateTriple(p, ActionCreate, g, to)
}

func (e *mockEvaluator) Principal() Principal { return e.principal }

func (e *mockEvaluator) IsPrincipalAuthenticated(p Principal) bool { return p != Anonymous }

func (e *mockEvaluator) IsHardReadError() bool { return e.hardRead }

var (
	graphIRI = rdf.IRI{Value: "http://example.org/graph"}
	subj     = rdf.IRI{Value: "http://example.org/s"}
	pred     = rdf.IRI{Value: "http://example.org/p"}
	pred2    = rdf.IRI{Value: "http://example.org/p2"}
	obj1     = rdf.Literal{Lexical: "one"}
	obj2     = rdf.Literal{Lexical: "two"}
	obj3     = rdf.Literal{Lexical: "three"}

	triple1 = rdf.Triple{S: subj, P: pred, O: obj1}
	triple2 = rdf.Triple{S: subj, P: pred, O: obj2}
	triple3 = rdf.Triple{S: subj, P: pred, O: obj3}
)

// newSecuredGraph builds a fresh base graph holding the given triples
// behind a secured façade.
func newSecuredGraph(e SecurityEvaluator, triples ...rdf.Triple) (*SecuredGraph, *rdf.MemGraph) {
	base := rdf.NewMemGraph(graphIRI)
	for _, t := range triples {
		_ = base.Add(t)
	}
	return NewSecuredGraph(base, e), base
}

// newSecuredModel builds a fresh base model holding the given
// statements behind a secured façade.
func newSecuredModel(e SecurityEvaluator, stmts ...rdf.Statement) (*SecuredModel, *rdf.Model) {
	base := rdf.NewMemModel(graphIRI)
	for _, s := range stmts {
		_ = base.Add(s)
	}
	return NewSecuredModel(base, e), base
}
