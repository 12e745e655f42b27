package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// securedItem carries the evaluator and graph IRI every façade type
// checks against. The principal is obtained from the evaluator per
// call, never stored, so one façade serves multiple principals.
type securedItem struct {
	evaluator SecurityEvaluator
	graph     rdf.IRI
}

// Evaluator returns the security evaluator in use.
func (s securedItem) Evaluator() SecurityEvaluator { return s.evaluator }

// GraphIRI returns the IRI checks are evaluated against.
func (s securedItem) GraphIRI() rdf.IRI { return s.graph }

func (s securedItem) can(action Action) (bool, error) {
	return s.evaluator.Evaluate(s.evaluator.Principal(), action, s.graph)
}

func (s securedItem) canTriple(action Action, t rdf.Triple) (bool, error) {
	return s.evaluator.EvaluateTriple(s.evaluator.Principal(), action, s.graph, t)
}

func (s securedItem) canRead() (bool, error)   { return s.can(ActionRead) }
func (s securedItem) canUpdate() (bool, error) { return s.can(ActionUpdate) }

func (s securedItem) canReadTriple(t rdf.Triple) (bool, error) {
	return s.canTriple(ActionRead, t)
}

func (s securedItem) canCreateTriple(t rdf.Triple) (bool, error) {
	return s.canTriple(ActionCreate, t)
}

func (s securedItem) canDeleteTriple(t rdf.Triple) (bool, error) {
	return s.canTriple(ActionDelete, t)
}

// denied builds the typed denial for the action.
func (s securedItem) denied(action Action, t *rdf.Triple) error {
	return &AccessError{
		Action:    action,
		Graph:     s.graph,
		Triple:    t,
		Principal: s.evaluator.Principal(),
	}
}

// check raises the typed denial unless the graph-level check passes.
func (s securedItem) check(action Action) error {
	ok, err := s.can(action)
	if err != nil {
		return err
	}
	if !ok {
		return s.denied(action, nil)
	}
	return nil
}

// checkTriple raises the typed denial unless the triple-level check
// passes.
func (s securedItem) checkTriple(action Action, t rdf.Triple) error {
	ok, err := s.canTriple(action, t)
	if err != nil {
		return err
	}
	if !ok {
		offending := t
		return s.denied(action, &offending)
	}
	return nil
}

func (s securedItem) checkRead() error   { return s.check(ActionRead) }
func (s securedItem) checkUpdate() error { return s.check(ActionUpdate) }

func (s securedItem) checkReadTriple(t rdf.Triple) error {
	return s.checkTriple(ActionRead, t)
}

func (s securedItem) checkCreate(t rdf.Triple) error {
	return s.checkTriple(ActionCreate, t)
}

func (s securedItem) checkDelete(t rdf.Triple) error {
	return s.checkTriple(ActionDelete, t)
}

// checkSoftRead gates read operations: (true, nil) means proceed,
// (false, nil) means soft-read mode yields empty results, and an error
// is a hard-read denial or an evaluator failure.
func (s securedItem) checkSoftRead() (bool, error) {
	ok, err := s.canRead()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	if s.evaluator.IsHardReadError() {
		return false, s.denied(ActionRead, nil)
	}
	return false, nil
}
