package permissions

import (
	"sync"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

// SecuredGraph is the triple-level façade over a base graph. Every
// operation is mediated by the security evaluator; mutations reach the
// base only after all required checks pass and reads never expose
// triples the current principal may not read.
type SecuredGraph struct {
	securedItem
	base rdf.Graph

	prefixMu sync.Mutex
	prefix   *SecuredPrefixMapping

	events *SecuredGraphEventManager
}

// NewSecuredGraph wraps a base graph with the evaluator. The graph IRI
// used for checks is the base graph's name.
func NewSecuredGraph(base rdf.Graph, evaluator SecurityEvaluator) *SecuredGraph {
	g := &SecuredGraph{
		securedItem: securedItem{evaluator: evaluator, graph: base.Name()},
		base:        base,
	}
	g.events = newSecuredGraphEventManager(g.securedItem, base.EventManager())
	return g
}

// Name returns the graph IRI.
func (g *SecuredGraph) Name() rdf.IRI { return g.graph }

// Base returns the wrapped graph.
func (g *SecuredGraph) Base() rdf.Graph { return g.base }

// Add inserts a triple after Update and Create checks.
func (g *SecuredGraph) Add(t rdf.Triple) error {
	if err := g.checkUpdate(); err != nil {
		return err
	}
	if err := g.checkCreate(t); err != nil {
		return err
	}
	return g.base.Add(t)
}

// Delete removes a triple after Update and Delete checks.
func (g *SecuredGraph) Delete(t rdf.Triple) error {
	if err := g.checkUpdate(); err != nil {
		return err
	}
	if err := g.checkDelete(t); err != nil {
		return err
	}
	return g.base.Delete(t)
}

// Contains reports whether a matching readable triple is present.
func (g *SecuredGraph) Contains(pattern rdf.Triple) (bool, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	if ok, err := g.canReadTriple(pattern); err == nil && ok {
		return g.base.Contains(pattern), nil
	}
	it := g.base.Find(pattern)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			return false, nil
		}
		if readable, err := g.canReadTriple(t); err == nil && readable {
			return true, nil
		}
	}
}

// Find returns an iterator over the matching triples, filtered by
// per-triple Read unless the principal may read any triple.
func (g *SecuredGraph) Find(pattern rdf.Triple) (rdf.TripleIterator, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return nil, err
	}
	if !proceed {
		return rdf.EmptyIterator(), nil
	}
	base := g.base.Find(pattern)
	if ok, err := g.canReadTriple(rdf.AnyTriple); err == nil && ok {
		return base, nil
	}
	return newFilteredIterator(g.securedItem, base), nil
}

// Size returns the number of readable triples.
func (g *SecuredGraph) Size() (int, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return 0, err
	}
	if !proceed {
		return 0, nil
	}
	if ok, err := g.canReadTriple(rdf.AnyTriple); err == nil && ok {
		return g.base.Size(), nil
	}
	it, err := g.Find(rdf.AnyTriple)
	if err != nil {
		return 0, err
	}
	return rdf.Count(it), nil
}

// IsEmpty reports whether the graph has no readable triples.
func (g *SecuredGraph) IsEmpty() (bool, error) {
	n, err := g.Size()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// IsIsomorphicWith compares the readable projection of this graph with
// the other graph. Unreadable content in the other graph makes the
// comparison false, never an error.
func (g *SecuredGraph) IsIsomorphicWith(other rdf.Graph) (bool, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	if ok, err := g.canReadTriple(rdf.AnyTriple); err == nil && ok {
		if g.base.Size() != other.Size() {
			return false, nil
		}
		return g.base.IsIsomorphicWith(other), nil
	}
	// Partial read: the other side must be fully readable and match
	// the readable projection of this side.
	it := other.Find(rdf.AnyTriple)
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		readable, err := g.canReadTriple(t)
		if err != nil || !readable {
			return false, nil
		}
	}
	projection, err := g.ReadableProjection()
	if err != nil {
		return false, err
	}
	if projection.Size() != other.Size() {
		return false, nil
	}
	return projection.IsIsomorphicWith(other), nil
}

// ReadableProjection copies the triples the current principal may read
// into a fresh in-memory graph.
func (g *SecuredGraph) ReadableProjection() (rdf.Graph, error) {
	out := rdf.NewMemGraph(g.graph)
	it, err := g.Find(rdf.AnyTriple)
	if err != nil {
		return nil, err
	}
	for _, t := range rdf.Collect(it) {
		if err := out.Add(t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clear removes every triple. Without a graph-wide Delete grant each
// triple is checked; any denial aborts before the base is touched.
func (g *SecuredGraph) Clear() error {
	if err := g.checkUpdate(); err != nil {
		return err
	}
	if ok, err := g.canDeleteTriple(rdf.AnyTriple); err != nil || !ok {
		it := g.base.Find(rdf.AnyTriple)
		defer it.Close()
		for {
			t, ok := it.Next()
			if !ok {
				break
			}
			if err := g.checkDelete(t); err != nil {
				return err
			}
		}
	}
	return g.base.Clear()
}

// Remove deletes every triple matching the pattern. A concrete
// pattern is checked directly; otherwise every match is checked before
// the base is touched.
func (g *SecuredGraph) Remove(pattern rdf.Triple) error {
	if err := g.checkUpdate(); err != nil {
		return err
	}
	if pattern.Concrete() {
		if err := g.checkDelete(pattern); err != nil {
			return err
		}
	} else {
		it := g.base.Find(pattern)
		defer it.Close()
		for {
			t, ok := it.Next()
			if !ok {
				break
			}
			if err := g.checkDelete(t); err != nil {
				return err
			}
		}
	}
	return g.base.Remove(pattern)
}

// DependsOn reports whether other is the base graph or the base
// depends on it.
func (g *SecuredGraph) DependsOn(other rdf.Graph) (bool, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	if other == g.base {
		return true, nil
	}
	return g.base.DependsOn(other), nil
}

// PrefixMapping returns the secured prefix mapping, created lazily.
func (g *SecuredGraph) PrefixMapping() *SecuredPrefixMapping {
	g.prefixMu.Lock()
	defer g.prefixMu.Unlock()
	if g.prefix == nil {
		g.prefix = newSecuredPrefixMapping(g.securedItem, g.base.PrefixMapping())
	}
	return g.prefix
}

// EventManager returns the secured event manager.
func (g *SecuredGraph) EventManager() *SecuredGraphEventManager { return g.events }

// TransactionHandler delegates to the base; transactions require no
// authorization.
func (g *SecuredGraph) TransactionHandler() rdf.TransactionHandler {
	return g.base.TransactionHandler()
}

// StatisticsHandler returns the base handler under a graph-wide Read
// grant, a handler counting only readable matches under partial read,
// and a zero handler when reading is denied.
func (g *SecuredGraph) StatisticsHandler() (rdf.StatisticsHandler, error) {
	proceed, err := g.checkSoftRead()
	if err != nil {
		return nil, err
	}
	if !proceed {
		return zeroStatistics{}, nil
	}
	if ok, err := g.canReadTriple(rdf.AnyTriple); err == nil && ok {
		return g.base.StatisticsHandler(), nil
	}
	return filteredStatistics{g: g}, nil
}

type zeroStatistics struct{}

func (zeroStatistics) Statistic(rdf.Triple) int64 { return 0 }

// filteredStatistics counts only readable matches.
type filteredStatistics struct{ g *SecuredGraph }

func (s filteredStatistics) Statistic(pattern rdf.Triple) int64 {
	it, err := s.g.Find(pattern)
	if err != nil {
		return 0
	}
	return int64(rdf.Count(it))
}

// Close closes the base graph.
func (g *SecuredGraph) Close() error { return g.base.Close() }

// IsClosed mirrors the base graph.
func (g *SecuredGraph) IsClosed() bool { return g.base.IsClosed() }
