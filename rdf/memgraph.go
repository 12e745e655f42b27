package rdf

// MemGraph is an in-memory Graph. Triples are kept in insertion order
// with a map index for containment. MemGraph is thread-compatible, not
// thread-safe; callers serialize concurrent access.
type MemGraph struct {
	name     IRI
	order    []Triple
	index    map[Triple]int
	prefixes PrefixMapping
	events   *GraphEventManager
	tx       TransactionHandler
	closed   bool
}

// NewMemGraph creates an empty in-memory graph named by the IRI.
func NewMemGraph(name IRI) *MemGraph {
	return &MemGraph{
		name:     name,
		index:    map[Triple]int{},
		prefixes: NewPrefixMapping(),
		events:   NewGraphEventManager(),
		tx:       noTransactions{},
	}
}

// Name returns the graph IRI.
func (g *MemGraph) Name() IRI { return g.name }

// Add inserts a concrete triple.
func (g *MemGraph) Add(t Triple) error {
	if g.closed {
		return ErrClosed
	}
	if !t.Concrete() {
		return ErrNotConcrete
	}
	if _, ok := g.index[t]; ok {
		return nil
	}
	g.index[t] = len(g.order)
	g.order = append(g.order, t)
	g.events.NotifyAdded(g, t)
	return nil
}

// Delete removes a concrete triple if present.
func (g *MemGraph) Delete(t Triple) error {
	if g.closed {
		return ErrClosed
	}
	if !t.Concrete() {
		return ErrNotConcrete
	}
	if !g.remove(t) {
		return nil
	}
	g.events.NotifyDeleted(g, t)
	return nil
}

// remove splices the triple out, preserving insertion order.
func (g *MemGraph) remove(t Triple) bool {
	pos, ok := g.index[t]
	if !ok {
		return false
	}
	copy(g.order[pos:], g.order[pos+1:])
	g.order = g.order[:len(g.order)-1]
	delete(g.index, t)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}
	return true
}

// Find returns an iterator over a snapshot of the matching triples.
func (g *MemGraph) Find(pattern Triple) TripleIterator {
	if g.closed {
		return EmptyIterator()
	}
	var matches []Triple
	for _, t := range g.order {
		if t.Matches(pattern) {
			matches = append(matches, t)
		}
	}
	return NewSliceIterator(matches)
}

// Contains reports whether any triple matches the pattern.
func (g *MemGraph) Contains(pattern Triple) bool {
	if g.closed {
		return false
	}
	if pattern.Concrete() {
		_, ok := g.index[pattern]
		return ok
	}
	for _, t := range g.order {
		if t.Matches(pattern) {
			return true
		}
	}
	return false
}

// Size returns the number of triples.
func (g *MemGraph) Size() int { return len(g.order) }

// IsEmpty reports whether the graph holds no triples.
func (g *MemGraph) IsEmpty() bool { return len(g.order) == 0 }

// Clear removes all triples and fires a batch delete event.
func (g *MemGraph) Clear() error {
	if g.closed {
		return ErrClosed
	}
	if len(g.order) == 0 {
		return nil
	}
	removed := g.order
	g.order = nil
	g.index = map[Triple]int{}
	g.events.NotifyDeletedBatch(g, removed)
	return nil
}

// Remove removes every triple matching the pattern.
func (g *MemGraph) Remove(pattern Triple) error {
	if g.closed {
		return ErrClosed
	}
	var removed []Triple
	for _, t := range g.order {
		if t.Matches(pattern) {
			removed = append(removed, t)
		}
	}
	for _, t := range removed {
		g.remove(t)
	}
	if len(removed) == 1 {
		g.events.NotifyDeleted(g, removed[0])
	} else if len(removed) > 1 {
		g.events.NotifyDeletedBatch(g, removed)
	}
	return nil
}

// DependsOn reports whether other is this graph.
func (g *MemGraph) DependsOn(other Graph) bool { return Graph(g) == other }

// PrefixMapping returns the graph's prefix mapping.
func (g *MemGraph) PrefixMapping() PrefixMapping { return g.prefixes }

// EventManager returns the graph's event manager.
func (g *MemGraph) EventManager() *GraphEventManager { return g.events }

// TransactionHandler returns a handler that supports no transactions.
func (g *MemGraph) TransactionHandler() TransactionHandler { return g.tx }

// StatisticsHandler counts matches by scanning.
func (g *MemGraph) StatisticsHandler() StatisticsHandler { return memStatistics{g: g} }

type memStatistics struct{ g *MemGraph }

func (s memStatistics) Statistic(pattern Triple) int64 {
	return int64(Count(s.g.Find(pattern)))
}

// Close marks the graph closed and drops its contents.
func (g *MemGraph) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.order = nil
	g.index = nil
	return nil
}

// IsClosed reports whether Close has been called.
func (g *MemGraph) IsClosed() bool { return g.closed }

// IsIsomorphicWith reports whether the graph is isomorphic with other.
// Blank nodes are treated as existentials: the graphs are isomorphic
// iff some bijection between their blank nodes makes the triple sets
// equal.
func (g *MemGraph) IsIsomorphicWith(other Graph) bool {
	if g.closed || other.IsClosed() {
		return false
	}
	return Isomorphic(g, other)
}

// Isomorphic reports whether two graphs are isomorphic under blank
// node renaming.
func Isomorphic(a, b Graph) bool {
	if a.Size() != b.Size() {
		return false
	}
	left := Collect(a.Find(AnyTriple))
	right := Collect(b.Find(AnyTriple))

	rightSet := make(map[Triple]struct{}, len(right))
	for _, t := range right {
		rightSet[t] = struct{}{}
	}

	// Ground triples must match exactly; blank-containing ones are
	// matched by backtracking over a blank node mapping.
	var pending []Triple
	for _, t := range left {
		if hasBlank(t) {
			pending = append(pending, t)
			continue
		}
		if _, ok := rightSet[t]; !ok {
			return false
		}
	}
	var candidates []Triple
	for _, t := range right {
		if hasBlank(t) {
			candidates = append(candidates, t)
		}
	}
	if len(pending) != len(candidates) {
		return false
	}
	return matchBlanks(pending, candidates, map[BlankNode]BlankNode{}, map[BlankNode]bool{})
}

func hasBlank(t Triple) bool {
	_, s := t.S.(BlankNode)
	_, p := t.P.(BlankNode)
	_, o := t.O.(BlankNode)
	return s || p || o
}

// matchBlanks assigns left blank nodes to right blank nodes one triple
// at a time, backtracking on conflicts.
func matchBlanks(pending, candidates []Triple, mapping map[BlankNode]BlankNode, used map[BlankNode]bool) bool {
	if len(pending) == 0 {
		return true
	}
	t := pending[0]
	for i, c := range candidates {
		trial := map[BlankNode]BlankNode{}
		trialUsed := map[BlankNode]bool{}
		for k, v := range mapping {
			trial[k] = v
		}
		for k, v := range used {
			trialUsed[k] = v
		}
		if !unifyTriple(t, c, trial, trialUsed) {
			continue
		}
		rest := make([]Triple, 0, len(candidates)-1)
		rest = append(rest, candidates[:i]...)
		rest = append(rest, candidates[i+1:]...)
		if matchBlanks(pending[1:], rest, trial, trialUsed) {
			return true
		}
	}
	return false
}

func unifyTriple(l, r Triple, mapping map[BlankNode]BlankNode, used map[BlankNode]bool) bool {
	return unifyTerm(l.S, r.S, mapping, used) &&
		unifyTerm(l.P, r.P, mapping, used) &&
		unifyTerm(l.O, r.O, mapping, used)
}

func unifyTerm(l, r Term, mapping map[BlankNode]BlankNode, used map[BlankNode]bool) bool {
	lb, lok := l.(BlankNode)
	rb, rok := r.(BlankNode)
	if lok != rok {
		return false
	}
	if !lok {
		return l == r
	}
	if mapped, ok := mapping[lb]; ok {
		return mapped == rb
	}
	if used[rb] {
		return false
	}
	mapping[lb] = rb
	used[rb] = true
	return true
}
