package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// filteredIterator drops triples the current principal may not read.
// Evaluator failures are fail-closed: the triple is dropped.
type filteredIterator struct {
	item   securedItem
	base   rdf.TripleIterator
	closed bool
}

// newFilteredIterator wraps a base iterator with a per-triple Read
// filter for the current principal.
func newFilteredIterator(item securedItem, base rdf.TripleIterator) rdf.TripleIterator {
	return &filteredIterator{item: item, base: base}
}

func (it *filteredIterator) Next() (rdf.Triple, bool) {
	if it.closed {
		return rdf.Triple{}, false
	}
	for {
		t, ok := it.base.Next()
		if !ok {
			return rdf.Triple{}, false
		}
		readable, err := it.item.canReadTriple(t)
		if err != nil || !readable {
			continue
		}
		return t, true
	}
}

func (it *filteredIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.base.Close()
}
