package permissions

import (
	"sync"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

// SecuredGraphEventManager fans base graph events out to listeners
// registered through the façade, suppressing triples each listener's
// principal may not read. It subscribes to the base manager on first
// registration and unsubscribes on last deregistration.
type SecuredGraphEventManager struct {
	item securedItem
	base *rdf.GraphEventManager

	mu         sync.Mutex
	regs       []registration
	subscribed bool
}

// registration pins the principal captured when the listener was
// registered.
type registration struct {
	listener  rdf.GraphListener
	principal Principal
}

func newSecuredGraphEventManager(item securedItem, base *rdf.GraphEventManager) *SecuredGraphEventManager {
	return &SecuredGraphEventManager{item: item, base: base}
}

// Register adds a listener on behalf of the current principal.
func (m *SecuredGraphEventManager) Register(l rdf.GraphListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs = append(m.regs, registration{listener: l, principal: m.item.evaluator.Principal()})
	if !m.subscribed {
		m.base.Register(m)
		m.subscribed = true
	}
}

// Unregister removes one registration of the listener.
func (m *SecuredGraphEventManager) Unregister(l rdf.GraphListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, reg := range m.regs {
		if reg.listener == l {
			m.regs = append(m.regs[:i], m.regs[i+1:]...)
			break
		}
	}
	if len(m.regs) == 0 && m.subscribed {
		m.base.Unregister(m)
		m.subscribed = false
	}
}

func (m *SecuredGraphEventManager) snapshot() []registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]registration, len(m.regs))
	copy(out, m.regs)
	return out
}

// canReadAs is the per-listener read check; evaluator failures
// suppress delivery.
func (m *SecuredGraphEventManager) canReadAs(p Principal, t rdf.Triple) bool {
	ok, err := m.item.evaluator.EvaluateTriple(p, ActionRead, m.item.graph, t)
	return err == nil && ok
}

// deliver invokes the callback, swallowing listener panics so nothing
// propagates back to the base manager.
func deliver(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// AddedTriple implements rdf.GraphListener.
func (m *SecuredGraphEventManager) AddedTriple(g rdf.Graph, t rdf.Triple) {
	for _, reg := range m.snapshot() {
		if !m.canReadAs(reg.principal, t) {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.AddedTriple(g, t) })
	}
}

// DeletedTriple implements rdf.GraphListener.
func (m *SecuredGraphEventManager) DeletedTriple(g rdf.Graph, t rdf.Triple) {
	for _, reg := range m.snapshot() {
		if !m.canReadAs(reg.principal, t) {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.DeletedTriple(g, t) })
	}
}

// AddedTriples delivers the readable sub-list per listener; an empty
// sub-list suppresses the batch entirely.
func (m *SecuredGraphEventManager) AddedTriples(g rdf.Graph, ts []rdf.Triple) {
	for _, reg := range m.snapshot() {
		filtered := m.filter(reg.principal, ts)
		if len(filtered) == 0 {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.AddedTriples(g, filtered) })
	}
}

// DeletedTriples delivers the readable sub-list per listener; an empty
// sub-list suppresses the batch entirely.
func (m *SecuredGraphEventManager) DeletedTriples(g rdf.Graph, ts []rdf.Triple) {
	for _, reg := range m.snapshot() {
		filtered := m.filter(reg.principal, ts)
		if len(filtered) == 0 {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.DeletedTriples(g, filtered) })
	}
}

// AddedGraph delivers each listener's readable projection of the added
// graph; an empty projection suppresses the event.
func (m *SecuredGraphEventManager) AddedGraph(g rdf.Graph, added rdf.Graph) {
	for _, reg := range m.snapshot() {
		projection := m.project(reg.principal, added)
		if projection.IsEmpty() {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.AddedGraph(g, projection) })
	}
}

// DeletedGraph delivers each listener's readable projection of the
// deleted graph; an empty projection suppresses the event.
func (m *SecuredGraphEventManager) DeletedGraph(g rdf.Graph, deleted rdf.Graph) {
	for _, reg := range m.snapshot() {
		projection := m.project(reg.principal, deleted)
		if projection.IsEmpty() {
			continue
		}
		reg := reg
		deliver(func() { reg.listener.DeletedGraph(g, projection) })
	}
}

func (m *SecuredGraphEventManager) filter(p Principal, ts []rdf.Triple) []rdf.Triple {
	var out []rdf.Triple
	for _, t := range ts {
		if m.canReadAs(p, t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *SecuredGraphEventManager) project(p Principal, g rdf.Graph) rdf.Graph {
	out := rdf.NewMemGraph(g.Name())
	for _, t := range rdf.Collect(g.Find(rdf.AnyTriple)) {
		if m.canReadAs(p, t) {
			_ = out.Add(t)
		}
	}
	return out
}
