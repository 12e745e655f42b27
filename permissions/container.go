package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// SecuredContainer mediates access to an RDF container (Bag, Alt or
// Seq): membership triples are created, deleted and read under the
// usual per-triple checks.
type SecuredContainer struct {
	item securedItem
	base *rdf.Container
}

func (m *SecuredModel) createContainer(create func() (*rdf.Container, error), kind rdf.IRI) (*SecuredContainer, error) {
	if err := m.checkUpdate(); err != nil {
		return nil, err
	}
	if err := m.checkCreate(rdf.Triple{S: FutureNode, P: rdf.RDFType, O: kind}); err != nil {
		return nil, err
	}
	base, err := create()
	if err != nil {
		return nil, err
	}
	return &SecuredContainer{item: m.securedItem, base: base}, nil
}

// CreateBag creates a secured Bag.
func (m *SecuredModel) CreateBag() (*SecuredContainer, error) {
	return m.createContainer(m.base.CreateBag, rdf.RDFBag)
}

// CreateAlt creates a secured Alt.
func (m *SecuredModel) CreateAlt() (*SecuredContainer, error) {
	return m.createContainer(m.base.CreateAlt, rdf.RDFAlt)
}

// CreateSeq creates a secured Seq.
func (m *SecuredModel) CreateSeq() (*SecuredContainer, error) {
	return m.createContainer(m.base.CreateSeq, rdf.RDFSeq)
}

// ContainerFrom wraps an existing container resource.
func (m *SecuredModel) ContainerFrom(r rdf.Term, kind rdf.ContainerKind) *SecuredContainer {
	return &SecuredContainer{item: m.securedItem, base: m.base.ContainerFrom(r, kind)}
}

// Resource returns the container resource.
func (c *SecuredContainer) Resource() rdf.Term { return c.base.Resource() }

// Kind returns the container kind.
func (c *SecuredContainer) Kind() rdf.ContainerKind { return c.base.Kind() }

// membership returns the base membership triples in index order.
func (c *SecuredContainer) membership() []rdf.Triple {
	return c.base.MembershipTriples()
}

// Add appends a member after Update and Create checks.
func (c *SecuredContainer) Add(value rdf.Term) error {
	if err := c.item.checkUpdate(); err != nil {
		return err
	}
	n := c.base.NextOrdinal()
	if err := c.item.checkCreate(rdf.Triple{S: c.base.Resource(), P: rdf.Ordinal(n), O: value}); err != nil {
		return err
	}
	return c.base.Add(value)
}

// Remove deletes the first membership triple holding the value. For a
// Seq the renumbering of following members is pre-checked as
// delete-plus-create pairs; any denial aborts before the base is
// touched.
func (c *SecuredContainer) Remove(value rdf.Term) error {
	if err := c.item.checkUpdate(); err != nil {
		return err
	}
	members := c.membership()
	for i, t := range members {
		if t.O != value {
			continue
		}
		if err := c.item.checkDelete(t); err != nil {
			return err
		}
		if c.base.Kind() == rdf.SeqKind {
			for _, rest := range members[i+1:] {
				if err := c.item.checkDelete(rest); err != nil {
					return err
				}
				n := rdf.OrdinalIndex(rest.P)
				shifted := rdf.Triple{S: c.base.Resource(), P: rdf.Ordinal(n - 1), O: rest.O}
				if err := c.item.checkCreate(shifted); err != nil {
					return err
				}
			}
		}
		return c.base.Remove(value)
	}
	return nil
}

// Contains reports whether a readable membership triple holds the
// value.
func (c *SecuredContainer) Contains(value rdf.Term) (bool, error) {
	proceed, err := c.item.checkSoftRead()
	if err != nil || !proceed {
		return false, err
	}
	for _, t := range c.membership() {
		if t.O != value {
			continue
		}
		if readable, err := c.item.canReadTriple(t); err == nil && readable {
			return true, nil
		}
	}
	return false, nil
}

// Item returns the member at the 1-based index when readable.
func (c *SecuredContainer) Item(index int) (rdf.Term, bool, error) {
	proceed, err := c.item.checkSoftRead()
	if err != nil || !proceed {
		return nil, false, err
	}
	value, ok := c.base.Item(index)
	if !ok {
		return nil, false, nil
	}
	t := rdf.Triple{S: c.base.Resource(), P: rdf.Ordinal(index), O: value}
	if readable, err := c.item.canReadTriple(t); err != nil || !readable {
		return nil, false, nil
	}
	return value, true, nil
}

// Size returns the number of readable membership triples.
func (c *SecuredContainer) Size() (int, error) {
	proceed, err := c.item.checkSoftRead()
	if err != nil || !proceed {
		return 0, err
	}
	n := 0
	for _, t := range c.membership() {
		if readable, err := c.item.canReadTriple(t); err == nil && readable {
			n++
		}
	}
	return n, nil
}

// Members returns the readable members in index order.
func (c *SecuredContainer) Members() ([]rdf.Term, error) {
	proceed, err := c.item.checkSoftRead()
	if err != nil || !proceed {
		return nil, err
	}
	var out []rdf.Term
	for _, t := range c.membership() {
		if readable, err := c.item.canReadTriple(t); err == nil && readable {
			out = append(out, t.O)
		}
	}
	return out, nil
}

// Set replaces the member at the 1-based index. When the evaluator
// grants the atomic replace the triples are swapped directly;
// otherwise the operation decomposes into Delete and Create checks.
func (c *SecuredContainer) Set(index int, value rdf.Term) error {
	if err := c.item.checkUpdate(); err != nil {
		return err
	}
	to := rdf.Triple{S: c.base.Resource(), P: rdf.Ordinal(index), O: value}
	if old, ok := c.base.Item(index); ok {
		from := rdf.Triple{S: c.base.Resource(), P: rdf.Ordinal(index), O: old}
		granted, err := c.item.evaluator.EvaluateUpdate(c.item.evaluator.Principal(), c.item.graph, from, to)
		if err != nil {
			return err
		}
		if !granted {
			if err := c.item.checkDelete(from); err != nil {
				return err
			}
			if err := c.item.checkCreate(to); err != nil {
				return err
			}
		}
	} else if err := c.item.checkCreate(to); err != nil {
		return err
	}
	return c.base.Set(index, value)
}
