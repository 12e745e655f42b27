package rdf

// ContainerKind selects the RDF container class.
type ContainerKind uint8

const (
	// BagKind is an unordered container.
	BagKind ContainerKind = iota
	// AltKind is a container of alternatives.
	AltKind
	// SeqKind is an ordered container.
	SeqKind
)

func (k ContainerKind) typeIRI() IRI {
	switch k {
	case AltKind:
		return RDFAlt
	case SeqKind:
		return RDFSeq
	default:
		return RDFBag
	}
}

// Container is an RDF container (Bag, Alt or Seq): a resource with
// ordinal membership properties rdf:_1, rdf:_2, ...
type Container struct {
	model    *Model
	resource Term
	kind     ContainerKind
}

// CreateBag creates a fresh Bag resource in the model.
func (m *Model) CreateBag() (*Container, error) { return m.createContainer(BagKind) }

// CreateAlt creates a fresh Alt resource in the model.
func (m *Model) CreateAlt() (*Container, error) { return m.createContainer(AltKind) }

// CreateSeq creates a fresh Seq resource in the model.
func (m *Model) CreateSeq() (*Container, error) { return m.createContainer(SeqKind) }

func (m *Model) createContainer(kind ContainerKind) (*Container, error) {
	r := NewBlankNode()
	if err := m.graph.Add(Triple{S: r, P: RDFType, O: kind.typeIRI()}); err != nil {
		return nil, err
	}
	return &Container{model: m, resource: r, kind: kind}, nil
}

// ContainerFrom wraps an existing container resource.
func (m *Model) ContainerFrom(r Term, kind ContainerKind) *Container {
	return &Container{model: m, resource: r, kind: kind}
}

// Resource returns the container resource.
func (c *Container) Resource() Term { return c.resource }

// Model returns the model holding the container.
func (c *Container) Model() *Model { return c.model }

// MembershipTriples returns the ordinal membership triples in index
// order.
func (c *Container) MembershipTriples() []Triple { return c.membership() }

// Kind returns the container kind.
func (c *Container) Kind() ContainerKind { return c.kind }

// membership returns the ordinal triples of the container in index
// order (holes skipped).
func (c *Container) membership() []Triple {
	var out []Triple
	it := c.model.Graph().Find(Triple{S: c.resource, P: Any, O: Any})
	defer it.Close()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		if OrdinalIndex(t.P) > 0 {
			out = append(out, t)
		}
	}
	sortByOrdinal(out)
	return out
}

func sortByOrdinal(ts []Triple) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && OrdinalIndex(ts[j].P) < OrdinalIndex(ts[j-1].P); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}

// Size returns the number of members.
func (c *Container) Size() int { return len(c.membership()) }

// Add appends a member at the next free index.
func (c *Container) Add(value Term) error {
	n := c.NextOrdinal()
	return c.model.Graph().Add(Triple{S: c.resource, P: Ordinal(n), O: value})
}

// NextOrdinal returns the 1-based index the next Add will use.
func (c *Container) NextOrdinal() int {
	max := 0
	for _, t := range c.membership() {
		if i := OrdinalIndex(t.P); i > max {
			max = i
		}
	}
	return max + 1
}

// Contains reports whether the value is a member.
func (c *Container) Contains(value Term) bool {
	for _, t := range c.membership() {
		if t.O == value {
			return true
		}
	}
	return false
}

// Item returns the member at the 1-based index.
func (c *Container) Item(index int) (Term, bool) {
	for _, t := range c.membership() {
		if OrdinalIndex(t.P) == index {
			return t.O, true
		}
	}
	return nil, false
}

// Remove deletes the first membership triple holding the value. For a
// Seq the following members are renumbered to keep indexes dense.
func (c *Container) Remove(value Term) error {
	members := c.membership()
	for i, t := range members {
		if t.O != value {
			continue
		}
		if err := c.model.Graph().Delete(t); err != nil {
			return err
		}
		if c.kind != SeqKind {
			return nil
		}
		// Shift the tail down by one index.
		for _, rest := range members[i+1:] {
			if err := c.model.Graph().Delete(rest); err != nil {
				return err
			}
			n := OrdinalIndex(rest.P)
			if err := c.model.Graph().Add(Triple{S: c.resource, P: Ordinal(n - 1), O: rest.O}); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// Set replaces the member at the 1-based index.
func (c *Container) Set(index int, value Term) error {
	if old, ok := c.Item(index); ok {
		if err := c.model.Graph().Delete(Triple{S: c.resource, P: Ordinal(index), O: old}); err != nil {
			return err
		}
	}
	return c.model.Graph().Add(Triple{S: c.resource, P: Ordinal(index), O: value})
}

// Members returns the member terms in index order.
func (c *Container) Members() []Term {
	var out []Term
	for _, t := range c.membership() {
		out = append(out, t.O)
	}
	return out
}
