package permissions

import "github.com/geoknoesis/rdf-permissions/rdf"

// SecuredPrefixMapping mediates access to the base graph's prefix
// mapping: reads require graph Read, mutations require graph Update.
// Prefix names are not treated as data; no per-triple checks apply.
type SecuredPrefixMapping struct {
	item securedItem
	base rdf.PrefixMapping
}

func newSecuredPrefixMapping(item securedItem, base rdf.PrefixMapping) *SecuredPrefixMapping {
	return &SecuredPrefixMapping{item: item, base: base}
}

// SetNsPrefix binds a prefix after an Update check.
func (p *SecuredPrefixMapping) SetNsPrefix(prefix, uri string) error {
	if err := p.item.checkUpdate(); err != nil {
		return err
	}
	return p.base.SetNsPrefix(prefix, uri)
}

// RemoveNsPrefix removes a binding after an Update check.
func (p *SecuredPrefixMapping) RemoveNsPrefix(prefix string) error {
	if err := p.item.checkUpdate(); err != nil {
		return err
	}
	return p.base.RemoveNsPrefix(prefix)
}

// SetNsPrefixes copies bindings after an Update check.
func (p *SecuredPrefixMapping) SetNsPrefixes(other map[string]string) error {
	if err := p.item.checkUpdate(); err != nil {
		return err
	}
	return p.base.SetNsPrefixes(other)
}

// NsPrefixURI returns the URI bound to a prefix.
func (p *SecuredPrefixMapping) NsPrefixURI(prefix string) (string, error) {
	proceed, err := p.item.checkSoftRead()
	if err != nil || !proceed {
		return "", err
	}
	return p.base.NsPrefixURI(prefix), nil
}

// NsURIPrefix returns a prefix bound to the URI.
func (p *SecuredPrefixMapping) NsURIPrefix(uri string) (string, error) {
	proceed, err := p.item.checkSoftRead()
	if err != nil || !proceed {
		return "", err
	}
	return p.base.NsURIPrefix(uri), nil
}

// NsPrefixMap returns a copy of the bindings.
func (p *SecuredPrefixMapping) NsPrefixMap() (map[string]string, error) {
	proceed, err := p.item.checkSoftRead()
	if err != nil || !proceed {
		return map[string]string{}, err
	}
	return p.base.NsPrefixMap(), nil
}

// ExpandPrefix expands prefix:local to a full URI.
func (p *SecuredPrefixMapping) ExpandPrefix(qname string) (string, error) {
	proceed, err := p.item.checkSoftRead()
	if err != nil {
		return "", err
	}
	if !proceed {
		return qname, nil
	}
	return p.base.ExpandPrefix(qname), nil
}

// ShortForm compresses a URI to prefix:local.
func (p *SecuredPrefixMapping) ShortForm(uri string) (string, error) {
	proceed, err := p.item.checkSoftRead()
	if err != nil {
		return "", err
	}
	if !proceed {
		return uri, nil
	}
	return p.base.ShortForm(uri), nil
}

// Lock makes the base mapping read-only after an Update check.
func (p *SecuredPrefixMapping) Lock() error {
	if err := p.item.checkUpdate(); err != nil {
		return err
	}
	p.base.Lock()
	return nil
}
