package permissions

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

// DefaultCacheSize is the decision cache capacity used when none is
// given.
const DefaultCacheSize = 1024

// CachingEvaluator decorates a SecurityEvaluator with an LRU decision
// cache. Only successful decisions are cached; evaluator errors pass
// through uncached. Flush the cache whenever the underlying policy
// changes.
type CachingEvaluator struct {
	inner SecurityEvaluator
	cache *lru.Cache[string, bool]
}

// NewCachingEvaluator wraps an evaluator with a decision cache of the
// given capacity (DefaultCacheSize if non-positive).
func NewCachingEvaluator(inner SecurityEvaluator, size int) *CachingEvaluator {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, bool](size)
	if err != nil {
		// lru.New fails only on a non-positive size.
		panic(err)
	}
	return &CachingEvaluator{inner: inner, cache: cache}
}

// Flush drops all cached decisions.
func (c *CachingEvaluator) Flush() { c.cache.Purge() }

func cacheKey(principal Principal, action Action, graph rdf.IRI, parts ...rdf.Triple) string {
	key := fmt.Sprintf("%s|%s|%s", principal, action, graph.Value)
	for _, t := range parts {
		key += "|" + t.String()
	}
	return key
}

func (c *CachingEvaluator) cached(key string, eval func() (bool, error)) (bool, error) {
	if ok, hit := c.cache.Get(key); hit {
		return ok, nil
	}
	ok, err := eval()
	if err != nil {
		return false, err
	}
	c.cache.Add(key, ok)
	return ok, nil
}

// Evaluate implements SecurityEvaluator.
func (c *CachingEvaluator) Evaluate(principal Principal, action Action, graph rdf.IRI) (bool, error) {
	return c.cached(cacheKey(principal, action, graph), func() (bool, error) {
		return c.inner.Evaluate(principal, action, graph)
	})
}

// EvaluateTriple implements SecurityEvaluator.
func (c *CachingEvaluator) EvaluateTriple(principal Principal, action Action, graph rdf.IRI, t rdf.Triple) (bool, error) {
	return c.cached(cacheKey(principal, action, graph, t), func() (bool, error) {
		return c.inner.EvaluateTriple(principal, action, graph, t)
	})
}

// EvaluateAny implements SecurityEvaluator.
func (c *CachingEvaluator) EvaluateAny(principal Principal, actions []Action, graph rdf.IRI) (bool, error) {
	for _, action := range actions {
		ok, err := c.Evaluate(principal, action, graph)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// EvaluateAnyTriple implements SecurityEvaluator.
func (c *CachingEvaluator) EvaluateAnyTriple(principal Principal, actions []Action, graph rdf.IRI, t rdf.Triple) (bool, error) {
	for _, action := range actions {
		ok, err := c.EvaluateTriple(principal, action, graph, t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// EvaluateUpdate implements SecurityEvaluator.
func (c *CachingEvaluator) EvaluateUpdate(principal Principal, graph rdf.IRI, from, to rdf.Triple) (bool, error) {
	return c.cached(cacheKey(principal, ActionUpdate, graph, from, to), func() (bool, error) {
		return c.inner.EvaluateUpdate(principal, graph, from, to)
	})
}

// Principal implements SecurityEvaluator.
func (c *CachingEvaluator) Principal() Principal { return c.inner.Principal() }

// IsPrincipalAuthenticated implements SecurityEvaluator.
func (c *CachingEvaluator) IsPrincipalAuthenticated(principal Principal) bool {
	return c.inner.IsPrincipalAuthenticated(principal)
}

// IsHardReadError implements SecurityEvaluator.
func (c *CachingEvaluator) IsHardReadError() bool { return c.inner.IsHardReadError() }
