package convert

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

// CachingConverter wraps a Converter with an LRU cache over the textual
// conversions. Locator text is immutable, so repeated conversions of
// the same expression (catalog loads, batch runs) hit the cache. Map
// and builder inputs bypass the cache; their identity is not textual.
type CachingConverter struct {
	inner *Converter
	cache *lru.Cache[string, string]
}

// NewCaching returns a caching converter holding up to size entries.
func NewCaching(size int) (*CachingConverter, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachingConverter{inner: New(), cache: c}, nil
}

func cacheKey(op string, in Input) (string, bool) {
	switch v := in.(type) {
	case XPath:
		return op + "\x00xpath\x00" + string(v), true
	case Selector:
		return op + "\x00uiselector\x00" + string(v), true
	}
	return "", false
}

func (c *CachingConverter) cached(op string, in Input, f func(Input) (string, error)) (string, error) {
	key, ok := cacheKey(op, in)
	if !ok {
		return f(in)
	}
	if out, hit := c.cache.Get(key); hit {
		return out, nil
	}
	out, err := f(in)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, out)
	return out, nil
}

// ToXPath converts to XPath, consulting the cache for textual input.
func (c *CachingConverter) ToXPath(in Input) (string, error) {
	return c.cached("xpath", in, c.inner.ToXPath)
}

// ToUiSelector converts to DSL text, consulting the cache for textual
// input.
func (c *CachingConverter) ToUiSelector(in Input) (string, error) {
	return c.cached("uiselector", in, c.inner.ToUiSelector)
}

// ToMap converts to the canonical map. Maps are mutable, so this always
// delegates.
func (c *CachingConverter) ToMap(in Input) (*locator.Map, error) {
	return c.inner.ToMap(in)
}

// Validate checks the structural invariants of the input.
func (c *CachingConverter) Validate(in Input) error {
	return c.inner.Validate(in)
}

// Len returns the number of cached conversions.
func (c *CachingConverter) Len() int { return c.cache.Len() }
