package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key computes the default cache key: SHA-256 over the JSON-serialized
// argument list, joined with "|". Semantically equal arguments that
// serialize differently need a custom key function instead.
func Key(args ...any) string {
	h := sha256.New()
	for i, a := range args {
		if i > 0 {
			h.Write([]byte("|"))
		}
		b, err := json.Marshal(a)
		if err != nil {
			b = []byte(fmt.Sprintf("%#v", a))
		}
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Memoize wraps a pure single-argument function with the cache. A nil
// keyFn uses the default Key. The wrapped function is safe for concurrent
// use when fn is.
func Memoize[A, R any](c *Cache, keyFn func(A) string, fn func(A) R) func(A) R {
	if keyFn == nil {
		keyFn = func(a A) string { return Key(a) }
	}
	return func(a A) R {
		k := keyFn(a)
		if v, ok := c.Get(k); ok {
			if r, ok := v.(R); ok {
				return r
			}
		}
		r := fn(a)
		c.Set(k, r)
		return r
	}
}

// Memoize2 is Memoize for two-argument functions.
func Memoize2[A, B, R any](c *Cache, keyFn func(A, B) string, fn func(A, B) R) func(A, B) R {
	if keyFn == nil {
		keyFn = func(a A, b B) string { return Key(a, b) }
	}
	return func(a A, b B) R {
		k := keyFn(a, b)
		if v, ok := c.Get(k); ok {
			if r, ok := v.(R); ok {
				return r
			}
		}
		r := fn(a, b)
		c.Set(k, r)
		return r
	}
}
