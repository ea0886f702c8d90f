package streamable

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// typeCache memoizes a reflect.Type-keyed computation behind a concurrent
// map, the same pattern bitcopy.go's sizeCache uses (there keyed by
// reflect.Type -> int; here generalized to any value type via a tiny
// wrapper so classify.go and bitcopy.go can share the approach without
// duplicating the xsync wiring).
type typeCache[V any] struct {
	m *xsync.Map[reflect.Type, V]
}

func newTypeCacheOf[V any]() *typeCache[V] {
	return &typeCache[V]{m: xsync.NewMap[reflect.Type, V]()}
}

func (c *typeCache[V]) load(t reflect.Type) (V, bool) {
	return c.m.Load(t)
}

func (c *typeCache[V]) store(t reflect.Type, v V) {
	c.m.Store(t, v)
}

// newTypeCache specializes typeCache for the classifier's category lookups.
func newTypeCache() *typeCache[category] {
	return newTypeCacheOf[category]()
}
