package memocache

// ValueCloner copies values on their way in and out of a store. A store
// configured with a cloner hands out defensive copies instead of sharing the
// stored value by reference.
type ValueCloner[V any] interface {
	CloneValue(V) V
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[V any] func(V) V

// CloneValue calls the function.
func (f ValueClonerFunc[V]) CloneValue(v V) V {
	return f(v)
}

// NopValueCloner shares values by reference without copying. It is the
// default: a memoized computation's result is returned as-is to every caller.
type NopValueCloner[V any] struct{}

// CloneValue returns the input value.
func (NopValueCloner[V]) CloneValue(v V) V {
	return v
}
