package page

import "iter"

// Ordered is a string-keyed map that remembers insertion order. Setting an
// existing key replaces its value in place without moving it.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrdered returns an empty ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{values: make(map[string]V)}
}

// Set stores value under key.
func (o *Ordered[V]) Set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	value, ok := o.values[key]
	return value, ok
}

// Has reports whether key is present.
func (o *Ordered[V]) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key, keeping the relative order of the remaining entries.
func (o *Ordered[V]) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries. A nil map is empty.
func (o *Ordered[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All iterates entries in insertion order.
func (o *Ordered[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if o == nil {
			return
		}
		for _, key := range o.keys {
			if !yield(key, o.values[key]) {
				return
			}
		}
	}
}

// OrderedOf builds an ordered map from alternating key/value pairs. A
// trailing key without a value is ignored.
func OrderedOf(pairs ...string) *Ordered[string] {
	out := NewOrdered[string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		out.Set(pairs[i], pairs[i+1])
	}
	return out
}
