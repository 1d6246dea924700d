package ast

// Seq is a read-only view of an ordered collection: a List, or a node
// whose lone argument is a list.
type Seq struct {
	owner *Node
	elems []Value
}

// AsSeq returns the sequence view of v.
func AsSeq(v Value) (Seq, bool) {
	switch x := v.(type) {
	case List:
		return Seq{elems: x}, true
	case *Node:
		if x == nil || len(x.args) != 1 {
			return Seq{}, false
		}
		if l, ok := x.args[0].(List); ok {
			return Seq{owner: x, elems: l}, true
		}
	}
	return Seq{}, false
}

// Owner returns the node the sequence belongs to, nil for a bare list.
func (s Seq) Owner() *Node { return s.owner }

// Len returns the number of elements.
func (s Seq) Len() int { return len(s.elems) }

// At returns element i, or nil when i is out of range.
func (s Seq) At(i int) Value {
	if i < 0 || i >= len(s.elems) {
		return nil
	}
	return s.elems[i]
}

// Elements returns the elements in stored order. Callers must not modify
// the returned slice.
func (s Seq) Elements() []Value { return s.elems }

// Find returns the first element matching key, or def when none does.
func (s Seq) Find(key Key, def Value) Value {
	for _, e := range s.elems {
		n, ok := e.(*Node)
		if ok && key.Match(n) {
			return n
		}
	}
	return def
}

// Map is a read-only keyed view of a map node. Keys keep the order of
// their first occurrence; a later entry with the same key replaces the
// earlier value.
type Map struct {
	keys  []Value
	vals  []Value
	index map[string]int
}

// AsMap returns the keyed view of v. v must be a node whose lone argument
// is a list. Entries come from the definition's KeyField when one is
// declared, otherwise every member must be a two-element node or tuple
// holding (key, value).
func AsMap(v Value) (Map, bool) {
	n, ok := v.(*Node)
	if !ok || n == nil || len(n.args) != 1 {
		return Map{}, false
	}
	elems, ok := n.args[0].(List)
	if !ok {
		return Map{}, false
	}
	keyField := ""
	if n.def != nil && n.def.Kind == DefMap {
		keyField = n.def.KeyField
	}

	m := Map{index: make(map[string]int, len(elems))}
	for _, e := range elems {
		var key, val Value
		switch {
		case keyField != "":
			member, ok := e.(*Node)
			if !ok {
				return Map{}, false
			}
			if key, ok = member.Field(keyField); !ok {
				return Map{}, false
			}
			val = member
		default:
			pair := Elements(e)
			if pair == nil || len(pair) != 2 {
				return Map{}, false
			}
			if _, isList := e.(List); isList {
				return Map{}, false
			}
			key, val = pair[0], pair[1]
		}
		m.put(key, val)
	}
	return m, true
}

func (m *Map) put(key, val Value) {
	k := mapKey(key)
	if i, ok := m.index[k]; ok {
		m.vals[i] = val
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

func mapKey(v Value) string {
	if s, ok := v.(Str); ok {
		return "s" + string(s)
	}
	return "v" + Render(v, RenderOptions{Compact: true})
}

// Len returns the number of distinct keys.
func (m Map) Len() int { return len(m.keys) }

// Keys returns the distinct keys in first-occurrence order.
func (m Map) Keys() []Value { return m.keys }

// Get returns the value stored under key.
func (m Map) Get(key Value) (Value, bool) {
	i, ok := m.index[mapKey(key)]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

// Lookup returns the value stored under a string key.
func (m Map) Lookup(name string) (Value, bool) { return m.Get(Str(name)) }

// Range calls fn for each entry in key order until fn returns false.
func (m Map) Range(fn func(key, val Value) bool) {
	for i, k := range m.keys {
		if !fn(k, m.vals[i]) {
			return
		}
	}
}
