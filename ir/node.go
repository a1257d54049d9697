package ir

import (
	"maps"
	"slices"
)

// Node is a single value in a bencoded tree. Exactly one of the kind
// payloads is meaningful, selected by Type:
//
//   - IntegerType: Int64
//   - BytesType: Bytes
//   - ListType: Values
//   - DictType: Keys and Values, parallel slices with Keys sorted
//
// Nodes do not link back to their parents; see Resolve.
type Node struct {
	Type Type

	Int64  int64
	Bytes  []byte
	Keys   []string
	Values []*Node
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromBytes(v []byte) *Node {
	return &Node{Type: BytesType, Bytes: v}
}

func FromString(v string) *Node {
	return &Node{Type: BytesType, Bytes: []byte(v)}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ListType, Values: vs}
}

func FromMap(m map[string]*Node) *Node {
	res := NewDict()
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = m[key]
	}
	return res
}

func NewDict() *Node {
	return &Node{Type: DictType}
}

func NewList() *Node {
	return &Node{Type: ListType}
}

// Len returns the member count of a container and 0 for primitives.
func (n *Node) Len() int {
	return len(n.Values)
}

func (n *Node) Clone() *Node {
	res := &Node{Type: n.Type, Int64: n.Int64}
	if n.Bytes != nil {
		res.Bytes = slices.Clone(n.Bytes)
	}
	if n.Keys != nil {
		res.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Equal compares two trees structurally.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case IntegerType:
		return n.Int64 == o.Int64
	case BytesType:
		return slices.Equal(n.Bytes, o.Bytes)
	case ListType, DictType:
		if !slices.Equal(n.Keys, o.Keys) {
			return false
		}
		return slices.EqualFunc(n.Values, o.Values, (*Node).Equal)
	default:
		return false
	}
}

// IndexOfKey returns the position of key in a dictionary. The second
// result is false when the key is absent, and then the position is
// where the key would be inserted.
func (n *Node) IndexOfKey(key string) (int, bool) {
	return slices.BinarySearch(n.Keys, key)
}

// Get returns the dictionary value for key, or nil when the key is
// absent or the node is not a dictionary.
func (n *Node) Get(key string) *Node {
	if n.Type != DictType {
		return nil
	}
	i, ok := n.IndexOfKey(key)
	if !ok {
		return nil
	}
	return n.Values[i]
}

// SetKey inserts or replaces the dictionary entry for key, keeping
// Keys sorted.
func (n *Node) SetKey(key string, v *Node) {
	i, ok := n.IndexOfKey(key)
	if ok {
		n.Values[i] = v
		return
	}
	n.Keys = slices.Insert(n.Keys, i, key)
	n.Values = slices.Insert(n.Values, i, v)
}

// DeleteKey removes the dictionary entry for key and reports whether
// it was present.
func (n *Node) DeleteKey(key string) bool {
	i, ok := n.IndexOfKey(key)
	if !ok {
		return false
	}
	n.Keys = slices.Delete(n.Keys, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	return true
}

// Append adds v to the end of a list.
func (n *Node) Append(v *Node) {
	n.Values = append(n.Values, v)
}

// InsertAt inserts v at position i of a list, shifting later elements
// right. The caller validates 0 <= i <= Len().
func (n *Node) InsertAt(i int, v *Node) {
	n.Values = slices.Insert(n.Values, i, v)
}

// RemoveAt removes the element at position i. For dictionaries the
// matching key is removed as well. The caller validates the position.
func (n *Node) RemoveAt(i int) {
	if n.Type == DictType {
		n.Keys = slices.Delete(n.Keys, i, i+1)
	}
	n.Values = slices.Delete(n.Values, i, i+1)
}

// Clear empties a container in place, keeping its kind, and resets a
// primitive to its zero value.
func (n *Node) Clear() {
	switch n.Type {
	case IntegerType:
		n.Int64 = 0
	case BytesType:
		n.Bytes = nil
	case ListType:
		n.Values = nil
	case DictType:
		n.Keys = nil
		n.Values = nil
	}
}

// ToGo converts a tree to plain Go values: dictionaries become
// map[string]any, lists []any, integers int64, and byte strings
// string. Used by the batch predicate environment.
func (n *Node) ToGo() any {
	switch n.Type {
	case IntegerType:
		return n.Int64
	case BytesType:
		return string(n.Bytes)
	case ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToGo()
		}
		return res
	case DictType:
		res := make(map[string]any, len(n.Values))
		for i, key := range n.Keys {
			res[key] = n.Values[i].ToGo()
		}
		return res
	default:
		return nil
	}
}
