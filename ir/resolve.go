package ir

import (
	"fmt"

	"github.com/manokara/bencedit/ir/selector"
)

// Located is the result of resolving a selector: the target node plus
// the parent-to-child step used to reach it. Parent is nil when the
// target is the root. For a dictionary step Key holds the member key;
// Index is the target's position in Parent.Values for both container
// kinds.
type Located struct {
	Node   *Node
	Parent *Node
	Key    string
	Index  int
}

// IsRoot reports whether the located node has no parent linkage.
func (l *Located) IsRoot() bool {
	return l.Parent == nil
}

// Replace substitutes v for the located node through the parent link.
// The caller checks IsRoot first; the root is replaced by its owner.
func (l *Located) Replace(v *Node) {
	l.Parent.Values[l.Index] = v
	l.Node = v
}

// Remove deletes the located node from its parent.
func (l *Located) Remove() {
	l.Parent.RemoveAt(l.Index)
}

// Resolve walks root along sel and returns the target together with
// its parent linkage. Every command that reads or writes "the value at
// a selector" goes through here, so error semantics stay uniform
// across commands.
func Resolve(root *Node, sel *selector.Selector) (*Located, error) {
	loc := &Located{Node: root}
	for x := sel; x != nil; x = x.Next {
		cur := loc.Node
		if x.Field != nil {
			if cur.Type != DictType {
				return nil, segmentTypeErr(x, DictType, cur.Type)
			}
			i, ok := cur.IndexOfKey(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: no key %q", ErrNotFound, *x.Field)
			}
			loc = &Located{Node: cur.Values[i], Parent: cur, Key: *x.Field, Index: i}
			continue
		}
		if cur.Type != ListType {
			return nil, segmentTypeErr(x, ListType, cur.Type)
		}
		i := *x.Index
		if i >= cur.Len() {
			return nil, fmt.Errorf("%w: index %d (len %d)", ErrBounds, i, cur.Len())
		}
		loc = &Located{Node: cur.Values[i], Parent: cur, Index: i}
	}
	return loc, nil
}

func segmentTypeErr(seg *selector.Selector, want, got Type) error {
	if got.IsPrimitive() {
		return fmt.Errorf("%w: %s at %q is not a container", ErrType, got, seg.SegmentString())
	}
	return fmt.Errorf("%w: expected %s at %q, got %s", ErrType, want, seg.SegmentString(), got)
}
