// Package ir is the in-memory representation of bencoded values.
//
// A value is one of four kinds: integer, byte string, list, or
// dictionary. Integers and byte strings are primitive; lists and
// dictionaries are containers. Dictionary keys are always text strings
// and are kept in sorted order, matching the canonical key order of the
// wire encoding.
//
// # Usage
//
//	// Build a tree
//	n := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "tags": ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
//	})
//
//	// Address a node
//	sel, err := selector.Parse(".tags[0]")
//	loc, err := ir.Resolve(n, sel)
//
// Trees carry no parent pointers. The resolver recomputes the
// parent-to-child step during each walk and returns it in a Located, so
// mutation always flows through a single transient reference.
//
// # Related Packages
//
//   - github.com/manokara/bencedit/ir/selector - selector parsing
//   - github.com/manokara/bencedit/benc - wire codec
//   - github.com/manokara/bencedit/display - bounded rendering
package ir
