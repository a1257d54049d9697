// Package selector parses and renders path selectors into bencoded
// trees.
//
// Selector syntax encodes the container kind in each segment:
//   - .field - dictionary member access
//   - [index] - list element access, zero based
//
// Segments chain without further separators: ".foo[1].bar". The empty
// string, or a sole ".", denotes the root.
//
// # Usage
//
//	sel, err := selector.Parse(".foo[1].bar")
//	parent, last := sel.RSplit()
//
// Parsing is purely syntactic; existence is checked by ir.Resolve.
//
// # Related Packages
//
//   - github.com/manokara/bencedit/ir - value trees and resolution
package selector
