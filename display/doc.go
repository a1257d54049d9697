// Package display renders ir trees to text under depth and size
// bounds.
//
// # Usage
//
//	out := display.Render(node)
//	out = display.Render(node, display.MaxDepth(2), display.MaxListItems(10))
//
// Rendering is pure: it never mutates the tree, and a tree already
// within all bounds renders without truncation markers. Depth-elided
// containers render as "{...}" or "[...]", which is distinct from the
// empty containers "{}" and "[]".
//
// # Related Packages
//
//   - github.com/manokara/bencedit/ir - the trees rendered here
package display
