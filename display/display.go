package display

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manokara/bencedit/ir"
)

// Default render bounds.
const (
	DefaultMaxDepth     = 8
	DefaultMaxListItems = 32
	DefaultMaxBytes     = 64
)

type renderState struct {
	maxDepth int
	maxItems int
	maxBytes int
	indent   int
	colors   *Colors

	buf *bytes.Buffer
}

// Render renders node to text under the configured bounds. The
// default bounds are DefaultMaxDepth, DefaultMaxListItems and
// DefaultMaxBytes.
func Render(node *ir.Node, opts ...Option) string {
	rs := &renderState{
		maxDepth: DefaultMaxDepth,
		maxItems: DefaultMaxListItems,
		maxBytes: DefaultMaxBytes,
		indent:   2,
		buf:      bytes.NewBuffer(nil),
	}
	for _, opt := range opts {
		opt(rs)
	}
	rs.render(node, 0)
	return rs.buf.String()
}

// render writes node at the given ancestry depth. Depth belongs to
// the call, never to shared state, so truncation in one branch cannot
// leak into a sibling subtree.
func (rs *renderState) render(node *ir.Node, depth int) {
	switch node.Type {
	case ir.IntegerType:
		rs.buf.WriteString(rs.paint(intColor, strconv.FormatInt(node.Int64, 10)))
	case ir.BytesType:
		rs.buf.WriteString(rs.bytesRepr(node.Bytes))
	case ir.ListType:
		// The zero-member branch is explicit: an empty list must
		// stay distinguishable from an elided one.
		if node.Len() == 0 {
			rs.buf.WriteString(rs.paint(punctColor, "[]"))
			return
		}
		if depth >= rs.maxDepth {
			rs.buf.WriteString(rs.paint(punctColor, "[...]"))
			return
		}
		rs.buf.WriteString(rs.paint(punctColor, "["))
		shown := node.Len()
		if shown > rs.maxItems {
			shown = rs.maxItems
		}
		for i := 0; i < shown; i++ {
			rs.newline(depth + 1)
			rs.render(node.Values[i], depth+1)
			if i < node.Len()-1 {
				rs.buf.WriteString(rs.paint(punctColor, ","))
			}
		}
		if omitted := node.Len() - shown; omitted > 0 {
			rs.newline(depth + 1)
			rs.buf.WriteString(rs.paint(punctColor, fmt.Sprintf("+%d more", omitted)))
		}
		rs.newline(depth)
		rs.buf.WriteString(rs.paint(punctColor, "]"))
	case ir.DictType:
		if node.Len() == 0 {
			rs.buf.WriteString(rs.paint(punctColor, "{}"))
			return
		}
		if depth >= rs.maxDepth {
			rs.buf.WriteString(rs.paint(punctColor, "{...}"))
			return
		}
		rs.buf.WriteString(rs.paint(punctColor, "{"))
		for i, key := range node.Keys {
			rs.newline(depth + 1)
			rs.buf.WriteString(rs.paint(keyColor, strconv.Quote(key)))
			rs.buf.WriteString(rs.paint(punctColor, ": "))
			rs.render(node.Values[i], depth+1)
			if i < node.Len()-1 {
				rs.buf.WriteString(rs.paint(punctColor, ","))
			}
		}
		rs.newline(depth)
		rs.buf.WriteString(rs.paint(punctColor, "}"))
	}
}

func (rs *renderState) newline(depth int) {
	rs.buf.WriteByte('\n')
	rs.buf.WriteString(strings.Repeat(" ", rs.indent*depth))
}

// bytesRepr renders a byte string: quoted when valid UTF-8, hex
// otherwise, with a truncation marker past the byte bound.
func (rs *renderState) bytesRepr(b []byte) string {
	shown := b
	if len(b) > rs.maxBytes {
		shown = b[:rs.maxBytes]
	}
	var repr string
	if utf8.Valid(b) {
		// Back off to a rune boundary so the prefix stays valid.
		for len(shown) > 0 && !utf8.Valid(shown) {
			shown = shown[:len(shown)-1]
		}
		repr = rs.paint(strColor, strconv.Quote(string(shown)))
	} else {
		repr = rs.paint(strColor, "0x"+hex.EncodeToString(shown))
	}
	if trunc := len(b) - len(shown); trunc > 0 {
		repr += rs.paint(punctColor, fmt.Sprintf(" (%d bytes truncated)", trunc))
	}
	return repr
}
