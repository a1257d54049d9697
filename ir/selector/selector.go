package selector

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax reports a malformed selector.
var ErrSyntax = errors.New("malformed selector")

// Selector is one segment of a parsed selector, linked to the next.
// Exactly one of Field and Index is set per segment. A nil *Selector
// is the root selector.
type Selector struct {
	Field *string // dictionary key (.field)
	Index *int    // list index ([n])
	Next  *Selector
}

// Parse parses a selector string. The empty string and a sole "."
// denote the root and parse to nil.
func Parse(s string) (*Selector, error) {
	if s == "" || s == "." {
		return nil, nil
	}
	root := &Selector{}
	if err := parseFrag(s, root); err != nil {
		return nil, err
	}
	return root, nil
}

// parseFrag parses a fragment of a selector string into parent.
func parseFrag(frag string, parent *Selector) error {
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if rest == "" {
			return nil
		}
		next := &Selector{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrSyntax)
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest := frag[i+2:]
		if rest == "" {
			return nil
		}
		next := &Selector{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("%w: unexpected %q, expected '.' or '['", ErrSyntax, frag[0])
	}
}

// parseField scans a dictionary key up to the next segment delimiter.
// Keys cannot contain '.', '[' or ']'.
func parseField(frag string) (field, rest string, err error) {
	end := len(frag)
	for i := 0; i < len(frag); i++ {
		switch frag[i] {
		case '.', '[':
			end = i
		case ']':
			return "", "", fmt.Errorf("%w: ']' in key", ErrSyntax)
		default:
			continue
		}
		break
	}
	if end == 0 {
		return "", "", fmt.Errorf("%w: empty key", ErrSyntax)
	}
	return frag[:end], frag[end:], nil
}

// parseIndex parses the digits between brackets.
func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty index", ErrSyntax)
	}
	index, err := strconv.Atoi(s)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: invalid index %q", ErrSyntax, s)
	}
	return index, nil
}

// String returns the canonical selector string, "." for the root.
func (p *Selector) String() string {
	if p == nil {
		return "."
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			buf.WriteByte('.')
			buf.WriteString(*x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the canonical form of this single segment.
func (p *Selector) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return "." + *p.Field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Len returns the number of segments.
func (p *Selector) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// RSplit splits a selector into the path to the target's parent and
// the final segment. The root selector splits into (nil, nil).
func (p *Selector) RSplit() (parent, last *Selector) {
	if p == nil {
		return nil, nil
	}
	var (
		head, tail *Selector
		x          = p
	)
	for x.Next != nil {
		seg := x.copySegment()
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
		x = x.Next
	}
	return head, x.copySegment()
}

// Join returns a new selector with q's segments appended to p's.
// Neither input is modified; joining with the root is an identity.
func (p *Selector) Join(q *Selector) *Selector {
	var head, tail *Selector
	for _, part := range []*Selector{p, q} {
		for x := part; x != nil; x = x.Next {
			seg := x.copySegment()
			if head == nil {
				head = seg
			} else {
				tail.Next = seg
			}
			tail = seg
		}
	}
	return head
}

func (p *Selector) copySegment() *Selector {
	res := &Selector{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}
