// Package literal converts restricted JSON literals into ir trees.
//
// JSON objects become dictionaries, arrays become lists, strings
// become byte strings, and numbers without a fractional or exponent
// part become integers. The encoding has no null, boolean, or float
// kinds, so those literals are unrepresentable.
//
// # Usage
//
//	n, err := literal.Convert(`{"a": [1, "two"]}`)
//
// # Related Packages
//
//   - github.com/manokara/bencedit/ir - the value model built here
package literal

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/manokara/bencedit/ir"
)

var (
	// ErrSyntax reports a malformed literal.
	ErrSyntax = errors.New("malformed literal")

	// ErrUnrepresentable reports a well-formed literal with no
	// equivalent in the encoding.
	ErrUnrepresentable = errors.New("unrepresentable literal")
)

type convOpts struct {
	allowEmptyKeys bool
}

type Option func(*convOpts)

// AllowEmptyKeys permits "" as a dictionary key. Off by default.
func AllowEmptyKeys(v bool) Option {
	return func(o *convOpts) { o.allowEmptyKeys = v }
}

// Convert parses text as JSON and builds the equivalent ir tree.
func Convert(text string, opts ...Option) (*ir.Node, error) {
	o := &convOpts{}
	for _, opt := range opts {
		opt(o)
	}
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after literal", ErrSyntax)
	}
	return fromJSON(v, o)
}

func fromJSON(v any, o *convOpts) (*ir.Node, error) {
	switch x := v.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s is not a 64-bit integer", ErrUnrepresentable, x)
		}
		return ir.FromInt(i), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		res := ir.NewList()
		for _, e := range x {
			n, err := fromJSON(e, o)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		res := ir.NewDict()
		for key, e := range x {
			if key == "" && !o.allowEmptyKeys {
				return nil, fmt.Errorf("%w in literal", ir.ErrEmptyKey)
			}
			n, err := fromJSON(e, o)
			if err != nil {
				return nil, err
			}
			res.SetKey(key, n)
		}
		return res, nil
	case bool:
		return nil, fmt.Errorf("%w: the encoding has no booleans", ErrUnrepresentable)
	case nil:
		return nil, fmt.Errorf("%w: the encoding has no null", ErrUnrepresentable)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrepresentable, v)
	}
}
