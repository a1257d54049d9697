package benc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/manokara/bencedit/ir"
)

const (
	// chunkSize is the read buffer size.
	chunkSize = 2048

	// maxIntDigits bounds integer literals, sign included.
	maxIntDigits = 32
)

type decoder struct {
	r   *bufio.Reader
	off int64
}

// Decode reads one bencoded value from r. Zero-length input is
// ErrEmpty; trailing bytes after the value are a syntax error.
func Decode(r io.Reader) (*ir.Node, error) {
	d := &decoder{r: bufio.NewReaderSize(r, chunkSize)}
	if _, err := d.r.Peek(1); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, err
	}
	n, err := d.value()
	if err != nil {
		return nil, err
	}
	if _, err := d.r.Peek(1); err == nil {
		return nil, d.syntaxErr("trailing data after value")
	} else if err != io.EOF {
		return nil, err
	}
	return n, nil
}

// DecodeBytes decodes a value held entirely in memory.
func DecodeBytes(data []byte) (*ir.Node, error) {
	return Decode(bytes.NewReader(data))
}

func (d *decoder) value() (*ir.Node, error) {
	c, err := d.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case c == 'i':
		return d.integer()
	case c == 'l':
		return d.list()
	case c == 'd':
		return d.dict()
	case c >= '0' && c <= '9':
		return d.str()
	default:
		return nil, d.syntaxErr(fmt.Sprintf("unexpected %q token", c))
	}
}

func (d *decoder) integer() (*ir.Node, error) {
	d.next() // 'i'
	digits, err := d.intDigits(true)
	if err != nil {
		return nil, err
	}
	if err := d.expect('e'); err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, d.syntaxErr("invalid integer")
	}
	return ir.FromInt(v), nil
}

func (d *decoder) str() (*ir.Node, error) {
	data, err := d.strBytes()
	if err != nil {
		return nil, err
	}
	return ir.FromBytes(data), nil
}

// strBytes reads a length-prefixed byte string: digits, ':', payload.
func (d *decoder) strBytes() ([]byte, error) {
	digits, err := d.intDigits(false)
	if err != nil {
		return nil, err
	}
	if err := d.expect(':'); err != nil {
		return nil, err
	}
	size, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, d.syntaxErr("invalid integer")
	}
	data := make([]byte, size)
	n, err := io.ReadFull(d.r, data)
	d.off += int64(n)
	if err != nil {
		return nil, ErrEOF
	}
	return data, nil
}

func (d *decoder) list() (*ir.Node, error) {
	d.next() // 'l'
	res := ir.NewList()
	for {
		c, err := d.peek()
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			d.next()
			return res, nil
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		res.Append(v)
	}
}

func (d *decoder) dict() (*ir.Node, error) {
	d.next() // 'd'
	res := ir.NewDict()
	for {
		c, err := d.peek()
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			d.next()
			return res, nil
		}
		if c < '0' || c > '9' {
			return nil, d.syntaxErr(fmt.Sprintf("unexpected %q token, expected string key", c))
		}
		key, err := d.strBytes()
		if err != nil {
			return nil, err
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		res.SetKey(string(key), v)
	}
}

// intDigits consumes a run of digits, with an optional leading minus
// when signed.
func (d *decoder) intDigits(signed bool) (string, error) {
	buf := make([]byte, 0, 20)
	for {
		c, err := d.peek()
		if err != nil {
			return "", err
		}
		if c >= '0' && c <= '9' || c == '-' {
			if c == '-' && (!signed || len(buf) > 0) {
				return "", d.syntaxErr("unexpected '-'")
			}
			buf = append(buf, c)
			d.next()
			continue
		}
		if len(buf) == 0 {
			return "", d.syntaxErr("empty integer")
		}
		if len(buf) > maxIntDigits {
			return "", ErrBigInt
		}
		return string(buf), nil
	}
}

func (d *decoder) peek() (byte, error) {
	b, err := d.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0, ErrEOF
		}
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) next() {
	d.r.Discard(1)
	d.off++
}

func (d *decoder) expect(want byte) error {
	c, err := d.peek()
	if err != nil {
		return err
	}
	if c != want {
		return d.syntaxErr(fmt.Sprintf("expected %q token", want))
	}
	d.next()
	return nil
}

// syntaxErr reports a syntax error at the current offset, 1-based as
// shown to the user.
func (d *decoder) syntaxErr(msg string) error {
	return fmt.Errorf("%w at %d: %s", ErrSyntax, d.off+1, msg)
}

// IsSyntax reports whether err is a decoding error, as opposed to an
// IO failure. Used by the batch pipeline to classify invalid files.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrSyntax) || errors.Is(err, ErrEOF) ||
		errors.Is(err, ErrEmpty) || errors.Is(err, ErrBigInt)
}
