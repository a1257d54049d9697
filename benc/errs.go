package benc

import "errors"

var (
	// ErrEmpty reports a zero-length input.
	ErrEmpty = errors.New("empty file")

	// ErrSyntax reports malformed wire data, with a byte offset.
	ErrSyntax = errors.New("syntax error")

	// ErrEOF reports input that ends inside a value.
	ErrEOF = errors.New("unexpected end of file")

	// ErrBigInt reports an integer literal longer than the decoder
	// accepts.
	ErrBigInt = errors.New("integer too big")
)
