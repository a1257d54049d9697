package edit

import "errors"

var (
	// ErrSyntax reports a malformed command line, including bad
	// argument counts.
	ErrSyntax = errors.New("malformed command")

	// ErrUnknownCommand reports a command word with no handler.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrExists reports an insert over an existing dictionary key.
	ErrExists = errors.New("key already exists")

	// ErrNoPath reports save on a session that has no file path yet.
	ErrNoPath = errors.New("no file path")

	// ErrDeclined reports a confirmation answered with no.
	ErrDeclined = errors.New("confirmation declined")
)
