// Package debug gates diagnostic logging behind environment
// variables. Debug output goes to stderr and never to the command
// output stream.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Exec    bool
	Batch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("BENCEDIT_DEBUG_RESOLVE")
	d.Exec = boolEnv("BENCEDIT_DEBUG_EXEC")
	d.Batch = boolEnv("BENCEDIT_DEBUG_BATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Exec() bool {
	return d.Exec
}
func Batch() bool {
	return d.Batch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
