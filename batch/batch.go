// Package batch applies an ordered list of transforms to many files,
// sequentially and without prompts.
//
// # Usage
//
//	report, err := batch.Run(batch.Config{
//	    Files:      []string{"a.torrent", "b.torrent"},
//	    Transforms: []string{`set .name "x"`, `remove .junk`},
//	    SkipNotFound: true,
//	})
//
// Files are processed strictly in order, one session each, so reports
// are deterministic and no state leaks between files. A file whose
// transforms all succeed is saved back to its original path when any
// of them changed the tree.
//
// # Related Packages
//
//   - github.com/manokara/bencedit/edit - the shared command handlers
package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/manokara/bencedit/benc"
	"github.com/manokara/bencedit/config"
	"github.com/manokara/bencedit/debug"
	"github.com/manokara/bencedit/edit"
)

// ErrAbort wraps the error that stopped a batch when the relevant
// skip flag was off.
var ErrAbort = errors.New("batch aborted")

// transformable is the command subset usable as a transform. The
// rest either prompt, exit, or manage paths, none of which make sense
// headlessly.
var transformable = map[string]bool{
	"show":   true,
	"set":    true,
	"insert": true,
	"append": true,
	"remove": true,
	"clear":  true,
}

// Config drives one batch run.
type Config struct {
	Files      []string
	Transforms []string

	// SkipInvalid records files that fail to decode or to transform
	// and moves on; otherwise such a file aborts the batch.
	SkipInvalid bool

	// SkipNotFound records missing files and moves on; otherwise a
	// missing file aborts the batch.
	SkipNotFound bool

	// Where is an optional predicate expression evaluated against
	// {root, path} before transforming; files where it is false are
	// recorded as skipped.
	Where string

	// Editor carries the policy knobs shared with interactive mode.
	Editor *config.Config
}

// Run applies cfg.Transforms to each file in order. The returned
// report always covers every file considered; a non-nil error means
// the batch aborted and the remaining files were not attempted.
func Run(cfg Config) (*Report, error) {
	for _, t := range cfg.Transforms {
		if err := checkTransform(t); err != nil {
			return nil, err
		}
	}
	var where *vm.Program
	if cfg.Where != "" {
		prog, err := expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling where expression: %w", err)
		}
		where = prog
	}

	// Batch never invents trees for missing files; that policy is
	// interactive-only.
	if cfg.Editor != nil {
		editor := *cfg.Editor
		editor.CreateMissing = false
		cfg.Editor = &editor
	}

	report := &Report{}
	for _, file := range cfg.Files {
		entry, err := runFile(&cfg, where, file)
		report.Results = append(report.Results, *entry)
		if err != nil {
			return report, fmt.Errorf("%w: %s: %w", ErrAbort, file, err)
		}
	}
	return report, nil
}

// checkTransform rejects transforms outside the headless subset
// before any file is touched.
func checkTransform(t string) error {
	cmd, _, err := edit.Split(t)
	if err != nil {
		return fmt.Errorf("transform %q: %w", t, err)
	}
	if !transformable[cmd] {
		return fmt.Errorf("transform %q: %q cannot be used in batch mode", t, cmd)
	}
	return nil
}

// runFile loads, filters, transforms and saves one file. The error
// is non-nil only when the failure must abort the whole batch.
func runFile(cfg *Config, where *vm.Program, file string) (*FileResult, error) {
	if debug.Batch() {
		debug.Logf("batch: %s\n", file)
	}
	s, err := edit.Open(file, cfg.Editor)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			if cfg.SkipNotFound {
				return &FileResult{File: file, Status: SkippedNotFound, Err: err}, nil
			}
			return &FileResult{File: file, Status: Failed, Err: err}, err
		case benc.IsSyntax(err):
			if cfg.SkipInvalid {
				return &FileResult{File: file, Status: SkippedInvalid, Err: err}, nil
			}
			return &FileResult{File: file, Status: Failed, Err: err}, err
		default:
			// Opaque IO failure: recorded, batch continues.
			return &FileResult{File: file, Status: Failed, Err: err}, nil
		}
	}

	if where != nil {
		env := map[string]any{"root": s.Root.ToGo(), "path": file}
		keep, err := expr.Run(where, env)
		if err != nil {
			return &FileResult{File: file, Status: Failed, Err: err}, err
		}
		if !keep.(bool) {
			return &FileResult{File: file, Status: SkippedWhere}, nil
		}
	}

	var output strings.Builder
	for _, t := range cfg.Transforms {
		res, err := s.Exec(t)
		if err != nil {
			err = fmt.Errorf("transform %q: %w", t, err)
			if cfg.SkipInvalid {
				return &FileResult{File: file, Status: SkippedInvalid, Err: err}, nil
			}
			return &FileResult{File: file, Status: Failed, Err: err}, err
		}
		if res.Output != "" {
			output.WriteString(res.Output)
			output.WriteByte('\n')
		}
	}

	if s.Dirty {
		if err := benc.Save(file, s.Root); err != nil {
			return &FileResult{File: file, Status: Failed, Err: err}, nil
		}
	}
	return &FileResult{File: file, Status: Succeeded, Output: output.String()}, nil
}
