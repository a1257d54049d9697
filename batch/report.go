package batch

import (
	"fmt"
	"io"
)

// Status classifies the outcome for one file.
type Status int

const (
	Succeeded Status = iota
	SkippedNotFound
	SkippedInvalid
	SkippedWhere
	Failed
)

func (st Status) String() string {
	switch st {
	case Succeeded:
		return "ok"
	case SkippedNotFound:
		return "skipped (not found)"
	case SkippedInvalid:
		return "skipped (invalid)"
	case SkippedWhere:
		return "skipped (where)"
	case Failed:
		return "failed"
	default:
		return "<invalid status>"
	}
}

// FileResult is the recorded outcome for one file. Err keeps the
// triggering error even for skipped files, so nothing is silently
// swallowed.
type FileResult struct {
	File   string
	Status Status
	Output string
	Err    error
}

// Report aggregates per-file outcomes in processing order.
type Report struct {
	Results []FileResult
}

// Failed reports whether any file failed.
func (r *Report) Failed() bool {
	for _, fr := range r.Results {
		if fr.Status == Failed {
			return true
		}
	}
	return false
}

// Print writes the report, one line per file plus any transform
// output, to w.
func (r *Report) Print(w io.Writer) {
	for _, fr := range r.Results {
		if fr.Err != nil {
			fmt.Fprintf(w, "%s: %s: %v\n", fr.File, fr.Status, fr.Err)
		} else {
			fmt.Fprintf(w, "%s: %s\n", fr.File, fr.Status)
		}
		if fr.Output != "" {
			fmt.Fprint(w, fr.Output)
		}
	}
}
