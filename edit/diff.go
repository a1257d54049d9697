package edit

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/manokara/bencedit/benc"
	"github.com/manokara/bencedit/display"
)

// cmdDiff renders the on-disk tree and the in-memory tree without
// color and prints a line diff, "-" for disk and "+" for memory.
func cmdDiff(s *Session, _ []string) (*Result, error) {
	if s.Path == "" {
		return nil, ErrNoPath
	}
	diskRoot, err := benc.Load(s.Path)
	if err != nil {
		return nil, err
	}
	before := display.Render(diskRoot, s.renderOpts(false)...) + "\n"
	after := display.Render(s.Root, s.renderOpts(false)...) + "\n"
	if before == after {
		return &Result{Output: "no changes"}, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	out := strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for line := range strings.Lines(d.Text) {
			out.WriteString(prefix)
			out.WriteString(strings.TrimSuffix(line, "\n"))
			out.WriteByte('\n')
		}
	}
	return &Result{Output: strings.TrimSuffix(out.String(), "\n")}, nil
}
