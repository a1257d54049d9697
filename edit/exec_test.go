package edit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manokara/bencedit/benc"
	"github.com/manokara/bencedit/config"
	"github.com/manokara/bencedit/ir"
)

// sampleSession builds a session over {"list": [1, 2], "name": "ed"}
// without touching disk.
func sampleSession(t *testing.T) *Session {
	t.Helper()
	root := ir.FromMap(map[string]*ir.Node{
		"list": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
		"name": ir.FromString("ed"),
	})
	return New(root, "", nil)
}

func mustExec(t *testing.T, s *Session, line string) *Result {
	t.Helper()
	res, err := s.Exec(line)
	if err != nil {
		t.Fatalf("Exec(%q): %v", line, err)
	}
	return res
}

func TestExecShow(t *testing.T) {
	s := sampleSession(t)
	res := mustExec(t, s, "show .name")
	if res.Output != `"ed"` {
		t.Errorf("Output = %q", res.Output)
	}
	if s.Dirty {
		t.Error("show set the dirty flag")
	}

	// Root and "." are the same target.
	dot := mustExec(t, s, "show .")
	bare := mustExec(t, s, "show")
	if dot.Output != bare.Output {
		t.Errorf("show . = %q, show = %q", dot.Output, bare.Output)
	}
}

func TestExecSet(t *testing.T) {
	s := sampleSession(t)
	mustExec(t, s, `set .name "\"joe\""`)
	if got := mustGet(t, s, ".name"); !got.Equal(ir.FromString("joe")) {
		t.Errorf("after set: %v", got)
	}
	if !s.Dirty {
		t.Error("set left the session clean")
	}
}

func TestExecSetRoot(t *testing.T) {
	s := sampleSession(t)
	mustExec(t, s, `set . "[1]"`)
	want := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	if !s.Root.Equal(want) {
		t.Errorf("root = %v", s.Root)
	}
}

func TestExecAppend(t *testing.T) {
	s := sampleSession(t)
	mustExec(t, s, `append .list "7"`)
	want := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(7)})
	if got := mustGet(t, s, ".list"); !got.Equal(want) {
		t.Errorf("after append: %v", got)
	}
	if !s.Dirty {
		t.Error("append left the session clean")
	}
}

func TestExecInsert(t *testing.T) {
	t.Run("dict", func(t *testing.T) {
		s := sampleSession(t)
		mustExec(t, s, `insert . age "30"`)
		if got := mustGet(t, s, ".age"); !got.Equal(ir.FromInt(30)) {
			t.Errorf("after insert: %v", got)
		}
	})
	t.Run("dict existing key", func(t *testing.T) {
		s := sampleSession(t)
		_, err := s.Exec(`insert . name "1"`)
		if !errors.Is(err, ErrExists) {
			t.Errorf("err = %v, want ErrExists", err)
		}
	})
	t.Run("list middle", func(t *testing.T) {
		s := sampleSession(t)
		mustExec(t, s, `insert .list 1 "9"`)
		want := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(9), ir.FromInt(2)})
		if got := mustGet(t, s, ".list"); !got.Equal(want) {
			t.Errorf("after insert: %v", got)
		}
	})
	t.Run("list end", func(t *testing.T) {
		s := sampleSession(t)
		mustExec(t, s, `insert .list 2 "9"`)
		if got := mustGet(t, s, ".list[2]"); !got.Equal(ir.FromInt(9)) {
			t.Errorf("after insert: %v", got)
		}
	})
	t.Run("list bad position", func(t *testing.T) {
		s := sampleSession(t)
		_, err := s.Exec(`insert .list x "9"`)
		if !errors.Is(err, ir.ErrType) {
			t.Errorf("err = %v, want ErrType", err)
		}
	})
	t.Run("list out of bounds", func(t *testing.T) {
		s := sampleSession(t)
		_, err := s.Exec(`insert .list 5 "9"`)
		if !errors.Is(err, ir.ErrBounds) {
			t.Errorf("err = %v, want ErrBounds", err)
		}
	})
	t.Run("primitive target", func(t *testing.T) {
		s := sampleSession(t)
		_, err := s.Exec(`insert .name k "1"`)
		if !errors.Is(err, ir.ErrType) {
			t.Errorf("err = %v, want ErrType", err)
		}
	})
}

func TestExecRemove(t *testing.T) {
	s := sampleSession(t)
	mustExec(t, s, "remove .list[0]")
	want := ir.FromSlice([]*ir.Node{ir.FromInt(2)})
	if got := mustGet(t, s, ".list"); !got.Equal(want) {
		t.Errorf("after remove: %v", got)
	}

	mustExec(t, s, "remove .name")
	if _, ok := s.Root.IndexOfKey("name"); ok {
		t.Error("key survived remove")
	}

	if _, err := s.Exec("remove ."); !errors.Is(err, ErrSyntax) {
		t.Errorf("remove root: %v, want ErrSyntax", err)
	}
}

func TestExecClear(t *testing.T) {
	s := sampleSession(t)
	mustExec(t, s, "clear .list")
	if got := mustGet(t, s, ".list"); got.Type != ir.ListType || got.Len() != 0 {
		t.Errorf("after clear: %v", got)
	}

	mustExec(t, s, `insert . n "5"`)
	mustExec(t, s, "clear .n")
	if got := mustGet(t, s, ".n"); !got.Equal(ir.FromInt(0)) {
		t.Errorf("cleared integer: %v", got)
	}
}

// A failed command leaves the tree and the dirty flag exactly as they
// were.
func TestExecFailureIsAtomic(t *testing.T) {
	tests := []struct {
		name string
		line string
		err  error
	}{
		{"remove out of bounds", "remove .list[5]", ir.ErrBounds},
		{"set missing key", `set .nope "1"`, ir.ErrNotFound},
		{"set bad literal", `set . "{\"a\": null}"`, nil},
		{"append to dict", `append . "1"`, ir.ErrType},
		{"unknown command", "frobnicate", ErrUnknownCommand},
		{"bad arity", "set .x", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSession(t)
			before := s.Root.Clone()
			_, err := s.Exec(tt.line)
			if err == nil {
				t.Fatalf("Exec(%q) succeeded", tt.line)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
			if !s.Root.Equal(before) {
				t.Error("failed command mutated the tree")
			}
			if s.Dirty {
				t.Error("failed command set the dirty flag")
			}
		})
	}
}

func TestExecBlankLine(t *testing.T) {
	s := sampleSession(t)
	res := mustExec(t, s, "   ")
	if res.Output != "" || res.Quit || res.NeedsConfirm != PendingNone {
		t.Errorf("blank line: %+v", res)
	}
}

func TestExecQuit(t *testing.T) {
	s := sampleSession(t)
	for _, line := range []string{"quit", "q", "exit"} {
		res := mustExec(t, s, line)
		if !res.Quit {
			t.Errorf("%q did not quit", line)
		}
	}

	mustExec(t, s, `set .name "\"x\""`)
	res := mustExec(t, s, "quit")
	if res.Quit || res.NeedsConfirm != PendingQuit {
		t.Errorf("dirty quit: %+v", res)
	}

	if _, err := s.Confirm(PendingQuit, false); !errors.Is(err, ErrDeclined) {
		t.Errorf("declined confirm: %v", err)
	}
	res, err := s.Confirm(PendingQuit, true)
	if err != nil || !res.Quit {
		t.Errorf("accepted confirm: %+v, %v", res, err)
	}
}

func TestSaveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.benc")
	if err := benc.Save(path, ir.FromMap(map[string]*ir.Node{"n": ir.FromInt(1)})); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	mustExec(t, s, `set .n "2"`)
	mustExec(t, s, "save")
	if s.Dirty {
		t.Error("save left the session dirty")
	}
	onDisk, err := benc.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !onDisk.Equal(s.Root) {
		t.Error("saved tree differs from session tree")
	}

	// A clean reload needs no confirmation.
	res := mustExec(t, s, "reload")
	if res.NeedsConfirm != PendingNone || !strings.HasPrefix(res.Output, "Loading ") {
		t.Errorf("clean reload: %+v", res)
	}

	// A dirty reload does, and confirming drops the edit.
	mustExec(t, s, `set .n "3"`)
	res = mustExec(t, s, "reload")
	if res.NeedsConfirm != PendingReload {
		t.Errorf("dirty reload: %+v", res)
	}
	if _, err := s.Confirm(PendingReload, true); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, s, ".n"); !got.Equal(ir.FromInt(2)) {
		t.Errorf("after reload: %v", got)
	}
	if s.Dirty {
		t.Error("reload left the session dirty")
	}
}

func TestSaveAs(t *testing.T) {
	s := sampleSession(t)
	if _, err := s.Exec("save"); !errors.Is(err, ErrNoPath) {
		t.Errorf("save without path: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.benc")
	s.Dirty = true
	mustExec(t, s, "save-as "+path)
	if s.Path != path {
		t.Errorf("Path = %q", s.Path)
	}
	if s.Dirty {
		t.Error("save-as left the session dirty")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestOpenCreateMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.benc")

	if _, err := Open(path, nil); err == nil {
		t.Error("missing file opened without create_missing")
	}

	cfg := config.Defaults()
	cfg.CreateMissing = true
	s, err := Open(path, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Root.Type != ir.DictType || s.Root.Len() != 0 {
		t.Errorf("fresh root: %v", s.Root)
	}
}

func TestExecDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.benc")
	if err := benc.Save(path, ir.FromMap(map[string]*ir.Node{"n": ir.FromInt(1)})); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	res := mustExec(t, s, "diff")
	if res.Output != "no changes" {
		t.Errorf("clean diff: %q", res.Output)
	}

	mustExec(t, s, `set .n "2"`)
	res = mustExec(t, s, "diff")
	if !strings.Contains(res.Output, "- ") || !strings.Contains(res.Output, "+ ") {
		t.Errorf("dirty diff:\n%s", res.Output)
	}
}

func mustGet(t *testing.T, s *Session, sel string) *ir.Node {
	t.Helper()
	loc, err := s.resolveArg(sel)
	if err != nil {
		t.Fatalf("resolve %q: %v", sel, err)
	}
	return loc.Node
}
