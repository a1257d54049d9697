package edit

import (
	"fmt"
	"strconv"

	"github.com/manokara/bencedit/debug"
	"github.com/manokara/bencedit/display"
	"github.com/manokara/bencedit/ir"
	"github.com/manokara/bencedit/ir/selector"
	"github.com/manokara/bencedit/literal"
)

// Pending names a confirmation the shell owes the engine before a
// destructive command proceeds.
type Pending int

const (
	PendingNone Pending = iota
	PendingReload
	PendingQuit
)

// Result is the outcome of one executed command line.
type Result struct {
	// Output is text for the user, empty for silent commands.
	Output string

	// NeedsConfirm is set when the command discards unsaved changes
	// and the shell must ask first, then call Confirm.
	NeedsConfirm Pending

	// Quit is set when the session is over.
	Quit bool
}

type handler struct {
	usage            string
	minArgs, maxArgs int
	run              func(s *Session, args []string) (*Result, error)
}

var handlers = map[string]*handler{
	"show":    {"show [selector]", 0, 1, cmdShow},
	"set":     {"set <selector> <value>", 2, 2, cmdSet},
	"insert":  {"insert <selector> <identifier> <value>", 3, 3, cmdInsert},
	"append":  {"append <selector> <value>", 2, 2, cmdAppend},
	"remove":  {"remove <selector>", 1, 1, cmdRemove},
	"clear":   {"clear [selector]", 0, 1, cmdClear},
	"reload":  {"reload", 0, 0, cmdReload},
	"save":    {"save", 0, 0, cmdSave},
	"save-as": {"save-as <path>", 1, 1, cmdSaveAs},
	"diff":    {"diff", 0, 0, cmdDiff},
	"help":    {"help", 0, 0, cmdHelp},
	"quit":    {"quit", 0, 0, cmdQuit},
}

var aliases = map[string]string{
	"q":    "quit",
	"exit": "quit",
}

// Exec runs one command line against the session. A blank line is a
// no-op. Errors leave the tree and the dirty flag untouched.
func (s *Session) Exec(line string) (*Result, error) {
	cmd, args, err := Split(line)
	if err != nil {
		return nil, err
	}
	if cmd == "" {
		return &Result{}, nil
	}
	if target, ok := aliases[cmd]; ok {
		cmd = target
	}
	h, ok := handlers[cmd]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	if len(args) < h.minArgs || len(args) > h.maxArgs {
		return nil, fmt.Errorf("%w: usage: %s", ErrSyntax, h.usage)
	}
	if debug.Exec() {
		debug.Logf("exec: cmd=%q args=%q dirty=%v\n", cmd, args, s.Dirty)
	}
	return h.run(s, args)
}

// Confirm completes a command that returned a pending confirmation.
// ok=false maps to ErrDeclined and changes nothing.
func (s *Session) Confirm(p Pending, ok bool) (*Result, error) {
	if !ok {
		return nil, ErrDeclined
	}
	switch p {
	case PendingReload:
		return s.doReload()
	case PendingQuit:
		return &Result{Quit: true}, nil
	default:
		return &Result{}, nil
	}
}

// resolveArg parses and resolves a selector argument in one step.
func (s *Session) resolveArg(arg string) (*ir.Located, error) {
	sel, err := selector.Parse(arg)
	if err != nil {
		return nil, err
	}
	if debug.Resolve() {
		debug.Logf("resolve: %s\n", sel)
	}
	return ir.Resolve(s.Root, sel)
}

// convert applies the session's literal policy.
func (s *Session) convert(text string) (*ir.Node, error) {
	return literal.Convert(text, literal.AllowEmptyKeys(s.cfg.AllowEmptyKeys))
}

func optionalSelector(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func cmdShow(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(optionalSelector(args))
	if err != nil {
		return nil, err
	}
	return &Result{Output: display.Render(loc.Node, s.renderOpts(true)...)}, nil
}

func cmdSet(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(args[0])
	if err != nil {
		return nil, err
	}
	v, err := s.convert(args[1])
	if err != nil {
		return nil, err
	}
	if loc.IsRoot() {
		s.Root = v
	} else {
		loc.Replace(v)
	}
	s.Dirty = true
	return &Result{}, nil
}

func cmdInsert(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(args[0])
	if err != nil {
		return nil, err
	}
	ident := args[1]
	v, err := s.convert(args[2])
	if err != nil {
		return nil, err
	}
	switch loc.Node.Type {
	case ir.DictType:
		if ident == "" && !s.cfg.AllowEmptyKeys {
			return nil, ir.ErrEmptyKey
		}
		if _, exists := loc.Node.IndexOfKey(ident); exists {
			return nil, fmt.Errorf("%w: %q", ErrExists, ident)
		}
		loc.Node.SetKey(ident, v)
	case ir.ListType:
		i, convErr := strconv.Atoi(ident)
		if convErr != nil {
			return nil, fmt.Errorf("%w: list position %q is not an integer", ir.ErrType, ident)
		}
		if i < 0 || i > loc.Node.Len() {
			return nil, fmt.Errorf("%w: position %d (len %d)", ir.ErrBounds, i, loc.Node.Len())
		}
		loc.Node.InsertAt(i, v)
	default:
		return nil, fmt.Errorf("%w: %s at %q is not a container", ir.ErrType, loc.Node.Type, args[0])
	}
	s.Dirty = true
	return &Result{}, nil
}

func cmdAppend(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(args[0])
	if err != nil {
		return nil, err
	}
	if loc.Node.Type != ir.ListType {
		return nil, fmt.Errorf("%w: expected list at %q, got %s", ir.ErrType, args[0], loc.Node.Type)
	}
	v, err := s.convert(args[1])
	if err != nil {
		return nil, err
	}
	loc.Node.Append(v)
	s.Dirty = true
	return &Result{}, nil
}

func cmdRemove(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(args[0])
	if err != nil {
		return nil, err
	}
	if loc.IsRoot() {
		return nil, fmt.Errorf("%w: cannot remove the root, use clear", ErrSyntax)
	}
	loc.Remove()
	s.Dirty = true
	return &Result{}, nil
}

func cmdClear(s *Session, args []string) (*Result, error) {
	loc, err := s.resolveArg(optionalSelector(args))
	if err != nil {
		return nil, err
	}
	loc.Node.Clear()
	s.Dirty = true
	return &Result{}, nil
}

func cmdReload(s *Session, _ []string) (*Result, error) {
	if s.Dirty {
		return &Result{NeedsConfirm: PendingReload}, nil
	}
	return s.doReload()
}

func (s *Session) doReload() (*Result, error) {
	if err := s.reload(); err != nil {
		return nil, err
	}
	return &Result{Output: fmt.Sprintf("Loading %s", s.Path)}, nil
}

func cmdSave(s *Session, _ []string) (*Result, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("%w, use save-as", ErrNoPath)
	}
	if err := s.save(s.Path); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

func cmdSaveAs(s *Session, args []string) (*Result, error) {
	if err := s.save(args[0]); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

func cmdQuit(s *Session, _ []string) (*Result, error) {
	if s.Dirty {
		return &Result{NeedsConfirm: PendingQuit}, nil
	}
	return &Result{Quit: true}, nil
}

func cmdHelp(_ *Session, _ []string) (*Result, error) {
	return &Result{Output: helpText}, nil
}

const helpText = `Commands:
  show [selector]                        print the value at selector (root if omitted)
  set <selector> <value>                 replace the value at selector
  insert <selector> <identifier> <value> insert into the container at selector
  append <selector> <value>              append to the list at selector
  remove <selector>                      delete the value at selector
  clear [selector]                       empty a container or zero a primitive
  diff                                   show unsaved changes against the file
  reload                                 discard changes and reload the file
  save                                   write back to the file
  save-as <path>                         write to a new path
  quit (q, exit)                         end the session

Values are JSON literals; selectors look like .foo[1].bar`
