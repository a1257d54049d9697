package edit

import (
	"os"

	"github.com/manokara/bencedit/benc"
	"github.com/manokara/bencedit/config"
	"github.com/manokara/bencedit/display"
	"github.com/manokara/bencedit/ir"
)

// Session is the editing state for one loaded file: the value tree,
// the originating path, and the dirty flag. The tree is exclusively
// owned by its session; command handlers are the only writers.
type Session struct {
	Root  *ir.Node
	Path  string
	Dirty bool

	cfg    *config.Config
	colors *display.Colors
}

// Open loads the file at path into a fresh session. A missing file
// starts an empty dictionary root when cfg.CreateMissing is set, and
// fails otherwise.
func Open(path string, cfg *config.Config) (*Session, error) {
	if cfg == nil {
		defaults := config.Defaults()
		cfg = &defaults
	}
	s := &Session{Path: path, cfg: cfg}
	root, err := benc.Load(path)
	if err != nil {
		if os.IsNotExist(err) && cfg.CreateMissing {
			s.Root = ir.NewDict()
			return s, nil
		}
		return nil, err
	}
	s.Root = root
	return s, nil
}

// New returns a session over an existing tree, used by tests and by
// callers that decode elsewhere.
func New(root *ir.Node, path string, cfg *config.Config) *Session {
	if cfg == nil {
		defaults := config.Defaults()
		cfg = &defaults
	}
	return &Session{Root: root, Path: path, cfg: cfg}
}

// SetColors turns on colored rendering for show and diff output.
func (s *Session) SetColors(c *display.Colors) {
	s.colors = c
}

// reload replaces the tree from disk and clears the dirty flag.
func (s *Session) reload() error {
	root, err := benc.Load(s.Path)
	if err != nil {
		return err
	}
	s.Root = root
	s.Dirty = false
	return nil
}

// save persists the tree to path and clears the dirty flag.
func (s *Session) save(path string) error {
	if err := benc.Save(path, s.Root); err != nil {
		return err
	}
	s.Path = path
	s.Dirty = false
	return nil
}

// renderOpts maps the configured display bounds to render options.
func (s *Session) renderOpts(colored bool) []display.Option {
	d := s.cfg.Display
	opts := []display.Option{
		display.MaxDepth(d.MaxDepth),
		display.MaxListItems(d.MaxListItems),
		display.MaxBytes(d.MaxBytes),
	}
	if colored && s.colors != nil {
		opts = append(opts, display.WithColor(s.colors))
	}
	return opts
}
