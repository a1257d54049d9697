// Package edit is the editing engine: a session per loaded file and a
// line-oriented command interpreter over it.
//
// The interpreter is headless. It never reads the terminal: commands
// that need a confirmation (quit or reload with unsaved changes)
// return a pending marker in their Result, and the surrounding shell
// decides whether to call Confirm. This keeps the same handlers usable
// by the interactive prompt and the batch pipeline.
//
// # Usage
//
//	s, err := edit.Open("a.torrent", cfg)
//	res, err := s.Exec(`set .name "new name"`)
//	if res.NeedsConfirm != edit.PendingNone {
//	    res, err = s.Confirm(res.NeedsConfirm, askUser())
//	}
//
// Every command either fully succeeds or leaves the tree unchanged.
//
// # Related Packages
//
//   - github.com/manokara/bencedit/batch - headless multi-file runs
package edit
