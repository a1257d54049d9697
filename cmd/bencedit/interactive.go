package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/manokara/bencedit/config"
	"github.com/manokara/bencedit/display"
	"github.com/manokara/bencedit/edit"
)

const prompt = "bencedit> "

// interactive runs the line loop over one session. Command errors
// print and return to the prompt; only IO failures end the loop.
func interactive(_ *MainConfig, ecfg *config.Config, cc *cli.Context, path string) error {
	s, err := edit.Open(path, ecfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Loading %s\n", path)
	if colorsOn(ecfg) {
		s.SetColors(display.NewColors())
	}

	in := bufio.NewScanner(cc.In)
	for {
		fmt.Fprint(cc.Out, prompt)
		if !in.Scan() {
			break
		}
		res, err := s.Exec(in.Text())
		if err == nil && res.NeedsConfirm != edit.PendingNone {
			res, err = confirm(s, res.NeedsConfirm, cc, in)
		}
		if err != nil {
			if !errors.Is(err, edit.ErrDeclined) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}
		if res.Output != "" {
			fmt.Fprintln(cc.Out, res.Output)
		}
		if res.Quit {
			break
		}
	}
	return in.Err()
}

// confirm blocks on the terminal for a pending reload/quit. The
// engine itself never does this; the answer goes back in via
// Session.Confirm.
func confirm(s *edit.Session, p edit.Pending, cc *cli.Context, in *bufio.Scanner) (*edit.Result, error) {
	fmt.Fprint(cc.Out, "You have unsaved changes. Discard them? [y/N] ")
	ok := false
	if in.Scan() {
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y", "yes":
			ok = true
		}
	}
	return s.Confirm(p, ok)
}
