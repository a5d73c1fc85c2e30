package main

import (
	"fmt"
	"os"
	"os/exec"

	"9fans.net/go/plan9"
	"9fans.net/go/plumb"
	"github.com/nicolagi/logbook"
)

// Editor opens the resolved log file for interactive editing. Implementations launch
// synchronously and surface the editor's failure as an error; there are no retries.
type Editor interface {
	Edit(pathname string) error
}

// execEditor runs a regular terminal editor attached to this process's tty and waits
// for it to exit.
type execEditor struct {
	command string
}

func (e execEditor) Edit(pathname string) error {
	cmd := exec.Command(e.command, pathname)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", e.command, err)
	}
	return nil
}

// plumbEditor posts the path to the plan9 plumber, so the file opens in acme or
// wherever the plumbing rules send it. Configure with editor: plumb.
type plumbEditor struct{}

func (plumbEditor) Edit(pathname string) error {
	fid, err := plumb.Open("send", plan9.OWRITE)
	if err != nil {
		return fmt.Errorf("plumber: %w", err)
	}
	defer fid.Close()
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("plumber: %w", err)
	}
	m := &plumb.Message{
		Src:  "logbook",
		Dst:  "edit",
		Dir:  wd,
		Type: "text",
		Data: []byte(pathname),
	}
	if err := m.Send(fid); err != nil {
		return fmt.Errorf("plumber: %w", err)
	}
	return nil
}

// newEditor picks the editor implementation: the configured editor (which the
// LOGBOOK_EDITOR environment variable overrides), then $VISUAL, then $EDITOR, then vi.
func newEditor(cfg *logbook.Config) Editor {
	command := cfg.Editor
	if command == "" {
		command = os.Getenv("VISUAL")
	}
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		command = "vi"
	}
	if command == "plumb" {
		return plumbEditor{}
	}
	return execEditor{command: command}
}
