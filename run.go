package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Run executes the tool for a full argument vector (program name first), writing to w.
// It never fails the process: errors are logged and the exit status stays 0.
func Run(args []string, w io.Writer) {
	app := newApp(w)
	if err := app.Run(positional(args)); err != nil {
		logrus.Errorf("run %s error: %v", app.Name, err)
	}
}

// positional puts a "--" after the program name so that tokens such as "-1" reach the action
// as arguments instead of being parsed as flags.
func positional(args []string) []string {
	if len(args) == 0 {
		return []string{"pseudorandom", "--"}
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], "--")
	return append(out, args[1:]...)
}
