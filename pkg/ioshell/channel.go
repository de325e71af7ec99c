// Package ioshell implements the host side of the VM's I/O protocol
// (spec §4.4): a line-buffered reader that intercepts operator
// meta-commands before they reach the guest's input queue. It
// implements vm.InputSource, so package vm never imports it.
package ioshell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oisee/synacorvm/pkg/trace"
	"github.com/oisee/synacorvm/pkg/vm"
)

// Channel reads lines from a host reader and classifies each one as
// either a meta-command (executed here) or guest input (appended to
// the Machine's pending stdin queue).
type Channel struct {
	r      *bufio.Reader
	stderr io.Writer
	tracer *trace.Tracer
}

// New wraps r (typically os.Stdin) as a Channel. Diagnostics about
// malformed meta-commands are written to stderr.
func New(r io.Reader, stderr io.Writer) *Channel {
	return &Channel{r: bufio.NewReader(r), stderr: stderr}
}

// Refill implements vm.InputSource. It reads exactly one line; if the
// line is a recognized meta-command it runs immediately and Refill
// returns suspended=true (spec §4.4: "meta-commands occupy an entire
// line; mixing is not supported"). Otherwise the line — carriage
// returns stripped, trailing newline preserved — is appended to
// m.Stdin and Refill returns suspended=false.
func (c *Channel) Refill(m *vm.Machine) (suspended bool, err error) {
	line, err := c.r.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("ioshell: read stdin: %w", err)
	}

	if cmd, args, ok := parseMeta(line); ok {
		c.dispatch(m, cmd, args)
		return true, nil
	}

	m.Stdin = append(m.Stdin, stripCR(line)...)
	return false, nil
}

// stripCR removes carriage returns while preserving the trailing
// newline, per spec §4.4.
func stripCR(line string) []byte {
	out := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		if line[i] != '\r' {
			out = append(out, line[i])
		}
	}
	return out
}

// parseMeta recognizes a full meta-command line by its leading token.
// A line is only ever a meta-command or guest input, never both.
func parseMeta(line string) (cmd string, args []string, ok bool) {
	trimmed := strings.TrimRight(line, "\r\n")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", nil, false
	}
	switch fields[0] {
	case "savestate", "loadstate", "dumpregs", "dumpreg", "setreg", "logfile", "nolog":
		return fields[0], fields[1:], true
	default:
		return "", nil, false
	}
}
