package ioshell

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/oisee/synacorvm/pkg/isa"
	"github.com/oisee/synacorvm/pkg/snapshot"
	"github.com/oisee/synacorvm/pkg/trace"
	"github.com/oisee/synacorvm/pkg/vm"
)

// dispatch runs one recognized meta-command. Malformed arguments are a
// MetaCommandError (spec §7): reported to stderr, never fatal — a typo
// in an operator command must not kill a guest session in progress
// (SPEC_FULL.md §5).
func (c *Channel) dispatch(m *vm.Machine, cmd string, args []string) {
	switch cmd {
	case "savestate":
		c.savestate(m, args)
	case "loadstate":
		c.loadstate(m, args)
	case "dumpregs":
		c.dumpregs(m)
	case "dumpreg":
		c.dumpreg(m, args)
	case "setreg":
		c.setreg(m, args)
	case "logfile":
		c.logfile(m, args)
	case "nolog":
		c.nolog(m)
	}
}

func (c *Channel) reportf(format string, a ...any) {
	fmt.Fprintf(c.errWriter(), format+"\n", a...)
}

func (c *Channel) errWriter() io.Writer {
	if c.stderr != nil {
		return c.stderr
	}
	return os.Stderr
}

func (c *Channel) savestate(m *vm.Machine, args []string) {
	if len(args) != 1 {
		c.reportf("savestate: expected a path argument")
		return
	}
	if err := snapshot.Save(m, args[0]); err != nil {
		c.reportf("savestate: %v", err)
		return
	}
	os.Exit(0)
}

func (c *Channel) loadstate(m *vm.Machine, args []string) {
	if len(args) != 1 {
		c.reportf("loadstate: expected a path argument")
		return
	}
	if err := snapshot.Load(m, args[0]); err != nil {
		c.reportf("loadstate: %v", err)
	}
}

func (c *Channel) dumpregs(m *vm.Machine) {
	for i := 0; i < isa.NumRegisters; i++ {
		fmt.Printf("Register %d = %#x\n", i, m.Reg[i])
	}
}

func (c *Channel) dumpreg(m *vm.Machine, args []string) {
	n, err := parseRegisterIndex(args)
	if err != nil {
		c.reportf("dumpreg: %v", err)
		return
	}
	fmt.Printf("Register %d = %#x\n", n, m.Reg[n])
}

func (c *Channel) setreg(m *vm.Machine, args []string) {
	if len(args) != 2 {
		c.reportf("setreg: expected register and value arguments")
		return
	}
	n, err := parseRegisterIndex(args[:1])
	if err != nil {
		c.reportf("setreg: %v", err)
		return
	}
	v, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		c.reportf("setreg: invalid value %q: %v", args[1], err)
		return
	}
	m.Reg[n] = uint16(v)
}

func (c *Channel) logfile(m *vm.Machine, args []string) {
	if len(args) != 1 {
		c.reportf("logfile: expected a path argument")
		return
	}
	t, err := trace.Open(args[0])
	if err != nil {
		c.reportf("logfile: %v", err)
		return
	}
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.tracer = t
	m.Tracer = t
}

func (c *Channel) nolog(m *vm.Machine) {
	if c.tracer != nil {
		c.tracer.Close()
		c.tracer = nil
	}
	m.Tracer = nil
}

func parseRegisterIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a register index")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid register index %q: %w", args[0], err)
	}
	if n < 0 || n >= isa.NumRegisters {
		return 0, fmt.Errorf("register index %d out of range", n)
	}
	return n, nil
}
