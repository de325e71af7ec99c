package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oisee/synacorvm/pkg/grid"
	"github.com/oisee/synacorvm/pkg/ioshell"
	"github.com/oisee/synacorvm/pkg/isa"
	"github.com/oisee/synacorvm/pkg/magic"
	"github.com/oisee/synacorvm/pkg/trace"
	"github.com/oisee/synacorvm/pkg/vm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "synacorvm",
		Short: "Synacor-class virtual machine and operator shell",
	}

	var tracePath string
	var maxCycles int

	runCmd := &cobra.Command{
		Use:   "run IMAGE",
		Short: "Load and execute a program image interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], tracePath, maxCycles)
		},
	}
	runCmd.Flags().StringVar(&tracePath, "trace", "", "write a disassembly trace to this file")
	runCmd.Flags().IntVar(&maxCycles, "cycles", 0, "stop after this many instructions (0 = unbounded)")

	disasmCmd := &cobra.Command{
		Use:   "disasm IMAGE",
		Short: "Disassemble a program image from address 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return disasmImage(args[0])
		},
	}

	var magicWorkers int
	var magicVerbose bool
	findMagicCmd := &cobra.Command{
		Use:   "findmagic",
		Short: "Search for the register-7 value that satisfies the teleporter routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindMagic(magicWorkers, magicVerbose)
		},
	}
	findMagicCmd.Flags().IntVar(&magicWorkers, "workers", 0, "number of search workers (0 = NumCPU)")
	findMagicCmd.Flags().BoolVarP(&magicVerbose, "verbose", "v", false, "print periodic progress")

	solveGridCmd := &cobra.Command{
		Use:   "solvegrid",
		Short: "Find a path through the vault grid with accumulator 30",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolveGrid()
		},
	}

	rootCmd.AddCommand(runCmd, disasmCmd, findMagicCmd, solveGridCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImage(path string, tracePath string, maxCycles int) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("run: read %s: %w", path, err)
	}

	m, err := vm.New(image)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if tracePath != "" {
		t, err := trace.Open(tracePath)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		defer t.Close()
		m.Tracer = t
	}

	m.Stdout = os.Stdout
	channel := ioshell.New(os.Stdin, os.Stderr)
	m.Input = channel

	if err := m.Run(maxCycles); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func disasmImage(path string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("disasm: read %s: %w", path, err)
	}

	m, err := vm.New(image)
	if err != nil {
		return fmt.Errorf("disasm: %w", err)
	}

	for int(m.PC) < isa.MemSize {
		start := m.PC
		ins, err := m.Decode()
		if err != nil {
			return fmt.Errorf("disasm: at %#06x: %w", start, err)
		}
		fmt.Println(ins.Disassemble())
	}
	return nil
}

func runFindMagic(workers int, verbose bool) error {
	pool := magic.NewWorkerPool(workers)
	result := pool.Search(verbose)
	if !result.Found {
		fmt.Printf("no candidate in [1, 32767] satisfies the routine (%d checked)\n", result.Checked)
		return fmt.Errorf("findmagic: no candidate found")
	}
	fmt.Printf("register 7 = %d (%d candidates checked)\n", result.Value, result.Checked)
	return nil
}

func runSolveGrid() error {
	result := grid.Search()
	if !result.Found {
		return fmt.Errorf("solvegrid: no path reaches the vault with weight 30")
	}
	fmt.Printf("path: %v\n", result.Path)
	fmt.Printf("weight: %d\n", result.Weight)
	return nil
}
