// Command mcs4 is a thin command-line host for the 4004 interpreter: it
// loads a ROM image from disk, constructs a CPU, runs it to completion or a
// step budget, and reports the outcome.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fourbit/mcs4/pkg/cpu"
)

var logger *zap.Logger

func main() {
	var err error
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel) // --trace logs at debug level
	logger, err = cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mcs4: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcs4",
		Short: "A 4004 instruction-accurate interpreter",
	}
	root.AddCommand(runCmd(), dumpCmd())
	return root
}

type runFlags struct {
	maxSteps int
	pace     time.Duration
	trace    bool
	testLine bool
}

func addRunFlags(c *cobra.Command, f *runFlags) {
	c.Flags().IntVar(&f.maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	c.Flags().DurationVar(&f.pace, "pace", 0, "delay between instructions, e.g. 10ms (0 = unpaced)")
	c.Flags().BoolVar(&f.trace, "trace", false, "log every fetched instruction at debug level")
	c.Flags().BoolVar(&f.testLine, "test-line", false, "drive the TEST input high before running")
}

func runCmd() *cobra.Command {
	f := &runFlags{}
	c := &cobra.Command{
		Use:   "run <romfile>",
		Short: "load a ROM image and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadAndRun(args[0], f)
			return err
		},
	}
	addRunFlags(c, f)
	return c
}

func dumpCmd() *cobra.Command {
	f := &runFlags{}
	c := &cobra.Command{
		Use:   "dump <romfile>",
		Short: "load a ROM image, run it, and pretty-print the final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadAndRun(args[0], f)
			if err != nil {
				return err
			}
			spew.Dump(c.Snapshot())
			return nil
		},
	}
	addRunFlags(c, f)
	return c
}

// loadAndRun reads the ROM file, constructs a CPU, and drives it to
// completion or the step budget, returning the CPU so dump can inspect its
// final Snapshot. Fatal interpreter errors and I/O failures are logged with
// structured fields before being returned.
func loadAndRun(path string, f *runFlags) (*cpu.CPU, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read rom image", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	c, err := cpu.New(image)
	if err != nil {
		logger.Error("failed to construct cpu", zap.Error(err))
		return nil, err
	}
	c.SetTestLine(f.testLine)

	if f.trace {
		return c, runTraced(c, f)
	}

	steps, err := c.RunPaced(context.Background(), f.maxSteps, f.pace)
	if err != nil {
		logger.Error("interpreter halted", zap.Int("steps", steps), zap.Error(err))
		return c, err
	}
	logger.Info("run complete", zap.Int("steps", steps))
	return c, nil
}

// runTraced steps one instruction at a time so each fetch can be logged,
// rather than delegating to RunPaced's opaque loop.
func runTraced(c *cpu.CPU, f *runFlags) error {
	steps := 0
	for f.maxSteps == 0 || steps < f.maxSteps {
		before := c.Snapshot()
		if err := c.Step(); err != nil {
			logger.Error("interpreter halted", zap.Int("steps", steps), zap.Error(err))
			return err
		}
		steps++
		logger.Debug("step",
			zap.Int("n", steps),
			zap.Uint16("pc_before", before.ProgramCounter),
			zap.Uint8("acc", c.Snapshot().Accumulator),
		)
		if f.pace > 0 {
			time.Sleep(f.pace)
		}
	}
	logger.Info("run complete", zap.Int("steps", steps))
	return nil
}
