// Package cpu implements the Intel 4004 fetch/decode/execute loop: the
// accumulator, carry flag, index-register file, program-counter stack,
// RAM/ROM selection latches, and command-control register, plus the
// driver surface (Step/Run/Reset/Snapshot) a host uses to run it.
package cpu

import (
	"context"
	"time"

	"github.com/fourbit/mcs4/pkg/hardware"
)

// pcMask keeps the program counter within its 12-bit range.
const pcMask = 0x0FFF

// CPU is the 4004 interpreter. It owns all programmer-visible state and
// drives a Hardware facade for ROM/RAM access; Hardware never reaches back
// into CPU state.
type CPU struct {
	state
	hw *hardware.Hardware
}

// New constructs a CPU with the given ROM image loaded at address 0.
func New(romImage []uint8) (*CPU, error) {
	hw, err := hardware.New(romImage)
	if err != nil {
		return nil, &BoundsError{Op: "load rom", Err: err}
	}
	return &CPU{hw: hw}, nil
}

// Reset zeros all CPU state except ROM contents (RAM is also left
// untouched per SPEC_FULL.md: only the programmer-visible registers named
// in §3.1 are reset).
func (c *CPU) Reset() {
	c.state.reset()
}

// SetTestLine drives the external TEST input sampled by JCN (§9 resolves
// the original constant-false stub into a real, host-settable line).
func (c *CPU) SetTestLine(v bool) {
	c.testLine = v
}

// Snapshot returns an immutable copy of all programmer-visible state.
func (c *CPU) Snapshot() Snapshot {
	return c.state.snapshot()
}

// fetch reads the byte at the program counter and advances it by one word,
// wrapping modulo 4096.
func (c *CPU) fetch() (uint8, error) {
	word, err := c.hw.ReadWord(c.programCounter)
	if err != nil {
		return 0, &BoundsError{Op: "fetch", Err: err}
	}
	c.programCounter = (c.programCounter + 1) & pcMask
	return word, nil
}

// Step executes exactly one instruction: one fetch of the opcode byte
// (already counted as the "one word" every instruction consumes), any
// additional fetches a multi-word instruction needs, then the instruction's
// effect.
func (c *CPU) Step() error {
	pcAtFetch := c.programCounter
	word, err := c.fetch()
	if err != nil {
		return err
	}
	opr := (word >> 4) & 0xF
	opa := word & 0xF
	op := decode(opr, opa)
	if op == opInvalid {
		return &DecodeError{OPR: opr, OPA: opa, ProgramCounter: pcAtFetch}
	}
	return c.exec(op, opa)
}

// Run executes up to maxSteps instructions (0 means unbounded), stopping
// early if ctx is cancelled between instructions or a fatal error occurs.
// It returns the number of steps actually executed and the error that
// stopped it, or a nil error if the step budget was exhausted or ctx was
// cancelled (cancellation itself is not a fatal interpreter error).
func (c *CPU) Run(ctx context.Context, maxSteps int) (int, error) {
	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		select {
		case <-ctx.Done():
			return steps, nil
		default:
		}
		if err := c.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// RunPaced is Run with a fixed delay between instructions, matching the
// historical reference interpreter's 10ms pacing loop. A host CLI opts
// into this; the core's own Run never sleeps.
func (c *CPU) RunPaced(ctx context.Context, maxSteps int, pace time.Duration) (int, error) {
	if pace <= 0 {
		return c.Run(ctx, maxSteps)
	}
	steps := 0
	ticker := time.NewTicker(pace)
	defer ticker.Stop()
	for maxSteps == 0 || steps < maxSteps {
		select {
		case <-ctx.Done():
			return steps, nil
		case <-ticker.C:
		}
		if err := c.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}
