package cpu

import "fmt"

// DecodeError reports an (opr, opa) pair with no defined instruction. NOP is
// the only legal "do nothing" encoding; anything else outside the table is
// fatal.
type DecodeError struct {
	OPR            uint8
	OPA            uint8
	ProgramCounter uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: unrecognized instruction %x%x at pc %#03x", e.OPR, e.OPA, e.ProgramCounter)
}

// StackUnderflowError reports a BBL executed with an empty program-counter
// stack.
type StackUnderflowError struct{}

func (e *StackUnderflowError) Error() string {
	return "cpu: program counter stack underflow (BBL with no matching JMS)"
}

// BoundsError wraps a ROM/RAM bounds violation surfaced from the hardware
// facade, tagging it with the instruction that triggered it.
type BoundsError struct {
	Op  string
	Err error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cpu: %s: %v", e.Op, e.Err)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}
