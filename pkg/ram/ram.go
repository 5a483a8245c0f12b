// Package ram models the 4002 data RAM: sixteen main characters and four
// status characters per register, four registers per physical chip, and
// one 4-bit output port per chip. All chips are fully backed by real
// storage (the alternative of stubbing unused chips to always-zero was
// rejected — one code path is harder to get subtly wrong than two).
package ram

import "fmt"

// NumChips is the number of physical RAM chips addressable once the
// command-control register's bank-select bits are folded into the chip
// index (see pkg/hardware). Eight command-control banks * four
// SRC-latch-selected chips per bank = 32.
const NumChips = 32

// NumRegisters is the register count per physical chip.
const NumRegisters = 4

// NumMainChars is the main-character count per register.
const NumMainChars = 16

// NumStatusChars is the status-character count per register.
const NumStatusChars = 4

// BoundsError reports an out-of-range RAM access.
type BoundsError struct {
	Op    string
	Index int
	Limit int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("ram: %s index %d exceeds bound %d", e.Op, e.Index, e.Limit)
}

type register struct {
	main   [NumMainChars]uint8
	status [NumStatusChars]uint8
}

type chip struct {
	registers [NumRegisters]register
	output    uint8
}

// RAM holds all physical RAM chips.
type RAM struct {
	chips [NumChips]chip
}

// New constructs a zeroed RAM bank.
func New() *RAM {
	return &RAM{}
}

func (r *RAM) resolve(chipIdx, registerIdx uint8) (*register, error) {
	if int(chipIdx) >= NumChips {
		return nil, &BoundsError{Op: "chip", Index: int(chipIdx), Limit: NumChips}
	}
	if int(registerIdx) >= NumRegisters {
		return nil, &BoundsError{Op: "register", Index: int(registerIdx), Limit: NumRegisters}
	}
	return &r.chips[chipIdx].registers[registerIdx], nil
}

// ReadChar returns the main character at (chip, register, character).
func (r *RAM) ReadChar(chipIdx, registerIdx, character uint8) (uint8, error) {
	reg, err := r.resolve(chipIdx, registerIdx)
	if err != nil {
		return 0, err
	}
	if int(character) >= NumMainChars {
		return 0, &BoundsError{Op: "char", Index: int(character), Limit: NumMainChars}
	}
	return reg.main[character], nil
}

// WriteChar stores value (masked to 4 bits) at (chip, register, character).
func (r *RAM) WriteChar(chipIdx, registerIdx, character, value uint8) error {
	reg, err := r.resolve(chipIdx, registerIdx)
	if err != nil {
		return err
	}
	if int(character) >= NumMainChars {
		return &BoundsError{Op: "char", Index: int(character), Limit: NumMainChars}
	}
	reg.main[character] = value & 0xF
	return nil
}

// ReadStatus returns the status character at (chip, register, status).
func (r *RAM) ReadStatus(chipIdx, registerIdx, status uint8) (uint8, error) {
	reg, err := r.resolve(chipIdx, registerIdx)
	if err != nil {
		return 0, err
	}
	if int(status) >= NumStatusChars {
		return 0, &BoundsError{Op: "status", Index: int(status), Limit: NumStatusChars}
	}
	return reg.status[status], nil
}

// WriteStatus stores value (masked to 4 bits) at (chip, register, status).
func (r *RAM) WriteStatus(chipIdx, registerIdx, status, value uint8) error {
	reg, err := r.resolve(chipIdx, registerIdx)
	if err != nil {
		return err
	}
	if int(status) >= NumStatusChars {
		return &BoundsError{Op: "status", Index: int(status), Limit: NumStatusChars}
	}
	reg.status[status] = value & 0xF
	return nil
}

// WriteOutput stores value (masked to 4 bits) on chip's output port.
func (r *RAM) WriteOutput(chipIdx, value uint8) error {
	if int(chipIdx) >= NumChips {
		return &BoundsError{Op: "output", Index: int(chipIdx), Limit: NumChips}
	}
	r.chips[chipIdx].output = value & 0xF
	return nil
}

// ReadOutput returns chip's output port value. Not exercised by any
// instruction; provided for snapshot/debug introspection.
func (r *RAM) ReadOutput(chipIdx uint8) (uint8, error) {
	if int(chipIdx) >= NumChips {
		return 0, &BoundsError{Op: "output", Index: int(chipIdx), Limit: NumChips}
	}
	return r.chips[chipIdx].output, nil
}
