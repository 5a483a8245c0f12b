// Package hardware is the CPU's single point of contact with ROM and RAM.
// It owns no programmer-visible state of its own: it resolves the
// chip/register/character tuples the CPU hands it (derived from the SRC
// latch and the command-control register) into calls on the ROM and RAM
// banks. The bank-selection arithmetic lives here and nowhere else.
package hardware

import (
	"github.com/fourbit/mcs4/pkg/ram"
	"github.com/fourbit/mcs4/pkg/rom"
)

// Hardware multiplexes CPU requests onto a ROM bank and a RAM bank.
type Hardware struct {
	ROM *rom.ROM
	RAM *ram.RAM
}

// New wires a fresh RAM bank to the given ROM image.
func New(image []uint8) (*Hardware, error) {
	r, err := rom.New(image)
	if err != nil {
		return nil, err
	}
	return &Hardware{ROM: r, RAM: ram.New()}, nil
}

// RAMChip combines the command-control register (3 bits, selects one of
// eight banks of four chips) with the SRC latch's top two bits (selects
// one of four chips within the bank) into the physical chip index used by
// the RAM bank. See SPEC_FULL.md §9 for why this reconciles the
// historical "ccr stored but unused" bug with the real hardware's
// bank-switching role.
func RAMChip(commandControl, latchHigh uint8) uint8 {
	return (commandControl << 2) | (latchHigh & 0b11)
}

// RAMRegister extracts the 2-bit register select from the SRC latch's
// low two bits (ram_address_register_0 & 0b0011).
func RAMRegister(ramAddressRegister0 uint8) uint8 {
	return ramAddressRegister0 & 0b11
}

// ReadChar reads a RAM main character.
func (h *Hardware) ReadChar(commandControl, ramAddressRegister0, character uint8) (uint8, error) {
	chipIdx := RAMChip(commandControl, ramAddressRegister0>>2)
	regIdx := RAMRegister(ramAddressRegister0)
	return h.RAM.ReadChar(chipIdx, regIdx, character)
}

// WriteChar writes a RAM main character.
func (h *Hardware) WriteChar(commandControl, ramAddressRegister0, character, value uint8) error {
	chipIdx := RAMChip(commandControl, ramAddressRegister0>>2)
	regIdx := RAMRegister(ramAddressRegister0)
	return h.RAM.WriteChar(chipIdx, regIdx, character, value)
}

// ReadStatus reads a RAM status character.
func (h *Hardware) ReadStatus(commandControl, ramAddressRegister0, status uint8) (uint8, error) {
	chipIdx := RAMChip(commandControl, ramAddressRegister0>>2)
	regIdx := RAMRegister(ramAddressRegister0)
	return h.RAM.ReadStatus(chipIdx, regIdx, status)
}

// WriteStatus writes a RAM status character.
func (h *Hardware) WriteStatus(commandControl, ramAddressRegister0, status, value uint8) error {
	chipIdx := RAMChip(commandControl, ramAddressRegister0>>2)
	regIdx := RAMRegister(ramAddressRegister0)
	return h.RAM.WriteStatus(chipIdx, regIdx, status, value)
}

// WriteOutput writes the RAM output port of the SRC-latched chip.
func (h *Hardware) WriteOutput(commandControl, ramAddressRegister0, value uint8) error {
	chipIdx := RAMChip(commandControl, ramAddressRegister0>>2)
	return h.RAM.WriteOutput(chipIdx, value)
}

// ReadWord reads a ROM program word.
func (h *Hardware) ReadWord(address uint16) (uint8, error) {
	return h.ROM.ReadWord(address)
}

// ReadPort reads the ROM I/O port of the chip named directly by the full
// SRC latch (all four bits, 0..15 — unlike RAM, ROM I/O is not
// bank-switched by the command-control register; see SPEC_FULL.md §9).
func (h *Hardware) ReadPort(ramAddressRegister0 uint8) (uint8, error) {
	return h.ROM.ReadPort(ramAddressRegister0)
}

// WritePort writes the ROM I/O port of the chip named by the full SRC
// latch.
func (h *Hardware) WritePort(ramAddressRegister0, value uint8) error {
	return h.ROM.WritePort(ramAddressRegister0, value)
}
