package hardware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRAMChipCombinesCommandControlAndLatch(t *testing.T) {
	require.Equal(t, uint8(0), RAMChip(0, 0))
	require.Equal(t, uint8(0b00_11), RAMChip(0, 0b11))
	require.Equal(t, uint8(0b111_00), RAMChip(0b111, 0))
	require.Equal(t, uint8(0b111_11), RAMChip(0b111, 0b11))
}

func TestCharRoundTripThroughLatchedAddress(t *testing.T) {
	h, err := New(nil)
	require.NoError(t, err)

	// commandControl=2, ram_address_register_0 = chip bits 01, register bits 10
	ramAddr0 := uint8(0b01_10)
	require.NoError(t, h.WriteChar(2, ramAddr0, 5, 0x9))

	v, err := h.ReadChar(2, ramAddr0, 5)
	require.NoError(t, err)
	require.Equal(t, uint8(0x9), v)

	// A different command-control value must land in a different chip.
	v, err = h.ReadChar(3, ramAddr0, 5)
	require.NoError(t, err)
	require.Equal(t, uint8(0), v)
}

func TestROMPortUsesFullLatchNotBankSwitched(t *testing.T) {
	h, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, h.WritePort(0b1111, 0x3))
	v, err := h.ReadPort(0b1111)
	require.NoError(t, err)
	require.Equal(t, uint8(0x3), v)
}
