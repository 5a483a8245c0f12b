package rom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewZeroFillsTail(t *testing.T) {
	r, err := New([]uint8{0xD5, 0xB3})
	require.NoError(t, err)

	w, err := r.ReadWord(0)
	require.NoError(t, err)
	require.Equal(t, uint8(0xD5), w)

	w, err = r.ReadWord(2)
	require.NoError(t, err)
	require.Equal(t, uint8(0), w)
}

func TestNewRejectsOversizedImage(t *testing.T) {
	_, err := New(make([]uint8, Size+1))
	require.Error(t, err)
	var be *BoundsError
	require.ErrorAs(t, err, &be)
}

func TestReadWordOutOfRange(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	_, err = r.ReadWord(Size)
	require.Error(t, err)
}

func TestPortLatchMasksToFourBits(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, r.WritePort(3, 0xFF))
	v, err := r.ReadPort(3)
	require.NoError(t, err)
	require.Equal(t, uint8(0xF), v)
}

func TestPortOutOfRange(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	_, err = r.ReadPort(NumChips)
	require.Error(t, err)
	err = r.WritePort(NumChips, 1)
	require.Error(t, err)
}
