package ssz

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMarshalBoolValues(t *testing.T) {
	require.Equal(t, []byte{0}, MarshalBool(false))
	require.Equal(t, []byte{1}, MarshalBool(true))
}

func TestMarshalLittleEndian(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01}, MarshalUint16(0x0102))
	require.Equal(t, []byte{0xdd, 0xcc, 0xbb, 0xaa}, MarshalUint32(0xaabbccdd))
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde, 0, 0, 0, 0}, MarshalUint64(0xdeadbeef))
	require.Equal(t, make([]byte, 8), MarshalUint64(0))
}

func TestMarshalUint128(t *testing.T) {
	v := new(uint256.Int).Lsh(uint256.NewInt(1), 120)
	got, err := MarshalUint128(v)
	require.NoError(t, err)
	require.Len(t, got, 16)
	require.Equal(t, byte(1), got[15])

	back, err := UnmarshalUint128(got)
	require.NoError(t, err)
	require.True(t, v.Eq(back))

	_, err = MarshalUint128(new(uint256.Int).Lsh(uint256.NewInt(1), 128))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestMarshalUint256(t *testing.T) {
	v := uint256.MustFromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	got := MarshalUint256(v)
	require.Len(t, got, 32)
	for _, b := range got {
		require.Equal(t, byte(0xff), b)
	}

	v = uint256.NewInt(0x0102)
	got = MarshalUint256(v)
	require.Equal(t, byte(0x02), got[0])
	require.Equal(t, byte(0x01), got[1])

	back, err := UnmarshalUint256(got)
	require.NoError(t, err)
	require.True(t, v.Eq(back))
}
