package ssz

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalBoolValues(t *testing.T) {
	tests := []struct {
		input []byte
		want  bool
		err   error
	}{
		{[]byte{0}, false, nil},
		{[]byte{1}, true, nil},
		{[]byte{2}, false, ErrInvalidBool},
		{[]byte{0xff}, false, ErrInvalidBool},
		{nil, false, ErrSize},
		{[]byte{}, false, ErrSize},
		{[]byte{0, 0}, false, ErrSize},
	}
	for _, tt := range tests {
		got, err := UnmarshalBool(tt.input)
		require.ErrorIsf(t, err, tt.err, "UnmarshalBool(%v)", tt.input)
		if err == nil {
			require.Equalf(t, tt.want, got, "UnmarshalBool(%v)", tt.input)
		}
	}
}

func TestUnmarshalFixedWidthSizes(t *testing.T) {
	_, err := UnmarshalUint8([]byte{1, 2})
	require.ErrorIs(t, err, ErrSize)
	_, err = UnmarshalUint16([]byte{1})
	require.ErrorIs(t, err, ErrSize)
	_, err = UnmarshalUint32([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrSize)
	_, err = UnmarshalUint64(make([]byte, 9))
	require.ErrorIs(t, err, ErrSize)
	_, err = UnmarshalUint128(make([]byte, 15))
	require.ErrorIs(t, err, ErrSize)
	_, err = UnmarshalUint256(make([]byte, 33))
	require.ErrorIs(t, err, ErrSize)
}

func TestUnmarshalRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 255} {
		got, err := UnmarshalUint8(MarshalUint8(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for _, v := range []uint16{0, 1, 0xff, 0xffff} {
		got, err := UnmarshalUint16(MarshalUint16(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for _, v := range []uint32{0, 1, 0xdeadbeef, 0xffffffff} {
		got, err := UnmarshalUint32(MarshalUint32(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for _, v := range []uint64{0, 1, 0xdeadbeefcafe, ^uint64(0)} {
		got, err := UnmarshalUint64(MarshalUint64(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestUnmarshalUint128LittleEndian(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x01
	data[15] = 0x80
	got, err := UnmarshalUint128(data)
	require.NoError(t, err)

	want := new(uint256.Int).Lsh(uint256.NewInt(1), 127)
	want.AddUint64(want, 1)
	require.True(t, want.Eq(got), "got %s, want %s", got.Dec(), want.Dec())
}

func TestUnmarshalUint256Max(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = 0xff
	}
	got, err := UnmarshalUint256(data)
	require.NoError(t, err)

	max := new(uint256.Int).SetAllOne()
	require.True(t, max.Eq(got))
}

func TestUnmarshalWideLittleEndianLayout(t *testing.T) {
	data := make([]byte, 32)
	data[0], data[1], data[31] = 0x01, 0x02, 0x80
	got, err := UnmarshalUint256(data)
	require.NoError(t, err)
	want := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	want.Add(want, uint256.NewInt(0x0201))
	require.True(t, want.Eq(got), "got %s", got.Hex())
	require.Equal(t, data, MarshalUint256(got))

	half := make([]byte, 16)
	half[0], half[15] = 0xff, 0x01
	got, err = UnmarshalUint128(half)
	require.NoError(t, err)
	want = new(uint256.Int).Lsh(uint256.NewInt(1), 120)
	want.Add(want, uint256.NewInt(0xff))
	require.True(t, want.Eq(got), "got %s", got.Hex())

	enc, err := MarshalUint128(got)
	require.NoError(t, err)
	require.Equal(t, half, enc)
}
