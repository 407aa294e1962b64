package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// MarshalBool encodes a boolean as a single byte: 0x01 for true, 0x00 for false.
func MarshalBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// MarshalUint8 encodes a uint8 as a single byte.
func MarshalUint8(v uint8) []byte {
	return []byte{v}
}

// MarshalUint16 encodes a uint16 as 2 bytes little-endian.
func MarshalUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// MarshalUint32 encodes a uint32 as 4 bytes little-endian.
func MarshalUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// MarshalUint64 encodes a uint64 as 8 bytes little-endian.
func MarshalUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// MarshalUint128 encodes v into 16 bytes little-endian. It fails with
// ErrOverflow if v does not fit in 128 bits.
func MarshalUint128(v *uint256.Int) ([]byte, error) {
	if v.BitLen() > 128 {
		return nil, ErrOverflow
	}
	return littleEndian(v, 16), nil
}

// MarshalUint256 encodes v into 32 bytes little-endian.
func MarshalUint256(v *uint256.Int) []byte {
	return littleEndian(v, 32)
}

// littleEndian returns the low size bytes of v, least significant first.
func littleEndian(v *uint256.Int, size int) []byte {
	// MarshalSSZ always yields 32 bytes and cannot fail.
	enc, _ := v.MarshalSSZ()
	return enc[:size]
}
