package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// Each decoder takes exactly the encoded width of its type and rejects any
// other length with ErrSize. DecodeUint dispatches to them by type name for
// the ssz_generic harness.

// UnmarshalBool decodes a boolean from a single byte.
func UnmarshalBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, ErrSize
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// UnmarshalUint8 decodes a uint8 from a single byte.
func UnmarshalUint8(data []byte) (uint8, error) {
	if len(data) != 1 {
		return 0, ErrSize
	}
	return data[0], nil
}

// UnmarshalUint16 decodes a uint16 from 2 bytes little-endian.
func UnmarshalUint16(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint16(data), nil
}

// UnmarshalUint32 decodes a uint32 from 4 bytes little-endian.
func UnmarshalUint32(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint32(data), nil
}

// UnmarshalUint64 decodes a uint64 from 8 bytes little-endian.
func UnmarshalUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint64(data), nil
}

// UnmarshalUint128 decodes a 128-bit unsigned integer from 16 bytes
// little-endian.
func UnmarshalUint128(data []byte) (*uint256.Int, error) {
	if len(data) != 16 {
		return nil, ErrSize
	}
	var buf [32]byte
	copy(buf[:], data)
	return UnmarshalUint256(buf[:])
}

// UnmarshalUint256 decodes a 256-bit unsigned integer from 32 bytes
// little-endian.
func UnmarshalUint256(data []byte) (*uint256.Int, error) {
	if len(data) != 32 {
		return nil, ErrSize
	}
	v := new(uint256.Int)
	if err := v.UnmarshalSSZ(data); err != nil {
		return nil, err
	}
	return v, nil
}
