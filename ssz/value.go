package ssz

import (
	"fmt"

	"github.com/holiman/uint256"
)

// byteSizes maps the scalar type names used by SSZ test vectors to their
// encoded width in bytes.
var byteSizes = map[string]int{
	"bool":    1,
	"uint8":   1,
	"uint16":  2,
	"uint32":  4,
	"uint64":  8,
	"uint128": 16,
	"uint256": 32,
}

// ByteSize returns the encoded width of the named scalar type.
func ByteSize(typeName string) (int, error) {
	size, ok := byteSizes[typeName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	return size, nil
}

// DecodeUint decodes data as the named scalar type and widens the result to
// a 256-bit integer. Booleans decode to 0 or 1.
func DecodeUint(typeName string, data []byte) (*uint256.Int, error) {
	switch typeName {
	case "bool":
		v, err := UnmarshalBool(data)
		if err != nil {
			return nil, err
		}
		if v {
			return uint256.NewInt(1), nil
		}
		return uint256.NewInt(0), nil
	case "uint8":
		v, err := UnmarshalUint8(data)
		if err != nil {
			return nil, err
		}
		return uint256.NewInt(uint64(v)), nil
	case "uint16":
		v, err := UnmarshalUint16(data)
		if err != nil {
			return nil, err
		}
		return uint256.NewInt(uint64(v)), nil
	case "uint32":
		v, err := UnmarshalUint32(data)
		if err != nil {
			return nil, err
		}
		return uint256.NewInt(uint64(v)), nil
	case "uint64":
		v, err := UnmarshalUint64(data)
		if err != nil {
			return nil, err
		}
		return uint256.NewInt(v), nil
	case "uint128":
		return UnmarshalUint128(data)
	case "uint256":
		return UnmarshalUint256(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
}

// EncodeUint is the inverse of DecodeUint.
func EncodeUint(typeName string, v *uint256.Int) ([]byte, error) {
	size, err := ByteSize(typeName)
	if err != nil {
		return nil, err
	}
	limit := size * 8
	if typeName == "bool" {
		limit = 1
	}
	if v.BitLen() > limit {
		return nil, fmt.Errorf("%w: %s does not fit %s", ErrOverflow, v.Dec(), typeName)
	}
	return littleEndian(v, size), nil
}

// ParseUintValue parses the textual literal of a value of the named type.
// Integers are written in decimal; booleans as "true" or "false".
func ParseUintValue(typeName, text string) (*uint256.Int, error) {
	size, err := ByteSize(typeName)
	if err != nil {
		return nil, err
	}
	if typeName == "bool" {
		switch text {
		case "true":
			return uint256.NewInt(1), nil
		case "false":
			return uint256.NewInt(0), nil
		default:
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, text)
		}
	}
	if !isDecimal(text) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidValue, text)
	}
	v, err := uint256.FromDecimal(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOverflow, text, err)
	}
	if v.BitLen() > size*8 {
		return nil, fmt.Errorf("%w: %q does not fit %s", ErrOverflow, text, typeName)
	}
	return v, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
