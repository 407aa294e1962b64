// Package ssz implements the scalar half of Simple Serialize (SSZ), the
// serialization format used by the Ethereum consensus layer: booleans and
// little-endian unsigned integers from 8 to 256 bits. The merkle tree shape
// of composite types lives in the overlay package; this package only knows
// how the bytes of a single value are laid out.
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import "errors"

// Common errors.
var (
	ErrSize         = errors.New("ssz: invalid size")
	ErrInvalidBool  = errors.New("ssz: invalid boolean value")
	ErrOverflow     = errors.New("ssz: value exceeds type width")
	ErrInvalidValue = errors.New("ssz: invalid textual value")
	ErrUnknownType  = errors.New("ssz: unknown type")
)

// BytesPerChunk is the number of bytes in each leaf chunk for Merkleization.
const BytesPerChunk = 32
