// Package eftest runs the Ethereum Foundation ssz_generic test vectors
// against the ssz scalar codec.
//
// A vector names a scalar type, an expected textual value, a validity flag
// and a 0x-prefixed hex encoding. Valid vectors must decode to the expected
// value; invalid ones must be rejected by the decoder.
package eftest

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"

	"github.com/eth2030/merklepartial/ssz"
)

// Harness errors.
var (
	ErrMismatch        = errors.New("eftest: decoded value does not match expected value")
	ErrExpectedFailure = errors.New("eftest: invalid encoding decoded without error")
	ErrBadHex          = errors.New("eftest: malformed ssz hex")
)

// SSZGenericCase is one vector from an ssz_generic document.
type SSZGenericCase struct {
	Type     string   `yaml:"type"`
	TypeName string   `yaml:"type_name"`
	Valid    bool     `yaml:"valid"`
	Value    string   `yaml:"value"`
	SSZ      *string  `yaml:"ssz"`
	Tags     []string `yaml:"tags"`
}

// TypeTag returns the scalar type the case is written for. Older documents
// use the key type_name instead of type.
func (tc *SSZGenericCase) TypeTag() string {
	if tc.Type != "" {
		return tc.Type
	}
	return tc.TypeName
}

// SSZGenericDoc is a YAML ssz_generic test document.
type SSZGenericDoc struct {
	Title     string           `yaml:"title"`
	Summary   string           `yaml:"summary"`
	Runner    string           `yaml:"runner"`
	Handler   string           `yaml:"handler"`
	Forks     []string         `yaml:"forks"`
	TestCases []SSZGenericCase `yaml:"test_cases"`
}

// ParseSSZGeneric decodes a YAML ssz_generic document.
func ParseSSZGeneric(data []byte) (*SSZGenericDoc, error) {
	var doc SSZGenericDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ssz_generic document: %w", err)
	}
	return &doc, nil
}

// LoadSSZGeneric reads and decodes the document at path.
func LoadSSZGeneric(path string) (*SSZGenericDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseSSZGeneric(data)
}

// RunCase checks a single vector. Cases without an ssz field carry nothing
// to decode and pass trivially; RunDocument reports them as skipped.
func RunCase(tc *SSZGenericCase) error {
	if tc.SSZ == nil {
		return nil
	}
	typeName := tc.TypeTag()
	if _, err := ssz.ByteSize(typeName); err != nil {
		return err
	}

	data, err := hexutil.Decode(*tc.SSZ)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadHex, *tc.SSZ, err)
	}

	decoded, decodeErr := ssz.DecodeUint(typeName, data)
	if !tc.Valid {
		if decodeErr == nil {
			return fmt.Errorf("%w: %s %s decoded to %s", ErrExpectedFailure, typeName, *tc.SSZ, decoded.Dec())
		}
		return nil
	}

	expected, err := ssz.ParseUintValue(typeName, tc.Value)
	if err != nil {
		return fmt.Errorf("parse expected value: %w", err)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s: %w", typeName, *tc.SSZ, decodeErr)
	}
	if !decoded.Eq(expected) {
		return fmt.Errorf("%w: %s %s decoded to %s, want %s", ErrMismatch, typeName, *tc.SSZ, decoded.Dec(), expected.Dec())
	}
	return nil
}
