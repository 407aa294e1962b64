package overlay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type expression errors.
var (
	ErrUnknownType   = errors.New("overlay: unknown type")
	ErrMalformedType = errors.New("overlay: malformed type expression")
)

// ParseType builds the overlay described by expr. The grammar is
//
//	type := basic | "List" "[" type "," capacity "]"
//	basic := "bool" | "uint8" | "uint16" | "uint32" | "uint64" |
//	         "uint128" | "uint256" | "usize"
//
// with capacity a decimal integer. Whitespace between tokens is ignored.
func ParseType(expr string) (Overlay, error) {
	p := &typeParser{src: expr}
	o, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return o, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(expr string) Overlay {
	o, err := ParseType(expr)
	if err != nil {
		panic(err)
	}
	return o
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrMalformedType, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

// word consumes a run of letters and digits.
func (p *typeParser) word() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) parseType() (Overlay, error) {
	start := p.pos
	name := p.word()
	switch name {
	case "":
		return nil, p.errorf("expected type name")
	case "List":
		return p.parseList()
	}
	if o, ok := BasicType(name); ok {
		return o, nil
	}
	p.pos = start
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func (p *typeParser) parseList() (Overlay, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	digits := p.word()
	capacity, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, p.errorf("invalid capacity %q", digits)
	}
	if capacity > MaxListCapacity {
		return nil, p.errorf("capacity %d exceeds %d", capacity, uint64(MaxListCapacity))
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return NewList(elem, capacity), nil
}
