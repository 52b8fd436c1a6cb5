package poly

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Serialize encodes the polynomial's normalized form as a byte string the
// arena cache can store directly: a varint term count, then for each term
// a zigzag-varint x exponent, zigzag-varint y exponent, a sign byte (1 for
// negative), a varint magnitude byte length, and the coefficient's
// big-endian two's-complement-free magnitude.
//
// No third-party serialization library in the retrieved corpus models an
// arbitrary-precision sparse polynomial; this is a small bespoke format
// rather than an adaptation of anything in the pack — see DESIGN.md.
func (p *Polynomial) Serialize() []byte {
	n := p.Normalize().terms[0].p
	buf := make([]byte, 0, 16*len(n)+8)
	buf = appendUvarint(buf, uint64(len(n)))
	for m, c := range n {
		buf = appendVarint(buf, int64(m.x))
		buf = appendVarint(buf, int64(m.y))
		sign := byte(0)
		if c.Sign() < 0 {
			sign = 1
		}
		mag := new(big.Int).Abs(c).Bytes()
		buf = append(buf, sign)
		buf = appendUvarint(buf, uint64(len(mag)))
		buf = append(buf, mag...)
	}
	return buf
}

// Deserialize parses bytes produced by Serialize back into a Polynomial.
func Deserialize(data []byte) (*Polynomial, error) {
	r := &byteReader{buf: data}
	count, err := r.uvarint()
	if err != nil {
		return nil, fmt.Errorf("poly: deserialize term count: %w", err)
	}
	out := make(small, count)
	for i := uint64(0); i < count; i++ {
		x, err := r.varint()
		if err != nil {
			return nil, fmt.Errorf("poly: deserialize x exponent: %w", err)
		}
		y, err := r.varint()
		if err != nil {
			return nil, fmt.Errorf("poly: deserialize y exponent: %w", err)
		}
		sign, err := r.byteVal()
		if err != nil {
			return nil, fmt.Errorf("poly: deserialize sign: %w", err)
		}
		length, err := r.uvarint()
		if err != nil {
			return nil, fmt.Errorf("poly: deserialize coefficient length: %w", err)
		}
		mag, err := r.take(int(length))
		if err != nil {
			return nil, fmt.Errorf("poly: deserialize coefficient: %w", err)
		}
		c := new(big.Int).SetBytes(mag)
		if sign == 1 {
			c.Neg(c)
		}
		out[monomial{int(x), int(y)}] = c
	}
	return &Polynomial{terms: []term{{mono: monomial{0, 0}, p: out}}}, nil
}

func appendUvarint(buf []byte, v uint64) []byte {
	tmp := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(tmp, v)
	return append(buf, tmp[:n]...)
}

func appendVarint(buf []byte, v int64) []byte {
	tmp := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(tmp, v)
	return append(buf, tmp[:n]...)
}

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("truncated uvarint")
	}
	r.pos += n
	return v, nil
}

func (r *byteReader) varint() (int64, error) {
	v, n := binary.Varint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("truncated varint")
	}
	r.pos += n
	return v, nil
}

func (r *byteReader) byteVal() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, fmt.Errorf("truncated byte")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("truncated bytes")
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}
