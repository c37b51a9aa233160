// Package xof derives deterministic byte and field-element streams from a
// seed with SHAKE128. Tests and the CLI use it for reproducible inputs.
package xof

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/aerius-labs/stark-hash-go/field"
)

// Domain separator prepended to every seed
var domainSep = []byte{
	0x73, 0x74, 0x61, 0x72, 0x6b, 0x68, 0x61, 0x73,
	0x68, 0x2d, 0x78, 0x6f, 0x66, 0x00, 0x00, 0x01,
}

// Stream is a SHAKE128 output stream
type Stream struct {
	shake sha3.ShakeHash
}

// New creates a stream keyed by seed and a numeric label
func New(seed []byte, label uint64) *Stream {
	shake := sha3.NewShake128()
	shake.Write(domainSep)
	shake.Write(seed)

	labelBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(labelBytes, label)
	shake.Write(labelBytes)

	return &Stream{shake: shake}
}

// Bytes returns the next n bytes of the stream
func (s *Stream) Bytes(n int) []byte {
	out := make([]byte, n)
	s.shake.Read(out)
	return out
}

// Element returns the next field element. 24 bytes are drawn per element and
// reduced modulo p so the bias is below 2^-64.
func (s *Stream) Element() field.Element {
	const bytesPerFE = 24
	buf := s.Bytes(bytesPerFE)

	// hi*2^128 + lo, reduced as (hi * 2^128 mod p) + lo mod p
	lo := field.FromBytes(buf[:16])
	hi := field.FromBytes(buf[16:])
	var shift field.Element
	shift.SetUint64(45 << 40)
	shift.Sub(&shift, new(field.Element).SetOne()) // 2^128 mod p = 45*2^40 - 1
	var e field.Element
	e.Mul(&hi, &shift)
	e.Add(&e, &lo)
	return e
}

// Elements returns the next n field elements
func (s *Stream) Elements(n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		out[i] = s.Element()
	}
	return out
}
