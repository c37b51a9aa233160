// Package field implements arithmetic over the 128-bit STARK prime field
// p = 2^128 - 45*2^40 + 1 using holiman/uint256 for the modular reductions.
package field

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Modulus is the decimal form of p = 2^128 - 45*2^40 + 1
const Modulus = "340282366920938463463374557953744961537"

// Bytes is the size of the little-endian wire form of an element
const Bytes = 16

var (
	modulus = uint256.MustFromDecimal(Modulus)

	// Alpha is the S-box exponent
	Alpha = uint256.NewInt(3)

	// InvAlpha is 3^-1 mod (p-1), the inverse S-box exponent
	InvAlpha = uint256.MustFromDecimal("226854911280625642308916371969163307691")
)

// Element is an element of the field. The zero value is the additive identity.
type Element struct {
	v uint256.Int
}

// NewElement creates a new field element
func NewElement(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// Zero returns the zero element
func Zero() Element {
	return Element{}
}

// One returns the one element
func One() Element {
	var e Element
	e.SetOne()
	return e
}

// MustParse parses a decimal element and panics on malformed input.
// Intended for constant tables.
func MustParse(s string) Element {
	var e Element
	if _, err := e.SetString(s); err != nil {
		panic(err)
	}
	return e
}

// FromBytes creates element from bytes (little-endian)
func FromBytes(b []byte) Element {
	var e Element
	e.SetBytes(b)
	return e
}

// ToBytes converts element to bytes (little-endian)
func ToBytes(e Element) []byte {
	b := e.Bytes()
	return b[:]
}

// ToBigInt converts to big.Int
func ToBigInt(e Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// SetZero sets z to 0 and returns z
func (z *Element) SetZero() *Element {
	z.v.Clear()
	return z
}

// SetOne sets z to 1 and returns z
func (z *Element) SetOne() *Element {
	z.v.SetOne()
	return z
}

// SetUint64 sets z to v mod p and returns z
func (z *Element) SetUint64(v uint64) *Element {
	z.v.SetUint64(v)
	return z
}

// SetBytes interprets up to 16 bytes of b as a little-endian integer and
// reduces it modulo p. Missing high-order bytes are zero.
func (z *Element) SetBytes(b []byte) *Element {
	if len(b) > Bytes {
		panic(fmt.Sprintf("field: expected at most %d bytes but received %d", Bytes, len(b)))
	}
	var buf [Bytes]byte
	copy(buf[:], b)
	z.v = uint256.Int{
		binary.LittleEndian.Uint64(buf[0:8]),
		binary.LittleEndian.Uint64(buf[8:16]),
		0, 0,
	}
	if !z.v.Lt(modulus) {
		z.v.Sub(&z.v, modulus)
	}
	return z
}

// SetString parses a decimal integer. Values outside [0, p) are rejected.
func (z *Element) SetString(s string) (*Element, error) {
	var v uint256.Int
	if err := v.SetFromDecimal(s); err != nil {
		return nil, fmt.Errorf("field: parse %q: %w", s, err)
	}
	if !v.Lt(modulus) {
		return nil, fmt.Errorf("field: %s is not below the modulus", s)
	}
	z.v = v
	return z, nil
}

// Bytes returns the 16-byte little-endian encoding of z
func (z *Element) Bytes() [Bytes]byte {
	var b [Bytes]byte
	binary.LittleEndian.PutUint64(b[0:8], z.v[0])
	binary.LittleEndian.PutUint64(b[8:16], z.v[1])
	return b
}

// BigInt sets res to the value of z and returns res
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(z.v.ToBig())
}

// String returns the decimal representation of z
func (z Element) String() string {
	return z.v.Dec()
}

// Equal reports whether z == x
func (z *Element) Equal(x *Element) bool {
	return z.v.Eq(&x.v)
}

// IsZero reports whether z == 0
func (z *Element) IsZero() bool {
	return z.v.IsZero()
}

// Add sets z = x + y mod p and returns z
func (z *Element) Add(x, y *Element) *Element {
	z.v.AddMod(&x.v, &y.v, modulus)
	return z
}

// Sub sets z = x - y mod p and returns z
func (z *Element) Sub(x, y *Element) *Element {
	if x.v.Lt(&y.v) {
		var t uint256.Int
		t.Sub(modulus, &y.v)
		z.v.Add(&x.v, &t)
		return z
	}
	z.v.Sub(&x.v, &y.v)
	return z
}

// Neg sets z = -x mod p and returns z
func (z *Element) Neg(x *Element) *Element {
	if x.v.IsZero() {
		return z.SetZero()
	}
	z.v.Sub(modulus, &x.v)
	return z
}

// Mul sets z = x * y mod p and returns z
func (z *Element) Mul(x, y *Element) *Element {
	z.v.MulMod(&x.v, &y.v, modulus)
	return z
}

// Square sets z = x * x mod p and returns z
func (z *Element) Square(x *Element) *Element {
	z.v.MulMod(&x.v, &x.v, modulus)
	return z
}

// Exp sets z = x^e mod p and returns z. Any exponent width is accepted;
// the inverse S-box uses a ~128-bit exponent.
func (z *Element) Exp(x *Element, e *uint256.Int) *Element {
	words := *e
	base := *x
	var acc Element
	acc.SetOne()
	for i := 0; i < e.BitLen(); i++ {
		if (words[i/64]>>(uint(i)%64))&1 == 1 {
			acc.Mul(&acc, &base)
		}
		base.Square(&base)
	}
	*z = acc
	return z
}
