// Package sponge implements a Rescue sponge over the 128-bit STARK field with
// configurable width, rate, digest size, round count and constant cycle.
package sponge

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/aerius-labs/stark-hash-go/field"
	"github.com/aerius-labs/stark-hash-go/internal/mds"
)

// ErrInvalidParams is returned by New when a parameter set is inconsistent
var ErrInvalidParams = errors.New("sponge: invalid parameters")

// Params describes a Rescue sponge instance
type Params struct {
	Width       int
	Rate        int
	DigestSize  int
	Rounds      int
	CycleLength int

	// MDS and InvMDS are Width×Width row-major matrices with MDS·InvMDS = I
	MDS    []field.Element
	InvMDS []field.Element

	// ARK holds 2*Width rows of CycleLength constants. Rows [0, Width) are
	// added before the S-box, rows [Width, 2*Width) before the inverse S-box.
	ARK [][]field.Element
}

// Hasher evaluates the sponge. It is immutable and safe for concurrent use.
type Hasher struct {
	width       int
	rate        int
	digestSize  int
	rounds      int
	cycleLength int

	mds    mds.Matrix
	invMDS mds.Matrix
	ark    [][]field.Element
}

// New validates p and creates a Hasher
func New(p Params) (*Hasher, error) {
	switch {
	case p.Width <= 0:
		return nil, fmt.Errorf("%w: width %d", ErrInvalidParams, p.Width)
	case p.Rate <= 0 || p.Rate > p.Width:
		return nil, fmt.Errorf("%w: rate %d with width %d", ErrInvalidParams, p.Rate, p.Width)
	case p.DigestSize <= 0 || p.DigestSize > p.Rate:
		return nil, fmt.Errorf("%w: digest size %d with rate %d", ErrInvalidParams, p.DigestSize, p.Rate)
	case p.Rounds <= 0:
		return nil, fmt.Errorf("%w: %d rounds", ErrInvalidParams, p.Rounds)
	case p.CycleLength <= 0:
		return nil, fmt.Errorf("%w: cycle length %d", ErrInvalidParams, p.CycleLength)
	case len(p.MDS) != p.Width*p.Width:
		return nil, fmt.Errorf("%w: MDS has %d entries, want %d", ErrInvalidParams, len(p.MDS), p.Width*p.Width)
	case len(p.InvMDS) != p.Width*p.Width:
		return nil, fmt.Errorf("%w: inverse MDS has %d entries, want %d", ErrInvalidParams, len(p.InvMDS), p.Width*p.Width)
	case len(p.ARK) != 2*p.Width:
		return nil, fmt.Errorf("%w: %d constant rows, want %d", ErrInvalidParams, len(p.ARK), 2*p.Width)
	}

	ark := make([][]field.Element, len(p.ARK))
	for i, row := range p.ARK {
		if len(row) != p.CycleLength {
			return nil, fmt.Errorf("%w: constant row %d has %d entries, want %d", ErrInvalidParams, i, len(row), p.CycleLength)
		}
		ark[i] = slices.Clone(row)
	}

	h := &Hasher{
		width:       p.Width,
		rate:        p.Rate,
		digestSize:  p.DigestSize,
		rounds:      p.Rounds,
		cycleLength: p.CycleLength,
		mds:         mds.New(p.Width, p.MDS),
		invMDS:      mds.New(p.Width, p.InvMDS),
		ark:         ark,
	}
	if !h.mds.Mul(h.invMDS).IsIdentity() {
		return nil, fmt.Errorf("%w: inverse MDS is not the inverse of MDS", ErrInvalidParams)
	}
	return h, nil
}

var (
	defaultOnce   sync.Once
	defaultHasher *Hasher
)

// Default returns the 128-bit parameter set: width 6, rate 4, digest size 2,
// 10 rounds over a 16-step constant cycle.
func Default() *Hasher {
	defaultOnce.Do(func() {
		h, err := New(DefaultParams())
		if err != nil {
			panic(err)
		}
		defaultHasher = h
	})
	return defaultHasher
}

// DefaultParams returns a fresh copy of the default parameter set
func DefaultParams() Params {
	p := Params{
		Width:       6,
		Rate:        4,
		DigestSize:  2,
		Rounds:      10,
		CycleLength: 16,
		MDS:         parseAll(defaultMDS[:]),
		InvMDS:      parseAll(defaultInvMDS[:]),
		ARK:         make([][]field.Element, len(defaultARK)),
	}
	for i := range defaultARK {
		p.ARK[i] = parseAll(defaultARK[i][:])
	}
	return p
}

func parseAll(ss []string) []field.Element {
	out := make([]field.Element, len(ss))
	for i, s := range ss {
		out[i] = field.MustParse(s)
	}
	return out
}

// Digest hashes up to Rate elements with the default parameter set
func Digest(values []field.Element) []field.Element {
	return Default().Digest(values)
}

// Width returns the state width
func (h *Hasher) Width() int { return h.width }

// Rate returns the maximum number of absorbed elements
func (h *Hasher) Rate() int { return h.rate }

// DigestSize returns the number of output elements
func (h *Hasher) DigestSize() int { return h.digestSize }

// Rounds returns the number of rounds applied per digest
func (h *Hasher) Rounds() int { return h.rounds }

// CycleLength returns the period of the round constants
func (h *Hasher) CycleLength() int { return h.cycleLength }

// Digest hashes values into DigestSize elements. It panics if more than Rate
// values are supplied.
func (h *Hasher) Digest(values []field.Element) []field.Element {
	if len(values) > h.rate {
		panic(fmt.Sprintf("expected no more than %d, but received %d", h.rate, len(values)))
	}

	state := make([]field.Element, h.width)
	copy(state, values)
	slices.Reverse(state)

	for i := 0; i < h.rounds; i++ {
		h.ApplyRound(state, i)
	}

	slices.Reverse(state)
	return state[:h.digestSize:h.digestSize]
}

// ApplyRound applies round step to state: constants, S-box and MDS, then
// constants, inverse S-box and MDS.
func (h *Hasher) ApplyRound(state []field.Element, step int) {
	h.checkState(state)

	idx := step % h.cycleLength

	h.AddConstants(state, idx, 0)
	h.ApplySbox(state)
	h.ApplyMDS(state)

	h.AddConstants(state, idx, h.width)
	h.ApplyInvSbox(state)
	h.ApplyMDS(state)
}

// AddConstants adds column idx of constant rows [offset, offset+Width)
func (h *Hasher) AddConstants(state []field.Element, idx, offset int) {
	h.checkState(state)
	for i := range state {
		state[i].Add(&state[i], &h.ark[offset+i][idx])
	}
}

// ApplySbox raises every lane to Alpha
func (h *Hasher) ApplySbox(state []field.Element) {
	for i := range state {
		state[i].Exp(&state[i], field.Alpha)
	}
}

// ApplyInvSbox raises every lane to InvAlpha
func (h *Hasher) ApplyInvSbox(state []field.Element) {
	for i := range state {
		state[i].Exp(&state[i], field.InvAlpha)
	}
}

// ApplyMDS multiplies state by the MDS matrix
func (h *Hasher) ApplyMDS(state []field.Element) {
	h.mds.Apply(state)
}

// ApplyInvMDS multiplies state by the inverse MDS matrix. Digest never uses
// it; constraint systems running the permutation backwards do.
func (h *Hasher) ApplyInvMDS(state []field.Element) {
	h.invMDS.Apply(state)
}

// RoundConstants returns the 2*Width constants consumed by round step, first
// half-round first.
func (h *Hasher) RoundConstants(step int) []field.Element {
	idx := step % h.cycleLength
	out := make([]field.Element, 2*h.width)
	for i := range out {
		out[i] = h.ark[i][idx]
	}
	return out
}

func (h *Hasher) checkState(state []field.Element) {
	if len(state) != h.width {
		panic("state size mismatch")
	}
}
