// Package permutation implements the fixed-width algebraic hash functions
// Poseidon, Rescue and GMiMC over the 128-bit STARK field. Each maps at most
// 64 input bytes to a 32-byte digest through a 6-element state.
package permutation

import (
	"fmt"

	"github.com/aerius-labs/stark-hash-go/field"
	"github.com/aerius-labs/stark-hash-go/internal/mds"
)

const (
	// StateWidth is the number of field elements in the state
	StateWidth = 6

	// MaxInputSize is the largest accepted input (4 field elements)
	MaxInputSize = 64

	// OutputSize is the digest length (2 field elements)
	OutputSize = 32
)

// State is the permutation state
type State [StateWidth]field.Element

var (
	mdsMatrix mds.Matrix

	ark               []field.Element
	poseidonConstants []field.Element
	rescueConstants   []field.Element
	gmimcConstants    []field.Element
)

func init() {
	entries := make([]field.Element, len(mdsEntries))
	for i, s := range mdsEntries {
		entries[i] = field.MustParse(s)
	}
	mdsMatrix = mds.New(StateWidth, entries)

	ark = make([]field.Element, len(roundConstants))
	for i, s := range roundConstants {
		ark[i] = field.MustParse(s)
	}
	poseidonConstants = constantsView(PoseidonRounds * StateWidth)
	rescueConstants = constantsView((2*RescueRounds + 1) * StateWidth)
	gmimcConstants = constantsView(GMiMCRounds)
}

// constantsView returns the first n round constants, panicking at startup if
// a construction's round count would overrun the table.
func constantsView(n int) []field.Element {
	if n > len(ark) {
		panic(fmt.Sprintf("permutation: %d round constants required but table holds %d", n, len(ark)))
	}
	return ark[:n:n]
}

// loadState copies input into the low-order bytes of a zeroed state
func loadState(input, output []byte) State {
	if len(input) > MaxInputSize {
		panic(fmt.Sprintf("expected %d or fewer input bytes but received %d", MaxInputSize, len(input)))
	}
	if len(output) != OutputSize {
		panic(fmt.Sprintf("expected result to be exactly %d bytes but received %d", OutputSize, len(output)))
	}

	var buf [StateWidth * field.Bytes]byte
	copy(buf[:], input)

	var state State
	for i := range state {
		state[i].SetBytes(buf[i*field.Bytes : (i+1)*field.Bytes])
	}
	return state
}

// storeDigest writes the first two state elements to output
func storeDigest(state *State, output []byte) {
	for i := 0; i < OutputSize/field.Bytes; i++ {
		b := state[i].Bytes()
		copy(output[i*field.Bytes:], b[:])
	}
}

func addConstants(state *State, constants []field.Element, offset int) {
	for i := range state {
		state[i].Add(&state[i], &constants[offset+i])
	}
}

func applySbox(state *State) {
	for i := range state {
		state[i].Exp(&state[i], field.Alpha)
	}
}

func applyInvSbox(state *State) {
	for i := range state {
		state[i].Exp(&state[i], field.InvAlpha)
	}
}

func applyMDS(state *State) {
	mdsMatrix.Apply(state[:])
}

// sum runs fn over a fresh output buffer
func sum(fn func(input, output []byte), input []byte) [OutputSize]byte {
	var out [OutputSize]byte
	fn(input, out[:])
	return out
}
