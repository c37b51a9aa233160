// Package backend wraps general-purpose hash functions in the same
// (input, output) call shape as the algebraic permutations so the two can be
// swapped behind one interface.
package backend

import (
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// OutputSize is the digest length of every backend
const OutputSize = 32

// SHA3 writes SHA3-256(input) to output
func SHA3(input, output []byte) {
	checkOutput(output)
	sum := sha3.Sum256(input)
	copy(output, sum[:])
}

// Blake3 writes the 256-bit BLAKE3 hash of input to output
func Blake3(input, output []byte) {
	checkOutput(output)
	sum := blake3.Sum256(input)
	copy(output, sum[:])
}

func checkOutput(output []byte) {
	if len(output) != OutputSize {
		panic(fmt.Sprintf("expected result to be exactly %d bytes but received %d", OutputSize, len(output)))
	}
}
