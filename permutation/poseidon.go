package permutation

import "github.com/aerius-labs/stark-hash-go/field"

const (
	// PoseidonRounds is the number of executed rounds
	PoseidonRounds = 91

	// PoseidonFullRounds is the number of rounds applying the S-box to every
	// lane, split evenly between the start and the end
	PoseidonFullRounds = 8
)

// Poseidon hashes at most 64 bytes of input into the 32-byte output.
// It panics if input is too long or output is not exactly 32 bytes.
func Poseidon(input, output []byte) {
	state := loadState(input, output)

	for i := 0; i < PoseidonRounds; i++ {
		addConstants(&state, poseidonConstants, i*StateWidth)

		if isFullRound(i) {
			applySbox(&state)
		} else {
			last := &state[StateWidth-1]
			last.Exp(last, field.Alpha)
		}

		applyMDS(&state)
	}

	storeDigest(&state, output)
}

// PoseidonSum returns the Poseidon digest of input
func PoseidonSum(input []byte) [OutputSize]byte {
	return sum(Poseidon, input)
}

func isFullRound(i int) bool {
	half := PoseidonFullRounds / 2
	return i < half || i >= PoseidonRounds-half
}
