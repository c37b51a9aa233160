package permutation

import "github.com/aerius-labs/stark-hash-go/field"

// GMiMCRounds is the number of Feistel rounds, one constant each
const GMiMCRounds = 166

// GMiMC hashes at most 64 bytes of input into the 32-byte output using the
// GMiMC_erf unbalanced Feistel network.
// It panics if input is too long or output is not exactly 32 bytes.
func GMiMC(input, output []byte) {
	state := loadState(input, output)

	var mask field.Element
	for i := 0; i < GMiMCRounds; i++ {
		s0 := state[0]
		mask.Add(&s0, &gmimcConstants[i])
		mask.Exp(&mask, field.Alpha)
		for j := 1; j < StateWidth; j++ {
			state[j-1].Add(&mask, &state[j])
		}
		state[StateWidth-1] = s0
	}

	storeDigest(&state, output)
}

// GMiMCSum returns the GMiMC digest of input
func GMiMCSum(input []byte) [OutputSize]byte {
	return sum(GMiMC, input)
}
