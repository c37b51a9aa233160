package permutation

// RescueRounds is the number of double rounds; each consumes 12 constants
const RescueRounds = 10

// Rescue hashes at most 64 bytes of input into the 32-byte output.
// It panics if input is too long or output is not exactly 32 bytes.
func Rescue(input, output []byte) {
	state := loadState(input, output)

	addConstants(&state, rescueConstants, 0)
	for i := 0; i < RescueRounds; i++ {
		applyInvSbox(&state)
		applyMDS(&state)
		addConstants(&state, rescueConstants, (i*2+1)*StateWidth)

		applySbox(&state)
		applyMDS(&state)
		addConstants(&state, rescueConstants, (i*2+2)*StateWidth)
	}

	storeDigest(&state, output)
}

// RescueSum returns the Rescue digest of input
func RescueSum(input []byte) [OutputSize]byte {
	return sum(Rescue, input)
}
