// Package hasher exposes every 32-byte hash function in the module behind
// one call contract, looked up by name, so callers can swap the algebraic
// permutations for general-purpose backends.
package hasher

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aerius-labs/stark-hash-go/backend"
	"github.com/aerius-labs/stark-hash-go/permutation"
)

// OutputSize is the digest length shared by all registered functions
const OutputSize = 32

// ErrUnknownHash is returned when a name is not registered
var ErrUnknownHash = errors.New("hasher: unknown hash function")

// Func hashes input into a 32-byte output buffer. Implementations panic on
// contract violations (oversized input, wrong output length).
type Func func(input, output []byte)

// Info describes a registered hash function
type Info struct {
	Name string
	Fn   Func

	// MaxInput is the largest accepted input in bytes, or 0 if unbounded
	MaxInput int

	// Algebraic is set for functions expressible as field constraints
	Algebraic bool
}

var registry = map[string]Info{
	"poseidon": {Name: "poseidon", Fn: permutation.Poseidon, MaxInput: permutation.MaxInputSize, Algebraic: true},
	"rescue":   {Name: "rescue", Fn: permutation.Rescue, MaxInput: permutation.MaxInputSize, Algebraic: true},
	"gmimc":    {Name: "gmimc", Fn: permutation.GMiMC, MaxInput: permutation.MaxInputSize, Algebraic: true},
	"blake3":   {Name: "blake3", Fn: backend.Blake3},
	"sha3":     {Name: "sha3", Fn: backend.SHA3},
}

// Lookup returns the function registered under name (case-insensitive)
func Lookup(name string) (Info, error) {
	info, ok := registry[strings.ToLower(name)]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return info, nil
}

// Names returns the registered names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum hashes input with fn and returns the digest
func Sum(fn Func, input []byte) [OutputSize]byte {
	var out [OutputSize]byte
	fn(input, out[:])
	return out
}
