package hasher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
	"github.com/stretchr/testify/require"

	"github.com/aerius-labs/stark-hash-go/backend"
	"github.com/aerius-labs/stark-hash-go/permutation"
)

func TestLookup(t *testing.T) {
	require.Equal(t, []string{"blake3", "gmimc", "poseidon", "rescue", "sha3"}, Names())

	info, err := Lookup("Rescue")
	require.NoError(t, err)
	require.Equal(t, "rescue", info.Name)
	require.True(t, info.Algebraic)
	require.Equal(t, permutation.MaxInputSize, info.MaxInput)

	info, err = Lookup("sha3")
	require.NoError(t, err)
	require.False(t, info.Algebraic)
	require.Zero(t, info.MaxInput)

	_, err = Lookup("md5")
	require.True(t, errors.Is(err, ErrUnknownHash))
}

// Registered functions are the package functions, not copies
func TestRegistryMatchesPackages(t *testing.T) {
	input := []byte("registry")
	direct := map[string]Func{
		"poseidon": permutation.Poseidon,
		"rescue":   permutation.Rescue,
		"gmimc":    permutation.GMiMC,
		"blake3":   backend.Blake3,
		"sha3":     backend.SHA3,
	}
	for name, fn := range direct {
		info, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, Sum(fn, input), Sum(info.Fn, input), name)
	}
}

func TestHashAdapter(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h, err := New(name)
			require.NoError(t, err)
			require.Equal(t, OutputSize, h.Size())

			h.Write([]byte("split "))
			h.Write([]byte("input"))
			prefix := []byte{0xff}
			got := h.Sum(prefix)

			info, _ := Lookup(name)
			want := Sum(info.Fn, []byte("split input"))
			require.Equal(t, append([]byte{0xff}, want[:]...), got)

			h.Reset()
			empty := Sum(info.Fn, nil)
			require.Equal(t, empty[:], h.Sum(nil))
		})
	}
}

func TestHashAdapterBound(t *testing.T) {
	h, err := New("poseidon")
	require.NoError(t, err)
	h.Write(make([]byte, permutation.MaxInputSize))
	require.Panics(t, func() { h.Write([]byte{1}) })

	h, err = New("blake3")
	require.NoError(t, err)
	require.NotPanics(t, func() { h.Write(make([]byte, 4096)) })
}

func TestBatch(t *testing.T) {
	inputs := make([][]byte, 100)
	for i := range inputs {
		inputs[i] = []byte(fmt.Sprintf("leaf-%03d", i))
	}

	for _, name := range []string{"rescue", "blake3"} {
		info, err := Lookup(name)
		require.NoError(t, err)

		got, err := Batch(context.Background(), info.Fn, inputs)
		require.NoError(t, err)
		require.Len(t, got, len(inputs))
		for i, in := range inputs {
			require.Equal(t, Sum(info.Fn, in), got[i])
		}
	}
}

func TestBatchContractViolation(t *testing.T) {
	inputs := [][]byte{{1}, make([]byte, permutation.MaxInputSize+1), {2}}
	_, err := Batch(context.Background(), permutation.GMiMC, inputs)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrContract))
	require.Contains(t, err.Error(), "input 1")
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Batch(ctx, backend.SHA3, [][]byte{{1}, {2}})
	require.True(t, errors.Is(err, context.Canceled))
}

// Any registered function can drive a Fiat-Shamir transcript
func TestTranscript(t *testing.T) {
	challenge := func(name string, binding []byte) []byte {
		h, err := New(name)
		require.NoError(t, err)
		fs := fiatshamir.NewTranscript(h, "alpha")
		require.NoError(t, fs.Bind("alpha", binding))
		c, err := fs.ComputeChallenge("alpha")
		require.NoError(t, err)
		return c
	}

	root := Sum(permutation.Rescue, []byte("commitment"))
	for _, name := range []string{"rescue", "sha3", "blake3"} {
		a := challenge(name, root[:])
		b := challenge(name, root[:])
		require.Len(t, a, OutputSize)
		require.True(t, bytes.Equal(a, b), name)

		other := root
		other[0] ^= 1
		require.False(t, bytes.Equal(a, challenge(name, other[:])), name)
	}
}
