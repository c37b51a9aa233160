package backend

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// Standard test vectors
func TestVectors(t *testing.T) {
	vectors := []struct {
		name  string
		fn    func(input, output []byte)
		input string
		want  string
	}{
		{"sha3/empty", SHA3, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"sha3/abc", SHA3, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"blake3/empty", Blake3, "", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			out := make([]byte, OutputSize)
			v.fn([]byte(v.input), out)
			if want := mustHex(t, v.want); !bytes.Equal(out, want) {
				t.Fatalf("got %x, want %x", out, want)
			}
		})
	}
}

// Backends accept inputs longer than the algebraic 64-byte bound
func TestLongInput(t *testing.T) {
	input := bytes.Repeat([]byte{0x5a}, 1000)
	for _, fn := range []func(input, output []byte){SHA3, Blake3} {
		a := make([]byte, OutputSize)
		b := make([]byte, OutputSize)
		fn(input, a)
		fn(input[:999], b)
		if bytes.Equal(a, b) {
			t.Fatal("truncated input produced the same digest")
		}
	}
}

func TestOutputSizeEnforced(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		for _, fn := range []func(input, output []byte){SHA3, Blake3} {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("output of %d bytes accepted", n)
					}
				}()
				fn(nil, make([]byte, n))
			}()
		}
	}
}

func BenchmarkBlake3(b *testing.B) {
	input := make([]byte, 64)
	out := make([]byte, OutputSize)
	for i := 0; i < b.N; i++ {
		Blake3(input, out)
	}
}
