package hasher

import (
	"fmt"
	"hash"
)

// digest adapts a Func to hash.Hash by buffering writes until Sum
type digest struct {
	info Info
	buf  []byte
}

// New returns a hash.Hash backed by the named function. Writing more than
// the function's MaxInput panics.
func New(name string) (hash.Hash, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewFromInfo(info), nil
}

// NewFromInfo returns a hash.Hash backed by info.Fn
func NewFromInfo(info Info) hash.Hash {
	return &digest{info: info}
}

func (d *digest) Write(p []byte) (int, error) {
	if d.info.MaxInput > 0 && len(d.buf)+len(p) > d.info.MaxInput {
		panic(fmt.Sprintf("%s: expected %d or fewer input bytes but received %d", d.info.Name, d.info.MaxInput, len(d.buf)+len(p)))
	}
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	sum := Sum(d.info.Fn, d.buf)
	return append(b, sum[:]...)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return OutputSize
}

func (d *digest) BlockSize() int {
	if d.info.MaxInput > 0 {
		return d.info.MaxInput
	}
	return 64
}
