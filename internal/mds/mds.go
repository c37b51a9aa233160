// Package mds implements the linear diffusion layer: square matrices over
// the field applied to a permutation state.
package mds

import (
	"fmt"

	"github.com/aerius-labs/stark-hash-go/field"
)

// stackWidth bounds the states that Apply mixes without allocating
const stackWidth = 16

// Matrix is an n×n row-major matrix of field elements
type Matrix struct {
	n       int
	entries []field.Element
}

// New creates an n×n matrix from row-major entries
func New(n int, entries []field.Element) Matrix {
	if n <= 0 || len(entries) != n*n {
		panic(fmt.Sprintf("mds: expected %d entries for a %dx%d matrix but received %d", n*n, n, n, len(entries)))
	}
	m := Matrix{n: n, entries: make([]field.Element, n*n)}
	copy(m.entries, entries)
	return m
}

// Identity returns the n×n identity matrix
func Identity(n int) Matrix {
	entries := make([]field.Element, n*n)
	for i := 0; i < n; i++ {
		entries[i*n+i].SetOne()
	}
	return New(n, entries)
}

// Size returns n
func (m Matrix) Size() int {
	return m.n
}

// At returns the entry in row i, column j
func (m Matrix) At(i, j int) field.Element {
	return m.entries[i*m.n+j]
}

// Apply sets state = M·state in place
func (m Matrix) Apply(state []field.Element) {
	if len(state) != m.n {
		panic("state size mismatch")
	}

	var buf [stackWidth]field.Element
	var result []field.Element
	if m.n <= stackWidth {
		result = buf[:m.n]
	} else {
		result = make([]field.Element, m.n)
	}

	var t field.Element
	for i := 0; i < m.n; i++ {
		row := m.entries[i*m.n : (i+1)*m.n]
		for j := range row {
			t.Mul(&row[j], &state[j])
			result[i].Add(&result[i], &t)
		}
	}
	copy(state, result)
}

// Mul returns M·o
func (m Matrix) Mul(o Matrix) Matrix {
	if m.n != o.n {
		panic("matrix size mismatch")
	}
	n := m.n
	entries := make([]field.Element, n*n)
	var t field.Element
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := &entries[i*n+j]
			for k := 0; k < n; k++ {
				t.Mul(&m.entries[i*n+k], &o.entries[k*n+j])
				acc.Add(acc, &t)
			}
		}
	}
	return Matrix{n: n, entries: entries}
}

// IsIdentity reports whether M is the identity matrix
func (m Matrix) IsIdentity() bool {
	one := field.One()
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			e := m.entries[i*m.n+j]
			if i == j && !e.Equal(&one) {
				return false
			}
			if i != j && !e.IsZero() {
				return false
			}
		}
	}
	return true
}
