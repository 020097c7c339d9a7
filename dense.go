package qgate

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

/*
Dense is a square complex matrix of arbitrary dimension. The gate types are
fixed-size arrays; Dense exists so that products, adjoints and unitarity
checks can be written once for every arity.
*/
type Dense [][]Complex

// IdentityDense returns the d x d identity matrix.
func IdentityDense(d int) Dense {
	out := newDense(d)
	for i := 0; i < d; i++ {
		out[i][i] = one
	}
	return out
}

func newDense(d int) Dense {
	out := make(Dense, d)
	for i := range out {
		out[i] = make([]Complex, d)
	}
	return out
}

// Dim returns the row count.
func (m Dense) Dim() int {
	return len(m)
}

// Mul returns the matrix product m·o. It panics if either operand is not
// square or the dimensions differ.
func (m Dense) Mul(o Dense) Dense {
	d := m.Dim()
	if o.Dim() != d || !m.square() || !o.square() {
		panic("qgate: dimension mismatch")
	}

	out := newDense(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			acc := zero
			for k := 0; k < d; k++ {
				acc = acc.Add(m[i][k].Mul(o[k][j]))
			}
			out[i][j] = acc
		}
	}
	return out
}

func (m Dense) square() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Dagger returns the conjugate transpose.
func (m Dense) Dagger() Dense {
	d := m.Dim()
	out := newDense(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out[j][i] = m[i][j].Conj()
		}
	}
	return out
}

// EqualApprox reports whether every entry of m lies within tol of the
// matching entry of o. Matrices of different shape are never equal.
func (m Dense) EqualApprox(o Dense, tol float64) bool {
	if m.Dim() != o.Dim() {
		return false
	}

	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if !cscalar.EqualWithinAbs(m[i][j].Complex128(), o[i][j].Complex128(), tol) {
				return false
			}
		}
	}
	return true
}

/*
IsUnitary reports whether m·m† is the identity within tol. Entry (i, j) of
m·m† is the inner product of row j with row i, so the rows must form an
orthonormal set.
*/
func (m Dense) IsUnitary(tol float64) bool {
	if !m.square() {
		return false
	}

	rows := m.rows128()
	for i, ri := range rows {
		for j, rj := range rows {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if !cscalar.EqualWithinAbs(cmplxs.Dot(rj, ri), want, tol) {
				return false
			}
		}
	}
	return true
}

func (m Dense) rows128() [][]complex128 {
	out := make([][]complex128, len(m))
	for i, row := range m {
		out[i] = make([]complex128, len(row))
		for j, v := range row {
			out[i][j] = v.Complex128()
		}
	}
	return out
}
