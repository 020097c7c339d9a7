package qgate

/*
SingleGate is the 2x2 unitary of a single-qubit gate.
*/
type SingleGate [2][2]Complex

/*
DoubleGate is the 4x4 unitary of a two-qubit gate. Row and column k encode
the joint basis state of (qubit1, qubit2) with qubit1 as the high bit.
*/
type DoubleGate [4][4]Complex

/*
TripleGate is the 8x8 unitary of a three-qubit gate. Row and column k encode
the joint basis state of (qubit1, qubit2, qubit3), qubit1 highest and qubit3
lowest.
*/
type TripleGate [8][8]Complex

// Arity returns the number of qubits the gate acts on.
func (g SingleGate) Arity() int { return 1 }

// Arity returns the number of qubits the gate acts on.
func (g DoubleGate) Arity() int { return 2 }

// Arity returns the number of qubits the gate acts on.
func (g TripleGate) Arity() int { return 3 }

// Dense copies the gate into a Dense matrix.
func (g SingleGate) Dense() Dense {
	out := make(Dense, len(g))
	for r := range g {
		out[r] = append([]Complex(nil), g[r][:]...)
	}
	return out
}

// Dense copies the gate into a Dense matrix.
func (g DoubleGate) Dense() Dense {
	out := make(Dense, len(g))
	for r := range g {
		out[r] = append([]Complex(nil), g[r][:]...)
	}
	return out
}

// Dense copies the gate into a Dense matrix.
func (g TripleGate) Dense() Dense {
	out := make(Dense, len(g))
	for r := range g {
		out[r] = append([]Complex(nil), g[r][:]...)
	}
	return out
}

// Add sums two gate matrices entry by entry. The result is generally not
// unitary; it is how composite matrices are assembled from a real base and
// an imaginary correction.
func (g DoubleGate) Add(o DoubleGate) DoubleGate {
	for r := range g {
		for c := range g[r] {
			g[r][c] = g[r][c].Add(o[r][c])
		}
	}
	return g
}

// permutation returns the 8x8 identity with basis states a and b exchanged.
func permutation(a, b int) TripleGate {
	var m TripleGate
	for i := range m {
		m[i][i] = one
	}
	m[a][a], m[b][b] = zero, zero
	m[a][b], m[b][a] = one, one
	return m
}
