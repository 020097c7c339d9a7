package qgate

import "math"

// Identity returns the single-qubit identity gate.
func Identity() SingleGate {
	return SingleGate{
		{one, zero},
		{zero, one},
	}
}

// PauliX returns the Pauli-X (NOT) gate.
func PauliX() SingleGate {
	return SingleGate{
		{zero, one},
		{one, zero},
	}
}

// PauliY returns the Pauli-Y gate.
func PauliY() SingleGate {
	return SingleGate{
		{zero, NewComplex(0, -1)},
		{NewComplex(0, 1), zero},
	}
}

// PauliZ returns the Pauli-Z gate.
func PauliZ() SingleGate {
	return SingleGate{
		{one, zero},
		{zero, NewComplex(-1, 0)},
	}
}

/*
Hadamard returns the Hadamard gate.

	H = 1/√2 * [1  1]
	           [1 -1]
*/
func Hadamard() SingleGate {
	s := 1 / math.Sqrt(2)
	return SingleGate{
		{NewComplex(s, 0), NewComplex(s, 0)},
		{NewComplex(s, 0), NewComplex(-s, 0)},
	}
}

/*
SQNOT returns the catalog's square-root-of-NOT matrix. Both rows are
(½+½i, ½-½i), so unlike every other catalog gate it is not unitary and
Verify leaves it out.
*/
func SQNOT() SingleGate {
	half := 0.5
	return SingleGate{
		{NewComplex(half, half), NewComplex(half, -half)},
		{NewComplex(half, half), NewComplex(half, -half)},
	}
}

/*
Phase returns the phase shift gate diag(1, e^{iφ}). Any real phi is
accepted; the gate is periodic in 2π.
*/
func Phase(phi float64) SingleGate {
	return SingleGate{
		{one, zero},
		{zero, NewComplex(math.Cos(phi), math.Sin(phi))},
	}
}
