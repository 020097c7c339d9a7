package qgate

// CNOT flips qubit2 when qubit1 is set: basis states 10 and 11 are exchanged.
func CNOT() DoubleGate {
	return DoubleGate{
		{one, zero, zero, zero},
		{zero, one, zero, zero},
		{zero, zero, zero, one},
		{zero, zero, one, zero},
	}
}

// SWAP exchanges the values of both qubits: basis states 01 and 10 are exchanged.
func SWAP() DoubleGate {
	return DoubleGate{
		{one, zero, zero, zero},
		{zero, zero, one, zero},
		{zero, one, zero, zero},
		{zero, zero, zero, one},
	}
}

/*
SQSWAP returns the square root of SWAP. It acts as the identity on 00 and 11
and mixes the 01/10 subspace:

	[1      0        0      0]
	[0  ½+½i     ½-½i      0]
	[0  ½-½i     ½+½i      0]
	[0      0        0      1]

The matrix is the real part plus an imaginary correction, so that
SQSWAP·SQSWAP = SWAP.
*/
func SQSWAP() DoubleGate {
	half := NewComplex(0.5, 0)
	i := NewComplex(0, 1)

	base := DoubleGate{
		{one, zero, zero, zero},
		{zero, half, half, zero},
		{zero, half, half, zero},
		{zero, zero, zero, one},
	}

	return base.Add(DoubleGate{
		{},
		{zero, i.Mul(half), i.Neg().Mul(half), zero},
		{zero, i.Neg().Mul(half), i.Mul(half), zero},
		{},
	})
}
