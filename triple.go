package qgate

// Toffoli flips qubit3 iff qubit1 and qubit2 are both set (110 <-> 111).
func Toffoli() TripleGate {
	return permutation(6, 7)
}

// CCNOT is another name for Toffoli.
func CCNOT() TripleGate {
	return Toffoli()
}

// CSWAP swaps qubit2 and qubit3 iff qubit1 is set (101 <-> 110).
func CSWAP() TripleGate {
	return permutation(5, 6)
}

// Fredkin is another name for CSWAP.
func Fredkin() TripleGate {
	return CSWAP()
}
