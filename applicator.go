package qgate

/*
SingleApplicator is implemented by a quantum state that can apply a 2x2
unitary to one of its qubits. Q is the state's own qubit reference type and
is passed through untouched.

Conceptually the state applies m ⊗ I over every other qubit, leaving the
rest of the register's entanglement structure consistent.
*/
type SingleApplicator[Q any] interface {
	ApplySingle(m SingleGate, qubit Q)
}

/*
DoubleApplicator applies a 4x4 unitary to the joint subspace of two qubits.
qubit1 maps to the high-order bit of the matrix index and qubit2 to the low
bit, matching the layout of DoubleGate.
*/
type DoubleApplicator[Q any] interface {
	ApplyDouble(m DoubleGate, qubit1, qubit2 Q)
}

/*
TripleApplicator applies an 8x8 unitary to three qubits, qubit1 on the
highest index bit and qubit3 on the lowest, matching the layout of
TripleGate.
*/
type TripleApplicator[Q any] interface {
	ApplyTriple(m TripleGate, qubit1, qubit2, qubit3 Q)
}

// Applicator is a state that accepts gates of every arity.
type Applicator[Q any] interface {
	SingleApplicator[Q]
	DoubleApplicator[Q]
	TripleApplicator[Q]
}
