package qgate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownGate is returned when a name does not resolve to a catalog gate.
	ErrUnknownGate = errors.New("qgate: unknown gate")

	// ErrNotUnitary is returned by Verify for every gate that fails the check.
	ErrNotUnitary = errors.New("qgate: gate is not unitary")
)

/*
The registries map canonical names to constructors. Aliases resolve to a
canonical name first so that Names only lists every gate once. The maps are
filled at init and never written again, so concurrent lookups are safe.
*/
var (
	singles = map[string]func() SingleGate{
		"identity": Identity,
		"paulix":   PauliX,
		"pauliy":   PauliY,
		"pauliz":   PauliZ,
		"hadamard": Hadamard,
		"sqnot":    SQNOT,
	}

	doubles = map[string]func() DoubleGate{
		"cnot":   CNOT,
		"swap":   SWAP,
		"sqswap": SQSWAP,
	}

	triples = map[string]func() TripleGate{
		"toffoli": Toffoli,
		"cswap":   CSWAP,
	}

	aliases = map[string]string{
		"i":        "identity",
		"id":       "identity",
		"x":        "paulix",
		"not":      "paulix",
		"y":        "pauliy",
		"z":        "pauliz",
		"h":        "hadamard",
		"srnot":    "sqnot",
		"sx":       "sqnot",
		"cx":       "cnot",
		"sqrtswap": "sqswap",
		"ccnot":    "toffoli",
		"ccx":      "toffoli",
		"fredkin":  "cswap",
	}
)

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// LookupSingle resolves a single-qubit gate by name or alias.
func LookupSingle(name string) (SingleGate, error) {
	if fn, ok := singles[canonical(name)]; ok {
		return fn(), nil
	}
	return SingleGate{}, unknown(name, 1)
}

// LookupDouble resolves a two-qubit gate by name or alias.
func LookupDouble(name string) (DoubleGate, error) {
	if fn, ok := doubles[canonical(name)]; ok {
		return fn(), nil
	}
	return DoubleGate{}, unknown(name, 2)
}

// LookupTriple resolves a three-qubit gate by name or alias.
func LookupTriple(name string) (TripleGate, error) {
	if fn, ok := triples[canonical(name)]; ok {
		return fn(), nil
	}
	return TripleGate{}, unknown(name, 3)
}

func unknown(name string, arity int) error {
	return fmt.Errorf("%w: %q (arity %d)", ErrUnknownGate, name, arity)
}

// Names returns the sorted canonical names of every registered gate.
func Names() []string {
	names := make([]string, 0, len(singles)+len(doubles)+len(triples))
	for name := range singles {
		names = append(names, name)
	}
	for name := range doubles {
		names = append(names, name)
	}
	for name := range triples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
