package qgate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/theapemachine/errnie"
)

// phaseProbes are the angles at which Verify samples the Phase gate.
var phaseProbes = []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2, -math.Pi / 3, 7.5}

// nonUnitary lists registered gates whose catalog matrix is not unitary.
var nonUnitary = map[string]bool{
	"sqnot": true,
}

/*
Verify checks every registered gate, plus Phase at a handful of angles, for
unitarity within the configured tolerance. Gates listed in nonUnitary are
skipped. It returns nil when all of them pass, otherwise one error per
failing gate joined together, each wrapping ErrNotUnitary. The gate
constructors never call it.
*/
func Verify(cfg *Config) error {
	return verify(cfg, catalogDense())
}

func verify(cfg *Config, matrices map[string]Dense) error {
	tol := cfg.tolerance()

	names := make([]string, 0, len(matrices))
	for name := range matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		ok := matrices[name].IsUnitary(tol)
		errnie.Info("Verify - gate %s, unitary %v, tolerance %g", name, ok, tol)

		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotUnitary, name))
		}
	}

	return errors.Join(errs...)
}

func catalogDense() map[string]Dense {
	out := make(map[string]Dense, len(singles)+len(doubles)+len(triples)+len(phaseProbes))

	for name, fn := range singles {
		if nonUnitary[name] {
			continue
		}
		out[name] = fn().Dense()
	}
	for name, fn := range doubles {
		out[name] = fn().Dense()
	}
	for name, fn := range triples {
		out[name] = fn().Dense()
	}
	for _, phi := range phaseProbes {
		out[fmt.Sprintf("phase(%g)", phi)] = Phase(phi).Dense()
	}

	return out
}
