package qgate

import "fmt"

/*
Complex is a complex scalar stored as a pair of float64 components.
It is a plain value: every operation returns a new Complex and leaves
the receiver untouched. No normalization is ever applied, so NaN and
Inf propagate the way IEEE-754 arithmetic dictates.
*/
type Complex struct {
	Re float64
	Im float64
}

var (
	zero = Complex{}
	one  = Complex{Re: 1}
)

// NewComplex creates a complex scalar from its real and imaginary parts.
func NewComplex(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Neg returns the additive inverse.
func (c Complex) Neg() Complex {
	return Complex{Re: -c.Re, Im: -c.Im}
}

// Add returns the component-wise sum.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Mul returns the complex product.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

func (c Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", c.Re, c.Im)
}
