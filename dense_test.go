package qgate

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDense(t *testing.T) {
	Convey("Given dense matrices", t, func() {
		Convey("IdentityDense should have ones on the diagonal only", func() {
			id := IdentityDense(3)
			So(id.Dim(), ShouldEqual, 3)
			for i := range id {
				for j := range id[i] {
					if i == j {
						So(id[i][j], ShouldResemble, one)
					} else {
						So(id[i][j], ShouldResemble, zero)
					}
				}
			}
		})

		Convey("Dagger should conjugate and transpose", func() {
			m := Dense{
				{NewComplex(1, 2), NewComplex(3, 4)},
				{NewComplex(5, 6), NewComplex(7, 8)},
			}
			So(m.Dagger(), ShouldResemble, Dense{
				{NewComplex(1, -2), NewComplex(5, -6)},
				{NewComplex(3, -4), NewComplex(7, -8)},
			})
			So(m.Dagger().Dagger(), ShouldResemble, m)
		})

		Convey("Mul should compute the matrix product", func() {
			y := PauliY().Dense()
			x := PauliX().Dense()
			z := PauliZ().Dense()
			// XY = iZ
			iz := Dense{
				{NewComplex(0, 1), zero},
				{zero, NewComplex(0, -1)},
			}
			So(x.Mul(y).EqualApprox(iz, tol), ShouldBeTrue)
			So(x.Mul(y).EqualApprox(z, tol), ShouldBeFalse)
		})

		Convey("Mul should panic on mismatched dimensions", func() {
			So(func() { IdentityDense(2).Mul(IdentityDense(4)) }, ShouldPanic)
		})

		Convey("Mul should report a ragged operand as a dimension mismatch", func() {
			ragged := Dense{{one, zero}, {one}}
			So(func() { ragged.Mul(IdentityDense(2)) }, ShouldPanicWith, "qgate: dimension mismatch")
			So(func() { IdentityDense(2).Mul(ragged) }, ShouldPanicWith, "qgate: dimension mismatch")
		})

		Convey("EqualApprox should reject different shapes", func() {
			So(IdentityDense(2).EqualApprox(IdentityDense(4), tol), ShouldBeFalse)
		})

		Convey("IsUnitary should detect a non-unitary matrix", func() {
			scaled := Dense{
				{NewComplex(2, 0), zero},
				{zero, one},
			}
			So(scaled.IsUnitary(tol), ShouldBeFalse)

			So(SQNOT().Dense().IsUnitary(tol), ShouldBeFalse)

			ragged := Dense{{one, zero}, {one}}
			So(ragged.IsUnitary(tol), ShouldBeFalse)
		})

		Convey("IsUnitary should agree with m times its adjoint", func() {
			for _, m := range []Dense{Hadamard().Dense(), SQSWAP().Dense(), CSWAP().Dense()} {
				So(m.IsUnitary(tol), ShouldBeTrue)
				So(m.Mul(m.Dagger()).EqualApprox(IdentityDense(m.Dim()), tol), ShouldBeTrue)
			}
		})
	})
}
