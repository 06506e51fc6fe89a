package qbit

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

const eps = 1e-9

func TestNewPolar(t *testing.T) {
	Convey("Given angles outside [0, 2π)", t, func() {
		Convey("They should be reduced at construction", func() {
			_, arg := NewPolar(1.0, 3*math.Pi).Parts()
			So(arg, ShouldAlmostEqual, math.Pi, eps)

			_, arg = NewPolar(1.0, -math.Pi/2).Parts()
			So(arg, ShouldAlmostEqual, 3*math.Pi/2, eps)
		})
	})

	Convey("Given a negative magnitude", t, func() {
		norm, arg := NewPolar(-2.0, 0).Parts()

		Convey("The sign should fold into the angle", func() {
			So(norm, ShouldEqual, 2)
			So(arg, ShouldAlmostEqual, math.Pi, eps)
		})
	})

	Convey("Given the origin with a non-zero angle", t, func() {
		_, arg := NewPolar(0.0, 1.5).Parts()

		Convey("The angle should be pinned to 0", func() {
			So(arg, ShouldEqual, 0)
		})
	})

	Convey("Given a float32 angle just below zero", t, func() {
		_, arg := NewPolar[float32](1, -1e-7).Parts()

		Convey("The stored angle should still be below 2π", func() {
			So(float64(arg), ShouldBeLessThan, Tau)
			So(float64(arg), ShouldBeGreaterThanOrEqualTo, 0)
		})
	})
}

func TestNormAndArgument(t *testing.T) {
	Convey("Given a Cartesian value", t, func() {
		c := NewCartesian(3.0, 4.0)

		Convey("Norm should be the hypotenuse", func() {
			So(c.Norm(), ShouldAlmostEqual, 5, eps)
		})

		Convey("Argument should be atan2(im, re)", func() {
			So(c.Argument(), ShouldAlmostEqual, math.Atan2(4, 3), eps)
			So(NewCartesian(0.0, -1.0).Argument(), ShouldAlmostEqual, -math.Pi/2, eps)
			So(NewCartesian(-1.0, 0.0).Argument(), ShouldAlmostEqual, math.Pi, eps)
		})
	})

	Convey("Given a Polar value", t, func() {
		c := NewPolar(2.0, 1.0)

		Convey("Norm and Argument should return the stored pair", func() {
			So(c.Norm(), ShouldEqual, 2)
			So(c.Argument(), ShouldEqual, 1)
		})
	})
}

func TestScale(t *testing.T) {
	Convey("Given a Polar value (2, π)", t, func() {
		c := NewPolar(2.0, math.Pi)

		Convey("Scaling by -1 should canonicalize to (2, 0)", func() {
			c.Scale(-1)
			norm, arg := c.Parts()
			So(norm, ShouldEqual, 2)
			So(arg, ShouldAlmostEqual, 0, eps)
		})

		Convey("Scaling by 0.5 should keep the angle", func() {
			c.Scale(0.5)
			norm, arg := c.Parts()
			So(norm, ShouldEqual, 1)
			So(arg, ShouldAlmostEqual, math.Pi, eps)
		})

		Convey("Scaling by 0 should land on the canonical origin", func() {
			c.Scale(0)
			norm, arg := c.Parts()
			So(norm, ShouldEqual, 0)
			So(arg, ShouldEqual, 0)
		})
	})

	Convey("Given a Cartesian value", t, func() {
		c := NewCartesian(1.0, -2.0)
		c.Scale(-3)

		Convey("Both components should be scaled", func() {
			re, im := c.Parts()
			So(re, ShouldEqual, -3)
			So(im, ShouldEqual, 6)
		})
	})

	Convey("Given the Cartesian origin scaled by a negative factor", t, func() {
		c := NewCartesian(0.0, 0.0)
		c.Scale(-1)

		Convey("It should stay the unsigned origin", func() {
			re, im := c.Parts()
			So(math.Signbit(re), ShouldBeFalse)
			So(math.Signbit(im), ShouldBeFalse)
			So(c.Argument(), ShouldEqual, 0)
			So(c.String(), ShouldEqual, "0+0i")
		})
	})

	Convey("Given signed zeros in any Cartesian constructor", t, func() {
		negZero := math.Copysign(0, -1)

		Convey("The origin should report an argument of 0", func() {
			So(NewCartesian(negZero, negZero).Argument(), ShouldEqual, 0)
			So(NewCartesian(negZero, negZero).ToPolar().Argument(), ShouldEqual, 0)
		})

		Convey("Negating i should keep an unsigned real part", func() {
			c := NewCartesian(0.0, 1.0)
			c.Scale(-1)
			re, _ := c.Parts()
			So(math.Signbit(re), ShouldBeFalse)
			So(c.String(), ShouldEqual, "0-1i")
		})
	})
}

func TestConversions(t *testing.T) {
	Convey("Given non-zero Cartesian values", t, func() {
		values := []Complex[float64]{
			NewCartesian(1.0, 0.0),
			NewCartesian(0.0, 1.0),
			NewCartesian(-1.0, 0.0),
			NewCartesian(0.3, -0.7),
			NewCartesian(-12.5, -0.001),
			NewCartesian(1e-6, 4e6),
		}

		Convey("Polar and back should be lossless within tolerance", func() {
			for _, c := range values {
				round := c.ToPolar().ToCartesian().ToPolar()
				So(round.Encoding(), ShouldEqual, Polar)
				So(round.ApproxEqual(c, 1e-6), ShouldBeTrue)

				re, im := round.ToCartesian().Parts()
				wantRe, wantIm := c.Parts()
				So(re, ShouldAlmostEqual, wantRe, 1e-6)
				So(im, ShouldAlmostEqual, wantIm, 1e-6)
			}
		})

		Convey("Polar angles should lie in [0, 2π)", func() {
			for _, c := range values {
				_, arg := c.ToPolar().Parts()
				So(arg, ShouldBeGreaterThanOrEqualTo, 0)
				So(arg, ShouldBeLessThan, Tau)
			}
		})
	})

	Convey("Given the origin", t, func() {
		p := NewCartesian(0.0, 0.0).ToPolar()

		Convey("The Polar angle should be 0", func() {
			norm, arg := p.Parts()
			So(norm, ShouldEqual, 0)
			So(arg, ShouldEqual, 0)
		})
	})

	Convey("Given a builtin complex128", t, func() {
		c := FromComplex128[float64](Polar, complex(0, 2))

		Convey("It should lift into the requested encoding", func() {
			So(c.Encoding(), ShouldEqual, Polar)
			So(c.Norm(), ShouldAlmostEqual, 2, eps)
			So(c.Argument(), ShouldAlmostEqual, math.Pi/2, eps)
			So(real(c.Complex128()), ShouldAlmostEqual, 0, eps)
			So(imag(c.Complex128()), ShouldAlmostEqual, 2, eps)
		})
	})
}

func TestArithmetic(t *testing.T) {
	Convey("Given two Cartesian values", t, func() {
		a := NewCartesian(1.0, 2.0)
		b := NewCartesian(3.0, 4.0)

		Convey("Add and Sub should be componentwise", func() {
			sum, err := a.Add(b)
			So(err, ShouldBeNil)
			So(sum.ApproxEqual(NewCartesian(4.0, 6.0), eps), ShouldBeTrue)

			diff, err := a.Sub(b)
			So(err, ShouldBeNil)
			So(diff.ApproxEqual(NewCartesian(-2.0, -2.0), eps), ShouldBeTrue)
		})

		Convey("Mul should be the complex product", func() {
			prod, err := a.Mul(b)
			So(err, ShouldBeNil)
			So(prod.ApproxEqual(NewCartesian(-5.0, 10.0), eps), ShouldBeTrue)
		})
	})

	Convey("Given two Polar values", t, func() {
		a := NewPolar(1.0, 0)
		b := NewPolar(1.0, math.Pi/2)

		Convey("Add should go through Cartesian and come back Polar", func() {
			sum, err := a.Add(b)
			So(err, ShouldBeNil)
			So(sum.Encoding(), ShouldEqual, Polar)
			So(sum.Norm(), ShouldAlmostEqual, math.Sqrt2, eps)
			So(sum.Argument(), ShouldAlmostEqual, math.Pi/4, eps)
		})

		Convey("Sub should stay canonical", func() {
			diff, err := a.Sub(b)
			So(err, ShouldBeNil)
			So(diff.Norm(), ShouldAlmostEqual, math.Sqrt2, eps)
			So(diff.Argument(), ShouldAlmostEqual, 7*math.Pi/4, eps)
		})

		Convey("Mul should multiply norms and add angles mod 2π", func() {
			prod, err := NewPolar(2.0, math.Pi/2).Mul(NewPolar(3.0, math.Pi/2))
			So(err, ShouldBeNil)
			So(prod.Norm(), ShouldAlmostEqual, 6, eps)
			So(prod.Argument(), ShouldAlmostEqual, math.Pi, eps)

			wrapped, err := NewPolar(1.0, 3*math.Pi/2).Mul(NewPolar(1.0, math.Pi))
			So(err, ShouldBeNil)
			So(wrapped.Argument(), ShouldAlmostEqual, math.Pi/2, eps)
		})

		Convey("Mul should agree with the Cartesian product", func() {
			x := NewPolar(1.5, 2.0)
			y := NewPolar(0.5, 5.5)

			polar, err := x.Mul(y)
			So(err, ShouldBeNil)

			cart, err := x.ToCartesian().Mul(y.ToCartesian())
			So(err, ShouldBeNil)
			So(polar.ApproxEqual(cart, eps), ShouldBeTrue)

			_, arg := polar.Parts()
			So(arg, ShouldBeGreaterThanOrEqualTo, 0)
			So(arg, ShouldBeLessThan, Tau)
		})
	})

	Convey("Given values in different encodings", t, func() {
		a := NewCartesian(1.0, 0.0)
		b := NewPolar(1.0, 0)

		Convey("Every operation should fail with a mismatch", func() {
			_, err := a.Add(b)
			So(errors.Is(err, ErrMismatchedRepresentation), ShouldBeTrue)

			_, err = a.Sub(b)
			So(errors.Is(err, ErrMismatchedRepresentation), ShouldBeTrue)

			_, err = b.Mul(a)
			So(errors.Is(err, ErrMismatchedRepresentation), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "mul polar with cartesian")
		})
	})
}

func TestNormalizeAndConjugate(t *testing.T) {
	Convey("Given a Cartesian value", t, func() {
		c := NewCartesian(3.0, 4.0)
		c.Normalize()

		Convey("Normalize should scale it to unit magnitude", func() {
			So(c.ApproxEqual(NewCartesian(0.6, 0.8), eps), ShouldBeTrue)
		})
	})

	Convey("Given a Polar value", t, func() {
		c := NewPolar(0.25, 2.0)
		c.Normalize()

		Convey("Normalize should keep its angle", func() {
			So(c.Norm(), ShouldEqual, 1)
			So(c.Argument(), ShouldEqual, 2)
		})
	})

	Convey("Given the origin in either encoding", t, func() {
		for _, enc := range []Encoding{Cartesian, Polar} {
			c := New(enc, 0.0, 0.0)
			c.Normalize()

			Convey("Normalize should produce the unit value at angle 0 ("+enc.String()+")", func() {
				So(c.Encoding(), ShouldEqual, enc)
				So(c.ApproxEqual(NewCartesian(1.0, 0.0), eps), ShouldBeTrue)
			})
		}
	})

	Convey("Given a value and its conjugate", t, func() {
		for _, c := range []Complex[float64]{NewCartesian(1.0, 2.0), NewPolar(2.0, 1.0)} {
			prod, err := c.Mul(c.Conjugate())

			Convey("Their product should be |c|² ("+c.Encoding().String()+")", func() {
				So(err, ShouldBeNil)
				So(prod.ApproxEqual(NewCartesian(c.Norm()*c.Norm(), 0), eps), ShouldBeTrue)
			})
		}
	})
}

func TestComplexString(t *testing.T) {
	Convey("Given Cartesian values", t, func() {
		Convey("They should render as a+bi with an explicit sign", func() {
			So(NewCartesian(1.0, 0.0).String(), ShouldEqual, "1+0i")
			So(NewCartesian(0.5, -0.5).String(), ShouldEqual, "0.5-0.5i")
			So(NewCartesian(-2.0, 3.0).String(), ShouldEqual, "-2+3i")
			So(NewCartesian(0.0, 1.0).String(), ShouldEqual, "0+1i")
			So(NewCartesian(float32(0.25), float32(2)).String(), ShouldEqual, "0.25+2i")
		})

		Convey("A negative zero imaginary part should render as +0", func() {
			So(NewCartesian(1.0, math.Copysign(0, -1)).String(), ShouldEqual, "1+0i")
		})
	})

	Convey("Given a Polar value", t, func() {
		Convey("It should render as a e^(bi)", func() {
			So(NewPolar(2.0, 1.0).String(), ShouldEqual, "2 e^(1i)")
		})
	})
}

func TestParseEncoding(t *testing.T) {
	Convey("Given encoding names", t, func() {
		Convey("Known names should parse", func() {
			enc, err := ParseEncoding("Cartesian")
			So(err, ShouldBeNil)
			So(enc, ShouldEqual, Cartesian)

			enc, err = ParseEncoding(" polar ")
			So(err, ShouldBeNil)
			So(enc, ShouldEqual, Polar)
		})

		Convey("Unknown names should fail", func() {
			_, err := ParseEncoding("spherical")
			So(err, ShouldNotBeNil)
		})
	})
}
