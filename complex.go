package qbit

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Encoding tags which pair of numbers a Complex value stores.
type Encoding int

const (
	// Cartesian stores (re, im).
	Cartesian Encoding = iota
	// Polar stores (norm, arg) with norm ≥ 0 and arg in [0, 2π).
	Polar
)

func (e Encoding) String() string {
	switch e {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// ParseEncoding accepts the names produced by Encoding.String.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cartesian", "cart", "c":
		return Cartesian, nil
	case "polar", "p":
		return Polar, nil
	}

	return Polar, errors.Errorf("unknown encoding %q", name)
}

/*
Complex is a complex number in one of two encodings. The zero value is the
Cartesian origin.

Polar values are kept canonical at all times: every constructor and every
mutation folds a negative magnitude into the angle (+π), reduces the angle
into [0, 2π), and pins the angle of the origin to 0.

Arithmetic is only defined between values of the same encoding, anything
else returns ErrMismatchedRepresentation.
*/
type Complex[T Float] struct {
	enc Encoding
	a   T
	b   T
}

/*
New builds a value in the given encoding. Polar input is canonicalized,
Cartesian zeros are stored unsigned so the origin never reports an angle of ±π.
*/
func New[T Float](enc Encoding, a, b T) Complex[T] {
	c := Complex[T]{enc: enc, a: a, b: b}

	if enc == Polar {
		c.canonicalize()
		return c
	}

	c.a, c.b = unsign(c.a), unsign(c.b)

	return c
}

func NewCartesian[T Float](re, im T) Complex[T] {
	return New(Cartesian, re, im)
}

func NewPolar[T Float](norm, arg T) Complex[T] {
	return New(Polar, norm, arg)
}

// Unit returns e^(i·angle) in the requested encoding.
func Unit[T Float](enc Encoding, angle T) Complex[T] {
	return NewPolar(T(1), angle).As(enc)
}

// FromComplex128 lifts a builtin complex number into the given encoding.
func FromComplex128[T Float](enc Encoding, z complex128) Complex[T] {
	return NewCartesian(T(real(z)), T(imag(z))).As(enc)
}

func (c Complex[T]) Encoding() Encoding {
	return c.enc
}

// Parts returns the stored pair: (re, im) or (norm, arg).
func (c Complex[T]) Parts() (T, T) {
	return c.a, c.b
}

// Norm is the magnitude |c|.
func (c Complex[T]) Norm() T {
	if c.enc == Polar {
		return c.a
	}

	return T(math.Hypot(float64(c.a), float64(c.b)))
}

/*
Argument is the angular position of the value. Polar values return the stored
angle in [0, 2π). Cartesian values return atan2(im, re), which lies in
(-π, π]. The origin reports 0.
*/
func (c Complex[T]) Argument() T {
	if c.enc == Polar {
		return c.b
	}

	return T(math.Atan2(float64(c.b), float64(c.a)))
}

// Scale multiplies the value in place by the real factor k.
func (c *Complex[T]) Scale(k T) {
	if c.enc != Polar {
		c.a = unsign(c.a * k)
		c.b = unsign(c.b * k)
		return
	}

	c.a *= T(math.Abs(float64(k)))

	if k < 0 {
		c.b += T(math.Pi)
	}

	c.canonicalize()
}

/*
Normalize rescales the value to magnitude 1, keeping its angle. The origin
has no angle, so it normalizes to the unit value at angle 0.
*/
func (c *Complex[T]) Normalize() {
	n := c.Norm()

	if n == 0 {
		*c = Unit[T](c.enc, 0)
		return
	}

	if c.enc == Polar {
		c.a = 1
		return
	}

	c.a /= n
	c.b /= n
}

func (c Complex[T]) Add(rhs Complex[T]) (Complex[T], error) {
	if c.enc != rhs.enc {
		return Complex[T]{}, mismatch("add", c.enc, rhs.enc)
	}

	return c.combine(rhs, 1), nil
}

func (c Complex[T]) Sub(rhs Complex[T]) (Complex[T], error) {
	if c.enc != rhs.enc {
		return Complex[T]{}, mismatch("sub", c.enc, rhs.enc)
	}

	return c.combine(rhs, -1), nil
}

func (c Complex[T]) Mul(rhs Complex[T]) (Complex[T], error) {
	if c.enc != rhs.enc {
		return Complex[T]{}, mismatch("mul", c.enc, rhs.enc)
	}

	return c.mul(rhs), nil
}

// Conjugate returns the complex conjugate in the same encoding.
func (c Complex[T]) Conjugate() Complex[T] {
	if c.enc == Polar {
		return NewPolar(c.a, -c.b)
	}

	return NewCartesian(c.a, -c.b)
}

// As converts to the requested encoding, returning c unchanged if it already matches.
func (c Complex[T]) As(enc Encoding) Complex[T] {
	if enc == Polar {
		return c.ToPolar()
	}

	return c.ToCartesian()
}

func (c Complex[T]) ToCartesian() Complex[T] {
	if c.enc != Polar {
		return c
	}

	norm, arg := float64(c.a), float64(c.b)

	return Complex[T]{
		enc: Cartesian,
		a:   unsign(T(norm * math.Cos(arg))),
		b:   unsign(T(norm * math.Sin(arg))),
	}
}

func (c Complex[T]) ToPolar() Complex[T] {
	if c.enc == Polar {
		return c
	}

	return NewPolar(c.Norm(), c.Argument())
}

// Complex128 projects the value onto Go's builtin complex type.
func (c Complex[T]) Complex128() complex128 {
	cart := c.ToCartesian()
	return complex(float64(cart.a), float64(cart.b))
}

// ApproxEqual compares the Cartesian projections of both values componentwise.
func (c Complex[T]) ApproxEqual(o Complex[T], tol float64) bool {
	l, r := c.ToCartesian(), o.ToCartesian()
	return within(l.a, r.a, tol) && within(l.b, r.b, tol)
}

// String renders "a+bi" for Cartesian values and "a e^(bi)" for Polar ones.
func (c Complex[T]) String() string {
	if c.enc == Polar {
		return fmt.Sprintf("%v e^(%vi)", c.a, c.b)
	}

	return fmt.Sprintf("%v%+gi", c.a, c.b)
}

// combine adds sign·rhs to c. Polar has no native sum, so it goes through Cartesian.
func (c Complex[T]) combine(rhs Complex[T], sign T) Complex[T] {
	l, r := c.ToCartesian(), rhs.ToCartesian()
	return NewCartesian(l.a+sign*r.a, l.b+sign*r.b).As(c.enc)
}

func (c Complex[T]) mul(rhs Complex[T]) Complex[T] {
	if c.enc == Polar {
		return NewPolar(c.a*rhs.a, c.b+rhs.b)
	}

	return NewCartesian(c.a*rhs.a-c.b*rhs.b, c.a*rhs.b+c.b*rhs.a)
}

func (c *Complex[T]) canonicalize() {
	norm, arg := float64(c.a), float64(c.b)

	if norm < 0 {
		norm = -norm
		arg += math.Pi
	}

	arg = reduceAngle(arg)

	if norm == 0 {
		arg = 0
	}

	c.a, c.b = T(norm), T(arg)

	// Narrow types can round an angle just under 2π up to exactly 2π.
	if float64(c.b) >= Tau {
		c.b = 0
	}
}
