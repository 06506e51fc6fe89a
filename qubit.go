package qbit

import (
	"fmt"
	"math"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// dumper bypasses String so a dump shows the stored fields, not the |φ⟩ form.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

/*
Qubit is a two-level quantum state: the amplitude alpha of |0⟩ and beta of
|1⟩. Both amplitudes always share one encoding and |α|²+|β|² = 1 within
floating tolerance.

Qubit is a plain value. Gates mutate their receiver in place, so concurrent
callers should each work on their own copy.
*/
type Qubit[T Float] struct {
	alpha Complex[T] // |0⟩ amplitude
	beta  Complex[T] // |1⟩ amplitude
}

/*
NewQubit builds a qubit from explicit amplitudes. It rejects mixed encodings
and amplitudes whose squared magnitudes do not sum to 1 within tol.
*/
func NewQubit[T Float](alpha, beta Complex[T], tol float64) (Qubit[T], error) {
	if alpha.enc != beta.enc {
		return Qubit[T]{}, mismatch("pair", alpha.enc, beta.enc)
	}

	q := Qubit[T]{alpha: alpha, beta: beta}

	if sum := q.Measure().Sum(); !within(sum, 1, tol) {
		return Qubit[T]{}, errors.Wrapf(ErrNotNormalized, "|α|²+|β|² = %v", sum)
	}

	return q, nil
}

/*
Init draws a random normalized qubit. The probability mass of |0⟩ is uniform
on [0, 1) and each amplitude gets an independent uniform phase. The amplitudes
are built in Polar form and then converted to enc.
*/
func Init[T Float](rng RandomSource, enc Encoding) Qubit[T] {
	p0 := rng.Uniform(0, 1)
	theta0 := rng.Uniform(0, Tau)
	theta1 := rng.Uniform(0, Tau)

	return Qubit[T]{
		alpha: NewPolar(T(math.Sqrt(p0)), T(theta0)).As(enc),
		beta:  NewPolar(T(math.Sqrt(1-p0)), T(theta1)).As(enc),
	}
}

// Init0 is the basis state |0⟩.
func Init0[T Float](enc Encoding) Qubit[T] {
	return Qubit[T]{alpha: New[T](enc, 1, 0), beta: New[T](enc, 0, 0)}
}

// Init1 is the basis state |1⟩.
func Init1[T Float](enc Encoding) Qubit[T] {
	return Qubit[T]{alpha: New[T](enc, 0, 0), beta: New[T](enc, 1, 0)}
}

func (q Qubit[T]) Alpha() Complex[T] {
	return q.alpha
}

func (q Qubit[T]) Beta() Complex[T] {
	return q.beta
}

func (q Qubit[T]) Encoding() Encoding {
	return q.alpha.enc
}

// As returns a copy of the qubit with both amplitudes in enc.
func (q Qubit[T]) As(enc Encoding) Qubit[T] {
	return Qubit[T]{alpha: q.alpha.As(enc), beta: q.beta.As(enc)}
}

func (q Qubit[T]) ToCartesian() Qubit[T] {
	return q.As(Cartesian)
}

func (q Qubit[T]) ToPolar() Qubit[T] {
	return q.As(Polar)
}

// Measure returns (|α|², |β|²) without touching the state.
func (q Qubit[T]) Measure() Probabilities[T] {
	n0, n1 := q.alpha.Norm(), q.beta.Norm()
	return Probabilities[T]{P0: n0 * n0, P1: n1 * n1}
}

/*
Collapse projects the qubit onto a basis state with Born-rule weights and
returns the result as a new qubit in the receiver's encoding. The receiver is
left as it was.

One draw d from [0, 1) decides: d < P0 gives |0⟩, d > P0 gives |1⟩. A draw
landing exactly on P0 has probability zero, and is settled by a fair coin,
except when P0 is 0 and |0⟩ is impossible.
*/
func (q Qubit[T]) Collapse(rng RandomSource) Qubit[T] {
	enc := q.Encoding()
	p0 := float64(q.Measure().P0)
	d := rng.Uniform(0, 1)

	switch {
	case d < p0:
		return Init0[T](enc)
	case d > p0, p0 == 0:
		return Init1[T](enc)
	}

	if rng.Uniform(0, 1) < 0.5 {
		return Init0[T](enc)
	}

	return Init1[T](enc)
}

// Basis reports which basis state the qubit is in, if it is exactly one.
func (q Qubit[T]) Basis() (Basis, bool) {
	n0, n1 := q.alpha.Norm(), q.beta.Norm()

	switch {
	case n0 == 1 && n1 == 0:
		return Zero, true
	case n0 == 0 && n1 == 1:
		return One, true
	}

	return Zero, false
}

/*
Hadamard maps α, β to (α+β)/√2, (α−β)/√2. The linear combination is done in
Cartesian form and the result converted back to the stored encoding.
*/
func (q *Qubit[T]) Hadamard() {
	enc := q.Encoding()
	a, b := q.alpha.ToCartesian(), q.beta.ToCartesian()

	sum, diff := a.combine(b, 1), a.combine(b, -1)
	sum.Scale(T(1 / math.Sqrt2))
	diff.Scale(T(1 / math.Sqrt2))

	q.alpha, q.beta = sum.As(enc), diff.As(enc)
}

// PX is the bit flip, it swaps the amplitudes.
func (q *Qubit[T]) PX() {
	q.alpha, q.beta = q.beta, q.alpha
}

// PY maps α, β to −i·β, i·α.
func (q *Qubit[T]) PY() {
	a, b := q.alpha, q.beta

	if q.Encoding() == Polar {
		q.alpha = b.mul(Unit[T](Polar, T(3*math.Pi/2)))
		q.beta = a.mul(Unit[T](Polar, T(math.Pi/2)))
		return
	}

	// −i(x+yi) = y−xi and i(x+yi) = −y+xi, exact in Cartesian form.
	q.alpha = NewCartesian(b.b, -b.a)
	q.beta = NewCartesian(-a.b, a.a)
}

// PZ is the phase flip, β becomes −β.
func (q *Qubit[T]) PZ() {
	if q.Encoding() == Polar {
		q.beta = q.beta.mul(Unit[T](Polar, T(math.Pi)))
		return
	}

	q.beta.Scale(-1)
}

// PhaseShift multiplies β by e^(iφ), keeping the stored encoding.
func (q *Qubit[T]) PhaseShift(phi T) {
	p := q.beta.ToPolar()
	p.b += phi
	p.canonicalize()

	q.beta = p.As(q.Encoding())
}

/*
BlochAngles returns the polar angle θ = 2·acos|α| and the azimuth
φ = arg β − arg α (reduced into [0, 2π)) of the state on the Bloch sphere.
*/
func (q Qubit[T]) BlochAngles() (theta, phi float64) {
	theta = 2 * math.Acos(clamp(float64(q.alpha.Norm()), 0, 1))
	phi = reduceAngle(float64(q.beta.Argument()) - float64(q.alpha.Argument()))
	return theta, phi
}

// BlochVector is the unit vector (sinθ·cosφ, sinθ·sinφ, cosθ).
func (q Qubit[T]) BlochVector() (x, y, z float64) {
	theta, phi := q.BlochAngles()
	return math.Sin(theta) * math.Cos(phi), math.Sin(theta) * math.Sin(phi), math.Cos(theta)
}

// ApproxEqual compares both amplitudes within tol, regardless of encoding.
func (q Qubit[T]) ApproxEqual(o Qubit[T], tol float64) bool {
	return q.alpha.ApproxEqual(o.alpha, tol) && q.beta.ApproxEqual(o.beta, tol)
}

func (q Qubit[T]) String() string {
	return fmt.Sprintf("|φ⟩=%v|0⟩+%v|1⟩", q.alpha, q.beta)
}

// Dump renders the internal representation: encoding tags and raw parts.
func (q Qubit[T]) Dump() string {
	return dumper.Sdump(q)
}
