package qbit

import "fmt"

/*
Probabilities is the Born-rule reading of a qubit: the probability of
observing |0⟩ and |1⟩.
*/
type Probabilities[T Float] struct {
	P0 T
	P1 T
}

// Sum is P0+P1, which is 1 within tolerance for any valid qubit.
func (p Probabilities[T]) Sum() T {
	return p.P0 + p.P1
}

func (p Probabilities[T]) String() string {
	return fmt.Sprintf("P(|0⟩)= %v, P(|1⟩)= %v", p.P0, p.P1)
}

// Basis names one of the two computational basis states.
type Basis int

const (
	Zero Basis = iota
	One
)

func (b Basis) String() string {
	if b == One {
		return "|1⟩"
	}

	return "|0⟩"
}
