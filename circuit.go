package qbit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// GateKind identifies one of the single-qubit gates a Qubit supports.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateY
	GateZ
	GatePhase
)

// Gate is a single step of a circuit. Angle is only read by GatePhase.
type Gate struct {
	Kind  GateKind
	Angle float64
}

func (g Gate) String() string {
	switch g.Kind {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateY:
		return "y"
	case GateZ:
		return "z"
	case GatePhase:
		return "p:" + strconv.FormatFloat(g.Angle, 'g', -1, 64)
	}

	return fmt.Sprintf("gate(%d)", int(g.Kind))
}

/*
Circuit is an ordered list of gates applied to one qubit. It is parsed from a
token list such as "h x p:pi/2 z", see ParseCircuit.
*/
type Circuit struct {
	Gates []Gate
}

/*
ParseCircuit reads a whitespace or comma separated list of gate tokens. Tokens
are case-insensitive:

	h, x, y, z      Hadamard and the Pauli gates
	p:<angle>       phase shift (also phase:<angle>)
	s, t            phase shift by π/2 and π/4

Angles are radians, written either as a number or as a multiple of pi such as
pi, -pi/2 or 3pi/4.
*/
func ParseCircuit(text string) (*Circuit, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	circuit := &Circuit{Gates: make([]Gate, 0, len(tokens))}

	for _, token := range tokens {
		gate, err := parseGate(token)
		if err != nil {
			return nil, err
		}

		circuit.Gates = append(circuit.Gates, gate)
	}

	return circuit, nil
}

// Add appends gates and returns the circuit for chaining.
func (c *Circuit) Add(gates ...Gate) *Circuit {
	c.Gates = append(c.Gates, gates...)
	return c
}

func (c *Circuit) Len() int {
	return len(c.Gates)
}

func (c *Circuit) String() string {
	parts := make([]string, len(c.Gates))
	for i, g := range c.Gates {
		parts[i] = g.String()
	}

	return strings.Join(parts, " ")
}

// Apply runs a single gate on the qubit in place.
func (q *Qubit[T]) Apply(g Gate) {
	switch g.Kind {
	case GateH:
		q.Hadamard()
	case GateX:
		q.PX()
	case GateY:
		q.PY()
	case GateZ:
		q.PZ()
	case GatePhase:
		q.PhaseShift(T(g.Angle))
	}
}

// Run applies every gate of the circuit in order.
func (q *Qubit[T]) Run(c *Circuit) {
	errnie.Info("Run - circuit %q on %s qubit", c.String(), q.Encoding())

	for _, g := range c.Gates {
		q.Apply(g)
	}
}

func parseGate(token string) (Gate, error) {
	switch token {
	case "h":
		return Gate{Kind: GateH}, nil
	case "x":
		return Gate{Kind: GateX}, nil
	case "y":
		return Gate{Kind: GateY}, nil
	case "z":
		return Gate{Kind: GateZ}, nil
	case "s":
		return Gate{Kind: GatePhase, Angle: math.Pi / 2}, nil
	case "t":
		return Gate{Kind: GatePhase, Angle: math.Pi / 4}, nil
	}

	name, arg, ok := strings.Cut(token, ":")
	if !ok || (name != "p" && name != "phase") {
		return Gate{}, errors.Wrapf(ErrUnknownGate, "token %q", token)
	}

	angle, err := parseAngle(arg)
	if err != nil {
		return Gate{}, errors.Wrapf(ErrUnknownGate, "token %q: %v", token, err)
	}

	return Gate{Kind: GatePhase, Angle: angle}, nil
}

// parseAngle accepts plain radians or k·pi/n forms like "pi", "-pi/2", "3pi/4".
func parseAngle(text string) (float64, error) {
	if !strings.Contains(text, "pi") {
		return strconv.ParseFloat(text, 64)
	}

	coef, rest, _ := strings.Cut(text, "pi")
	factor := 1.0

	switch strings.TrimSuffix(coef, "*") {
	case "":
	case "-":
		factor = -1
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(coef, "*"), 64)
		if err != nil {
			return 0, err
		}
		factor = v
	}

	if rest == "" {
		return factor * math.Pi, nil
	}

	div, ok := strings.CutPrefix(rest, "/")
	if !ok {
		return 0, errors.Errorf("malformed angle %q", text)
	}

	d, err := strconv.ParseFloat(div, 64)
	if err != nil {
		return 0, err
	}

	if d == 0 {
		return 0, errors.Errorf("division by zero in angle %q", text)
	}

	return factor * math.Pi / d, nil
}
