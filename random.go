package qbit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

/*
RandomSource is the only source of nondeterminism in the package. Init and
Collapse take one explicitly so that callers, and tests, decide how draws are
produced.
*/
type RandomSource interface {
	// Uniform returns an independent sample from [low, high).
	Uniform(low, high float64) float64
}

/*
UniformSource is a seeded RandomSource. Two sources built from the same
(seed, stream) pair produce the same sequence. A UniformSource is not safe for
concurrent use, give each goroutine its own.
*/
type UniformSource struct {
	src rand.Source
}

/*
PrepareStream is the stream reserved for preparing a qubit with Init. Sampling
draws from BatchStream streams, which never overlap it, so a collapse never
replays the draws that produced its own state.
*/
const PrepareStream uint64 = 0

// BatchStream is the stream for the sampling batch with the given id.
func BatchStream(id int) uint64 {
	return PrepareStream + 1 + uint64(id)
}

func NewUniformSource(seed, stream uint64) *UniformSource {
	return &UniformSource{
		src: rand.NewPCG(seed, stream),
	}
}

func (u *UniformSource) Uniform(low, high float64) float64 {
	return distuv.Uniform{Min: low, Max: high, Src: u.src}.Rand()
}
