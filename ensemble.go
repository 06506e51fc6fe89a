package qbit

import (
	"context"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// Counts tallies collapse outcomes.
type Counts struct {
	Zero int
	One  int
}

func (c Counts) Total() int {
	return c.Zero + c.One
}

// Frequencies is the empirical counterpart of Qubit.Measure.
func (c Counts) Frequencies() Probabilities[float64] {
	total := c.Total()
	if total == 0 {
		return Probabilities[float64]{}
	}

	return Probabilities[float64]{
		P0: float64(c.Zero) / float64(total),
		P1: float64(c.One) / float64(total),
	}
}

func (c *Counts) merge(o Counts) {
	c.Zero += o.Zero
	c.One += o.One
}

// batch is a unit of work: collapse Shots copies with the source for BatchStream(ID).
type batch struct {
	ID    int
	Shots int
}

/*
Ensemble estimates measurement statistics by collapsing many copies of one
qubit across a fixed set of workers.

Every batch draws from its own UniformSource seeded with (Config.Seed,
BatchStream(id)), so the totals for a given seed do not depend on how batches
are spread over workers, and no batch reuses the PrepareStream draws that
built the qubit.
*/
type Ensemble[T Float] struct {
	config  *Config
	metrics *Metrics
}

func NewEnsemble[T Float](config *Config) *Ensemble[T] {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info(
		"NewEnsemble - workers %d, batch size %d, seed %d",
		config.Workers,
		config.BatchSize,
		config.Seed,
	)

	return &Ensemble[T]{
		config:  config,
		metrics: newMetrics(max(config.Workers, 1)),
	}
}

func (e *Ensemble[T]) Metrics() *Metrics {
	return e.metrics
}

/*
Sample collapses shots copies of q and returns the tally. The qubit is passed
by value, every worker reads its own copy and q itself is never modified.

If ctx is cancelled before all batches finish, the partial tally is returned
together with ctx.Err().
*/
func (e *Ensemble[T]) Sample(ctx context.Context, q Qubit[T], shots int) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}

	if shots <= 0 {
		return Counts{}, nil
	}

	e.metrics.recordRun()

	var (
		wg        sync.WaitGroup
		workers   = max(e.config.Workers, 1)
		batchSize = max(e.config.BatchSize, 1)
		jobs      = make(chan batch)
		results   = make(chan Counts, workers)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.work(ctx, q, jobs, results)
		}()
	}

	go func() {
		defer close(jobs)

		for id, remaining := 0, shots; remaining > 0; id++ {
			n := min(batchSize, remaining)

			select {
			case jobs <- batch{ID: id, Shots: n}:
			case <-ctx.Done():
				return
			}

			remaining -= n
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var total Counts
	for counts := range results {
		total.merge(counts)
	}

	if err := ctx.Err(); err != nil {
		return total, err
	}

	errnie.Info("Sample - %d shots, %s", total.Total(), total.Frequencies())

	return total, nil
}

func (e *Ensemble[T]) work(ctx context.Context, q Qubit[T], jobs <-chan batch, results chan<- Counts) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}

			results <- e.run(q, job)
		}
	}
}

func (e *Ensemble[T]) run(q Qubit[T], job batch) Counts {
	startTime := time.Now()
	rng := NewUniformSource(e.config.Seed, BatchStream(job.ID))

	var counts Counts
	for i := 0; i < job.Shots; i++ {
		if b, _ := q.Collapse(rng).Basis(); b == One {
			counts.One++
		} else {
			counts.Zero++
		}
	}

	e.metrics.recordBatch(startTime, counts)

	return counts
}
