package qbit

import (
	"sync"
	"time"
)

// Metrics accumulates what an Ensemble has sampled across all of its runs.
type Metrics struct {
	mu          sync.RWMutex
	WorkerCount int
	Runs        int64
	Shots       int64
	Zeros       int64
	Ones        int64
	Batches     int64
	LastRun     time.Time

	TotalBatchTime      time.Duration
	AverageBatchLatency time.Duration
	MaxBatchLatency     time.Duration
}

func newMetrics(workers int) *Metrics {
	return &Metrics{
		WorkerCount: workers,
	}
}

func (m *Metrics) recordRun() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Runs++
	m.LastRun = time.Now()
}

func (m *Metrics) recordBatch(startTime time.Time, counts Counts) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Batches++
	m.Shots += int64(counts.Total())
	m.Zeros += int64(counts.Zero)
	m.Ones += int64(counts.One)

	m.TotalBatchTime += duration
	m.AverageBatchLatency = m.TotalBatchTime / time.Duration(m.Batches)

	if duration > m.MaxBatchLatency {
		m.MaxBatchLatency = duration
	}
}

// ZeroRate is the observed fraction of |0⟩ outcomes, 0 before any shot.
func (m *Metrics) ZeroRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Shots == 0 {
		return 0
	}

	return float64(m.Zeros) / float64(m.Shots)
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count": m.WorkerCount,
		"runs":         m.Runs,
		"shots":        m.Shots,
		"zeros":        m.Zeros,
		"ones":         m.Ones,
		"batches":      m.Batches,
		"avg_latency":  m.AverageBatchLatency.Microseconds(),
		"max_latency":  m.MaxBatchLatency.Microseconds(),
	}
}
