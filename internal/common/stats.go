package common

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// RunStats holds atomic counters for one correlation run and an
// optional background progress reporter. Progress goes to stderr;
// stdout carries the ADIF stream.
type RunStats struct {
	RowsRead  uint64 // Atomic counter for rows read from the dump
	Records   uint64 // Atomic counter for output records emitted
	StartTime time.Time

	running  atomic.Bool
	stopCh   chan struct{}
	lastRows uint64
	lastTime time.Time
}

// NewRunStats creates a new RunStats instance.
func NewRunStats() *RunStats {
	return &RunStats{
		StartTime: time.Now(),
		stopCh:    make(chan struct{}),
	}
}

// AddRows atomically increments the rows-read counter.
func (s *RunStats) AddRows(count uint64) {
	atomic.AddUint64(&s.RowsRead, count)
}

// AddRecords atomically increments the emitted-records counter.
func (s *RunStats) AddRecords(count uint64) {
	atomic.AddUint64(&s.Records, count)
}

// GetRows atomically reads the rows-read counter.
func (s *RunStats) GetRows() uint64 {
	return atomic.LoadUint64(&s.RowsRead)
}

// GetRecords atomically reads the emitted-records counter.
func (s *RunStats) GetRecords() uint64 {
	return atomic.LoadUint64(&s.Records)
}

// StartReporter starts a background goroutine that prints throughput
// to stderr every 500ms.
func (s *RunStats) StartReporter() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	s.lastTime = time.Now()
	s.lastRows = 0
	go s.reporterLoop()
}

// StopReporter stops the background reporter goroutine.
func (s *RunStats) StopReporter() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.stopCh)
}

func (s *RunStats) reporterLoop() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.printStatus()
		}
	}
}

func (s *RunStats) printStatus() {
	now := time.Now()
	elapsed := now.Sub(s.lastTime).Seconds()
	if elapsed < 0.001 {
		return
	}

	rows := s.GetRows()
	krps := float64(rows-s.lastRows) / 1_000 / elapsed

	fmt.Fprintf(os.Stderr, "[Progress] Parse: %.1f krps | Rows: %d | Records: %d\n",
		krps, rows, s.GetRecords())

	s.lastRows = rows
	s.lastTime = now
}
