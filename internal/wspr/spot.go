// Package wspr reconstructs two-way QSO records from bulk WSPRnet spot
// dumps. It contains the spot model, the archive CSV parser, band
// normalization tables, the quality metric, and the two correlation
// strategies (legacy best-spot and mutual reciprocal pairing).
package wspr

import (
	"fmt"
	"time"
)

// Spot represents a single WSPRnet spot record: one reporter station's
// reception of one transmitter station's beacon cycle.
//
// A Spot is never mutated after construction; correlation only reads
// and copies it into derived structures.
type Spot struct {
	SpotID       uint64    // WSPRnet spot ID (unique per input file)
	Timestamp    time.Time // Spot timestamp UTC, minute resolution
	Reporter     string    // Receiving station callsign
	ReporterGrid string    // Receiver Maidenhead grid
	SNR          int8      // Signal-to-noise ratio dB
	Frequency    uint64    // Frequency in Hz (NOT MHz!)
	Callsign     string    // Transmitting station callsign
	Grid         string    // Transmitter Maidenhead grid
	Power        int8      // TX power dBm
	Drift        int8      // Frequency drift Hz/s
	Distance     uint32    // Great circle distance km
	Band         int32     // Band ID (from GetBand)
	BandName     string    // ADIF band name ("80m"), "" if unknown
}

// FreqMHz returns the spot frequency in MHz.
func (s Spot) FreqMHz() float64 {
	return float64(s.Frequency) / 1e6
}

// ScoredSpot is a Spot plus its computed quality score. It exists only
// during best-spot selection.
type ScoredSpot struct {
	Spot
	Quality float64
}

// QsoPair is one reciprocal spot pair: the outbound leg (target heard
// by the remote station) and the inbound leg (remote heard by the
// target), with timestamps within the pairing window. Constructed once
// by the correlator and consumed by the record assembler.
type QsoPair struct {
	Outbound Spot // target transmitting, remote reporting
	Inbound  Spot // remote transmitting, target reporting
}

// Remote returns the remote station's callsign.
func (p QsoPair) Remote() string {
	return p.Inbound.Callsign
}

// TimeOn returns the earlier of the two leg timestamps.
func (p QsoPair) TimeOn() time.Time {
	if p.Outbound.Timestamp.Before(p.Inbound.Timestamp) {
		return p.Outbound.Timestamp
	}
	return p.Inbound.Timestamp
}

// TimeOff returns the later of the two leg timestamps.
func (p QsoPair) TimeOff() time.Time {
	if p.Outbound.Timestamp.After(p.Inbound.Timestamp) {
		return p.Outbound.Timestamp
	}
	return p.Inbound.Timestamp
}

// MalformedRowError reports a row that failed to parse, carrying the
// 1-based ordinal of the row within the input. Malformed rows are
// skipped and counted, never fatal to the run.
type MalformedRowError struct {
	Row int64
	Err error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// ParseStats holds counters for one parsing pass.
type ParseStats struct {
	TotalRowsRead      int64 // Total rows read from CSV
	SuccessfullyParsed int64 // Rows successfully parsed
	FailedRows         int64 // Rows that failed to parse
	SkippedEmptyRows   int64 // Empty rows skipped
	FilteredRows       int64 // Parsed rows dropped by the relevance filter
	SanitizedCallsigns int64 // Callsigns that required sanitization
}
