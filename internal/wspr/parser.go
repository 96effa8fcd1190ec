package wspr

// parser.go - archive CSV parsing. One row per spot, WSPRnet bulk dump
// column order: id, timestamp, reporter, reporter grid, SNR, frequency
// (MHz), callsign, grid, power (dBm), drift, distance, band, then
// optional trailing columns depending on archive vintage.

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"
)

const (
	// Error throttling: don't spam logs with parse errors
	MaxErrorsToLog = 10

	// CSV column indices (WSPRnet archive format)
	ColID           = 0
	ColTimestamp    = 1
	ColReporter     = 2
	ColReporterGrid = 3
	ColSNR          = 4
	ColFrequency    = 5
	ColCallsign     = 6
	ColGrid         = 7
	ColPower        = 8
	ColDrift        = 9
	ColDistance     = 10
	ColBand         = 11

	// Minimum columns for a usable spot record. The band column and
	// everything after it is derived or ignored.
	MinColumns = 11
)

// ParseRecord parses a single CSV record into a Spot. The band column
// is ignored; the band is always derived from the frequency so that
// older archives with region-specific band codes normalize identically.
func ParseRecord(record []string) (Spot, error) {
	if len(record) < MinColumns {
		return Spot{}, fmt.Errorf("insufficient columns: got %d, need %d", len(record), MinColumns)
	}

	var spot Spot
	var err error

	spot.SpotID, err = parseUint64(record[ColID])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid ID: %w", err)
	}

	ts, err := parseInt64(record[ColTimestamp])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	spot.Timestamp = time.Unix(ts, 0).UTC()

	spot.Reporter = NormalizeCall(record[ColReporter])
	spot.ReporterGrid = strings.ToUpper(strings.TrimSpace(record[ColReporterGrid]))

	snr, err := parseInt8(record[ColSNR])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid SNR: %w", err)
	}
	spot.SNR = snr

	// Archives store frequency in MHz with 6 decimal places,
	// e.g. "14.097150" = 14097150 Hz.
	freqMHz, err := parseFloat64(record[ColFrequency])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid frequency: %w", err)
	}
	spot.Frequency = uint64(freqMHz*1e6 + 0.5)

	spot.Callsign = NormalizeCall(record[ColCallsign])
	spot.Grid = strings.ToUpper(strings.TrimSpace(record[ColGrid]))

	power, err := parseInt8(record[ColPower])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid power: %w", err)
	}
	spot.Power = power

	drift, err := parseInt8(record[ColDrift])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid drift: %w", err)
	}
	spot.Drift = drift

	dist, err := parseUint32(record[ColDistance])
	if err != nil {
		return Spot{}, fmt.Errorf("invalid distance: %w", err)
	}
	spot.Distance = dist

	// Distance column is absent from some dumps; fall back to the
	// locator geometry when both grids are usable.
	if spot.Distance == 0 {
		if km, err := DistanceFromLocators(spot.ReporterGrid, spot.Grid); err == nil {
			spot.Distance = uint32(km + 0.5)
		}
	}

	spot.Band, spot.BandName = GetBand(freqMHz)

	return spot, nil
}

// KeepFunc decides whether a parsed spot is retained. Filtering inside
// the read loop keeps memory proportional to the relevant spots rather
// than the whole monthly dump.
type KeepFunc func(Spot) bool

// ReadSpots parses an entire CSV stream, retaining the spots accepted
// by keep (nil keeps everything). Malformed rows are counted and
// skipped; only stream-level read failures are returned. limit > 0
// caps the number of rows read.
func ReadSpots(reader io.Reader, keep KeepFunc, stats *ParseStats, limit int64) ([]Spot, error) {
	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1 // Variable field count across archive vintages
	csvReader.ReuseRecord = true

	var spots []Spot
	errorCount := 0

	for {
		if limit > 0 && stats.TotalRowsRead >= limit {
			break
		}

		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.FailedRows++
			errorCount++
			if errorCount <= MaxErrorsToLog {
				log.Printf("CSV read error (row %d): %v", stats.TotalRowsRead+1, err)
			}
			continue
		}

		stats.TotalRowsRead++

		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			stats.SkippedEmptyRows++
			continue
		}

		spot, err := ParseRecord(record)
		if err != nil {
			stats.FailedRows++
			errorCount++
			rowErr := &MalformedRowError{Row: stats.TotalRowsRead, Err: err}
			if errorCount <= MaxErrorsToLog {
				log.Printf("Parse error: %v", rowErr)
			}
			continue
		}

		stats.SuccessfullyParsed++

		if keep != nil && !keep(spot) {
			stats.FilteredRows++
			continue
		}

		spots = append(spots, spot)
	}

	if errorCount > MaxErrorsToLog {
		log.Printf("... and %d more parse errors (suppressed)", errorCount-MaxErrorsToLog)
	}

	return spots, nil
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseInt8(s string) (int8, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 8)
	return int8(v), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
