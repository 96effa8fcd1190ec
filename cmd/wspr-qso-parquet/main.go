// wspr-qso-parquet - Mutual WSPR spot correlator with Parquet output
//
// Same correlation as wspr-qso-log, but writes the QSO records to a
// Parquet file (zstd-compressed pages) instead of ADIF, for downstream
// analytics.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/wspr-qso-parquet ./cmd/wspr-qso-parquet

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/KI7MT/wspr-qso-log/internal/common"
	"github.com/KI7MT/wspr-qso-log/internal/wspr"
)

// Version can be overridden at build time via -ldflags
var Version = "2.1.0"

var (
	outPath  = flag.String("out", "qsos.parquet", "Parquet output file")
	limit    = flag.Int64("limit", 0, "Row limit (0 = unlimited)")
	progress = flag.Bool("progress", false, "Print parse progress to stderr")
)

// QsoRow is the flat Parquet schema for one reciprocal pair.
type QsoRow struct {
	TimeOn       int64   `parquet:"time_on"`
	TimeOff      int64   `parquet:"time_off"`
	Operator     string  `parquet:"operator"`
	Call         string  `parquet:"call"`
	OperatorGrid string  `parquet:"operator_grid"`
	Grid         string  `parquet:"grid"`
	SNRRcvd      int16   `parquet:"snr_rcvd"`
	SNRSent      int16   `parquet:"snr_sent"`
	Freq         float64 `parquet:"freq"`
	RxFreq       float64 `parquet:"rx_freq"`
	Band         string  `parquet:"band"`
	BandRx       string  `parquet:"band_rx"`
	TxPowerDBm   int16   `parquet:"tx_power_dbm"`
	RxPowerDBm   int16   `parquet:"rx_power_dbm"`
	DistanceKm   uint32  `parquet:"distance_km"`
	SpotIDOut    uint64  `parquet:"spot_id_out"`
	SpotIDIn     uint64  `parquet:"spot_id_in"`
}

func pairToRow(operator string, p wspr.QsoPair) QsoRow {
	return QsoRow{
		TimeOn:       p.TimeOn().Unix(),
		TimeOff:      p.TimeOff().Unix(),
		Operator:     operator,
		Call:         p.Remote(),
		OperatorGrid: p.Inbound.ReporterGrid,
		Grid:         p.Inbound.Grid,
		SNRRcvd:      int16(p.Outbound.SNR),
		SNRSent:      int16(p.Inbound.SNR),
		Freq:         p.Inbound.FreqMHz(),
		RxFreq:       p.Outbound.FreqMHz(),
		Band:         p.Inbound.BandName,
		BandRx:       p.Outbound.BandName,
		TxPowerDBm:   int16(p.Outbound.Power),
		RxPowerDBm:   int16(p.Inbound.Power),
		DistanceKm:   p.Inbound.Distance,
		SpotIDOut:    p.Outbound.SpotID,
		SpotIDIn:     p.Inbound.SpotID,
	}
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wspr-qso-parquet v%s - Mutual WSPR spots to Parquet\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] CALLSIGN [path]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Correlates reciprocal spot pairs like wspr-qso-log and writes them\n")
		fmt.Fprintf(os.Stderr, "to a Parquet file for downstream analytics.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing CALLSIGN argument\n")
		flag.Usage()
		os.Exit(1)
	}

	call := wspr.NormalizeCall(flag.Arg(0))
	if !wspr.ValidateCallsign(call) {
		log.Fatalf("Invalid callsign: %q", flag.Arg(0))
	}

	var path string
	if flag.NArg() > 1 {
		path = flag.Arg(1)
	}

	cfg := common.DefaultConfig()
	excluded := wspr.NewExcludedSet(append(append([]string{}, wspr.DefaultExcludedCalls...), cfg.ExcludedCalls...)...)

	in, err := wspr.OpenInput(path)
	if err != nil {
		log.Fatalf("Cannot open input: %v", err)
	}

	run := common.NewRunStats()
	if *progress {
		run.StartReporter()
	}

	stats := &wspr.ParseStats{}
	keep := func(s wspr.Spot) bool {
		run.AddRows(1)
		return wspr.Matches(s, call, wspr.RoleAny)
	}

	spots, err := wspr.ReadSpots(in, keep, stats, *limit)
	in.Close()
	if err != nil {
		log.Fatalf("Read failed: %v", err)
	}

	asReporter, asTransmitter := wspr.SplitByRole(spots, call)
	pairs := wspr.CorrelatePairs(asReporter, asTransmitter, wspr.PairWindow, excluded)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Cannot create output: %v", err)
	}

	writer := parquet.NewGenericWriter[QsoRow](f, parquet.Compression(&parquet.Zstd))

	rows := make([]QsoRow, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, pairToRow(call, p))
	}

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			f.Close()
			log.Fatalf("Parquet write failed: %v", err)
		}
		run.AddRecords(uint64(len(rows)))
	}

	if err := writer.Close(); err != nil {
		f.Close()
		log.Fatalf("Parquet close failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Output close failed: %v", err)
	}

	if *progress {
		run.StopReporter()
	}

	if stats.FailedRows > 0 {
		log.Printf("Skipped %d malformed rows (of %d read)", stats.FailedRows, stats.TotalRowsRead)
	}
	log.Printf("Wrote %d QSO rows to %s", len(rows), *outPath)
}
