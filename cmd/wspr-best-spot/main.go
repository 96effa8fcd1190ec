// wspr-best-spot - Legacy one-way WSPR spot selector
//
// Reads a WSPRnet spot dump and emits, per remote transmitter heard by
// the operator, the single best spot by quality score, as ADIF on
// stdout.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/wspr-best-spot ./cmd/wspr-best-spot

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KI7MT/wspr-qso-log/internal/adif"
	"github.com/KI7MT/wspr-qso-log/internal/common"
	"github.com/KI7MT/wspr-qso-log/internal/wspr"
)

// Version can be overridden at build time via -ldflags
var Version = "2.1.0"

var (
	limit    = flag.Int64("limit", 0, "Row limit (0 = unlimited)")
	progress = flag.Bool("progress", false, "Print parse progress to stderr")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wspr-best-spot v%s - Best WSPR spot per station\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] CALLSIGN [path]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads a WSPRnet spot dump (stdin when no path; .gz/.zst supported)\n")
		fmt.Fprintf(os.Stderr, "and writes the best-scoring spot per remote station as ADIF on stdout.\n\n")
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
		return wspr.Matches(s, call, wspr.RoleReporter)
	}

	spots, err := wspr.ReadSpots(in, keep, stats, *limit)
	in.Close()
	if err != nil {
		log.Fatalf("Read failed: %v", err)
	}

	best := wspr.BestSpotPerStation(spots, excluded)

	out := bufio.NewWriter(os.Stdout)
	w := adif.NewWriter(out)

	if err := w.WriteHeader(fmt.Sprintf("Best WSPR spots for %s", call), "wspr-best-spot", Version, time.Now()); err != nil {
		log.Fatalf("Write failed: %v", err)
	}

	for _, s := range best {
		if err := w.WriteRecord(adif.BestSpotRecord(call, s)); err != nil {
			log.Fatalf("Write failed: %v", err)
		}
		run.AddRecords(1)
	}

	if err := out.Flush(); err != nil {
		log.Fatalf("Write failed: %v", err)
	}

	if *progress {
		run.StopReporter()
	}

	if stats.FailedRows > 0 {
		log.Printf("Skipped %d malformed rows (of %d read)", stats.FailedRows, stats.TotalRowsRead)
	}
	log.Printf("Logged %d best spots (one per remote station)", len(best))
}
