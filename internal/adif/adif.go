// Package adif assembles correlated WSPR records into ADIF output
// records and renders them as tagged-field text.
package adif

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/KI7MT/wspr-qso-log/internal/wspr"
)

// ADIFVersion is the ADIF specification version written to the header.
const ADIFVersion = "3.1.1"

// Field is one tagged ADIF field.
type Field struct {
	Name  string
	Value string
}

// Record is the flat, ordered field set of one output record. It is
// created by the assembler, rendered once, and never re-entered into
// the pipeline.
type Record []Field

// Add appends a field.
func (r *Record) Add(name, value string) {
	*r = append(*r, Field{Name: name, Value: value})
}

// Addf appends a formatted field.
func (r *Record) Addf(name, format string, args ...any) {
	r.Add(name, fmt.Sprintf(format, args...))
}

// String renders the record as tagged fields terminated by <EOR>.
func (r Record) String() string {
	var sb strings.Builder
	for _, f := range r {
		fmt.Fprintf(&sb, "<%s:%d>%s", f.Name, len(f.Value), f.Value)
	}
	sb.WriteString("<EOR>")
	return sb.String()
}

// Writer renders an ADIF header block followed by records.
type Writer struct {
	w io.Writer
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the free-text title line and the header fields:
// ADIF version, generation timestamp, and program identification.
func (w *Writer) WriteHeader(title, programID, programVersion string, created time.Time) error {
	var rec Record
	rec.Add("ADIF_VER", ADIFVersion)
	rec.Add("CREATED_TIMESTAMP", created.UTC().Format("20060102 150405"))
	rec.Add("PROGRAMID", programID)
	rec.Add("PROGRAMVERSION", programVersion)

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for _, f := range rec {
		fmt.Fprintf(&sb, "<%s:%d>%s", f.Name, len(f.Value), f.Value)
	}
	sb.WriteString("<EOH>\n")

	_, err := io.WriteString(w.w, sb.String())
	return err
}

// WriteRecord writes one record followed by a newline.
func (w *Writer) WriteRecord(rec Record) error {
	_, err := io.WriteString(w.w, rec.String()+"\n")
	return err
}

// PairRecord assembles the output record for one reciprocal spot pair.
//
// Field mapping: TIME_ON comes from the earlier leg and TIME_OFF from
// the later; FREQ/BAND describe the inbound leg (the signal the target
// received) and RX_FREQ/BAND_RX the outbound leg; TX_PWR is the
// target's own transmit power (outbound leg) and RX_PWR the remote's
// (inbound leg). The signal reports are reciprocal: RST_RCVD is the
// remote's report of the target, RST_SENT the target's report of the
// remote.
func PairRecord(operator string, p wspr.QsoPair) Record {
	on, off := p.TimeOn(), p.TimeOff()

	var rec Record
	rec.Add("QSO_DATE", on.Format("20060102"))
	rec.Add("TIME_ON", on.Format("1504"))
	rec.Add("QSO_DATE_OFF", off.Format("20060102"))
	rec.Add("TIME_OFF", off.Format("1504"))
	rec.Add("OPERATOR", operator)
	rec.Add("CALL", p.Remote())
	rec.Add("MY_GRIDSQUARE", p.Inbound.ReporterGrid)
	rec.Add("GRIDSQUARE", p.Inbound.Grid)
	rec.Addf("RST_RCVD", "%+03d", p.Outbound.SNR)
	rec.Addf("RST_SENT", "%+03d", p.Inbound.SNR)
	rec.Addf("FREQ", "%.6f", p.Inbound.FreqMHz())
	rec.Addf("RX_FREQ", "%.6f", p.Outbound.FreqMHz())

	if p.Inbound.BandName != "" {
		rec.Add("BAND", p.Inbound.BandName)
	}
	if p.Outbound.BandName != "" {
		rec.Add("BAND_RX", p.Outbound.BandName)
	}

	rec.Addf("TX_PWR", "%.4f", wspr.Watts(p.Outbound.Power))
	rec.Addf("RX_PWR", "%.4f", wspr.Watts(p.Inbound.Power))
	rec.Addf("DISTANCE", "%d", p.Inbound.Distance)

	desc := wspr.PairDescription(pairBandDisplay(p), p.Inbound.Power, p.Inbound.SNR, p.Inbound.Drift, p.Inbound.Distance)
	rec.Add("QSLMSG", desc)
	rec.Add("COMMENT", desc)
	rec.Add("NOTES", fmt.Sprintf("WSPRnet spot IDs %s", spotIDList(p.Outbound.SpotID, p.Inbound.SpotID)))
	rec.Add("MODE", "WSPR")
	rec.Add("QSO_RANDOM", "Y")
	return rec
}

// BestSpotRecord assembles the output record for one legacy best spot.
// The spot is one-way (target heard the remote), so only the target's
// outgoing report and the remote's power are known.
func BestSpotRecord(operator string, s wspr.ScoredSpot) Record {
	var rec Record
	rec.Add("QSO_DATE", s.Timestamp.Format("20060102"))
	rec.Add("TIME_ON", s.Timestamp.Format("1504"))
	rec.Add("OPERATOR", operator)
	rec.Add("CALL", s.Callsign)
	rec.Add("MY_GRIDSQUARE", s.ReporterGrid)
	rec.Add("GRIDSQUARE", s.Grid)
	rec.Addf("RST_SENT", "%+03d", s.SNR)
	rec.Addf("FREQ", "%.6f", s.FreqMHz())

	if s.BandName != "" {
		rec.Add("BAND", s.BandName)
	}

	rec.Addf("RX_PWR", "%.4f", wspr.Watts(s.Power))
	rec.Addf("DISTANCE", "%d", s.Distance)

	desc := wspr.BestSpotDescription(s)
	rec.Add("QSLMSG", desc)
	rec.Add("COMMENT", desc)
	rec.Addf("NOTES", "WSPRnet spot ID %d", s.SpotID)
	rec.Add("MODE", "WSPR")
	rec.Add("QSO_RANDOM", "Y")
	return rec
}

// pairBandDisplay builds the free-text band summary for both legs:
// "80 m" when they match, "80 m (RX 40 m)" when they differ.
func pairBandDisplay(p wspr.QsoPair) string {
	in := wspr.BandDisplay(p.Inbound)
	out := wspr.BandDisplay(p.Outbound)
	if in == out {
		return in
	}
	return fmt.Sprintf("%s (RX %s)", in, out)
}

// spotIDList formats spot IDs in ascending order.
func spotIDList(ids ...uint64) string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
