package adif

import (
	"strings"
	"testing"
	"time"

	"github.com/KI7MT/wspr-qso-log/internal/wspr"
)

func scenarioSpots() (inbound, outbound wspr.Spot) {
	// K1ABC hears VK7JJ on 80m at 21:20; VK7JJ hears K1ABC on 40m
	// four minutes later.
	inbound = wspr.Spot{
		SpotID:       42,
		Timestamp:    time.Date(2021, 3, 7, 21, 20, 0, 0, time.UTC),
		Reporter:     "K1ABC",
		ReporterGrid: "FN42",
		SNR:          -29,
		Frequency:    3594000,
		Callsign:     "VK7JJ",
		Grid:         "QE37",
		Power:        23,
		Drift:        0,
		Distance:     13805,
	}
	inbound.Band, inbound.BandName = wspr.GetBand(inbound.FreqMHz())

	outbound = wspr.Spot{
		SpotID:       57,
		Timestamp:    time.Date(2021, 3, 7, 21, 24, 0, 0, time.UTC),
		Reporter:     "VK7JJ",
		ReporterGrid: "QE37",
		SNR:          -26,
		Frequency:    7039800,
		Callsign:     "K1ABC",
		Grid:         "FN42",
		Power:        37,
		Drift:        -1,
		Distance:     13805,
	}
	outbound.Band, outbound.BandName = wspr.GetBand(outbound.FreqMHz())
	return inbound, outbound
}

func TestRecordString(t *testing.T) {
	var rec Record
	rec.Add("CALL", "K1ABC")
	rec.Addf("DISTANCE", "%d", 13805)
	rec.Add("COMMENT", "")

	got := rec.String()
	want := "<CALL:5>K1ABC<DISTANCE:5>13805<COMMENT:0><EOR>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriteHeader(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	created := time.Date(2021, 4, 1, 12, 30, 0, 0, time.UTC)

	if err := w.WriteHeader("Mutual WSPR spots for K1ABC", "wspr-qso-log", "2.1.0", created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sb.String()
	for _, want := range []string{
		"Mutual WSPR spots for K1ABC\n",
		"<ADIF_VER:5>3.1.1",
		"<CREATED_TIMESTAMP:15>20210401 123000",
		"<PROGRAMID:12>wspr-qso-log",
		"<PROGRAMVERSION:5>2.1.0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "<EOH>\n") {
		t.Errorf("header should end with <EOH>, got %q", got)
	}
}

// The cross-band scenario exercises the complete leg-to-field mapping:
// one inbound and one outbound spot four minutes apart become exactly
// one record.
func TestPairRecordCrossBand(t *testing.T) {
	inbound, outbound := scenarioSpots()

	pairs := wspr.CorrelatePairs([]wspr.Spot{inbound}, []wspr.Spot{outbound}, wspr.PairWindow, nil)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}

	got := PairRecord("K1ABC", pairs[0]).String()
	for _, want := range []string{
		"<QSO_DATE:8>20210307",
		"<TIME_ON:4>2120",
		"<QSO_DATE_OFF:8>20210307",
		"<TIME_OFF:4>2124",
		"<OPERATOR:5>K1ABC",
		"<CALL:5>VK7JJ",
		"<MY_GRIDSQUARE:4>FN42",
		"<GRIDSQUARE:4>QE37",
		"<RST_RCVD:3>-26",
		"<RST_SENT:3>-29",
		"<FREQ:8>3.594000",
		"<RX_FREQ:8>7.039800",
		"<BAND:3>80m",
		"<BAND_RX:3>40m",
		"<TX_PWR:6>5.0119",
		"<RX_PWR:6>0.1995",
		"<DISTANCE:5>13805",
		"WSPRnet spot IDs 42, 57",
		"<MODE:4>WSPR",
		"<QSO_RANDOM:1>Y",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("record missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "<EOR>") {
		t.Errorf("record should end with <EOR>, got %q", got)
	}
}

func TestPairBandDisplay(t *testing.T) {
	inbound, outbound := scenarioSpots()

	t.Run("cross band", func(t *testing.T) {
		p := wspr.QsoPair{Outbound: outbound, Inbound: inbound}
		if got := pairBandDisplay(p); got != "80 m (RX 40 m)" {
			t.Errorf("got %q, want %q", got, "80 m (RX 40 m)")
		}
	})

	t.Run("same band", func(t *testing.T) {
		sameOut := outbound
		sameOut.Frequency = inbound.Frequency
		sameOut.Band, sameOut.BandName = wspr.GetBand(sameOut.FreqMHz())
		p := wspr.QsoPair{Outbound: sameOut, Inbound: inbound}
		if got := pairBandDisplay(p); got != "80 m" {
			t.Errorf("got %q, want %q", got, "80 m")
		}
	})
}

func TestBestSpotRecord(t *testing.T) {
	inbound, _ := scenarioSpots()
	s := wspr.ScoredSpot{Spot: inbound, Quality: wspr.SpotQuality(inbound)}

	got := BestSpotRecord("K1ABC", s).String()
	for _, want := range []string{
		"<TIME_ON:4>2120",
		"<CALL:5>VK7JJ",
		"<RST_SENT:3>-29",
		"<BAND:3>80m",
		"<DISTANCE:5>13805",
		"WSPRnet spot ID 42",
		"SpotQ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("record missing %q:\n%s", want, got)
		}
	}

	// One-way spots have no end time and no received report.
	for _, absent := range []string{"TIME_OFF", "RST_RCVD", "TX_PWR"} {
		if strings.Contains(got, absent) {
			t.Errorf("record should not contain %q:\n%s", absent, got)
		}
	}
}

func TestSpotIDList(t *testing.T) {
	if got := spotIDList(57, 42); got != "42, 57" {
		t.Errorf("spotIDList(57, 42) = %q, want %q", got, "42, 57")
	}
	if got := spotIDList(7); got != "7" {
		t.Errorf("spotIDList(7) = %q, want %q", got, "7")
	}
}
