package wspr

import (
	"sort"
	"time"
)

// correlate.go - the two correlation strategies.
//
// Mode A (legacy): one best-scoring spot per remote transmitter.
// Mode B (mutual): every reciprocal spot pair within the time window.
// Both require the full input to be materialized first; reciprocity
// cannot be detected in a single streaming pass because the matching
// leg may appear anywhere in the file.

// PairWindow is the maximum timestamp gap between the two legs of a
// reciprocal pair: two WSPR transmit cycles.
const PairWindow = 4 * time.Minute

// BestSpotPerStation groups target-as-reporter spots by transmitter
// callsign and selects the spot with the highest quality score per
// station; exact score ties go to the later timestamp. Results are
// sorted by callsign for stable output.
func BestSpotPerStation(spots []Spot, excluded ExcludedSet) []ScoredSpot {
	best := make(map[string]ScoredSpot)

	for _, s := range spots {
		if excluded.Contains(s.Callsign) {
			continue
		}

		cand := ScoredSpot{Spot: s, Quality: SpotQuality(s)}
		cur, ok := best[s.Callsign]
		if !ok || cand.Quality > cur.Quality ||
			(cand.Quality == cur.Quality && cand.Timestamp.After(cur.Timestamp)) {
			best[s.Callsign] = cand
		}
	}

	out := make([]ScoredSpot, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Callsign < out[j].Callsign
	})
	return out
}

// SplitByRole partitions the relevance-filtered spots into the two
// disjoint direction streams for mutual correlation.
func SplitByRole(spots []Spot, target string) (asReporter, asTransmitter []Spot) {
	for _, s := range spots {
		switch {
		case s.Reporter == target:
			asReporter = append(asReporter, s)
		case s.Callsign == target:
			asTransmitter = append(asTransmitter, s)
		}
	}
	return asReporter, asTransmitter
}

// CorrelatePairs finds every reciprocal pair: for each remote callsign
// heard in both directions, every (outbound, inbound) combination whose
// timestamps differ by at most window becomes one QsoPair. A spot may
// participate in multiple pairs; there is no consumption rule. Pairs
// are ordered by the earlier leg timestamp, then by spot IDs.
func CorrelatePairs(asReporter, asTransmitter []Spot, window time.Duration, excluded ExcludedSet) []QsoPair {
	// Inbound legs indexed by the remote transmitter.
	inboundByRemote := make(map[string][]Spot)
	for _, s := range asReporter {
		if excluded.Contains(s.Callsign) {
			continue
		}
		inboundByRemote[s.Callsign] = append(inboundByRemote[s.Callsign], s)
	}

	var pairs []QsoPair
	for _, out := range asTransmitter {
		if excluded.Contains(out.Reporter) {
			continue
		}
		for _, in := range inboundByRemote[out.Reporter] {
			gap := out.Timestamp.Sub(in.Timestamp)
			if gap < 0 {
				gap = -gap
			}
			if gap <= window {
				pairs = append(pairs, QsoPair{Outbound: out, Inbound: in})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		ti, tj := pairs[i].TimeOn(), pairs[j].TimeOn()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		if pairs[i].Outbound.SpotID != pairs[j].Outbound.SpotID {
			return pairs[i].Outbound.SpotID < pairs[j].Outbound.SpotID
		}
		return pairs[i].Inbound.SpotID < pairs[j].Inbound.SpotID
	})
	return pairs
}
