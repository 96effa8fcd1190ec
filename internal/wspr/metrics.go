package wspr

import (
	"fmt"
	"math"
)

// metrics.go - derived quantities for one spot: power conversions, the
// composite quality score, and the free-text descriptions that feed the
// COMMENT/QSLMSG fields.

// Watts converts transmit power in dBm to Watts.
func Watts(dbm int8) float64 {
	return math.Pow(10, float64(dbm)/10-3)
}

// DBmToMilliwatts converts transmit power in dBm to milliwatts,
// rounded to 4 significant digits.
func DBmToMilliwatts(dbm int8) float64 {
	return roundSignificant(math.Pow(10, float64(dbm)/10), 4)
}

// SpotQuality computes the composite quality score used for best-spot
// selection. It is monotonically increasing in SNR and distance and
// decreasing in transmit power. Exact bit-for-bit parity with the
// published reference is not a goal; only the relative ordering
// matters, so every rounding point is fixed here:
//
//  1. power dBm -> mW, rounded to 4 significant digits
//  2. the distance and power log terms are evaluated at full float64
//     precision
//  3. the final score is rounded to one decimal place
//
// The score is the SNR margin above the WSPR decode floor (-31 dB)
// plus a distance credit and minus a power debit, both in dB.
func SpotQuality(s Spot) float64 {
	mw := DBmToMilliwatts(s.Power)

	km := float64(s.Distance)
	if km < 1 {
		km = 1
	}

	raw := (float64(s.SNR) + 31.0) + 10*math.Log10(km) - 10*math.Log10(mw)
	return math.Round(raw*10) / 10
}

// roundSignificant rounds v to the given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Pow(10, float64(digits)-math.Ceil(math.Log10(math.Abs(v))))
	return math.Round(v*mag) / mag
}

// FormatPower renders transmit power as a human-readable string with
// stepped rounding, from nanowatts up to kilowatts.
func FormatPower(dbm int8) string {
	round := func(num, mul float64) float64 {
		return math.Round(num/mul) * mul
	}

	watts := Watts(dbm)

	switch {
	case watts < 1e-6:
		return fmt.Sprintf("%g nW", watts*1e9)
	case watts < 1e-5:
		return fmt.Sprintf("%.1f µW", watts*1e6)
	case watts < 1e-4:
		return fmt.Sprintf("%.0f µW", round(watts, 1e-6)*1e6)
	case watts < 1e-3:
		return fmt.Sprintf("%.0f µW", round(watts, 1e-5)*1e6)
	case watts < 1e-2:
		return fmt.Sprintf("%.1f mW", watts*1e3)
	case watts < 1e-1:
		return fmt.Sprintf("%.0f mW", round(watts, 1e-3)*1e3)
	case watts < 1e0:
		return fmt.Sprintf("%.0f mW", round(watts, 1e-2)*1e3)
	case watts < 1e1:
		return fmt.Sprintf("%.1f W", watts)
	case watts < 1e2:
		return fmt.Sprintf("%.0f W", round(watts, 1e0))
	case watts < 1e3:
		return fmt.Sprintf("%.0f W", round(watts, 1e1))
	default:
		return fmt.Sprintf("%.1f kW", watts/1e3)
	}
}

// FormatFrequency renders a frequency in Hz with an auto-scaled unit.
// Used in free-text fields when the band is unknown.
func FormatFrequency(hz uint64) string {
	switch {
	case hz < 1_000:
		return fmt.Sprintf("%d Hz", hz)
	case hz < 1_000_000:
		return fmt.Sprintf("%g kHz", float64(hz)/1e3)
	case hz < 1_000_000_000:
		return fmt.Sprintf("%g MHz", float64(hz)/1e6)
	default:
		return fmt.Sprintf("%g GHz", float64(hz)/1e9)
	}
}

// BandDisplay returns the free-text band description for a spot:
// "80 m" for a known band, the scaled frequency otherwise.
func BandDisplay(s Spot) string {
	if b, ok := GetBandByID(s.Band); ok {
		return b.Display()
	}
	return FormatFrequency(s.Frequency)
}

// PairDescription builds the COMMENT/QSLMSG text for a reciprocal pair.
// bandStr covers both legs ("80 m" or "80 m (RX 40 m)"); the signal
// figures describe the inbound leg, i.e. the remote station as the
// target heard it.
func PairDescription(bandStr string, powerDBm, snr, drift int8, distanceKm uint32) string {
	return fmt.Sprintf("2-way WSPR spot on %s with %s (%d dBm), SNR %d dB, drift %+d Hz/s, distance %d km",
		bandStr, FormatPower(powerDBm), powerDBm, snr, drift, distanceKm)
}

// BestSpotDescription builds the COMMENT/QSLMSG text for a legacy
// one-way best spot, embedding the quality score.
func BestSpotDescription(s ScoredSpot) string {
	return fmt.Sprintf("WSPR spot on %s with %s (%d dBm), SNR %d dB, drift %+d Hz/s, distance %d km, SpotQ %.1f",
		BandDisplay(s.Spot), FormatPower(s.Power), s.Power, s.SNR, s.Drift, s.Distance, s.Quality)
}
