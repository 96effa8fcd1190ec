package wspr

// bands.go - ADIF band normalization from transmit frequency.
//
// Two-tier lookup: the narrow WSPR segment allocations are checked
// first (hot path for dump data), then the full amateur allocations.
// Frequencies outside every allocation map to the BandUnknown sentinel
// rather than failing; the record assembler simply omits the band
// fields in that case.

// Band IDs. Amateur HF bands are in the 100 range, VHF in 200,
// UHF in 300, SHF and above in 400, matching the lab's ClickHouse
// schema.
const (
	BandUnknown int32 = 0

	Band2200m int32 = 99
	Band1750m int32 = 100
	Band630m  int32 = 101
	Band160m  int32 = 102
	Band80m   int32 = 103
	Band60m   int32 = 104
	Band40m   int32 = 105
	Band30m   int32 = 106
	Band20m   int32 = 107
	Band17m   int32 = 108
	Band15m   int32 = 109
	Band12m   int32 = 110
	Band10m   int32 = 111

	Band8m    int32 = 199
	Band6m    int32 = 200
	Band4m    int32 = 201
	Band2m    int32 = 202
	Band1_25m int32 = 203

	Band70cm int32 = 300
	Band33cm int32 = 301
	Band23cm int32 = 302
	Band13cm int32 = 303

	Band9cm   int32 = 400
	Band5cm   int32 = 401
	Band3cm   int32 = 402
	Band1_2cm int32 = 403
	Band6mm   int32 = 404
	Band4mm   int32 = 405
	Band2_5mm int32 = 406
	Band2mm   int32 = 407
	Band1mm   int32 = 408
)

// BandInfo describes one band allocation.
type BandInfo struct {
	ID         int32   // Band identifier
	Name       string  // ADIF band name ("80m")
	MinFreqMHz float64 // Lower frequency edge (MHz), inclusive
	MaxFreqMHz float64 // Upper frequency edge (MHz), inclusive
	IsWSPR     bool    // True if this is a WSPR-allocated segment
}

// Display returns the human-readable band string used in free-text
// fields ("80 m" rather than the ADIF "80m").
func (b BandInfo) Display() string {
	if len(b.Name) == 0 {
		return ""
	}
	i := len(b.Name)
	for i > 0 && (b.Name[i-1] < '0' || b.Name[i-1] > '9') {
		i--
	}
	return b.Name[:i] + " " + b.Name[i:]
}

// WSPR-specific band allocations (200 Hz segments), sorted by frequency.
var wsprBands = []BandInfo{
	{ID: Band2200m, Name: "2200m", MinFreqMHz: 0.1357, MaxFreqMHz: 0.1378, IsWSPR: true},
	{ID: Band630m, Name: "630m", MinFreqMHz: 0.475, MaxFreqMHz: 0.479, IsWSPR: true},
	{ID: Band160m, Name: "160m", MinFreqMHz: 1.8366, MaxFreqMHz: 1.8380, IsWSPR: true},
	{ID: Band80m, Name: "80m", MinFreqMHz: 3.5926, MaxFreqMHz: 3.5941, IsWSPR: true},
	{ID: Band60m, Name: "60m", MinFreqMHz: 5.2872, MaxFreqMHz: 5.3662, IsWSPR: true},
	{ID: Band40m, Name: "40m", MinFreqMHz: 7.0386, MaxFreqMHz: 7.0400, IsWSPR: true},
	{ID: Band30m, Name: "30m", MinFreqMHz: 10.1387, MaxFreqMHz: 10.1402, IsWSPR: true},
	{ID: Band20m, Name: "20m", MinFreqMHz: 14.0956, MaxFreqMHz: 14.0972, IsWSPR: true},
	{ID: Band17m, Name: "17m", MinFreqMHz: 18.1046, MaxFreqMHz: 18.1061, IsWSPR: true},
	{ID: Band15m, Name: "15m", MinFreqMHz: 21.0946, MaxFreqMHz: 21.0961, IsWSPR: true},
	{ID: Band12m, Name: "12m", MinFreqMHz: 24.9246, MaxFreqMHz: 24.9261, IsWSPR: true},
	{ID: Band10m, Name: "10m", MinFreqMHz: 28.1246, MaxFreqMHz: 28.1261, IsWSPR: true},
	{ID: Band6m, Name: "6m", MinFreqMHz: 50.293, MaxFreqMHz: 50.313, IsWSPR: true},
	{ID: Band2m, Name: "2m", MinFreqMHz: 144.489, MaxFreqMHz: 144.491, IsWSPR: true},
	{ID: Band70cm, Name: "70cm", MinFreqMHz: 432.300, MaxFreqMHz: 432.400, IsWSPR: true},
	{ID: Band23cm, Name: "23cm", MinFreqMHz: 1296.5, MaxFreqMHz: 1296.7, IsWSPR: true},
}

// Amateur radio band allocations (full allocations, not just WSPR
// segments), sorted by frequency.
var amateurBands = []BandInfo{
	{ID: Band2200m, Name: "2200m", MinFreqMHz: 0.1357, MaxFreqMHz: 0.1378},
	{ID: Band1750m, Name: "1750m", MinFreqMHz: 0.160, MaxFreqMHz: 0.190},
	{ID: Band630m, Name: "630m", MinFreqMHz: 0.472, MaxFreqMHz: 0.479},
	{ID: Band160m, Name: "160m", MinFreqMHz: 1.800, MaxFreqMHz: 2.000},
	{ID: Band80m, Name: "80m", MinFreqMHz: 3.500, MaxFreqMHz: 4.000},
	{ID: Band60m, Name: "60m", MinFreqMHz: 5.060, MaxFreqMHz: 5.450},
	{ID: Band40m, Name: "40m", MinFreqMHz: 7.000, MaxFreqMHz: 7.300},
	{ID: Band30m, Name: "30m", MinFreqMHz: 10.100, MaxFreqMHz: 10.150},
	{ID: Band20m, Name: "20m", MinFreqMHz: 14.000, MaxFreqMHz: 14.350},
	{ID: Band17m, Name: "17m", MinFreqMHz: 18.068, MaxFreqMHz: 18.168},
	{ID: Band15m, Name: "15m", MinFreqMHz: 21.000, MaxFreqMHz: 21.450},
	{ID: Band12m, Name: "12m", MinFreqMHz: 24.890, MaxFreqMHz: 24.990},
	{ID: Band10m, Name: "10m", MinFreqMHz: 28.000, MaxFreqMHz: 29.700},
	{ID: Band8m, Name: "8m", MinFreqMHz: 40.000, MaxFreqMHz: 45.000},
	{ID: Band6m, Name: "6m", MinFreqMHz: 50.000, MaxFreqMHz: 54.000},
	{ID: Band4m, Name: "4m", MinFreqMHz: 70.000, MaxFreqMHz: 71.000},
	{ID: Band2m, Name: "2m", MinFreqMHz: 144.000, MaxFreqMHz: 148.000},
	{ID: Band1_25m, Name: "1.25m", MinFreqMHz: 219.000, MaxFreqMHz: 225.000},
	{ID: Band70cm, Name: "70cm", MinFreqMHz: 420.000, MaxFreqMHz: 450.000},
	{ID: Band33cm, Name: "33cm", MinFreqMHz: 902.000, MaxFreqMHz: 928.000},
	{ID: Band23cm, Name: "23cm", MinFreqMHz: 1240.000, MaxFreqMHz: 1300.000},
	{ID: Band13cm, Name: "13cm", MinFreqMHz: 2300.000, MaxFreqMHz: 2450.000},
	{ID: Band9cm, Name: "9cm", MinFreqMHz: 3300.000, MaxFreqMHz: 3500.000},
	{ID: Band5cm, Name: "5cm", MinFreqMHz: 5600.000, MaxFreqMHz: 5925.000},
	{ID: Band3cm, Name: "3cm", MinFreqMHz: 10000.000, MaxFreqMHz: 10500.000},
	{ID: Band1_2cm, Name: "1.25cm", MinFreqMHz: 24000.000, MaxFreqMHz: 24250.000},
	{ID: Band6mm, Name: "6mm", MinFreqMHz: 47000.000, MaxFreqMHz: 47200.000},
	{ID: Band4mm, Name: "4mm", MinFreqMHz: 75500.000, MaxFreqMHz: 81000.000},
	{ID: Band2_5mm, Name: "2.5mm", MinFreqMHz: 119980.000, MaxFreqMHz: 123000.000},
	{ID: Band2mm, Name: "2mm", MinFreqMHz: 134000.000, MaxFreqMHz: 149000.000},
	{ID: Band1mm, Name: "1mm", MinFreqMHz: 241000.000, MaxFreqMHz: 250000.000},
}

// GetBand normalizes a frequency in MHz to a band ID and ADIF band
// name. Returns (BandUnknown, "") for frequencies outside every
// amateur allocation.
//
// Thread-safety: stateless, read-only tables.
func GetBand(freqMHz float64) (band int32, bandName string) {
	if band, bandName, found := searchBands(freqMHz, wsprBands); found {
		return band, bandName
	}
	if band, bandName, found := searchBands(freqMHz, amateurBands); found {
		return band, bandName
	}
	return BandUnknown, ""
}

// searchBands performs binary search on a frequency-sorted band table.
func searchBands(freq float64, bands []BandInfo) (int32, string, bool) {
	left, right := 0, len(bands)-1

	for left <= right {
		mid := (left + right) / 2
		band := &bands[mid]

		if freq >= band.MinFreqMHz && freq <= band.MaxFreqMHz {
			return band.ID, band.Name, true
		}

		if freq < band.MinFreqMHz {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}

	return BandUnknown, "", false
}

// GetBandByID returns band information by band ID.
func GetBandByID(id int32) (band BandInfo, ok bool) {
	for _, b := range wsprBands {
		if b.ID == id {
			return b, true
		}
	}
	for _, b := range amateurBands {
		if b.ID == id {
			return b, true
		}
	}
	return BandInfo{}, false
}

// IsWSPRFrequency checks if a frequency falls within a WSPR segment.
func IsWSPRFrequency(freqMHz float64) bool {
	_, _, found := searchBands(freqMHz, wsprBands)
	return found
}
