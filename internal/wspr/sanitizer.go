package wspr

import "strings"

// sanitizer.go - callsign cleanup for archive rows.
//
// Rules:
//   - Replace double backslashes (\\) with forward slash for portable
//     callsigns (EA5\\DL2OBT -> EA5/DL2OBT)
//   - Strip double quotes ("), single quotes ('), stray backslashes (\)
//   - Preserve forward slashes for compound callsigns (G0UPL/P)

const (
	charDoubleQuote = '"'
	charSingleQuote = '\''
	charBackslash   = '\\'
)

// SanitizeCallsign removes dangerous characters from a callsign while
// preserving compound forms. The fast path allocates nothing when the
// callsign is already clean.
func SanitizeCallsign(callsign string) string {
	if !needsSanitization(callsign) {
		return callsign
	}
	return sanitizeBytes(callsign)
}

// NormalizeCall sanitizes, trims, and upper-cases a callsign for
// case-insensitive exact matching. No SSID or suffix stripping: "K1ABC"
// and "K1ABC/P" are distinct stations.
func NormalizeCall(callsign string) string {
	return strings.ToUpper(SanitizeCallsign(strings.TrimSpace(callsign)))
}

func needsSanitization(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == charDoubleQuote || c == charSingleQuote || c == charBackslash {
			return true
		}
	}
	return false
}

func sanitizeBytes(s string) string {
	buf := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == charBackslash && i+1 < len(s) && s[i+1] == charBackslash {
			buf = append(buf, '/')
			i++ // Skip the second backslash
			continue
		}

		if c == charDoubleQuote || c == charSingleQuote || c == charBackslash {
			continue
		}

		buf = append(buf, c)
	}

	return string(buf)
}

// ValidateCallsign is a sanity check on a normalized callsign: it must
// be non-empty, of plausible length, and contain an alphanumeric.
func ValidateCallsign(callsign string) bool {
	if len(callsign) == 0 || len(callsign) > 20 {
		return false
	}
	for i := 0; i < len(callsign); i++ {
		c := callsign[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}
