package wspr

// filter.go - relevance filtering. Matching is case-normalized exact
// comparison of sanitized callsigns; compound suffixes are significant.

// Role selects which side of a spot the target callsign must occupy.
type Role int

const (
	RoleReporter    Role = iota // target heard the remote station
	RoleTransmitter             // remote station heard the target
	RoleAny                     // either side
)

// Matches reports whether the target callsign occupies the given role
// in the spot. target must already be normalized (see NormalizeCall).
func Matches(s Spot, target string, role Role) bool {
	switch role {
	case RoleReporter:
		return s.Reporter == target
	case RoleTransmitter:
		return s.Callsign == target
	default:
		return s.Reporter == target || s.Callsign == target
	}
}

// FilterByCall returns the subsequence of spots where the target
// callsign appears in the given role, preserving input order.
func FilterByCall(spots []Spot, target string, role Role) []Spot {
	var out []Spot
	for _, s := range spots {
		if Matches(s, target, role) {
			out = append(out, s)
		}
	}
	return out
}

// RelevantTo builds a KeepFunc for streaming relevance filtering
// during the parse pass.
func RelevantTo(target string, role Role) KeepFunc {
	return func(s Spot) bool {
		return Matches(s, target, role)
	}
}

// ExcludedSet holds remote callsigns that must never produce a log
// entry (stations known not to log WSPR QSOs).
type ExcludedSet map[string]struct{}

// NewExcludedSet builds a set from normalized callsigns. Empty entries
// are ignored.
func NewExcludedSet(calls ...string) ExcludedSet {
	set := make(ExcludedSet, len(calls))
	for _, c := range calls {
		c = NormalizeCall(c)
		if c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the callsign is excluded.
func (e ExcludedSet) Contains(call string) bool {
	_, ok := e[call]
	return ok
}

// DefaultExcludedCalls lists stations excluded out of the box.
var DefaultExcludedCalls = []string{
	"DL6WAB", // Not logging WSPR QSOs
}
