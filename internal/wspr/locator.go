package wspr

import (
	"fmt"
	"math"
	"strings"
)

// locator.go - Maidenhead locator math, used when the dump's distance
// column is absent. Conversions use the grid-square center point.

const earthRadiusKm = 6371.0

// LocatorToLatLon converts a 4, 6, or 8 character Maidenhead locator
// to the latitude and longitude of the grid-square center.
func LocatorToLatLon(locator string) (lat, lon float64, err error) {
	locator = strings.ToUpper(locator)

	if len(locator) != 4 && len(locator) != 6 && len(locator) != 8 {
		return 0, 0, fmt.Errorf("invalid locator length %d (must be 4, 6, or 8)", len(locator))
	}
	if locator[0] < 'A' || locator[0] > 'R' || locator[1] < 'A' || locator[1] > 'R' {
		return 0, 0, fmt.Errorf("invalid field characters (must be A-R)")
	}
	if locator[2] < '0' || locator[2] > '9' || locator[3] < '0' || locator[3] > '9' {
		return 0, 0, fmt.Errorf("invalid square characters (must be 0-9)")
	}
	if len(locator) >= 6 {
		if locator[4] < 'A' || locator[4] > 'X' || locator[5] < 'A' || locator[5] > 'X' {
			return 0, 0, fmt.Errorf("invalid subsquare characters (must be A-X)")
		}
	}
	if len(locator) == 8 {
		if locator[6] < '0' || locator[6] > '9' || locator[7] < '0' || locator[7] > '9' {
			return 0, 0, fmt.Errorf("invalid extended square characters (must be 0-9)")
		}
	}

	// Field: 20 deg lon x 10 deg lat; square: 2 x 1 deg.
	lon = float64(locator[0]-'A')*20.0 + float64(locator[2]-'0')*2.0
	lat = float64(locator[1]-'A')*10.0 + float64(locator[3]-'0')*1.0

	// Subsquare: 5' lon x 2.5' lat.
	if len(locator) >= 6 {
		lon += float64(locator[4]-'A') * (2.0 / 24.0)
		lat += float64(locator[5]-'A') * (1.0 / 24.0)
	}

	// Extended square: 0.5' lon x 0.25' lat.
	if len(locator) == 8 {
		lon += float64(locator[6]-'0') * (2.0 / 240.0)
		lat += float64(locator[7]-'0') * (1.0 / 240.0)
	}

	// Shift to the square center.
	switch len(locator) {
	case 4:
		lon += 1.0
		lat += 0.5
	case 6:
		lon += 2.0 / 48.0
		lat += 1.0 / 48.0
	case 8:
		lon += 2.0 / 480.0
		lat += 1.0 / 480.0
	}

	return lat - 90.0, lon - 180.0, nil
}

// GreatCircleKm returns the haversine great-circle distance in km
// between two coordinates.
func GreatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 *= math.Pi / 180.0
	lon1 *= math.Pi / 180.0
	lat2 *= math.Pi / 180.0
	lon2 *= math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceFromLocators returns the great-circle distance in km between
// two Maidenhead locators.
func DistanceFromLocators(loc1, loc2 string) (float64, error) {
	lat1, lon1, err := LocatorToLatLon(loc1)
	if err != nil {
		return 0, fmt.Errorf("invalid locator %q: %w", loc1, err)
	}
	lat2, lon2, err := LocatorToLatLon(loc2)
	if err != nil {
		return 0, fmt.Errorf("invalid locator %q: %w", loc2, err)
	}
	return GreatCircleKm(lat1, lon1, lat2, lon2), nil
}

// IsValidLocator checks whether a string is a valid Maidenhead locator.
func IsValidLocator(locator string) bool {
	_, _, err := LocatorToLatLon(locator)
	return err == nil
}
