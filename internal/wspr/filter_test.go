package wspr

import "testing"

func filterSpot(id uint64, reporter, callsign string) Spot {
	return Spot{SpotID: id, Reporter: reporter, Callsign: callsign}
}

func TestFilterByCall(t *testing.T) {
	spots := []Spot{
		filterSpot(1, "K1ABC", "G0UPL"),
		filterSpot(2, "W9XYZ", "K1ABC"),
		filterSpot(3, "W9XYZ", "G0UPL"),
		filterSpot(4, "K1ABC", "DL2OBT"),
	}

	t.Run("reporter role", func(t *testing.T) {
		got := FilterByCall(spots, "K1ABC", RoleReporter)
		if len(got) != 2 || got[0].SpotID != 1 || got[1].SpotID != 4 {
			t.Errorf("got %v, want spots 1 and 4 in input order", got)
		}
	})

	t.Run("transmitter role", func(t *testing.T) {
		got := FilterByCall(spots, "K1ABC", RoleTransmitter)
		if len(got) != 1 || got[0].SpotID != 2 {
			t.Errorf("got %v, want spot 2", got)
		}
	})

	t.Run("any role preserves order", func(t *testing.T) {
		got := FilterByCall(spots, "K1ABC", RoleAny)
		want := []uint64{1, 2, 4}
		if len(got) != len(want) {
			t.Fatalf("got %d spots, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].SpotID != id {
				t.Errorf("position %d: got spot %d, want %d", i, got[i].SpotID, id)
			}
		}
	})

	t.Run("no suffix stripping", func(t *testing.T) {
		compound := []Spot{filterSpot(9, "K1ABC/P", "G0UPL")}
		if got := FilterByCall(compound, "K1ABC", RoleReporter); len(got) != 0 {
			t.Errorf("K1ABC must not match K1ABC/P, got %v", got)
		}
	})
}

func TestExcludedSet(t *testing.T) {
	t.Run("normalizes entries", func(t *testing.T) {
		set := NewExcludedSet("dl6wab", " g0upl ")
		if !set.Contains("DL6WAB") || !set.Contains("G0UPL") {
			t.Error("set should contain normalized callsigns")
		}
		if set.Contains("K1ABC") {
			t.Error("set should not contain K1ABC")
		}
	})

	t.Run("ignores empty entries", func(t *testing.T) {
		set := NewExcludedSet("", "  ")
		if len(set) != 0 {
			t.Errorf("got %d entries, want 0", len(set))
		}
	})

	t.Run("defaults include DL6WAB", func(t *testing.T) {
		set := NewExcludedSet(DefaultExcludedCalls...)
		if !set.Contains("DL6WAB") {
			t.Error("DL6WAB should be excluded by default")
		}
	})
}

func TestNormalizeCall(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"k1abc", "K1ABC"},
		{" g0upl/p ", "G0UPL/P"},
		{`EA5\\DL2OBT`, "EA5/DL2OBT"},
		{`"W9XYZ"`, "W9XYZ"},
	}

	for _, tt := range tests {
		if got := NormalizeCall(tt.in); got != tt.want {
			t.Errorf("NormalizeCall(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateCallsign(t *testing.T) {
	valid := []string{"K1ABC", "G0UPL/P", "DL/ON4KHG/P"}
	invalid := []string{"", "///", "THISCALLSIGNISWAYTOOLONG"}

	for _, c := range valid {
		if !ValidateCallsign(c) {
			t.Errorf("ValidateCallsign(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if ValidateCallsign(c) {
			t.Errorf("ValidateCallsign(%q) = true, want false", c)
		}
	}
}
