package wspr

import "testing"

func TestGetBand(t *testing.T) {
	tests := []struct {
		name    string
		freqMHz float64
		wantID  int32
		want    string
	}{
		{"2200m lower edge", 0.1357, Band2200m, "2200m"},
		{"630m", 0.4742, Band630m, "630m"},
		{"160m lower edge", 1.800, Band160m, "160m"},
		{"160m upper edge", 2.000, Band160m, "160m"},
		{"below 160m", 1.7999, BandUnknown, ""},
		{"80m WSPR segment", 3.5940, Band80m, "80m"},
		{"80m full allocation", 3.900, Band80m, "80m"},
		{"40m WSPR segment", 7.0398, Band40m, "40m"},
		{"30m", 10.1402, Band30m, "30m"},
		{"20m WSPR segment", 14.0971, Band20m, "20m"},
		{"10m", 28.1261, Band10m, "10m"},
		{"6m", 52.000, Band6m, "6m"},
		{"2m", 144.490, Band2m, "2m"},
		{"70cm", 432.350, Band70cm, "70cm"},
		{"23cm", 1296.6, Band23cm, "23cm"},
		{"1750m LowFER", 0.1750, Band1750m, "1750m"},
		{"6mm", 47100.0, Band6mm, "6mm"},
		{"1mm upper edge", 250000.0, Band1mm, "1mm"},
		{"between 12m and 10m", 26.000, BandUnknown, ""},
		{"broadcast FM", 100.000, BandUnknown, ""},
		{"way out of table", 999999.0, BandUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, name := GetBand(tt.freqMHz)
			if id != tt.wantID || name != tt.want {
				t.Errorf("GetBand(%v) = (%d, %q), want (%d, %q)",
					tt.freqMHz, id, name, tt.wantID, tt.want)
			}
		})
	}
}

func TestGetBandByID(t *testing.T) {
	t.Run("known band", func(t *testing.T) {
		b, ok := GetBandByID(Band80m)
		if !ok || b.Name != "80m" {
			t.Errorf("GetBandByID(Band80m) = (%v, %v), want 80m", b, ok)
		}
	})

	t.Run("unknown band", func(t *testing.T) {
		if _, ok := GetBandByID(BandUnknown); ok {
			t.Error("GetBandByID(BandUnknown) should not resolve")
		}
	})
}

func TestBandDisplay(t *testing.T) {
	tests := []struct {
		id   int32
		want string
	}{
		{Band80m, "80 m"},
		{Band1_25m, "1.25 m"},
		{Band70cm, "70 cm"},
		{Band2200m, "2200 m"},
		{Band2_5mm, "2.5 mm"},
	}

	for _, tt := range tests {
		b, ok := GetBandByID(tt.id)
		if !ok {
			t.Fatalf("band %d not found", tt.id)
		}
		if got := b.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", b.Name, got, tt.want)
		}
	}
}

func TestIsWSPRFrequency(t *testing.T) {
	if !IsWSPRFrequency(14.0960) {
		t.Error("14.0960 MHz is inside the 20m WSPR segment")
	}
	if IsWSPRFrequency(14.200) {
		t.Error("14.200 MHz is outside every WSPR segment")
	}
}
