package wspr

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

func writeArchive(t *testing.T, name string, compress func(io.Writer) io.WriteCloser) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}

	var w io.WriteCloser = f
	if compress != nil {
		w = compress(f)
	}
	if _, err := io.WriteString(w, strings.Join(validRecord(), ",")+"\n"); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if compress != nil {
		if err := w.Close(); err != nil {
			t.Fatalf("close compressor: %v", err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", name, err)
	}
	return path
}

func readOneSpot(t *testing.T, path string) Spot {
	t.Helper()

	r, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput(%s): %v", path, err)
	}
	defer r.Close()

	spots, err := ReadSpots(r, nil, &ParseStats{}, 0)
	if err != nil {
		t.Fatalf("ReadSpots: %v", err)
	}
	if len(spots) != 1 {
		t.Fatalf("got %d spots, want 1", len(spots))
	}
	return spots[0]
}

func TestOpenInput(t *testing.T) {
	t.Run("plain file", func(t *testing.T) {
		path := writeArchive(t, "spots.csv", nil)
		if spot := readOneSpot(t, path); spot.Reporter != "K1ABC" {
			t.Errorf("Reporter = %q, want K1ABC", spot.Reporter)
		}
	})

	t.Run("gzip archive", func(t *testing.T) {
		path := writeArchive(t, "spots.csv.gz", func(w io.Writer) io.WriteCloser {
			return pgzip.NewWriter(w)
		})
		if spot := readOneSpot(t, path); spot.SpotID != 2756527623 {
			t.Errorf("SpotID = %d, want 2756527623", spot.SpotID)
		}
	})

	t.Run("zstd archive", func(t *testing.T) {
		path := writeArchive(t, "spots.csv.zst", func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w)
			if err != nil {
				t.Fatalf("zstd.NewWriter: %v", err)
			}
			return zw
		})
		if spot := readOneSpot(t, path); spot.Callsign != "G0UPL" {
			t.Errorf("Callsign = %q, want G0UPL", spot.Callsign)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := OpenInput(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("expected error for a missing file")
		}
	})
}
