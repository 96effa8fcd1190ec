package wspr

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// OpenInput opens a spot dump for reading. An empty path or "-" means
// stdin. Monthly archives compressed with gzip (.gz) or zstd (.zst)
// are decoded transparently; gzip decompression runs in parallel.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(bufio.NewReaderSize(os.Stdin, 256*1024)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := pgzip.NewReaderN(f, 256*1024, runtime.NumCPU())
		if err != nil {
			f.Close()
			return nil, err
		}
		return &chainCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &chainCloser{Reader: zr.IOReadCloser(), closers: []io.Closer{zr.IOReadCloser(), f}}, nil

	default:
		return &chainCloser{Reader: bufio.NewReaderSize(f, 256*1024), closers: []io.Closer{f}}, nil
	}
}

// chainCloser closes the decompressor before the underlying file.
type chainCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
