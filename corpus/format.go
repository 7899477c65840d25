package corpus

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies how a corpus file is encoded on disk.
type Format uint8

const (
	// FormatPlain is an uncompressed text file.
	FormatPlain Format = iota
	// FormatGzip is a gzip stream (.gz).
	FormatGzip
	// FormatZstd is a zstandard stream (.zst, .zstd).
	FormatZstd
	// FormatLZ4 is an LZ4 frame (.lz4).
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".zst", ".zstd":
		return FormatZstd
	case ".lz4":
		return FormatLZ4
	default:
		return FormatPlain
	}
}

// TrimFormatExt strips a compression extension from name, so "a.txt.zst"
// becomes "a.txt".
func TrimFormatExt(name string) string {
	if DetectFormat(name) == FormatPlain {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// decoder wraps r with the decompressor for f. The returned close function
// releases decoder resources and must always be called.
func decoder(r io.Reader, f Format) (io.Reader, func(), error) {
	switch f {
	case FormatGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case FormatZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case FormatLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
