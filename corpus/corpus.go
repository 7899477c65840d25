// Package corpus loads the texts the matchers are benchmarked against.
//
// Corpora are read from plain, gzip, zstd or LZ4 encoded files and profiled
// once on load so that reports can describe what was searched.
package corpus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	asmascii "github.com/segmentio/asm/ascii"
	asmutf8 "github.com/segmentio/asm/utf8"
)

// DefaultMaxSize bounds the decoded size of a corpus.
const DefaultMaxSize = 256 << 20

// Profile describes the byte content of a corpus.
type Profile struct {
	Bytes     int  `json:"bytes"`
	Runes     int  `json:"runes"`
	ASCII     bool `json:"ascii"`
	ValidUTF8 bool `json:"valid_utf8"`
}

// Document is a loaded corpus.
type Document struct {
	Name    string  `json:"name"`
	Text    string  `json:"-"`
	Format  Format  `json:"-"`
	Profile Profile `json:"profile"`
}

type options struct {
	maxSize     int64
	requireUTF8 bool
}

// Option configures corpus loading.
type Option func(*options)

// WithMaxSize limits the decoded size of a corpus. Non-positive values
// restore DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxSize
		}
		o.maxSize = n
	}
}

// WithRequireUTF8 rejects corpora that are not valid UTF-8.
func WithRequireUTF8(require bool) Option {
	return func(o *options) {
		o.requireUTF8 = require
	}
}

func newOptions(opts []Option) options {
	o := options{maxSize: DefaultMaxSize}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Load reads the corpus at path, decoding it according to its extension.
// The document is named after the file with compression extensions removed.
func Load(ctx context.Context, path string, opts ...Option) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	name := TrimFormatExt(filepath.Base(path))
	return Read(ctx, name, f, DetectFormat(path), opts...)
}

// Read decodes a corpus from r.
func Read(ctx context.Context, name string, r io.Reader, format Format, opts ...Option) (Document, error) {
	o := newOptions(opts)

	dr, closeFn, err := decoder(r, format)
	if err != nil {
		return Document{}, &ErrDecode{Name: name, Format: format, cause: err}
	}
	defer closeFn()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(dr, o.maxSize+1))
	if err != nil {
		if format == FormatPlain {
			return Document{}, fmt.Errorf("read corpus %q: %w", name, err)
		}
		return Document{}, &ErrDecode{Name: name, Format: format, cause: err}
	}
	if n > o.maxSize {
		return Document{}, fmt.Errorf("%w: %q is larger than %d bytes", ErrTooLarge, name, o.maxSize)
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	raw := buf.Bytes()
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("%w: %q", ErrEmpty, name)
	}

	doc := Document{Name: name, Format: format, Profile: profile(raw)}
	if o.requireUTF8 && !doc.Profile.ValidUTF8 {
		return Document{}, fmt.Errorf("%w: %q", ErrInvalidUTF8, name)
	}
	doc.Text = string(raw)
	return doc, nil
}

// New wraps an in-memory text as a document.
func New(name, text string) Document {
	return Document{Name: name, Text: text, Profile: profile([]byte(text))}
}

func profile(b []byte) Profile {
	p := Profile{
		Bytes:     len(b),
		ASCII:     asmascii.Valid(b),
		ValidUTF8: asmutf8.Valid(b),
	}
	if p.ASCII {
		p.Runes = len(b)
	} else {
		p.Runes = utf8.RuneCount(b)
	}
	return p
}

// Excerpt returns length runes of the text starting at rune offset. When the
// text does not extend past offset+length runes, the first length runes are
// returned instead; a text shorter than length is returned whole.
func (d Document) Excerpt(offset, length int) string {
	if d.Profile.Runes > offset+length {
		return runeSlice(d.Text, offset, offset+length)
	}
	return runeSlice(d.Text, 0, length)
}

// runeSlice returns the runes of s in [from, to), clamped to the text.
func runeSlice(s string, from, to int) string {
	start, end := len(s), len(s)
	for i, r := 0, 0; i < len(s); r++ {
		if r == from {
			start = i
		}
		if r == to {
			end = i
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	if start > end {
		return ""
	}
	return s[start:end]
}
