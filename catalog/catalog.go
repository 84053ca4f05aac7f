// Package catalog reads and writes movie lists as JSON documents, optionally
// framed with zstd or lz4.
//
// A catalog is a JSON array of objects with the keys title, year, genre and
// rating:
//
//	[{"title": "Inception", "year": 2010, "genre": "Sci-Fi", "rating": 8.5}]
//
// The package works on io.Reader and io.Writer only; opening files is left
// to the caller.
package catalog

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/hupe1980/cinema"
	"github.com/hupe1980/cinema/codec"
)

type options struct {
	compression Compression
	codec       codec.Codec
}

// Option configures Decode and Encode.
type Option func(*options)

// WithCompression selects the stream framing. The default is None.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec selects the JSON codec. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func buildOptions(opts []Option) options {
	o := options{
		compression: None,
		codec:       codec.Default,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Decode reads a catalog from r. null entries are skipped.
func Decode(r io.Reader, opts ...Option) ([]*cinema.Movie, error) {
	o := buildOptions(opts)

	rc, err := o.compression.reader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s stream: %w", o.compression, err)
	}

	var movies []*cinema.Movie
	if err := o.codec.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("catalog: decode with %s: %w", o.codec.Name(), err)
	}
	return slices.DeleteFunc(movies, func(m *cinema.Movie) bool { return m == nil }), nil
}

// Encode writes the movies to w as a catalog.
func Encode(w io.Writer, movies iter.Seq[*cinema.Movie], opts ...Option) error {
	o := buildOptions(opts)

	list := make([]*cinema.Movie, 0)
	for m := range movies {
		if m != nil {
			list = append(list, m)
		}
	}

	data, err := o.codec.Marshal(list)
	if err != nil {
		return fmt.Errorf("catalog: encode with %s: %w", o.codec.Name(), err)
	}

	wc, err := o.compression.writer(w)
	if err != nil {
		return err
	}
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("catalog: write %s stream: %w", o.compression, err)
	}
	return wc.Close()
}
