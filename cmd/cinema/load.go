package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/cinema"
	"github.com/hupe1980/cinema/catalog"
	"github.com/hupe1980/cinema/codec"
)

// loadCatalogs decodes the files concurrently and concatenates the results
// in argument order, so later files win on duplicate titles.
func loadCatalogs(ctx context.Context, paths []string, c codec.Codec) ([]*cinema.Movie, error) {
	lists := make([][]*cinema.Movie, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			movies, err := loadCatalog(path, c)
			if err != nil {
				return err
			}
			lists[i] = movies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*cinema.Movie
	for _, l := range lists {
		all = append(all, l...)
	}
	return all, nil
}

func loadCatalog(path string, c codec.Codec) ([]*cinema.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	movies, err := catalog.Decode(f,
		catalog.WithCompression(catalog.CompressionFromPath(path)),
		catalog.WithCodec(c),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return movies, nil
}
