package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/cinema"
	"github.com/hupe1980/cinema/metadata"
)

func favorites() []*cinema.Movie {
	return []*cinema.Movie{
		cinema.NewMovie("Inception", 2010, "Sci-Fi", 8.5),
		cinema.NewMovie("Annihilation", 2018, "Sci-Fi", 9.5),
		cinema.NewMovie("The Shawshank Redemption", 1994, "Drama", 10),
		cinema.NewMovie("The Dark Knight", 2008, "Action", 9.0),
		cinema.NewMovie("Ideocracy", 2006, "Comedy", 6.5),
	}
}

// demo walks through the collection API on the built-in favorites.
func demo(w io.Writer, logger *cinema.Logger) error {
	c := cinema.New(cinema.WithLogger(logger))
	for _, m := range favorites() {
		c.Add(m)
	}

	if _, err := c.Remove(cinema.Title("Ideocracy")); err != nil {
		return err
	}

	for m := range c.All() {
		fmt.Fprintln(w, m)
	}

	scifi, err := c.Filter(metadata.Criteria{"genre": "Sci-Fi"})
	if err != nil {
		return err
	}
	i := 0
	for m := range scifi.All() {
		fmt.Fprintf(w, "%d. %s\n", i, m.Title)
		i++
	}

	d, err := c.Details(cinema.Title("Annihilation"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, d)

	old, err := c.Filter(metadata.Criteria{"year__lt": 2010, "rating__gte": 9.0})
	if err != nil {
		return err
	}
	for m := range old.All() {
		fmt.Fprintln(w, m)
	}
	return nil
}
