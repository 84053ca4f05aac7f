package cinema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/cinema/metadata"
)

// Movie is a catalog record. Title identifies it within a Collection.
//
// Movies are not validated; Rating is conventionally 0.0-10.0.
type Movie struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
}

// NewMovie returns a movie with the given fields.
func NewMovie(title string, year int, genre string, rating float64) *Movie {
	return &Movie{
		Title:  title,
		Year:   year,
		Genre:  genre,
		Rating: rating,
	}
}

// String returns the title.
func (m *Movie) String() string {
	return m.Title
}

// Details returns a one-line summary, e.g.
//
//	Inception (📅2010, 🎥Sci-Fi, ⭐8.5).
func (m *Movie) Details() string {
	return fmt.Sprintf("%s (📅%d, 🎥%s, ⭐%s).", m.Title, m.Year, m.Genre, formatRating(m.Rating))
}

// Lookup implements metadata.Source over the movie fields.
func (m *Movie) Lookup(name string) (metadata.Value, bool) {
	f, err := ParseField(name)
	if err != nil {
		return metadata.Value{}, false
	}
	return f.Value(m), true
}

// formatRating keeps one decimal for whole numbers so 10 renders as 10.0.
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return s
	}
	if r == math.Trunc(r) {
		return s + ".0"
	}
	return s
}
