// Package cinema provides a small in-memory catalog of movies.
//
// A Collection keys movies by title, keeps insertion order, and answers
// lookups and predicate filters.
//
// # Quick Start
//
//	favorites := cinema.New()
//	favorites.Add(cinema.NewMovie("Inception", 2010, "Sci-Fi", 8.5))
//	favorites.Add(cinema.NewMovie("The Dark Knight", 2008, "Action", 9.0))
//
//	old, err := favorites.Filter(metadata.Criteria{
//	    "year__lt":    2010,
//	    "rating__gte": 9.0,
//	})
//
// # Keys
//
// Remove, Details and Get accept a Key, which is either a title or a movie
// reference:
//
//	favorites.Remove(cinema.Title("Inception"))
//	favorites.Details(cinema.Ref(movie))
//
// Details of a Ref key never consult the collection.
//
// # Filtering
//
// Criteria keys are "field" or "field__op" with op one of lt, lte, gt, gte,
// eq, ne or contains. The fields are title, year, genre and rating. All
// criteria must hold. An unknown operator fails with ErrInvalidOperator, an
// unknown field with ErrInvalidField, and an operand that cannot be compared
// with the field (for example contains on year) with ErrTypeMismatch. All
// three are reported before any movie is evaluated.
//
// # Ordering
//
// Iteration follows insertion order. Adding a movie whose title is already
// present replaces the stored movie in place; it keeps its position.
//
// # Concurrency
//
// A Collection is not safe for concurrent use.
package cinema
