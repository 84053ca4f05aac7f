package cinema

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/cinema/metadata"
)

type entry struct {
	title string
	movie *Movie
}

// Collection is an insertion-ordered set of movies keyed by title.
//
// The zero value is an empty collection that logs nothing and records no
// metrics. A Collection is not safe for concurrent use.
type Collection struct {
	entries []entry
	index   map[string]int // title -> position in entries

	logger  *Logger
	metrics MetricsCollector
}

// New creates a collection. Movies passed with WithMovies are added in order.
func New(opts ...Option) *Collection {
	o := buildOptions(opts)
	c := &Collection{
		entries: make([]entry, 0, len(o.movies)),
		index:   make(map[string]int, len(o.movies)),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	for _, m := range o.movies {
		c.Add(m)
	}
	return c
}

// Collect creates a collection from a sequence of movies.
func Collect(seq iter.Seq[*Movie], opts ...Option) *Collection {
	c := New(opts...)
	for m := range seq {
		c.Add(m)
	}
	return c
}

// Add inserts m, replacing any movie with the same title. A replaced title
// keeps its position. A nil movie is ignored.
func (c *Collection) Add(m *Movie) {
	if m == nil {
		return
	}
	replaced := c.put(m)
	c.log().LogAdd(m.Title, replaced)
	c.stats().RecordAdd(replaced)
}

func (c *Collection) put(m *Movie) bool {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if pos, ok := c.index[m.Title]; ok {
		c.entries[pos].movie = m
		return true
	}
	c.index[m.Title] = len(c.entries)
	c.entries = append(c.entries, entry{title: m.Title, movie: m})
	return false
}

func (c *Collection) log() *Logger {
	if c.logger == nil {
		return noopLogger
	}
	return c.logger
}

func (c *Collection) stats() MetricsCollector {
	if c.metrics == nil {
		return NoopMetricsCollector{}
	}
	return c.metrics
}

// Remove deletes and returns the movie the key resolves to.
// It returns a *NotFoundError when the title is absent.
func (c *Collection) Remove(key Key) (*Movie, error) {
	start := time.Now()
	title := key.Title()

	pos, ok := c.index[title]
	if !ok {
		err := &NotFoundError{Title: title}
		c.log().LogRemove(title, err)
		c.stats().RecordRemove(time.Since(start), err)
		return nil, err
	}

	m := c.entries[pos].movie
	c.entries = slices.Delete(c.entries, pos, pos+1)
	delete(c.index, title)
	for i := pos; i < len(c.entries); i++ {
		c.index[c.entries[i].title] = i
	}

	c.log().LogRemove(title, nil)
	c.stats().RecordRemove(time.Since(start), nil)
	return m, nil
}

// Get returns the movie stored under the key's title.
func (c *Collection) Get(key Key) (*Movie, bool) {
	pos, ok := c.index[key.Title()]
	if !ok {
		return nil, false
	}
	return c.entries[pos].movie, true
}

// Details returns the summary of the movie the key names.
//
// A Ref key is answered from the referenced movie itself, whether or not it
// belongs to the collection. A Title key must resolve, otherwise a
// *NotFoundError is returned.
func (c *Collection) Details(key Key) (string, error) {
	if m := key.Movie(); m != nil {
		return m.Details(), nil
	}
	m, ok := c.Get(key)
	if !ok {
		err := &NotFoundError{Title: key.Title()}
		c.log().LogDetails(key.Title(), err)
		return "", err
	}
	return m.Details(), nil
}

// Contains reports whether a movie with the key's title is present.
func (c *Collection) Contains(key Key) bool {
	_, ok := c.index[key.Title()]
	return ok
}

// Len returns the number of movies.
func (c *Collection) Len() int {
	return len(c.entries)
}

// All iterates the movies in insertion order. Each call starts from the
// current contents.
func (c *Collection) All() iter.Seq[*Movie] {
	return func(yield func(*Movie) bool) {
		for i := 0; i < len(c.entries); i++ {
			if !yield(c.entries[i].movie) {
				return
			}
		}
	}
}

// Movies returns the movies in insertion order.
func (c *Collection) Movies() []*Movie {
	out := make([]*Movie, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].movie
	}
	return out
}

// Titles returns the keys in insertion order.
func (c *Collection) Titles() []string {
	out := make([]string, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].title
	}
	return out
}

// Filter returns a new collection holding the movies that satisfy every
// criterion, in insertion order.
//
//	c.Filter(metadata.Criteria{"year__lt": 2010, "rating__gte": 9.0})
func (c *Collection) Filter(criteria metadata.Criteria) (*Collection, error) {
	fs, err := criteria.FilterSet()
	if err != nil {
		c.log().LogFilter(len(criteria), 0, err)
		c.stats().RecordFilter(len(criteria), 0, 0, err)
		return nil, err
	}
	return c.FilterSet(fs)
}

// FilterSet is Filter for a pre-built filter set.
//
// Every filter is checked against the movie field table before any movie is
// evaluated, so an invalid set never yields a partial result.
func (c *Collection) FilterSet(fs *metadata.FilterSet) (*Collection, error) {
	start := time.Now()
	n := 0
	if fs != nil {
		n = len(fs.Filters)
	}

	result, err := c.filter(fs)
	if err != nil {
		c.log().LogFilter(n, 0, err)
		c.stats().RecordFilter(n, 0, time.Since(start), err)
		return nil, err
	}

	c.log().LogFilter(n, result.Len(), nil)
	c.stats().RecordFilter(n, result.Len(), time.Since(start), nil)
	return result, nil
}

func (c *Collection) filter(fs *metadata.FilterSet) (*Collection, error) {
	if fs != nil {
		for i := range fs.Filters {
			if err := checkFilter(&fs.Filters[i]); err != nil {
				return nil, err
			}
		}
	}

	movies := c.Movies()
	bm, err := metadata.Select(fs, movies)
	if err != nil {
		return nil, err
	}

	result := &Collection{
		entries: make([]entry, 0, bm.Cardinality()),
		index:   make(map[string]int, bm.Cardinality()),
		logger:  c.logger,
		metrics: c.metrics,
	}
	for pos := range bm.Positions() {
		result.put(movies[pos])
	}
	return result, nil
}

func checkFilter(f *metadata.Filter) error {
	field, err := ParseField(f.Key)
	if err != nil {
		return err
	}
	return f.Check(field.Kind())
}

// String renders the title -> movie mapping in insertion order, e.g.
//
//	{"Inception": Inception, "Annihilation": Annihilation}
func (c *Collection) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(e.title))
		sb.WriteString(": ")
		sb.WriteString(e.movie.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// GoString implements fmt.GoStringer for %#v.
func (c *Collection) GoString() string {
	return "cinema.Collection" + c.String()
}
