package cinema

// Key identifies a movie either by title or by reference.
type Key struct {
	title string
	movie *Movie
}

// Title returns a key that resolves by title.
func Title(title string) Key {
	return Key{title: title}
}

// Ref returns a key for a movie the caller already holds.
func Ref(m *Movie) Key {
	return Key{movie: m}
}

// Title returns the canonical title the key resolves to.
func (k Key) Title() string {
	if k.movie != nil {
		return k.movie.Title
	}
	return k.title
}

// Movie returns the referenced movie, or nil for a title key.
func (k Key) Movie() *Movie {
	return k.movie
}

// String returns the title.
func (k Key) String() string {
	return k.Title()
}
