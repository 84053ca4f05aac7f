package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hupe1980/cinema"
	"github.com/hupe1980/cinema/catalog"
	"github.com/hupe1980/cinema/codec"
	"github.com/hupe1980/cinema/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg, err := parseFlags(args, &stderr)
	require.NoError(t, err)
	err = run(t.Context(), cfg, &stdout, &stderr)
	return stdout.String(), err
}

func writeCatalog(t *testing.T, name string, movies ...*cinema.Movie) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, catalog.Encode(f, slices.Values(movies),
		catalog.WithCompression(catalog.CompressionFromPath(path))))
	return path
}

func TestDemo(t *testing.T) {
	out, err := runArgs(t)
	require.NoError(t, err)

	want := "Inception\n" +
		"Annihilation\n" +
		"The Shawshank Redemption\n" +
		"The Dark Knight\n" +
		"0. Inception\n" +
		"1. Annihilation\n" +
		"Annihilation (📅2018, 🎥Sci-Fi, ⭐9.5).\n" +
		"The Shawshank Redemption\n" +
		"The Dark Knight\n"
	assert.Equal(t, want, out)
}

func TestQueryBuiltin(t *testing.T) {
	out, err := runArgs(t, "-filter", "year__lt=2010", "-filter", "rating__gte=9.0")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption (📅1994, 🎥Drama, ⭐10.0).\n"+
		"The Dark Knight (📅2008, 🎥Action, ⭐9.0).\n", out)
}

func TestQueryDetails(t *testing.T) {
	out, err := runArgs(t, "-details", "Ideocracy")
	require.NoError(t, err)
	assert.Equal(t, "Ideocracy (📅2006, 🎥Comedy, ⭐6.5).\n", out)

	_, err = runArgs(t, "-remove", "Ideocracy", "-details", "Ideocracy")
	assert.ErrorIs(t, err, cinema.ErrNotFound)
}

func TestQueryErrors(t *testing.T) {
	_, err := runArgs(t, "-filter", "year__foo=5")
	assert.ErrorIs(t, err, cinema.ErrInvalidOperator)

	_, err = runArgs(t, "-filter", "budget__gt=1000")
	assert.ErrorIs(t, err, cinema.ErrInvalidField)

	_, err = runArgs(t, "-remove", "Nope")
	assert.ErrorIs(t, err, cinema.ErrNotFound)

	_, err = runArgs(t, "-filter", "genre=Drama", "-codec", "xml")
	assert.ErrorContains(t, err, "unknown codec")

	_, err = runArgs(t, "-log-level", "loud")
	assert.ErrorContains(t, err, "log-level")
}

func TestQueryCatalogs(t *testing.T) {
	a := writeCatalog(t, "a.json.zst",
		cinema.NewMovie("Inception", 2010, "Sci-Fi", 8.5),
		cinema.NewMovie("Heat", 1995, "Crime", 8.3),
	)
	b := writeCatalog(t, "b.json.lz4",
		cinema.NewMovie("Inception", 2010, "Sci-Fi", 8.8),
		cinema.NewMovie("Alien", 1979, "Sci-Fi", 8.5),
	)

	out, err := runArgs(t, "-catalog", a, "-catalog", b, "-filter", "genre=Sci-Fi", "-output", "json")
	require.NoError(t, err)

	got, err := catalog.Decode(bytes.NewBufferString(out), catalog.WithCodec(codec.JSON{}))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Inception", got[0].Title)
	assert.Equal(t, 8.8, got[0].Rating, "later catalog wins")
	assert.Equal(t, "Alien", got[1].Title)
}

func TestLoadCatalogsMissingFile(t *testing.T) {
	_, err := loadCatalogs(t.Context(), []string{filepath.Join(t.TempDir(), "missing.json")}, codec.Default)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	cfg, err := parseFlags([]string{"-catalog", "a.json", "-catalog", "b.json", "-filter", "genre=Drama"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, multiFlag{"a.json", "b.json"}, cfg.catalogs)
	assert.True(t, cfg.query())

	cfg, err = parseFlags(nil, &stderr)
	require.NoError(t, err)
	assert.False(t, cfg.query())

	_, err = parseFlags([]string{"-output", "yaml"}, &stderr)
	assert.Error(t, err)

	_, err = parseFlags([]string{"stray"}, &stderr)
	assert.Error(t, err)
}

func TestParseCriteria(t *testing.T) {
	got, err := parseCriteria([]string{
		"year__lt=2010",
		"rating__gte=9.0",
		"genre=Sci-Fi",
		`title="1984"`,
		"title__contains=The Dark",
	})
	require.NoError(t, err)
	assert.Equal(t, metadata.Criteria{
		"year__lt":        int64(2010),
		"rating__gte":     9.0,
		"genre":           "Sci-Fi",
		"title":           "1984",
		"title__contains": "The Dark",
	}, got)

	for _, bad := range [][]string{{"genre"}, {"=Drama"}, {"genre=a", "genre=b"}, {`title="open`}} {
		_, err := parseCriteria(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"2010", int64(2010)},
		{"-3", int64(-3)},
		{"9.5", 9.5},
		{"1e3", 1000.0},
		{"true", true},
		{"false", false},
		{"nan", "nan"},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"-Infinity", "-Infinity"},
		{"Sci-Fi", "Sci-Fi"},
		{"e", "e"},
		{`"1917"`, "1917"},
		{`"true"`, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryTitleOperands(t *testing.T) {
	path := writeCatalog(t, "numeric.json",
		cinema.NewMovie("1917", 2019, "War", 8.2),
		cinema.NewMovie("Infinity", 1996, "Drama", 6.5),
		cinema.NewMovie("Inception", 2010, "Sci-Fi", 8.5),
	)

	out, err := runArgs(t, "-catalog", path, "-filter", `title="1917"`)
	require.NoError(t, err)
	assert.Equal(t, "1917 (📅2019, 🎥War, ⭐8.2).\n", out)

	out, err = runArgs(t, "-catalog", path, "-filter", "title=Infinity")
	require.NoError(t, err)
	assert.Equal(t, "Infinity (📅1996, 🎥Drama, ⭐6.5).\n", out)
}
