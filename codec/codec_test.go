package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	in := []doc{{Title: "Inception", Year: 2010, Rating: 8.5}, {Title: "Annihilation", Year: 2018, Rating: 9.5}}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name)
			data, err := c.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, string(MustMarshal(JSON{}, in)), string(data))

			var out []doc
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestMustMarshalPanics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
	assert.NotPanics(t, func() { MustMarshal(nil, doc{}) })
}
