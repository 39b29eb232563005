package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCart(t *testing.T) {
	t.Run("ValidSnapshot", func(t *testing.T) {
		data := []byte(`[
			{"product":{"id":1,"title":"iPhone 13","price":799},"quantity":2},
			{"product":{"id":6,"title":"Sony WH-1000XM4","price":349},"quantity":1}
		]`)

		items, err := decodeCart(data)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].Product.ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("DropsEntriesWithInvalidShape", func(t *testing.T) {
		data := []byte(`[
			{"product":{"id":0,"title":"ghost"},"quantity":1},
			{"product":{"id":3,"title":"MacBook Air","price":1199},"quantity":0},
			{"product":{"id":4,"title":"Dell XPS 13","price":999},"quantity":3}
		]`)

		items, err := decodeCart(data)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Product.ID)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := decodeCart([]byte(`{"not":"an array"`))
		require.Error(t, err)
	})

	t.Run("WrongTopLevelShape", func(t *testing.T) {
		_, err := decodeCart([]byte(`{"cart":[]}`))
		require.Error(t, err)
	})
}

func TestDecodeWishlist(t *testing.T) {
	t.Run("ValidSnapshot", func(t *testing.T) {
		data := []byte(`[{"id":7,"title":"iPad Pro","price":799}]`)

		ps, err := decodeWishlist(data)
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, "iPad Pro", ps[0].Title)
	})

	t.Run("DropsEntriesWithoutID", func(t *testing.T) {
		data := []byte(`[{"title":"nameless"},{"id":8,"title":"Canon EOS R6"}]`)

		ps, err := decodeWishlist(data)
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, 8, ps[0].ID)
	})
}

func TestDecodeSession(t *testing.T) {
	t.Run("ValidSnapshot", func(t *testing.T) {
		data := []byte(`{"id":"u-1","name":"John Doe","email":"john@example.com"}`)

		u, ok, err := decodeSession(data)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "John Doe", u.Name)
	})

	t.Run("MissingIDMeansNoSession", func(t *testing.T) {
		data := []byte(`{"name":"John Doe"}`)

		_, ok, err := decodeSession(data)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, _, err := decodeSession([]byte(`null and void`))
		require.Error(t, err)
	})
}
