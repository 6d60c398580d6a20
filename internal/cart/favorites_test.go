package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_Toggle(t *testing.T) {
	t.Parallel()

	storage := NewMemoryStorage()
	favorites, err := NewFavorites(storage)
	require.NoError(t, err)

	added, err := favorites.Toggle(FavoriteItem{Name: "Rolex Submariner", Price: "$12,500"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, favorites.Contains("Rolex Submariner"))
	assert.Equal(t, 1, favorites.Count())

	removed, err := favorites.Toggle(FavoriteItem{Name: "Rolex Submariner"})
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, favorites.Contains("Rolex Submariner"))
	assert.Equal(t, 0, favorites.Count())
}

func TestFavorites_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	storage := NewMemoryStorage()
	favorites, err := NewFavorites(storage)
	require.NoError(t, err)

	_, err = favorites.Toggle(FavoriteItem{Name: "Omega Speedmaster", Price: "$8,500", Brand: "Omega"})
	require.NoError(t, err)

	reloaded, err := NewFavorites(storage)
	require.NoError(t, err)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, "Omega Speedmaster", reloaded.Items()[0].Name)
}
