package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()

	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)

	return store, storage
}

func TestStore_Add_MergesByName(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500", Brand: "Rolex"}))
	require.NoError(t, store.Add(Line{Name: "Omega Speedmaster", Price: "$8,500", Brand: "Omega"}))
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500", Brand: "Rolex"}))

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, store.Count())
}

func TestStore_QuantityClamping(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))

	require.NoError(t, store.SetQuantity(0, 25))
	assert.Equal(t, MaxQuantity, store.Lines()[0].Quantity)

	require.NoError(t, store.SetQuantity(0, 0))
	assert.Equal(t, MinQuantity, store.Lines()[0].Quantity)

	require.NoError(t, store.UpdateQuantity(0, -5))
	assert.Equal(t, MinQuantity, store.Lines()[0].Quantity)

	require.NoError(t, store.SetQuantity(0, 9))
	require.NoError(t, store.UpdateQuantity(0, 5))
	assert.Equal(t, MaxQuantity, store.Lines()[0].Quantity)
}

func TestStore_UpdateQuantity_OutOfRangeIndex(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	assert.Error(t, store.UpdateQuantity(0, 1))
	assert.Error(t, store.SetQuantity(-1, 1))
	assert.Error(t, store.Remove(3))
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))
	require.NoError(t, store.Add(Line{Name: "Omega Speedmaster", Price: "$8,500"}))

	require.NoError(t, store.Remove(0))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Omega Speedmaster", lines[0].Name)
}

func TestStore_Summary(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Add(Line{Name: "Rolex Daytona", Price: "$1,700,000"}))

	summary := store.Summary()
	assert.InDelta(t, 1700000, summary.Subtotal, 0.001)
	assert.InDelta(t, 136000, summary.Tax, 0.001)
	assert.InDelta(t, 1836000, summary.Total, 0.001)
	assert.Equal(t, "$1,836,000", FormatPrice(summary.Total))
}

func TestStore_Summary_MultipleLines(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))
	require.NoError(t, store.Add(Line{Name: "Omega Speedmaster", Price: "$8,500"}))
	require.NoError(t, store.SetQuantity(0, 2))

	summary := store.Summary()
	assert.InDelta(t, 33500, summary.Subtotal, 0.001)
	assert.InDelta(t, 33500*1.08, summary.Total, 0.001)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500", Image: "images/sub.jpg"}))
	require.NoError(t, store.SetQuantity(0, 3))

	reloaded, err := NewStore(storage)
	require.NoError(t, err)

	lines := reloaded.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Rolex Submariner", lines[0].Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "images/sub.jpg", lines[0].Image)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	storage := NewMemoryStorage()
	store, err := NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Lines())

	_, err = storage.Load(keyCartItems)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "$950", FormatPrice(950))
	assert.Equal(t, "$12,500", FormatPrice(12500))
	assert.Equal(t, "$1,836,000", FormatPrice(1836000))
	// Floor-formatted, no cents.
	assert.Equal(t, "$12,500", FormatPrice(12500.99))
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1700000, parsePrice("$1,700,000"), 0.001)
	assert.InDelta(t, 950, parsePrice("$950"), 0.001)
	assert.InDelta(t, 0, parsePrice("not a price"), 0.001)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	store, err := NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.Add(Line{Name: "Rolex Submariner", Price: "$12,500"}))

	reloaded, err := NewStore(storage)
	require.NoError(t, err)
	require.Len(t, reloaded.Lines(), 1)

	require.NoError(t, storage.Delete(keyCartItems))
	_, err = storage.Load(keyCartItems)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
