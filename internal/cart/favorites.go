package cart

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FavoriteItem is one wishlist entry, keyed by product name like cart lines.
type FavoriteItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
	Brand string `json:"brand"`
}

// Favorites is the persisted wishlist.
type Favorites struct {
	storage Storage
	items   []FavoriteItem
}

// NewFavorites loads any previously persisted wishlist from storage.
func NewFavorites(storage Storage) (*Favorites, error) {
	f := &Favorites{storage: storage}

	data, err := storage.Load(keyFavorites)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return f, nil
		}

		return nil, err
	}

	if err := json.Unmarshal(data, &f.items); err != nil {
		return nil, errors.Wrap(err, "decode favorites")
	}

	return f, nil
}

// Toggle adds the item if absent, removes it if present. The boolean reports
// whether the item is a favorite after the call.
func (f *Favorites) Toggle(item FavoriteItem) (bool, error) {
	for i := range f.items {
		if f.items[i].Name == item.Name {
			f.items = append(f.items[:i], f.items[i+1:]...)

			return false, f.persist()
		}
	}

	f.items = append(f.items, item)

	return true, f.persist()
}

// Contains reports whether an item with the given name is a favorite.
func (f *Favorites) Contains(name string) bool {
	for _, item := range f.items {
		if item.Name == name {
			return true
		}
	}

	return false
}

// Items returns a copy of the wishlist.
func (f *Favorites) Items() []FavoriteItem {
	out := make([]FavoriteItem, len(f.items))
	copy(out, f.items)

	return out
}

// Count returns the number of wishlist entries.
func (f *Favorites) Count() int {
	return len(f.items)
}

func (f *Favorites) persist() error {
	data, err := json.Marshal(f.items)
	if err != nil {
		return errors.Wrap(err, "encode favorites")
	}

	return f.storage.Save(keyFavorites, data)
}
