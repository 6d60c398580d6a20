package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Storage keys match the browser localStorage keys of the web frontend so a
// stored blob is interchangeable between the two.
const (
	keyCartItems = "cartItems"
	keyFavorites = "favorites"
	keyLastOrder = "lastOrder"
)

const (
	// TaxRate is the flat 8% tax applied on the cart subtotal.
	TaxRate = 0.08

	// MinQuantity and MaxQuantity bound the per-line quantity.
	MinQuantity = 1
	MaxQuantity = 10
)

// Line is one cart entry. Prices are display strings ("$12,500") exactly as
// the catalog renders them; Summary parses them back to numbers. Lines are
// keyed by Name: two catalog items sharing a display name merge into one line.
type Line struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Brand    string `json:"brand"`
	Quantity int    `json:"quantity"`
}

// Summary holds the derived cart totals.
type Summary struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Store is the cart state manager. Every mutation persists the full line list
// through the storage adapter before returning.
type Store struct {
	storage Storage
	lines   []Line
}

// NewStore loads any previously persisted cart from storage.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{storage: storage}

	data, err := storage.Load(keyCartItems)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return s, nil
		}

		return nil, err
	}

	if err := json.Unmarshal(data, &s.lines); err != nil {
		return nil, errors.Wrap(err, "decode cart items")
	}

	return s, nil
}

// Add merges the item into an existing line with the same name, or appends a
// new line with quantity 1.
func (s *Store) Add(line Line) error {
	for i := range s.lines {
		if s.lines[i].Name == line.Name {
			s.lines[i].Quantity = clampQuantity(s.lines[i].Quantity + 1)

			return s.persist()
		}
	}

	line.Quantity = 1
	s.lines = append(s.lines, line)

	return s.persist()
}

// UpdateQuantity applies a delta to the line at index, clamped to [1,10].
func (s *Store) UpdateQuantity(index, delta int) error {
	if index < 0 || index >= len(s.lines) {
		return errors.Errorf("cart: index %d out of range", index)
	}

	s.lines[index].Quantity = clampQuantity(s.lines[index].Quantity + delta)

	return s.persist()
}

// SetQuantity sets the line quantity directly, clamped to [1,10].
func (s *Store) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(s.lines) {
		return errors.Errorf("cart: index %d out of range", index)
	}

	s.lines[index].Quantity = clampQuantity(quantity)

	return s.persist()
}

// Remove deletes the line at index.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.lines) {
		return errors.Errorf("cart: index %d out of range", index)
	}

	s.lines = append(s.lines[:index], s.lines[index+1:]...)

	return s.persist()
}

// Clear empties the cart and removes the persisted blob.
func (s *Store) Clear() error {
	s.lines = nil

	return s.storage.Delete(keyCartItems)
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)

	return out
}

// Count returns the total item quantity across all lines.
func (s *Store) Count() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}

	return count
}

// Summary computes subtotal, tax and total from the display prices.
func (s *Store) Summary() Summary {
	subtotal := 0.0
	for _, line := range s.lines {
		subtotal += parsePrice(line.Price) * float64(line.Quantity)
	}

	tax := subtotal * TaxRate

	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return errors.Wrap(err, "encode cart items")
	}

	return s.storage.Save(keyCartItems, data)
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}

	return q
}

var priceCleaner = strings.NewReplacer("$", "", ",", "")

// parsePrice converts a display price like "$1,700,000" to its numeric value.
// Unparseable prices count as zero, matching the frontend's NaN coercion.
func parsePrice(display string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(priceCleaner.Replace(display)), 64)
	if err != nil {
		return 0
	}

	return v
}

// FormatPrice renders a numeric amount as a floor-rounded display price with
// thousands separators, e.g. 1836000 -> "$1,836,000".
func FormatPrice(amount float64) string {
	whole := int64(math.Floor(amount))
	negative := whole < 0
	if negative {
		whole = -whole
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}

	return b.String()
}
