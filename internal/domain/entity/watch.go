package entity

import "time"

// Watch represents one catalog item. The catalog is read-only after seeding;
// there is no update path exposed by the application.
type Watch struct {
	ID          int64     // Auto-incremented catalog identifier.
	Name        string    // Display name, e.g. "Rolex Submariner".
	Brand       string    // Manufacturer brand.
	Price       float64   // Price in major currency units.
	Description string    // Marketing description.
	ImageURL    string    // Relative or absolute image reference.
	Category    string    // Catalog category, e.g. "Diving".
	InStock     bool      // Stock flag; out-of-stock items are hidden from listings.
	Rating      float64   // Average rating on a 0-5 scale.
	CreatedAt   time.Time // Timestamp of the seed insert.
}
