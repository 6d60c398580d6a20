package entity

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusCompleted  OrderStatus = "completed"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// IsAdminAssignable reports whether the admin status-update endpoint may set
// this value. "completed" is set only by payment confirmation, never by hand.
func (s OrderStatus) IsAdminAssignable() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is the order header: the aggregate fields of one placed order, as
// opposed to its line items.
type Order struct {
	ID              int64       // Auto-incremented order identifier.
	CustomerID      int64       // Owning account.
	TotalAmount     float64     // Sum of line price x quantity at purchase time.
	Status          OrderStatus // Lifecycle state; admin-mutated after creation.
	PaymentIntentID string      // Provider-side intent reference.
	CreatedAt       time.Time   // Checkout completion timestamp.
	Items           []*OrderItem

	// Denormalized customer fields populated by joined reads for the admin
	// views; empty on plain writes.
	CustomerName  string
	CustomerEmail string
}

// OrderItem is one purchased line. The unit price is copied from the cart at
// purchase time so historical orders are immune to later catalog changes.
type OrderItem struct {
	ID       int64
	OrderID  int64
	WatchID  int64
	Quantity int
	Price    float64 // Unit price at time of purchase.

	// Denormalized watch fields populated by joined reads.
	WatchName  string
	WatchBrand string
	ImageURL   string
}
