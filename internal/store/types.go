package store

import "time"

// Category classifies catalog products.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryHome        Category = "home"
	CategoryCars        Category = "cars"
)

// Product is a catalog entry. Orders never reference products live; they copy
// the fields they need at checkout time, so later edits and deletions do not
// reach back into order history.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}

// CartItem pairs a product with the quantity the customer selected.
// The cart holds at most one CartItem per product ID.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem is a frozen snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderStatus is the lifecycle state of an order. Orders start pending and
// move to completed or cancelled; both are terminal.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is the record of a completed checkout. Total is fixed at creation
// (item subtotal plus flat shipping) and never recomputed.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	City         string      `json:"city"`
	Phone        string      `json:"phone"`
	Items        []OrderItem `json:"items"`
	Total        int64       `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Settings is the single marketing/integration configuration record.
// Any string is accepted for any field, including empty.
type Settings struct {
	FBPixelID         string `json:"fbPixelId"`
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	TikTokPixelID     string `json:"tiktokPixelId"`
	GoogleSheetURL    string `json:"googleSheetUrl"`
	DomainName        string `json:"domainName"`
	NameServers       string `json:"nameServers"`
}

// Customer is the shipping information collected by the checkout form.
type Customer struct {
	Name  string
	City  string
	Phone string
}
