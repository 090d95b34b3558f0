// Package store holds the shared storefront state: product catalog, order
// history, integration settings, and the shopping cart. It is the single
// source of truth; every other layer reads snapshots from it and mutates it
// through the operations below.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/abdelghafour233/MATJARUNA/internal/storage"
	"github.com/google/uuid"
)

// Storage keys, one per persisted collection.
const (
	keyProducts = "products"
	keyOrders   = "orders"
	keySettings = "settings"
)

// FlatShippingFee is the surcharge applied to every non-empty cart,
// independent of the subtotal.
const FlatShippingFee int64 = 30

// Store owns the four state slices. Products, orders, and settings are written
// through to durable storage on every mutation; the cart lives only in memory
// and is lost on restart. All access goes through the mutex, which is also
// what makes order placement plus cart clearing one atomic step to readers.
type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  *slog.Logger

	products []Product
	orders   []Order
	settings Settings
	cart     []CartItem

	now   func() time.Time
	newID func() string
}

// New creates a Store backed by st. Each persisted collection is loaded from
// storage; a missing or malformed value falls back to its default (seed
// catalog, no orders, default settings) rather than failing.
func New(st storage.Storage, logger *slog.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger.With("component", "store"),
		now:     time.Now,
		newID:   uuid.NewString,
	}

	if !s.load(keyProducts, &s.products) {
		s.products = SeedProducts()
	}
	if !s.load(keyOrders, &s.orders) {
		s.orders = nil
	}
	if !s.load(keySettings, &s.settings) {
		s.settings = DefaultSettings()
	}
	return s
}

// load decodes the value at key into dst. It reports whether a well-formed
// value was found; any storage or decode failure is logged and treated as absent.
func (s *Store) load(key string, dst any) bool {
	data, err := s.storage.Load(key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("Failed to read state, using default", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("Malformed state, using default", "key", key, "error", err)
		return false
	}
	return true
}

// persist writes the full value under key. Failures are logged and swallowed;
// the in-memory state stays authoritative for the current session.
func (s *Store) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode state", "key", key, "error", err)
		return
	}
	if err := s.storage.Save(key, data); err != nil {
		s.logger.Warn("Failed to persist state, keeping in-memory copy", "key", key, "error", err)
	}
}

// Products returns a snapshot of the catalog.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// ProductByID retrieves a single product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Store) ProductByID(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// SetProducts replaces the whole catalog. No schema validation is applied;
// the caller is responsible for well-formed values.
func (s *Store) SetProducts(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]Product(nil), products...)
	s.persist(keyProducts, s.products)
}

// AddProduct appends a product to the catalog, assigning a fresh ID when none
// is given, and returns the stored product.
func (s *Store) AddProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.newID()
	}
	s.products = append(s.products, p)
	s.persist(keyProducts, s.products)
	return p
}

// UpdateProduct replaces the product with the same ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Store) UpdateProduct(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persist(keyProducts, s.products)
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// DeleteProduct removes a product from the catalog. Existing orders keep their
// frozen item snapshots. Returns ErrProductNotFound if no product exists with
// the given ID.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(keyProducts, s.products)
			return nil
		}
	}
	return ErrProductNotFound
}

// Orders returns a snapshot of the order history, most recent first.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = copyOrder(o)
	}
	return orders
}

// OrderByID retrieves a single order by its ID.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (s *Store) OrderByID(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return copyOrder(o), nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// SetOrders replaces the whole order history.
func (s *Store) SetOrders(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]Order, len(orders))
	for i, o := range orders {
		s.orders[i] = copyOrder(o)
	}
	s.persist(keyOrders, s.orders)
}

// UpdateOrderStatus replaces the status of the matching order, leaving every
// other field untouched. Returns ErrOrderNotFound if no order exists with the
// given ID.
func (s *Store) UpdateOrderStatus(id string, status OrderStatus) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.persist(keyOrders, s.orders)
			return copyOrder(s.orders[i]), nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// DeleteOrder removes an order from the history.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist(keyOrders, s.orders)
			return nil
		}
	}
	return ErrOrderNotFound
}

// Settings returns the current settings record.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the settings record. Any strings are accepted.
func (s *Store) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persist(keySettings, s.settings)
}

// Cart returns a snapshot of the cart contents.
func (s *Store) Cart() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CartItem(nil), s.cart...)
}

// AddToCart adds one unit of the product to the cart: an existing line for the
// same product ID has its quantity incremented, otherwise a new line with
// quantity 1 is appended.
func (s *Store) AddToCart(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart drops the cart line for the given product ID.
// No-op if the product is not in the cart.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(productID)
}

// UpdateCartQuantity sets the quantity of the cart line for the given product
// ID. A quantity of zero or less removes the line. No-op if the product is not
// in the cart.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLine(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// removeLine drops the cart line for productID. Callers must hold the lock.
func (s *Store) removeLine(productID string) {
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// PlaceOrder turns the current cart into a new pending order: cart lines are
// frozen into order item snapshots, the total is fixed as subtotal plus the
// flat shipping fee, the order is prepended to the history, and the cart is
// cleared. All of it happens under one lock hold, so no reader ever observes
// the order without the cart having been cleared.
// Returns ErrEmptyCart if the cart has no items.
func (s *Store) PlaceOrder(c Customer) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]OrderItem, len(s.cart))
	var subtotal int64
	for i, line := range s.cart {
		items[i] = OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		}
		subtotal += line.Product.Price * int64(line.Quantity)
	}

	order := Order{
		ID:           s.newID(),
		CustomerName: c.Name,
		City:         c.City,
		Phone:        c.Phone,
		Items:        items,
		Total:        subtotal + FlatShippingFee,
		Status:       StatusPending,
		CreatedAt:    s.now().UTC(),
	}

	s.orders = append([]Order{order}, s.orders...)
	s.persist(keyOrders, s.orders)
	s.cart = nil

	return copyOrder(order), nil
}

// CartSummary is a consistent view of the cart with its derived figures,
// taken under a single lock hold.
type CartSummary struct {
	Items    []CartItem
	Count    int
	Subtotal int64
	Shipping int64
	Total    int64
}

// CartSummary returns the cart contents together with count, subtotal,
// shipping, and total, all computed from the same snapshot.
func (s *Store) CartSummary() CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := CartSummary{
		Items:    append([]CartItem(nil), s.cart...),
		Subtotal: s.subtotal(),
	}
	for _, line := range s.cart {
		summary.Count += line.Quantity
	}
	if summary.Subtotal > 0 {
		summary.Shipping = FlatShippingFee
	}
	summary.Total = summary.Subtotal + summary.Shipping
	return summary
}

// CartCount returns the number of units in the cart, summed across lines.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// CartSubtotal returns the cart subtotal, recomputed from the current lines.
func (s *Store) CartSubtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtotal()
}

// CartShipping returns the shipping fee for the current cart: the flat fee
// when the subtotal is positive, zero for an empty cart.
func (s *Store) CartShipping() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subtotal() > 0 {
		return FlatShippingFee
	}
	return 0
}

// CartTotal returns subtotal plus shipping for the current cart.
func (s *Store) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub := s.subtotal()
	if sub > 0 {
		return sub + FlatShippingFee
	}
	return 0
}

// TotalSales sums the frozen totals of all orders, regardless of status.
func (s *Store) TotalSales() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, o := range s.orders {
		total += o.Total
	}
	return total
}

// PendingOrders counts the orders still in the pending state.
func (s *Store) PendingOrders() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, o := range s.orders {
		if o.Status == StatusPending {
			count++
		}
	}
	return count
}

// subtotal computes the cart subtotal. Callers must hold the lock.
func (s *Store) subtotal() int64 {
	var sub int64
	for _, line := range s.cart {
		sub += line.Product.Price * int64(line.Quantity)
	}
	return sub
}

// copyOrder returns ord with its items slice copied, so callers cannot reach
// back into stored state.
func copyOrder(ord Order) Order {
	ord.Items = append([]OrderItem(nil), ord.Items...)
	return ord
}
