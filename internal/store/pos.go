package store

import (
	"context"
	"math"
	"sync"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/collection"
	"github.com/reynaldiarya/flashpos/pkg/event"
)

// taxRate is the fixed sales tax applied to every cart.
const taxRate = 0.11

// CartItem is one product in the active sale. It exists only for the
// duration of the POS session and is never persisted.
type CartItem struct {
	Product  models.Product
	Quantity int64
}

// TransactionCreator posts a checkout to the backend.
// api.TransactionsService satisfies it.
type TransactionCreator interface {
	Create(ctx context.Context, in api.TransactionInput) (*models.Transaction, error)
}

// Pos is the cart state machine behind the sale screen. The cart holds at
// most one entry per product id; quantities at or below zero remove the
// entry.
type Pos struct {
	mu         sync.Mutex
	tx         TransactionCreator
	cart       []CartItem
	customerID *int64
	loading    bool
}

// NewPos builds an empty cart bound to a checkout backend.
func NewPos(tx TransactionCreator) *Pos {
	return &Pos{tx: tx}
}

// AddToCart adds one unit of product. An existing entry for the same
// product id is incremented in place; new products append in insertion
// order.
func (s *Pos) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: product, Quantity: 1})
}

// RemoveFromCart drops the entry for productID. No-op when absent.
func (s *Pos) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = collection.Reject(s.cart, func(it CartItem) bool {
		return it.Product.ID == productID
	})
}

// UpdateQuantity sets the entry's quantity to exactly quantity (absolute,
// not a delta). A quantity at or below zero removes the entry. No-op when
// the product is not in the cart.
func (s *Pos) UpdateQuantity(productID, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		return
	}
}

// ClearCart empties the cart and unsets the customer together. The two are
// never reset separately.
func (s *Pos) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Pos) clearLocked() {
	s.cart = nil
	s.customerID = nil
}

// SetCustomer selects the buyer. Pass nil to unset.
func (s *Pos) SetCustomer(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = id
}

// Checkout submits the sale. It fails with ErrCustomerRequired before any
// network call when no customer is selected; on success the cart and
// customer are cleared and the created transaction returned. A failed
// checkout keeps the cart intact for re-submission.
func (s *Pos) Checkout(ctx context.Context) (*models.Transaction, error) {
	s.mu.Lock()
	if s.customerID == nil {
		s.mu.Unlock()
		return nil, ErrCustomerRequired
	}

	s.loading = true
	in := api.TransactionInput{
		CustomerID: *s.customerID,
		Items: collection.Map(s.cart, func(it CartItem) api.TransactionItemInput {
			return api.TransactionItemInput{ProductID: it.Product.ID, Quantity: it.Quantity}
		}),
	}
	s.mu.Unlock()

	tx, err := s.tx.Create(ctx, in)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.clearLocked()
	s.mu.Unlock()

	// The bus is synchronous; fire after unlocking so listeners can read
	// the store.
	event.Fire(event.TransactionCreated, tx)
	return tx, nil
}

// Items returns a snapshot of the cart in insertion order.
func (s *Pos) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CustomerID returns the selected customer, nil when unset.
func (s *Pos) CustomerID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customerID
}

// Loading reports whether a checkout is in flight.
func (s *Pos) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subtotal is the sum of price times quantity over the cart.
func (s *Pos) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.cart)
}

// Tax is 11% of the subtotal, rounded half away from zero to the nearest
// currency unit (math.Round; identical to JS Math.round for the
// non-negative subtotals a cart can produce).
func (s *Pos) Tax() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return taxOf(subtotalOf(s.cart))
}

// Total is subtotal plus tax.
func (s *Pos) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := subtotalOf(s.cart)
	return sub + taxOf(sub)
}

// ItemCount is the sum of quantities across the cart.
func (s *Pos) ItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Reduce(s.cart, int64(0), func(sum int64, it CartItem) int64 {
		return sum + it.Quantity
	})
}

func subtotalOf(cart []CartItem) int64 {
	return collection.Reduce(cart, int64(0), func(sum int64, it CartItem) int64 {
		return sum + it.Product.Price*it.Quantity
	})
}

func taxOf(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * taxRate))
}
