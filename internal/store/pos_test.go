package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/event"
)

type fakeTxCreator struct {
	calls int
	in    api.TransactionInput
	tx    *models.Transaction
	err   error
}

func (f *fakeTxCreator) Create(ctx context.Context, in api.TransactionInput) (*models.Transaction, error) {
	f.calls++
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func coffee() models.Product { return models.Product{ID: 1, Name: "Coffee", Price: 10000} }
func donut() models.Product  { return models.Product{ID: 2, Name: "Donut", Price: 5000} }

func TestAddToCartMergesByProductID(t *testing.T) {
	pos := NewPos(nil)

	pos.AddToCart(coffee())
	pos.AddToCart(donut())
	pos.AddToCart(coffee())

	items := pos.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Product.ID)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(2), items[1].Product.ID)
	assert.Equal(t, int64(1), items[1].Quantity)
	assert.Equal(t, int64(3), pos.ItemCount())
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(coffee())

	pos.UpdateQuantity(1, 5)
	require.Len(t, pos.Items(), 1)
	assert.Equal(t, int64(5), pos.Items()[0].Quantity)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(coffee())
	pos.AddToCart(donut())

	pos.UpdateQuantity(1, 0)
	require.Len(t, pos.Items(), 1)
	assert.Equal(t, int64(2), pos.Items()[0].Product.ID)

	pos.UpdateQuantity(2, -3)
	assert.Empty(t, pos.Items())
}

func TestUpdateQuantityAbsentProductIsNoop(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(coffee())

	pos.UpdateQuantity(99, 4)

	items := pos.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Product.ID)
	assert.Equal(t, int64(1), items[0].Quantity)
}

func TestTotalsFollowCartContents(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(coffee())
	pos.AddToCart(coffee())
	pos.AddToCart(donut())

	// 2x10000 + 1x5000 = 25000; 11% tax = 2750
	assert.Equal(t, int64(25000), pos.Subtotal())
	assert.Equal(t, int64(2750), pos.Tax())
	assert.Equal(t, int64(27750), pos.Total())
}

func TestTaxRoundsHalfAwayFromZero(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(models.Product{ID: 3, Name: "Gum", Price: 50})

	// 50 * 0.11 = 5.5 rounds to 6
	assert.Equal(t, int64(6), pos.Tax())
	assert.Equal(t, int64(56), pos.Total())
}

func TestCheckoutRequiresCustomerBeforeNetwork(t *testing.T) {
	backend := &fakeTxCreator{}
	pos := NewPos(backend)
	pos.AddToCart(coffee())

	tx, err := pos.Checkout(context.Background())

	require.Nil(t, tx)
	assert.ErrorIs(t, err, ErrCustomerRequired)
	assert.Zero(t, backend.calls, "no request may be issued without a customer")
	assert.Len(t, pos.Items(), 1, "cart stays intact")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_id", verr.Field)
}

func TestCheckoutSendsQuantitiesOnly(t *testing.T) {
	backend := &fakeTxCreator{tx: &models.Transaction{ID: 7, Code: "TRX-20260101-0001", Total: 27750}}
	pos := NewPos(backend)
	pos.AddToCart(coffee())
	pos.AddToCart(coffee())
	pos.AddToCart(donut())

	customerID := int64(42)
	pos.SetCustomer(&customerID)

	tx, err := pos.Checkout(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, int64(7), tx.ID)

	require.Equal(t, 1, backend.calls)
	assert.Equal(t, int64(42), backend.in.CustomerID)
	require.Len(t, backend.in.Items, 2)
	assert.Equal(t, api.TransactionItemInput{ProductID: 1, Quantity: 2}, backend.in.Items[0])
	assert.Equal(t, api.TransactionItemInput{ProductID: 2, Quantity: 1}, backend.in.Items[1])
}

func TestCheckoutSuccessClearsCartAndCustomer(t *testing.T) {
	backend := &fakeTxCreator{tx: &models.Transaction{ID: 1}}
	pos := NewPos(backend)
	pos.AddToCart(coffee())

	customerID := int64(1)
	pos.SetCustomer(&customerID)

	_, err := pos.Checkout(context.Background())
	require.NoError(t, err)

	assert.Empty(t, pos.Items())
	assert.Nil(t, pos.CustomerID())
	assert.False(t, pos.Loading())
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	backend := &fakeTxCreator{err: errors.New("boom")}
	pos := NewPos(backend)
	pos.AddToCart(coffee())

	customerID := int64(1)
	pos.SetCustomer(&customerID)

	tx, err := pos.Checkout(context.Background())
	require.Error(t, err)
	assert.Nil(t, tx)

	assert.Len(t, pos.Items(), 1, "failed checkout keeps the cart for re-submission")
	assert.NotNil(t, pos.CustomerID())
	assert.False(t, pos.Loading())
}

func TestCheckoutListenersCanReadTheStore(t *testing.T) {
	backend := &fakeTxCreator{tx: &models.Transaction{ID: 5, Code: "TRX-20260830-0001"}}
	pos := NewPos(backend)
	pos.AddToCart(coffee())

	customerID := int64(1)
	pos.SetCustomer(&customerID)

	var gotTx *models.Transaction
	gotCount := int64(-1)
	event.Listen(event.TransactionCreated, func(payload interface{}) {
		gotTx, _ = payload.(*models.Transaction)
		gotCount = pos.ItemCount() // reentrant read, must not block
	})
	t.Cleanup(event.Flush)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := pos.Checkout(context.Background())
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("checkout blocked while notifying listeners")
	}

	require.NotNil(t, gotTx)
	assert.Equal(t, "TRX-20260830-0001", gotTx.Code)
	assert.Zero(t, gotCount, "the cart is already cleared when listeners run")
}

func TestClearCartResetsCustomerToo(t *testing.T) {
	pos := NewPos(nil)
	pos.AddToCart(coffee())

	customerID := int64(9)
	pos.SetCustomer(&customerID)

	pos.ClearCart()

	assert.Empty(t, pos.Items())
	assert.Nil(t, pos.CustomerID())
	assert.Zero(t, pos.Subtotal())
	assert.Zero(t, pos.Total())
}
