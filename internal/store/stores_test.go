package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/internal/store"
	"github.com/reynaldiarya/flashpos/pkg/http"
	"github.com/reynaldiarya/flashpos/pkg/testkit"
)

// These tests run the real list store through the real API client, with only
// the wire swapped out.

func TestCustomerListStoreOverTheWire(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.On("GET", "/api/customers", 200, testkit.ListEnvelope(
		[]models.Customer{{ID: 1, Name: "Budi Santoso", Phone: "081200000001"}},
		models.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 1, From: 1, To: 1},
	))
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	client := api.New("http://backend.test/api", nil)
	lst := store.NewCustomerList(client.Customers)

	lst.Fetch(context.Background())

	items := lst.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Budi Santoso", items[0].Name)
	assert.Equal(t, 1, lst.TotalPages())
	mt.AssertAllCalled(t)
}

func TestProductListStoreSendsCategoryFilter(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.On("GET", "/api/products", 200, testkit.ListEnvelope(
		[]models.Product{{ID: 3, ProductCategoryID: 2, Name: "Potato Chips", Price: 12000, Stock: 45}},
		models.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 1, From: 1, To: 1},
	))
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	client := api.New("http://backend.test/api", nil)
	products := store.NewProductList(client.Products)

	products.SetCategoryID(context.Background(), 2)

	items := products.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductCategoryID)
	assert.Equal(t, 1, mt.Calls("GET", "/api/products"))
}

func TestTransactionListStoreSurvivesBackendErrors(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.On("GET", "/api/transactions", 500, map[string]string{"message": "Internal error"})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	client := api.New("http://backend.test/api", nil)
	lst := store.NewTransactionList(client.Transactions)

	lst.Fetch(context.Background())

	assert.Empty(t, lst.Items(), "nothing fetched yet, nothing shown")
	assert.False(t, lst.Loading(), "loading is released even when the backend fails")
}
