package api_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/devserver"
)

// newTestClient spins up the in-memory backend and returns an
// unauthenticated client against it.
func newTestClient(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(devserver.New().Handler())
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", nil)
}

// login authenticates with the seeded demo user and rebinds the client's
// services to the issued token.
func login(t *testing.T, c *api.Client) *api.Client {
	t.Helper()
	tok, err := c.Auth.Login(context.Background(), devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	return c.WithTokens(api.TokenFunc(func() string { return tok }))
}

func TestLoginAndMe(t *testing.T) {
	client := login(t, newTestClient(t))

	u, err := client.Auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, devserver.DemoEmail, u.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Auth.Login(context.Background(), devserver.DemoEmail, "nope")
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Customers.List(context.Background(), api.ListQuery{})
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}

func TestLogoutRevokesToken(t *testing.T) {
	client := login(t, newTestClient(t))

	_, err := client.Auth.Me(context.Background())
	require.NoError(t, err)

	require.NoError(t, client.Auth.Logout(context.Background()))

	_, err = client.Auth.Me(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err), "a revoked token must stop working")
}

func TestCustomerCRUD(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	created, err := client.Customers.Create(ctx, api.CustomerInput{Name: "Dewi Anggraini", Phone: "081299998888"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := client.Customers.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dewi Anggraini", got.Name)

	updated, err := client.Customers.Update(ctx, created.ID, api.CustomerInput{Name: "Dewi A.", Phone: "081299998888"})
	require.NoError(t, err)
	assert.Equal(t, "Dewi A.", updated.Name)

	require.NoError(t, client.Customers.Delete(ctx, created.ID))

	_, err = client.Customers.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestCustomerCreateValidation(t *testing.T) {
	client := login(t, newTestClient(t))

	_, err := client.Customers.Create(context.Background(), api.CustomerInput{})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "name")
	assert.Contains(t, apiErr.Fields, "phone")
}

func TestCustomerListPaginationAndSearch(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	res, err := client.Customers.List(ctx, api.ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Pagination.CurrentPage)
	assert.Equal(t, 2, res.Pagination.LastPage)
	assert.Equal(t, 3, res.Pagination.Total)

	res, err = client.Customers.List(ctx, api.ListQuery{Search: "budi"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Budi Santoso", res.Items[0].Name)
}

func TestProductListFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	cats, err := client.ProductCategories.List(ctx, api.ListQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, cats.Items)
	drinks := cats.Items[0]

	res, err := client.Products.List(ctx, api.ListQuery{CategoryID: drinks.ID})
	require.NoError(t, err)
	require.NotEmpty(t, res.Items)
	for _, p := range res.Items {
		assert.Equal(t, drinks.ID, p.ProductCategoryID)
		require.NotNil(t, p.Category, "products embed their category")
		assert.Equal(t, drinks.Name, p.Category.Name)
	}
}

func TestProductOptionsHonorsLimit(t *testing.T) {
	client := login(t, newTestClient(t))

	opts, err := client.Products.Options(context.Background(), "", 2, 0)
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestTransactionCheckoutPricesOnServer(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	water, err := client.Products.Get(ctx, 1)
	require.NoError(t, err)
	chips, err := client.Products.Get(ctx, 3)
	require.NoError(t, err)
	startStock := water.Stock

	tx, err := client.Transactions.Create(ctx, api.TransactionInput{
		CustomerID: 1,
		Items: []api.TransactionItemInput{
			{ProductID: water.ID, Quantity: 2},
			{ProductID: chips.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	wantSubtotal := water.Price*2 + chips.Price
	assert.Equal(t, wantSubtotal, tx.Subtotal)
	assert.Equal(t, wantSubtotal+tx.Tax, tx.Total)
	assert.NotEmpty(t, tx.Code)
	require.Len(t, tx.Items, 2)
	assert.Equal(t, water.Name, tx.Items[0].ProductName)
	assert.Equal(t, water.Price, tx.Items[0].Price)

	after, err := client.Products.Get(ctx, water.ID)
	require.NoError(t, err)
	assert.Equal(t, startStock-2, after.Stock, "checkout decrements stock")

	got, err := client.Transactions.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.Code, got.Code)
}

func TestTransactionCreateRejectsInsufficientStock(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	_, err := client.Transactions.Create(ctx, api.TransactionInput{
		CustomerID: 1,
		Items:      []api.TransactionItemInput{{ProductID: 1, Quantity: 100000}},
	})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "items")
}

func TestTransactionCreateRequiresCustomer(t *testing.T) {
	ctx := context.Background()
	client := login(t, newTestClient(t))

	_, err := client.Transactions.Create(ctx, api.TransactionInput{
		Items: []api.TransactionItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "customer_id")
}
