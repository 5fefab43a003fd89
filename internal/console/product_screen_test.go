package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/domain/product"
)

func TestProductScreen_CreateAndEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	screen := NewProductScreen(env.client, env.notify, nil)
	screen.BeginCreate()
	screen.Form.Name = "Keyboard"
	screen.Form.Description = "Mechanical, 60%"
	screen.Form.Price = 250000
	screen.Form.Stock = 12
	screen.Submit(ctx)

	require.Len(t, screen.Rows(), 1)
	assert.False(t, screen.FormVisible)

	id := screen.Rows()[0].ID
	require.True(t, screen.BeginEdit(id))
	screen.Form.Price = 199000
	screen.Submit(ctx)

	updated, ok := env.server.Product(id)
	require.True(t, ok)
	assert.Equal(t, 199000.0, updated.Price)
}

func TestProductScreen_NegativePriceRejectedLocally(t *testing.T) {
	env := newTestEnv(t)

	screen := NewProductScreen(env.client, env.notify, nil)
	screen.BeginCreate()
	screen.Form.Name = "Broken"
	screen.Form.Price = -1
	screen.Submit(context.Background())

	assert.Empty(t, screen.Rows())
	assert.Empty(t, env.notify.Successes)
}

func TestProductScreen_TopPurchased(t *testing.T) {
	env := newTestEnv(t)
	env.server.SeedProduct(product.Product{Name: "Coffee", Price: 25000, Stock: 40, TotalUnitsSold: "310"})
	env.server.SeedProduct(product.Product{Name: "Tea", Price: 18000, Stock: 15})

	screen := NewProductScreen(env.client, env.notify, nil)
	top := screen.TopPurchased(context.Background())

	require.Len(t, top, 1)
	assert.Equal(t, "Coffee", top[0].Name)
	assert.Equal(t, "310", top[0].TotalUnitsSold)
}

func TestProductScreen_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := env.server.SeedProduct(product.Product{Name: "Mug", Price: 12000, Stock: 3})
	ctx := context.Background()

	screen := NewProductScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	screen.Delete(ctx, id)

	_, ok := env.server.Product(id)
	assert.False(t, ok)
	assert.Empty(t, screen.Rows())
}
