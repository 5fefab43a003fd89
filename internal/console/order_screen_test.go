package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/domain/order"
	"github.com/commercia/backoffice/internal/domain/product"
)

func TestOrderScreen_EditMetadata(t *testing.T) {
	env := newTestEnv(t)
	env.server.SeedOrder(order.Order{
		Total:         5500,
		Description:   "Counter sale",
		BillingDate:   "2026-08-30",
		PaymentMethod: "efectivo",
	})
	ctx := context.Background()

	screen := NewOrderScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	require.Len(t, screen.Rows(), 1)

	id := screen.Rows()[0].ID
	require.True(t, screen.BeginEdit(id))
	assert.Equal(t, "Counter sale", screen.Form.Description)

	screen.Form.PaymentMethod = "tarjeta"
	screen.SubmitEdit(ctx)

	assert.False(t, screen.EditVisible)
	require.Len(t, env.notify.Successes, 1)
	assert.Equal(t, "tarjeta", screen.Rows()[0].PaymentMethod)
}

func TestOrderScreen_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := env.server.SeedOrder(order.Order{Total: 1000, BillingDate: "2026-08-30", PaymentMethod: "efectivo"})
	ctx := context.Background()

	screen := NewOrderScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	screen.Delete(ctx, id)

	assert.Empty(t, screen.Rows())
	assert.Empty(t, env.server.Orders())
}

// Inspecting an order surfaces the details the wizard stored for it.
func TestOrderScreen_InspectDetails(t *testing.T) {
	env := newTestEnv(t)
	p := env.server.SeedProduct(product.Product{Name: "Coffee", Price: 1000, Stock: 40})
	ctx := context.Background()

	screen := NewOrderScreen(env.client, env.notify, nil)
	w := screen.Wizard
	w.Start(ctx)
	fillBuyerStep(w)
	require.True(t, w.NextStep(ctx))
	w.SelectProduct(0, p)
	w.SetQuantity(0, 2)
	_, ok := w.Submit(ctx)
	require.True(t, ok)

	// The wizard's completion hook already refreshed the list.
	require.Len(t, screen.Rows(), 1)
	orderID := screen.Rows()[0].ID

	screen.InspectDetails(ctx, orderID)
	assert.True(t, screen.DetailsVisible)
	require.Len(t, screen.Details(), 1)
	assert.Equal(t, p, screen.Details()[0].ProductID)
	assert.Equal(t, 2, screen.Details()[0].Quantity)
	assert.Equal(t, 2000.0, screen.Details()[0].Subtotal)
}
