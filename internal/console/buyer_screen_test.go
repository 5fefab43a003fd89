package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/domain/buyer"
)

func seedBuyers(env *testEnv) {
	env.server.SeedBuyer(buyer.Buyer{
		Document:      "100200300",
		FirstName:     "Ana",
		FirstLastName: "Gomez",
		Phone:         "3001112233",
		Email:         "ana@example.com",
	})
	env.server.SeedBuyer(buyer.Buyer{
		Document:      "400500600",
		FirstName:     "Luis",
		FirstLastName: "Rojas",
		Phone:         "3014445566",
		Email:         "luis@example.com",
	})
}

func TestBuyerScreen_Activate(t *testing.T) {
	env := newTestEnv(t)
	seedBuyers(env)

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.Activate(context.Background())

	assert.Len(t, screen.Rows(), 2)
	assert.False(t, screen.Loading)
	assert.Empty(t, env.notify.Errors)
}

func TestBuyerScreen_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.BeginCreate()
	require.True(t, screen.FormVisible)

	screen.Form.Document = "700800900"
	screen.Form.FirstName = "Marta"
	screen.Form.Email = "marta@example.com"
	screen.Form.Phone = "3027778899"
	screen.Submit(ctx)

	// Success refreshes the list, notifies, and closes the form.
	assert.Len(t, screen.Rows(), 1)
	assert.False(t, screen.FormVisible)
	assert.False(t, screen.SubmitDisabled)
	require.Len(t, env.notify.Successes, 1)
	assert.Equal(t, "Buyer created", env.notify.Successes[0])
}

func TestBuyerScreen_SubmitInvalidFormDoesNotCall(t *testing.T) {
	env := newTestEnv(t)

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.BeginCreate()
	screen.Form.Document = "123" // below the minimum length
	screen.Submit(context.Background())

	assert.Empty(t, env.server.Buyers())
	assert.True(t, screen.FormVisible)
	assert.Empty(t, env.notify.Successes)
}

func TestBuyerScreen_Edit(t *testing.T) {
	env := newTestEnv(t)
	seedBuyers(env)
	ctx := context.Background()

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.Activate(ctx)

	id := screen.Rows()[0].ID
	require.True(t, screen.BeginEdit(id))
	assert.Equal(t, screen.Rows()[0].Document, screen.Form.Document)

	screen.Form.Phone = "3209990000"
	screen.Submit(ctx)

	assert.False(t, screen.FormVisible)
	require.Len(t, env.notify.Successes, 1)

	var updated buyer.Buyer
	for _, b := range env.server.Buyers() {
		if b.ID == id {
			updated = b
		}
	}
	assert.Equal(t, "3209990000", updated.Phone)
}

func TestBuyerScreen_BeginEditUnknownID(t *testing.T) {
	env := newTestEnv(t)
	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.Activate(context.Background())

	assert.False(t, screen.BeginEdit(999))
	assert.False(t, screen.FormVisible)
}

func TestBuyerScreen_Delete(t *testing.T) {
	env := newTestEnv(t)
	seedBuyers(env)
	ctx := context.Background()

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	id := screen.Rows()[0].ID

	screen.Delete(ctx, id)

	assert.Len(t, env.server.Buyers(), 1)
	assert.Len(t, screen.Rows(), 1)
	require.Len(t, env.notify.Successes, 1)
	assert.Equal(t, "Buyer deleted", env.notify.Successes[0])
}

// Declining the confirmation performs no call at all.
func TestBuyerScreen_DeleteDeclined(t *testing.T) {
	env := newTestEnv(t)
	seedBuyers(env)
	env.notify.Confirm = false
	ctx := context.Background()

	screen := NewBuyerScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	screen.Delete(ctx, screen.Rows()[0].ID)

	assert.Len(t, env.server.Buyers(), 2)
	assert.Empty(t, env.notify.Successes)
}
