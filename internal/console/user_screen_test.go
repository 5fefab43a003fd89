package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/domain/user"
)

func TestUserScreen_CreateRequiresPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	screen := NewUserScreen(env.client, env.notify, nil)
	screen.BeginCreate()
	screen.Form.Name = "Clara"
	screen.Form.Email = "clara@example.com"
	// No password on create: rejected locally, nothing sent.
	screen.Submit(ctx)
	assert.Empty(t, screen.Rows())
	assert.Empty(t, env.notify.Successes)

	screen.Form.Password = "s3cret"
	screen.Submit(ctx)
	require.Len(t, screen.Rows(), 1)
	assert.Equal(t, "Clara", screen.Rows()[0].Name)
}

// Editing with an empty password keeps the stored one; the form must
// still validate.
func TestUserScreen_EditWithoutPassword(t *testing.T) {
	env := newTestEnv(t)
	id := env.server.SeedUser(user.Profile{Name: "Clara", Email: "clara@example.com"})
	ctx := context.Background()

	screen := NewUserScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	require.True(t, screen.BeginEdit(id))
	assert.Empty(t, screen.Form.Password)

	screen.Form.Name = "Clara M."
	screen.Submit(ctx)

	assert.False(t, screen.FormVisible)
	require.Len(t, env.notify.Successes, 1)
	assert.Equal(t, "User updated", env.notify.Successes[0])
}

func TestUserScreen_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := env.server.SeedUser(user.Profile{Name: "Clara", Email: "clara@example.com"})
	ctx := context.Background()

	screen := NewUserScreen(env.client, env.notify, nil)
	screen.Activate(ctx)
	screen.Delete(ctx, id)

	assert.Empty(t, screen.Rows())
}
