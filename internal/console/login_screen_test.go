package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/testutil"
)

func TestLoginScreen_Submit(t *testing.T) {
	server := testutil.NewServer()
	t.Cleanup(server.Close)

	store := session.NewMemory()
	client, err := api.New(api.Config{BaseURL: server.URL(), Session: store, Retry: api.NoRetry()})
	require.NoError(t, err)

	notify := testutil.NewRecordingNotifier()
	router := NewRouter(NewGuard(store), nil)
	screen := NewLoginScreen(client, store, router, notify, nil)

	screen.Form.Email = testutil.DefaultEmail
	screen.Form.Password = testutil.DefaultPassword
	require.True(t, screen.Submit(context.Background()))

	assert.NotEmpty(t, store.Token())
	profile, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, testutil.DefaultEmail, profile.Email)
	assert.Equal(t, RouteHome, router.Current())
	assert.False(t, screen.Busy)
}

func TestLoginScreen_SubmitRejected(t *testing.T) {
	server := testutil.NewServer()
	t.Cleanup(server.Close)
	server.RejectLogins = true

	store := session.NewMemory()
	client, err := api.New(api.Config{BaseURL: server.URL(), Session: store, Retry: api.NoRetry()})
	require.NoError(t, err)

	notify := testutil.NewRecordingNotifier()
	router := NewRouter(NewGuard(store), nil)
	screen := NewLoginScreen(client, store, router, notify, nil)

	screen.Form.Email = testutil.DefaultEmail
	screen.Form.Password = "wrong"
	require.False(t, screen.Submit(context.Background()))

	// The server's own message surfaces; no session is established.
	require.Len(t, notify.Warnings, 1)
	assert.Equal(t, "invalid credentials", notify.Warnings[0])
	assert.Empty(t, store.Token())
	assert.Equal(t, RouteLogin, router.Current())
}

func TestLoginScreen_SubmitInvalidForm(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(NewGuard(env.store), nil)
	screen := NewLoginScreen(env.client, env.store, router, env.notify, nil)

	screen.Form.Email = "not-an-email"
	screen.Form.Password = "x"
	assert.False(t, screen.Submit(context.Background()))
}

// Logout must tear the local session down even when the backend is
// unreachable; a dead server can never keep the operator signed in.
func TestLoginScreen_LogoutWithDeadBackend(t *testing.T) {
	server := testutil.NewServer()
	store := session.NewMemory()
	require.NoError(t, store.SetCredentials(server.IssueToken(), userProfile()))

	client, err := api.New(api.Config{BaseURL: server.URL(), Session: store, Retry: api.NoRetry()})
	require.NoError(t, err)
	server.Close()

	notify := testutil.NewRecordingNotifier()
	router := NewRouter(NewGuard(store), nil)
	require.True(t, router.Navigate(RouteHome))

	screen := NewLoginScreen(client, store, router, notify, nil)
	screen.Logout(context.Background())

	assert.Empty(t, store.Token())
	_, ok := store.User()
	assert.False(t, ok)
	assert.Equal(t, RouteLogin, router.Current())
}
