package console

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/user"
	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/testutil"
)

// testEnv wires a fake backend, an authenticated client, and a
// recording notifier together for screen tests.
type testEnv struct {
	server *testutil.Server
	store  *session.Memory
	client *api.Client
	notify *testutil.RecordingNotifier
}

func userProfile() user.Profile {
	return user.Profile{ID: 1, Name: "Admin", Email: testutil.DefaultEmail}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	server := testutil.NewServer()
	t.Cleanup(server.Close)

	store := session.NewMemory()
	require.NoError(t, store.SetCredentials(server.IssueToken(), user.Profile{ID: 1, Name: "Admin"}))

	client, err := api.New(api.Config{
		BaseURL: server.URL(),
		Session: store,
		Retry:   api.NoRetry(),
	})
	require.NoError(t, err)

	return &testEnv{
		server: server,
		store:  store,
		client: client,
		notify: testutil.NewRecordingNotifier(),
	}
}
