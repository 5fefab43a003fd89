package console

import (
	"context"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/user"
	"github.com/commercia/backoffice/pkg/logger"
)

// UserScreen is the administrative-user CRUD screen.
type UserScreen struct {
	client *api.Client
	notify Notifier
	log    *logger.Logger

	Form           UserForm
	Loading        bool
	FormVisible    bool
	SubmitDisabled bool

	rows    []user.Profile
	editing *user.Profile
}

// NewUserScreen creates the user screen.
func NewUserScreen(client *api.Client, notify Notifier, log *logger.Logger) *UserScreen {
	if log == nil {
		log = logger.NewDefault("user-screen")
	}
	return &UserScreen{client: client, notify: notify, log: log}
}

// Activate loads the user list.
func (s *UserScreen) Activate(ctx context.Context) {
	s.Loading = true
	resp, err := s.client.Users().List(ctx)
	s.Loading = false
	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.rows = resp.Data
}

// Rows returns the currently loaded list.
func (s *UserScreen) Rows() []user.Profile {
	return s.rows
}

// BeginCreate resets the form and opens it for a new user.
func (s *UserScreen) BeginCreate() {
	s.Form.Reset()
	s.editing = nil
	s.FormVisible = true
}

// BeginEdit locates the user in the loaded list and opens the form
// populated from it. The password field always starts empty.
func (s *UserScreen) BeginEdit(id int64) bool {
	s.Form.Reset()
	s.editing = nil
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.editing = &s.rows[i]
			break
		}
	}
	if s.editing == nil {
		return false
	}
	s.Form.FillFrom(*s.editing)
	s.FormVisible = true
	return true
}

// Submit creates or updates depending on whether an edit target is set.
// On edit an empty password leaves the stored one untouched.
func (s *UserScreen) Submit(ctx context.Context) {
	creating := s.editing == nil
	if err := s.Form.Validate(creating); err != nil {
		return
	}

	s.SubmitDisabled = true
	s.Loading = true

	var st api.Status
	var err error
	if creating {
		var resp api.UserResult
		resp, err = s.client.Users().Create(ctx, s.Form.Payload())
		st = resp.Status
	} else {
		var resp api.UserResult
		resp, err = s.client.Users().Edit(ctx, s.editing.ID, s.Form.Payload())
		st = resp.Status
	}

	s.SubmitDisabled = false
	s.Loading = false

	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.handleStatus(ctx, st)
}

// Delete asks for confirmation, then removes the user and re-fetches the
// list.
func (s *UserScreen) Delete(ctx context.Context, id int64) {
	if !s.notify.ConfirmDelete() {
		return
	}
	stop := s.notify.Loading("Deleting user...")
	st, err := s.client.Users().Delete(ctx, id)
	stop()
	if err != nil {
		s.notify.Error("We had a problem processing your request. Please try again.")
		return
	}
	s.Activate(ctx)
	s.notify.Success(st.Message)
}

func (s *UserScreen) handleStatus(ctx context.Context, st api.Status) {
	if st.Success {
		s.Activate(ctx)
		s.notify.Success(st.Message)
		s.FormVisible = false
		return
	}
	s.notify.Warning("We had a problem processing your request. Please try again.")
}
