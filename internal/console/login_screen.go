package console

import (
	"context"
	"errors"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/logger"
)

// LoginScreen authenticates the operator and establishes the session.
type LoginScreen struct {
	client  *api.Client
	session session.Store
	router  *Router
	notify  Notifier
	log     *logger.Logger

	Form LoginForm
	// Busy disables the submit control while a login is in flight.
	Busy bool
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(client *api.Client, store session.Store, router *Router, notify Notifier, log *logger.Logger) *LoginScreen {
	if log == nil {
		log = logger.NewDefault("login")
	}
	return &LoginScreen{
		client:  client,
		session: store,
		router:  router,
		notify:  notify,
		log:     log,
	}
}

// Submit validates the form and attempts the login. On success the
// session is stored and the console navigates home; on rejection the
// server's error message surfaces as a warning.
func (s *LoginScreen) Submit(ctx context.Context) bool {
	if err := s.Form.Validate(); err != nil {
		return false
	}

	s.Busy = true
	defer func() { s.Busy = false }()

	resp, err := s.client.Auth().Login(ctx, s.Form.Email, s.Form.Password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			s.notify.Warning(apiErr.Message)
		} else {
			s.notify.Warning("Login failed. Please try again.")
		}
		return false
	}

	if err := s.session.SetCredentials(resp.Token, resp.User); err != nil {
		s.log.WithError(err).Error("storing session failed")
		s.notify.Error("Could not store the session.")
		return false
	}

	s.log.WithField("user_id", resp.User.ID).Info("login succeeded")
	s.router.Navigate(RouteHome)
	return true
}

// Logout calls the backend logout endpoint, then clears the local session
// and returns to the login screen regardless of the call's outcome. A
// dead backend must never keep the operator signed in locally.
func (s *LoginScreen) Logout(ctx context.Context) {
	if err := s.client.Auth().Logout(ctx); err != nil {
		s.log.WithError(err).Warn("server-side logout failed")
	}
	if err := s.session.Clear(); err != nil {
		s.log.WithError(err).Error("clearing session failed")
	}
	s.router.Navigate(RouteLogin)
}
