package api

import (
	"context"
	"net/http"

	"github.com/commercia/backoffice/internal/domain/user"
)

// AuthClient handles login and logout.
type AuthClient struct {
	client *Client
}

// LoginResponse is the credential pair issued on a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

// Login exchanges credentials for a session token. A rejected login comes
// back as an *APIError carrying the server's error message.
func (a *AuthClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp LoginResponse
	if err := a.client.doUnauth(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

// Logout invalidates the session server-side. Callers clear local session
// state regardless of the outcome.
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/logout", map[string]string{}, nil)
}
