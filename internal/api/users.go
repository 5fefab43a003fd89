package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/commercia/backoffice/internal/domain/user"
)

// UserClient calls the administrative-user endpoints.
type UserClient struct {
	client *Client
}

// UserList is the envelope of the list endpoint.
type UserList struct {
	Status
	Data []user.Profile `json:"data"`
}

// UserResult is the envelope of single-user endpoints.
type UserResult struct {
	Status
	Data *user.Profile `json:"data"`
}

// List fetches all administrative users.
func (u *UserClient) List(ctx context.Context) (UserList, error) {
	var resp UserList
	err := u.client.do(ctx, http.MethodGet, "/user/listUser", nil, &resp)
	return resp, err
}

// Create registers a new user.
func (u *UserClient) Create(ctx context.Context, payload user.Payload) (UserResult, error) {
	var resp UserResult
	err := u.client.do(ctx, http.MethodPost, "/user/createUser", payload, &resp)
	return resp, err
}

// Edit updates a user. An empty Password leaves the stored one untouched.
func (u *UserClient) Edit(ctx context.Context, id int64, payload user.Payload) (UserResult, error) {
	var resp UserResult
	err := u.client.do(ctx, http.MethodPut, fmt.Sprintf("/user/editUser/%d", id), payload, &resp)
	return resp, err
}

// Delete removes a user.
func (u *UserClient) Delete(ctx context.Context, id int64) (Status, error) {
	var resp Status
	err := u.client.do(ctx, http.MethodDelete, fmt.Sprintf("/user/deleteUser/%d", id), nil, &resp)
	return resp, err
}
