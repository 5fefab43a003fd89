package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/commercia/backoffice/internal/domain/order"
)

// OrderClient calls the order endpoints.
type OrderClient struct {
	client *Client
}

// OrderList is the envelope of the list endpoint.
type OrderList struct {
	Status
	Data []order.Order `json:"data"`
}

// OrderResult is the envelope of single-order endpoints.
type OrderResult struct {
	Status
	Data *order.Order `json:"data"`
}

// List fetches all orders.
func (o *OrderClient) List(ctx context.Context) (OrderList, error) {
	var resp OrderList
	err := o.client.do(ctx, http.MethodGet, "/order/listOrder", nil, &resp)
	return resp, err
}

// Create registers a new order header.
func (o *OrderClient) Create(ctx context.Context, payload order.Payload) (OrderResult, error) {
	var resp OrderResult
	err := o.client.do(ctx, http.MethodPost, "/order/createOrder", payload, &resp)
	return resp, err
}

// Edit updates an order's metadata.
func (o *OrderClient) Edit(ctx context.Context, id int64, payload order.Payload) (OrderResult, error) {
	var resp OrderResult
	err := o.client.do(ctx, http.MethodPut, fmt.Sprintf("/order/editOrder/%d", id), payload, &resp)
	return resp, err
}

// Delete removes an order.
func (o *OrderClient) Delete(ctx context.Context, id int64) (Status, error) {
	var resp Status
	err := o.client.do(ctx, http.MethodDelete, fmt.Sprintf("/order/deleteOrder/%d", id), nil, &resp)
	return resp, err
}
