package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/commercia/backoffice/internal/domain/orderdetail"
)

// OrderDetailClient calls the order-detail endpoints.
type OrderDetailClient struct {
	client *Client
}

// OrderDetailList is the envelope of list-shaped detail endpoints.
type OrderDetailList struct {
	Status
	Data []orderdetail.Detail `json:"data"`
}

// OrderDetailResult is the envelope of single-detail endpoints.
type OrderDetailResult struct {
	Status
	Data *orderdetail.Detail `json:"data"`
}

// List fetches every detail row across all orders.
func (d *OrderDetailClient) List(ctx context.Context) (OrderDetailList, error) {
	var resp OrderDetailList
	err := d.client.do(ctx, http.MethodGet, "/orderDetail/listOrderDetail", nil, &resp)
	return resp, err
}

// ByOrder fetches the detail rows of one order.
func (d *OrderDetailClient) ByOrder(ctx context.Context, orderID int64) (OrderDetailList, error) {
	var resp OrderDetailList
	err := d.client.do(ctx, http.MethodGet, fmt.Sprintf("/orderDetail/getOrderDetails/%d", orderID), nil, &resp)
	return resp, err
}

// Create registers one detail row.
func (d *OrderDetailClient) Create(ctx context.Context, payload orderdetail.Payload) (OrderDetailResult, error) {
	var resp OrderDetailResult
	err := d.client.do(ctx, http.MethodPost, "/orderDetail/createOrderDetail", payload, &resp)
	return resp, err
}

// Edit updates a detail row.
func (d *OrderDetailClient) Edit(ctx context.Context, id int64, payload orderdetail.Payload) (OrderDetailResult, error) {
	var resp OrderDetailResult
	err := d.client.do(ctx, http.MethodPut, fmt.Sprintf("/orderDetail/editOrderDetail/%d", id), payload, &resp)
	return resp, err
}

// Delete removes a detail row.
func (d *OrderDetailClient) Delete(ctx context.Context, id int64) (Status, error) {
	var resp Status
	err := d.client.do(ctx, http.MethodDelete, fmt.Sprintf("/orderDetail/deleteOrderDetail/%d", id), nil, &resp)
	return resp, err
}
