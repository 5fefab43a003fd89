package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/commercia/backoffice/internal/domain/buyer"
)

// BuyerClient calls the buyer endpoints.
type BuyerClient struct {
	client *Client
}

// BuyerList is the envelope of the list endpoint.
type BuyerList struct {
	Status
	Data []buyer.Buyer `json:"data"`
}

// BuyerResult is the envelope of single-buyer endpoints. Data is nil when
// the lookup found nothing; that is a non-error outcome.
type BuyerResult struct {
	Status
	Data *buyer.Buyer `json:"data"`
}

// List fetches all buyers.
func (b *BuyerClient) List(ctx context.Context) (BuyerList, error) {
	var resp BuyerList
	err := b.client.do(ctx, http.MethodGet, "/buyer/listBuyer", nil, &resp)
	return resp, err
}

// GetByDocument looks a buyer up by document number. Found and not-found
// both succeed; not-found has a nil Data.
func (b *BuyerClient) GetByDocument(ctx context.Context, document string) (BuyerResult, error) {
	var resp BuyerResult
	path := "/buyer/getBuyerByDocument/" + url.PathEscape(document)
	err := b.client.do(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

// Create registers a new buyer.
func (b *BuyerClient) Create(ctx context.Context, payload buyer.Payload) (BuyerResult, error) {
	var resp BuyerResult
	err := b.client.do(ctx, http.MethodPost, "/buyer/createBuyer", payload, &resp)
	return resp, err
}

// Edit updates an existing buyer.
func (b *BuyerClient) Edit(ctx context.Context, id int64, payload buyer.Payload) (BuyerResult, error) {
	var resp BuyerResult
	err := b.client.do(ctx, http.MethodPut, fmt.Sprintf("/buyer/editBuyer/%d", id), payload, &resp)
	return resp, err
}

// Delete removes a buyer.
func (b *BuyerClient) Delete(ctx context.Context, id int64) (Status, error) {
	var resp Status
	err := b.client.do(ctx, http.MethodDelete, fmt.Sprintf("/buyer/deleteBuyer/%d", id), nil, &resp)
	return resp, err
}
