package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/commercia/backoffice/internal/domain/product"
)

// ProductClient calls the product endpoints.
type ProductClient struct {
	client *Client
}

// ProductList is the envelope of list-shaped product endpoints.
type ProductList struct {
	Status
	Data []product.Product `json:"data"`
}

// ProductResult is the envelope of single-product endpoints.
type ProductResult struct {
	Status
	Data *product.Product `json:"data"`
}

// List fetches all products.
func (p *ProductClient) List(ctx context.Context) (ProductList, error) {
	var resp ProductList
	err := p.client.do(ctx, http.MethodGet, "/product/listProduct", nil, &resp)
	return resp, err
}

// TopPurchased fetches the best-selling products report.
func (p *ProductClient) TopPurchased(ctx context.Context) (ProductList, error) {
	var resp ProductList
	err := p.client.do(ctx, http.MethodGet, "/product/topPurchasedProducts", nil, &resp)
	return resp, err
}

// Create registers a new product.
func (p *ProductClient) Create(ctx context.Context, payload product.Payload) (ProductResult, error) {
	var resp ProductResult
	err := p.client.do(ctx, http.MethodPost, "/product/createProduct", payload, &resp)
	return resp, err
}

// Edit updates an existing product.
func (p *ProductClient) Edit(ctx context.Context, id int64, payload product.Payload) (ProductResult, error) {
	var resp ProductResult
	err := p.client.do(ctx, http.MethodPut, fmt.Sprintf("/product/editProduct/%d", id), payload, &resp)
	return resp, err
}

// UpdateStock patches a product's stock to the given absolute value. The
// wizard computes the new value as recorded stock minus purchased
// quantity; the read-modify-write is not protected against concurrent
// purchases.
func (p *ProductClient) UpdateStock(ctx context.Context, id int64, newStock int) (Status, error) {
	var resp Status
	body := map[string]int{"stock": newStock}
	err := p.client.do(ctx, http.MethodPatch, fmt.Sprintf("/product/updateStock/%d", id), body, &resp)
	return resp, err
}

// Delete removes a product.
func (p *ProductClient) Delete(ctx context.Context, id int64) (Status, error) {
	var resp Status
	err := p.client.do(ctx, http.MethodDelete, fmt.Sprintf("/product/deleteProduct/%d", id), nil, &resp)
	return resp, err
}
