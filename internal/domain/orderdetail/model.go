package orderdetail

// Detail is a single product line within an order. The unit price is
// copied from the product at selection time; the subtotal is quantity
// times unit price as computed by the wizard.
type Detail struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	BuyerID   int64   `json:"buyer_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Payload carries the writable detail fields for create and edit calls.
type Payload struct {
	OrderID   int64   `json:"order_id"`
	BuyerID   int64   `json:"buyer_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
