package order

// Order is a billing transaction against one buyer, composed of one or
// more detail rows. The total is computed client-side as the sum of line
// subtotals at creation time.
type Order struct {
	ID            int64   `json:"id"`
	Total         float64 `json:"total"`
	Description   string  `json:"description,omitempty"`
	BillingDate   string  `json:"billing_date,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	HasDiscount   bool    `json:"has_discount"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// Payload carries the writable order header fields.
type Payload struct {
	Description   string  `json:"description"`
	BillingDate   string  `json:"billing_date"`
	PaymentMethod string  `json:"payment_method"`
	Total         float64 `json:"total"`
	HasDiscount   bool    `json:"has_discount"`
}
