package product

// Product is a purchasable item. Stock is decremented by the order wizard
// as a read-modify-write without any transactional guarantee against
// concurrent purchases; the server owns the real invariant.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`

	// TotalUnitsSold is populated only by the top-purchased report.
	TotalUnitsSold string `json:"total_units_sold,omitempty"`
}

// Payload carries the writable product fields for create and edit calls.
type Payload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}
