package buyer

// Buyer is a customer record identified by its document number. The
// document is unique per a server-side rule; the console never enforces
// that locally.
type Buyer struct {
	ID             int64  `json:"id"`
	Document       string `json:"document"`
	FirstName      string `json:"first_name"`
	SecondName     string `json:"second_name,omitempty"`
	FirstLastName  string `json:"first_last_name,omitempty"`
	SecondLastName string `json:"second_last_name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

// Payload carries the writable buyer fields for create and edit calls.
type Payload struct {
	Document       string `json:"document"`
	FirstName      string `json:"first_name"`
	SecondName     string `json:"second_name"`
	FirstLastName  string `json:"first_last_name"`
	SecondLastName string `json:"second_last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}
