package user

// Profile is an administrative account as returned by the server. The
// password is write-only and never round-trips after creation.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Payload carries the writable user fields. Password is omitted from the
// body when left empty on edit.
type Payload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
