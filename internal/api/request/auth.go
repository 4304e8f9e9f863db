package request

// LoginRequest represents the request body for the password login.
type LoginRequest struct {
	Password string `json:"password"`
}
