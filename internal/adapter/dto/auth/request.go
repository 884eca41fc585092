package auth

// LoginRequest represents the admin login request
type LoginRequest struct {
	APIKey string `json:"api_key" validate:"required,max=512"`
}
