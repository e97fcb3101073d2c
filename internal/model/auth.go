package model

// TokenRequest represents an API key exchange request.
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
