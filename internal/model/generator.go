package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// BatchRequest represents a request for multiple passwords generated under
// identical options.
type BatchRequest struct {
	GenerateRequest
	Count int `json:"count"`
}

// BatchResponse represents a batch generation response. Passwords appear in
// generation order.
type BatchResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
}
