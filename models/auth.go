package models

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Username  string `json:"username"`
}
