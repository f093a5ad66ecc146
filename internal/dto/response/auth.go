package response

// RegisterResponse answers POST /auth/register. VerificationCode is filled
// only in dev mode; in production the code reaches the user by email alone.
type RegisterResponse struct {
	Message          string `json:"message"`
	UserID           string `json:"userId"`
	VerificationCode string `json:"verificationCode,omitempty"`
}

// AuthResponse answers login and verify: a fresh bearer token plus the
// sanitized account view.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
