package dto

type LoginRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what the service hands back to the handler; the handler
// picks the cookie name from the role.
type LoginResult struct {
	Token string
	Role  string
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type VerifyResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}
