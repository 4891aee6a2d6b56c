package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ParseToken(token string) (*Claims, error)
}

// Credential is the stored login material for one account.
type Credential struct {
	ID       int
	Username string
	Password string // bcrypt hash
	Role     string
}

// CredentialStore is implemented by the user service.
type CredentialStore interface {
	Credential(ctx context.Context, username string) (Credential, error)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
