package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"aria/be/internal/config"
)

type Claims struct {
	UserID   int    `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type ServiceImpl struct {
	credentials CredentialStore
	config      config.JWTConfig
}

func NewServiceImpl(credentials CredentialStore, config config.JWTConfig) *ServiceImpl {
	return &ServiceImpl{
		credentials: credentials,
		config:      config,
	}
}

func (s *ServiceImpl) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	cred, err := s.credentials.Credential(ctx, req.Username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid password")
	}

	token, err := s.generateToken(cred)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token}, nil
}

func (s *ServiceImpl) ParseToken(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

func (s *ServiceImpl) generateToken(cred Credential) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   cred.ID,
		Username: cred.Username,
		Role:     cred.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.ExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	return token.SignedString([]byte(s.config.SecretKey))
}
