// Package auth provides user credentials and JWT session tokens.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
)

// User is an operator account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           id.ID     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"nome"`
	Role         string    `json:"perfil"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"criadoEm"`
}

// UserStore defines storage operations for user accounts.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// NewUser creates an active user with a freshly hashed password.
func NewUser(username, password, name, role string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id.New(),
		Username:     username,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Claims is the JWT payload for a session token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"perfil"`
	jwt.RegisteredClaims
}

// Service issues and validates session tokens.
type Service struct {
	store  UserStore
	secret []byte
	ttl    time.Duration
}

// NewService creates an auth service. ttl bounds token lifetime.
func NewService(store UserStore, secret string, ttl time.Duration) *Service {
	return &Service{store: store, secret: []byte(secret), ttl: ttl}
}

// Login checks credentials and returns a signed token plus the user.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", nil, apperror.NewUnauthorized("invalid credentials")
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, apperror.NewInternal(err)
	}
	return token, user, nil
}

func (s *Service) issueToken(user *User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}
	return claims, nil
}
