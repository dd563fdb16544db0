package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users  UserRepository
	store  RevocationStore
	secret []byte
	ttl    time.Duration
}

func NewService(users UserRepository, store RevocationStore, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, store: store, secret: secret, ttl: ttl}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, name, password, role string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{Email: email, Name: name, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login checks credentials and issues a session token. Lookup misses and
// password mismatches collapse into the same error so the response does not
// reveal which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := IssueToken(u, s.secret, s.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Logout revokes the session identified by the token. An already-invalid
// token is treated as logged out.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims, err := ParseToken(tokenString, s.secret)
	if err != nil {
		return nil
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return s.store.Revoke(ctx, claims.ID, exp)
}

// CurrentUser loads the account behind a set of verified claims.
func (s *Service) CurrentUser(ctx context.Context, claims *Claims) (*User, error) {
	return s.users.GetByID(ctx, claims.UserID())
}

// Verify parses the token and checks it against the revocation store.
func (s *Service) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := ParseToken(tokenString, s.secret)
	if err != nil {
		return nil, err
	}
	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("session revoked")
	}
	return claims, nil
}
