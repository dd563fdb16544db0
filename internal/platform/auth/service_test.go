package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := NewMemoryRevocationStore()
	t.Cleanup(func() { store.Close() })
	return NewService(NewUserRepoMem(), store, testSecret, time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "admin@clinic.test", "Admin", "s3cret", "admin"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(ctx, "admin@clinic.test", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.Email != "admin@clinic.test" {
		t.Errorf("unexpected user: %s", user.Email)
	}

	claims, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID() != user.ID {
		t.Errorf("claims user id = %d, want %d", claims.UserID(), user.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.Register(ctx, "admin@clinic.test", "Admin", "s3cret", "admin")

	_, _, err := svc.Login(ctx, "admin@clinic.test", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody@clinic.test", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.Register(ctx, "admin@clinic.test", "Admin", "s3cret", "admin")

	token, _, err := svc.Login(ctx, "admin@clinic.test", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.Verify(ctx, token); err == nil {
		t.Error("expected revoked session to fail verification")
	}
}

func TestVerify_GarbageToken(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Verify(context.Background(), "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	defer store.Close()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Errorf("fresh jti should not be revoked (revoked=%v err=%v)", revoked, err)
	}

	store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour))
	revoked, _ = store.IsRevoked(ctx, "jti-1")
	if !revoked {
		t.Error("expected jti-1 to be revoked")
	}

	// A revocation past the token's own expiry no longer matters.
	store.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute))
	revoked, _ = store.IsRevoked(ctx, "jti-2")
	if revoked {
		t.Error("expired token should not count as revoked")
	}
}
