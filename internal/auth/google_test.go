package auth

import (
	"context"
	"testing"

	"critique-backend/internal/users"
)

func TestUpsertUserPersistsGoogleProfile(t *testing.T) {
	repo := users.NewMemoryRepo()
	svc := NewGoogleService("client", "secret", "http://localhost/cb", "http://localhost/app", users.NewService(repo))

	info := googleUserInfo{
		Sub:     "abc123",
		Email:   "designer@example.com",
		Name:    "Dana Designer",
		Picture: "https://example.com/avatar.png",
	}
	svc.upsertUser(context.Background(), "google:"+info.Sub, info)

	user, err := repo.GetByID(context.Background(), "google:abc123")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Email != "designer@example.com" {
		t.Fatalf("unexpected email: %q", user.Email)
	}
	if user.FullName != "Dana Designer" {
		t.Fatalf("unexpected full name: %q", user.FullName)
	}
	if user.PictureURL != "https://example.com/avatar.png" {
		t.Fatalf("unexpected picture url: %q", user.PictureURL)
	}
}

func TestUpsertUserWithoutServiceIsNoop(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost/cb", "http://localhost/app", nil)
	svc.upsertUser(context.Background(), "google:abc123", googleUserInfo{Sub: "abc123"})
}
