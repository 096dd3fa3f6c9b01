package models

import (
	"context"
	"testing"
)

func TestCreateUser(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	t.Run("basic create", func(t *testing.T) {
		u, err := CreateUser(ctx, db, "admin", "password123", "admin@test.com", true)
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if u.Username != "admin" {
			t.Errorf("username = %q, want admin", u.Username)
		}
		if !u.IsAdmin {
			t.Error("is_admin should be true")
		}
		if !u.Email.Valid || u.Email.String != "admin@test.com" {
			t.Errorf("email = %v, want admin@test.com", u.Email)
		}
		if !CheckPassword(u.PasswordHash, "password123") {
			t.Error("stored hash does not match password")
		}
		if u.CreatedAt.IsZero() {
			t.Error("created_at should be set")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := CreateUser(ctx, db, "admin", "other", "", false)
		if err != ErrDuplicateUsername {
			t.Errorf("err = %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("case insensitive duplicate", func(t *testing.T) {
		_, err := CreateUser(ctx, db, "ADMIN", "other", "", false)
		if err != ErrDuplicateUsername {
			t.Errorf("err = %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("no email", func(t *testing.T) {
		u, err := CreateUser(ctx, db, "operator", "pw", "", false)
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if u.Email.Valid {
			t.Errorf("email = %v, want NULL", u.Email)
		}
		if u.IsAdmin {
			t.Error("is_admin should be false")
		}
	})
}

func TestGetUserByID_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := GetUserByID(context.Background(), db, 999)
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCountUsers(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	count, err := CountUsers(ctx, db)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	if _, err := CreateUser(ctx, db, "a", "pw", "", false); err != nil {
		t.Fatalf("create user: %v", err)
	}
	count, err = CountUsers(ctx, db)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword should reject a wrong password")
	}
}
