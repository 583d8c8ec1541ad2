package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	vendorID := uuid.New()
	id := Identity{
		UserID:      uuid.New(),
		Email:       "ana@example.com",
		Roles:       []string{"vendor"},
		Permissions: []string{"manage-sales"},
		VendorID:    &vendorID,
	}

	token, err := m.GenerateAccessToken(id)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id.UserID || claims.VendorID == nil || *claims.VendorID != vendorID {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := NewJWTManager("other", time.Hour, time.Hour).ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestJWTManager_TokenKindsAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	refresh, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	got, err := m.ValidateRefreshToken(refresh)
	if err != nil || got != userID {
		t.Fatalf("refresh validation = %v, %v", got, err)
	}
	if _, err := m.ValidateAccessToken(refresh); err == nil {
		t.Fatal("refresh token must not pass as an access token")
	}

	access, _ := m.GenerateAccessToken(Identity{UserID: userID})
	if _, err := m.ValidateRefreshToken(access); err == nil {
		t.Fatal("access token must not pass as a refresh token")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, -time.Minute)
	token, _ := m.GenerateAccessToken(Identity{UserID: uuid.New()})
	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("s3nha-forte", hash) || CheckPasswordHash("errada", hash) {
		t.Fatal("unexpected password check result")
	}
}

func TestGenerateReferenceNo(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	ref := GenerateReferenceNo("VND", at)
	if !strings.HasPrefix(ref, "VND-20250314-") || len(ref) != len("VND-20250314-")+8 {
		t.Fatalf("unexpected reference %q", ref)
	}
	if GenerateReferenceNo("VND", at) == ref {
		t.Fatal("references should be unique")
	}
}

func TestParseOptionalUUID(t *testing.T) {
	if id, err := ParseOptionalUUID(" "); id != nil || err != nil {
		t.Fatalf("blank = %v, %v", id, err)
	}
	if _, err := ParseOptionalUUID("nope"); err == nil {
		t.Fatal("expected error")
	}
	want := uuid.New()
	if id, err := ParseOptionalUUID(want.String()); err != nil || *id != want {
		t.Fatalf("got %v, %v", id, err)
	}
}
