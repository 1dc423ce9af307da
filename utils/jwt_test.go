package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"slotbook/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("prof-1", models.RoleProfessor, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	caller, err := ExtractCallerFromToken(token)
	if err != nil {
		t.Fatalf("ExtractCallerFromToken error: %v", err)
	}
	if caller.ID != "prof-1" {
		t.Errorf("caller.ID = %q, want %q", caller.ID, "prof-1")
	}
	if caller.Role != models.RoleProfessor {
		t.Errorf("caller.Role = %q, want %q", caller.Role, models.RoleProfessor)
	}
}

func TestExtractCaller_RejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("stud-1", models.RoleStudent, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := ExtractCallerFromToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestExtractCaller_RejectsUnknownRole(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "someone",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ExtractCallerFromToken(signed); err == nil {
		t.Fatal("expected error for unknown role claim")
	}
}

func TestExtractCaller_RejectsGarbage(t *testing.T) {
	if _, err := ExtractCallerFromToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
