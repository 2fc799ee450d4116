package helper

import (
	"testing"

	"placement-portal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	config.LoadConfig()

	token, err := GenerateToken("66c6248b98c56c39f018e7d2", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "66c6248b98c56c39f018e7d2" {
		t.Errorf("uid = %q", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	config.LoadConfig()

	token, err := GenerateToken("66c6248b98c56c39f018e7d2", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// flip a character in the signature
	tampered := token[:len(token)-2] + "zz"
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("tampered token must not validate")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	config.LoadConfig()
	token, err := GenerateToken("66c6248b98c56c39f018e7d2", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	config.LoadConfig()
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestUnsignedAlgorithmRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	config.LoadConfig()

	// alg=none token: header {"alg":"none","typ":"JWT"} with empty signature
	none := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJ1aWQiOiJ4Iiwicm9sZSI6ImFkbWluIn0."
	if _, err := ValidateToken(none); err == nil {
		t.Fatal("alg=none must be rejected")
	}
}
