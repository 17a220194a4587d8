package helper_test

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	helper "sekolahku_backend/internals/helpers"
)

func TestHashPassword(t *testing.T) {
	hashed, err := helper.HashPassword("rahasia-sekali")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "rahasia-sekali" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Fatalf("bukan hash bcrypt: %q", hashed)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("rahasia-sekali")); err != nil {
		t.Fatalf("hash tidak cocok dengan plaintext: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("salah")); err == nil {
		t.Fatal("password salah seharusnya tidak cocok")
	}
}
