package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	hashed, err := HashPassword("abcd1234")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := ComparePassword(string(hashed), "abcd1234"); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err := ComparePassword(string(hashed), "wrongpass1"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestBcryptCostBounds(t *testing.T) {
	cases := []struct {
		env      string
		expected int
	}{
		{"", bcrypt.DefaultCost},
		{"notanumber", bcrypt.DefaultCost},
		{"4", 4},
		{"99", bcrypt.DefaultCost},
		{"-1", bcrypt.DefaultCost},
	}
	for _, tc := range cases {
		t.Setenv("BCRYPT_COST", tc.env)
		if got := bcryptCost(); got != tc.expected {
			t.Fatalf("BCRYPT_COST=%q expected cost %d, got %d", tc.env, tc.expected, got)
		}
	}
}
