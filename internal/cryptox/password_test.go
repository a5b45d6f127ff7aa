package cryptox

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash_SamePasswordDifferentOutputs(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected different hashes for the same password (random salt), got identical")
	}
	if !h.Verify("hunter2", h1) || !h.Verify("hunter2", h2) {
		t.Fatalf("expected both hashes to verify against the original password")
	}
}

func TestHash_NeverEqualsPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "" {
		t.Fatalf("hash must not be empty")
	}
	if hash == "hunter2" || strings.Contains(hash, "hunter2") {
		t.Fatalf("hash must not contain the plaintext password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h.Verify("battery staple", hash) {
		t.Fatalf("expected Verify to fail for a different password")
	}
}

func TestVerify_MalformedHashIsFalse(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected Verify to return false for malformed hash")
	}
	if h.Verify("anything", "") {
		t.Fatalf("expected Verify to return false for empty hash")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(0)

	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to bcrypt.DefaultCost, got %d", h.cost)
	}
}
