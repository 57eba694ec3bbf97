package auth

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password should match its hash")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password should not match")
	}
}
