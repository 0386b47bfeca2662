package crypto

import "testing"

func TestGenerateSalt_UniqueAndHexEncoded(t *testing.T) {
	first, err := GenerateSalt()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := GenerateSalt()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(first) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(first))
	}
	if first == second {
		t.Error("expected two salts to differ")
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	salt := "aabbccddeeff00112233445566778899"

	first := HashPassword("Admin@123", salt)
	second := HashPassword("Admin@123", salt)

	if first != second {
		t.Error("expected identical digests for same password and salt")
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	first := HashPassword("Admin@123", "salt-one")
	second := HashPassword("Admin@123", "salt-two")

	if first == second {
		t.Error("expected different salts to produce different digests")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	digest := HashPassword("correct-horse", salt)

	if !verifyPassword("correct-horse", salt, digest) {
		t.Error("expected matching password to verify")
	}
	if verifyPassword("wrong-horse", salt, digest) {
		t.Error("expected mismatching password to fail")
	}
	if verifyPassword("correct-horse", "other-salt", digest) {
		t.Error("expected mismatching salt to fail")
	}
}
