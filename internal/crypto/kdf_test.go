package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

// testIterations keeps derivation fast in tests; production uses DefaultIterations.
const testIterations = 1000

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)

	s1, err := kdf.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kdf.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if len(s2) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateSalt_RandomReadError(t *testing.T) {
	kdf := &pbkdf2KeyDerivation{iterations: testIterations, rand: failingReader{}}

	if _, err := kdf.GenerateSalt(); err == nil {
		t.Fatalf("expected error from failing random source")
	}
}

func TestNewKeyDerivation_DefaultIterations(t *testing.T) {
	for _, in := range []int{0, -5} {
		kdf := NewKeyDerivation(in).(*pbkdf2KeyDerivation)
		if kdf.iterations != DefaultIterations {
			t.Fatalf("iterations(%d) = %d, want %d", in, kdf.iterations, DefaultIterations)
		}
	}

	kdf := NewKeyDerivation(42).(*pbkdf2KeyDerivation)
	if kdf.iterations != 42 {
		t.Fatalf("iterations = %d, want 42", kdf.iterations)
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kdf.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kdf.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1.raw) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1.raw), KeySize)
	}
	if !bytes.Equal(k1.raw, k2.raw) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_MatchesPBKDF2SHA256(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)
	salt := bytes.Repeat([]byte{0x5A}, SaltSize)

	key, err := kdf.DeriveKey("orange123", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	want := pbkdf2.Key([]byte("orange123"), salt, testIterations, KeySize, sha256.New)
	if !bytes.Equal(key.raw, want) {
		t.Fatalf("derived key does not match PBKDF2-HMAC-SHA256 output")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)

	k1, _ := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x01}, SaltSize))
	k2, _ := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x02}, SaltSize))

	if bytes.Equal(k1.raw, k2.raw) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DifferentPasswordProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)
	salt := bytes.Repeat([]byte{0x03}, SaltSize)

	k1, _ := kdf.DeriveKey("orange123", salt)
	k2, _ := kdf.DeriveKey("wrong", salt)

	if bytes.Equal(k1.raw, k2.raw) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDeriveKey_EmptyPasswordAllowed(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)

	key, err := kdf.DeriveKey("", bytes.Repeat([]byte{0x04}, SaltSize))
	if err != nil {
		t.Fatalf("DeriveKey with empty password returned error: %v", err)
	}
	if key.Destroyed() {
		t.Fatalf("expected a live key")
	}
}

func TestDeriveKey_InvalidSalt(t *testing.T) {
	kdf := NewKeyDerivation(testIterations)

	for _, n := range []int{0, 12, 15, 17, 32} {
		_, err := kdf.DeriveKey("pw", make([]byte, n))
		if !errors.Is(err, ErrInvalidSalt) {
			t.Fatalf("salt of %d bytes: err = %v, want ErrInvalidSalt", n, err)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}
