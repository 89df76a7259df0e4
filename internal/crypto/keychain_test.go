package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(passphrase, salt)
	k2 := svc.DeriveKey(passphrase, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same passphrase+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "same passphrase"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1 := svc.DeriveKey(passphrase, salt1)
	k2 := svc.DeriveKey(passphrase, salt2)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different salts to produce different keys")
	}
}

func TestAESCipher_SealOpenRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	c, err := NewAESCipher(key)
	if err != nil {
		t.Fatalf("NewAESCipher error: %v", err)
	}

	plaintext := []byte(`{"notes":[]}`)
	blob, err := c.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatalf("sealed blob contains plaintext")
	}

	got, err := c.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestAESCipher_OpenWithWrongKeyFails(t *testing.T) {
	c1, err := NewAESCipher(bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("NewAESCipher error: %v", err)
	}
	c2, err := NewAESCipher(bytes.Repeat([]byte{0x02}, 32))
	if err != nil {
		t.Fatalf("NewAESCipher error: %v", err)
	}

	blob, err := c1.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err = c2.Open(blob); err == nil {
		t.Fatalf("expected Open with wrong key to fail")
	}
}

func TestAESCipher_OpenRejectsShortBlob(t *testing.T) {
	c, err := NewAESCipher(bytes.Repeat([]byte{0x03}, 32))
	if err != nil {
		t.Fatalf("NewAESCipher error: %v", err)
	}

	if _, err = c.Open([]byte{0x00, 0x01}); err == nil {
		t.Fatalf("expected short blob to be rejected")
	}
}

func TestNewAESCipher_RejectsBadKeyLength(t *testing.T) {
	if _, err := NewAESCipher([]byte("short")); err == nil {
		t.Fatalf("expected bad key length to be rejected")
	}
}
