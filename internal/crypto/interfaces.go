package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService owns the key-derivation side of the optional at-rest
// encryption boundary. It knows nothing about storage or the vault; its
// only job is turning a passphrase into key material.
//
// Scheme:
//
//	Salt = GenerateSalt()                 (once, stored in clear next to the data)
//	Key  = DeriveKey(passphrase, salt)    (every unlock, Argon2id, in memory only)
type KeyChainService interface {
	// GenerateSalt generates a random 16-byte (128-bit) salt.
	// The salt is not a secret; it exists so that equal passphrases
	// derive different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit encryption key from the passphrase and
	// salt via Argon2id. The key exists only in process memory.
	DeriveKey(passphrase string, salt []byte) []byte
}

// Cipher seals and opens byte payloads. The vault uses it to encrypt blob
// values before they reach the persistence substrate.
type Cipher interface {
	// Seal encrypts plaintext and returns nonce ‖ ciphertext.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Fails on a wrong key or a
	// tampered ciphertext (authentication-tag mismatch).
	Open(blob []byte) ([]byte, error)
}
