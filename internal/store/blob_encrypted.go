package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/akimenko/securevault/internal/crypto"
	"github.com/akimenko/securevault/internal/logger"
)

// encryptedBlobStore decorates an inner BlobStore with AES-256-GCM sealing
// of every value. Keys stay in clear; values become opaque base64 blobs.
// The key-derivation salt lives in the inner store under KeySalt.
type encryptedBlobStore struct {
	inner  BlobStore
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewEncryptedBlobStore wraps inner so that all values are encrypted at
// rest with a key derived from passphrase. On first use a fresh salt is
// generated and persisted under KeySalt; later constructions with the same
// passphrase reproduce the same key.
func NewEncryptedBlobStore(ctx context.Context, inner BlobStore, keychain crypto.KeyChainService, passphrase string, log *logger.Logger) (BlobStore, error) {
	salt, err := loadOrCreateSalt(ctx, inner, keychain)
	if err != nil {
		return nil, fmt.Errorf("init encryption salt: %w", err)
	}

	cipher, err := crypto.NewAESCipher(keychain.DeriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	return &encryptedBlobStore{inner: inner, cipher: cipher, logger: log}, nil
}

func loadOrCreateSalt(ctx context.Context, inner BlobStore, keychain crypto.KeyChainService) ([]byte, error) {
	encoded, err := inner.Get(ctx, KeySalt)
	if err == nil {
		return base64.StdEncoding.DecodeString(encoded)
	}
	if !errors.Is(err, ErrBlobNotFound) {
		return nil, err
	}

	salt, err := keychain.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err = inner.Set(ctx, KeySalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, err
	}
	return salt, nil
}

func (s *encryptedBlobStore) Get(ctx context.Context, key string) (string, error) {
	encoded, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode blob %q: %w", ErrCorruptBlob, key, err)
	}

	plaintext, err := s.cipher.Open(blob)
	if err != nil {
		s.logger.Err(err).
			Str("func", "encryptedBlobStore.Get").
			Str("key", key).
			Msg("failed to decrypt blob")
		return "", fmt.Errorf("%w: decrypt blob %q: %w", ErrCorruptBlob, key, err)
	}

	return string(plaintext), nil
}

func (s *encryptedBlobStore) Set(ctx context.Context, key string, value string) error {
	blob, err := s.cipher.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypt blob %q: %w", key, err)
	}

	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(blob))
}

func (s *encryptedBlobStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *encryptedBlobStore) DeleteMulti(ctx context.Context, keys ...string) error {
	return s.inner.DeleteMulti(ctx, keys...)
}
