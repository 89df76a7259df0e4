package store

// Blob keys backing the persisted entities. One JSON document per key.
const (
	// KeyNotes holds the whole note collection as a JSON array.
	KeyNotes = "secure_vault_notes"

	// KeySettings holds the settings object.
	KeySettings = "secure_vault_settings"

	// KeySession holds the persisted session-authenticated flag.
	KeySession = "user_authenticated"

	// KeySalt holds the key-derivation salt used by the encrypting blob
	// store decorator. Stored in clear; the salt is not a secret.
	KeySalt = "secure_vault_salt"
)

// EntityKeys lists the keys owned by the vault service, in the order they
// are removed by a full wipe.
func EntityKeys() []string {
	return []string{KeyNotes, KeySettings, KeySession}
}
