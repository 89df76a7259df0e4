package models

import "time"

// Settings holds the persisted user preferences of the vault.
type Settings struct {
	// BiometricEnabled toggles biometric authentication globally.
	BiometricEnabled bool `json:"biometricEnabled"`

	// RequireBiometricForSensitiveActions gates destructive and revealing
	// operations behind a per-action challenge. May only be true while
	// BiometricEnabled is true; the authorization gate enforces this.
	RequireBiometricForSensitiveActions bool `json:"requireBiometricForSensitiveActions"`

	// LastBackupDate is set only by a successful export. Nil until then.
	LastBackupDate *time.Time `json:"lastBackupDate,omitempty"`
}

// DefaultSettings returns the settings seeded on first access.
func DefaultSettings() Settings {
	return Settings{
		BiometricEnabled:                    true,
		RequireBiometricForSensitiveActions: true,
	}
}

// SettingsPatch describes a partial update of Settings.
// Nil fields mean "do not touch".
type SettingsPatch struct {
	BiometricEnabled                    *bool      `json:"biometricEnabled,omitempty"`
	RequireBiometricForSensitiveActions *bool      `json:"requireBiometricForSensitiveActions,omitempty"`
	LastBackupDate                      *time.Time `json:"lastBackupDate,omitempty"`
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.BiometricEnabled != nil {
		s.BiometricEnabled = *p.BiometricEnabled
	}
	if p.RequireBiometricForSensitiveActions != nil {
		s.RequireBiometricForSensitiveActions = *p.RequireBiometricForSensitiveActions
	}
	if p.LastBackupDate != nil {
		s.LastBackupDate = p.LastBackupDate
	}
	return s
}
