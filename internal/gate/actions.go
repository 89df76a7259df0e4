// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"fmt"

	"github.com/akimenko/securevault/models"
)

// SensitiveAction is the closed set of operations that may require a
// biometric challenge before the vault is touched. The unexported
// method keeps the set closed to this package.
type SensitiveAction interface {
	// key identifies the action for the in-flight challenge map. Two
	// actions with the same key cannot be challenged concurrently.
	key() string

	// prompt is the text shown on the challenge sheet.
	prompt() string
}

// DeleteNoteAction deletes the note with the given id. The gate
// resolves the note's category itself; callers cannot claim a
// non-sensitive target.
type DeleteNoteAction struct {
	ID string
}

func (a DeleteNoteAction) key() string { return "delete-note:" + a.ID }

func (a DeleteNoteAction) prompt() string {
	return "Authenticate to delete this sensitive note"
}

// AddNoteAction creates a note in the given category.
type AddNoteAction struct {
	Category models.Category
}

func (a AddNoteAction) key() string { return fmt.Sprintf("add-note:%s", a.Category) }

func (a AddNoteAction) prompt() string {
	return "Authenticate to save this sensitive note"
}

// ExportAction serializes the whole vault.
type ExportAction struct{}

func (ExportAction) key() string { return "export" }

func (ExportAction) prompt() string {
	return "Authenticate to export your data"
}

// WipeAllAction destroys every persisted entity.
type WipeAllAction struct{}

func (WipeAllAction) key() string { return "wipe-all" }

func (WipeAllAction) prompt() string {
	return "Authenticate to clear all data"
}

// ChangeSettingsAction alters the persisted preferences.
type ChangeSettingsAction struct{}

func (ChangeSettingsAction) key() string { return "change-settings" }

func (ChangeSettingsAction) prompt() string {
	return "Authenticate to enable biometric security"
}
