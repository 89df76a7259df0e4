// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across
// the securevault command surface.
//
// All Msg* constants are human-readable message strings printed to the
// terminal or written into log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is shown when a note or settings input fails
	// validation (e.g. blank title, oversized content, unknown category).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoteNotFound is shown when the requested note id does not exist.
	MsgNoteNotFound = "note not found"

	// MsgStorageUnavailable is shown when the persistence substrate cannot
	// be reached or returns a failure.
	MsgStorageUnavailable = "storage is unavailable, try again"

	// MsgNotAuthenticated is shown when a vault command is issued before
	// logging in or after the session was locked.
	MsgNotAuthenticated = "please log in first"

	// MsgAuthenticationFailed is shown when the biometric challenge for a
	// sensitive action fails or is cancelled.
	MsgAuthenticationFailed = "Authentication Failed: biometric authentication is required for this action"

	// MsgAuthorizationInProgress is shown when a challenge for the same
	// action is already on screen.
	MsgAuthorizationInProgress = "an authentication prompt is already open for this action"

	// MsgBiometricUnavailable is shown when no usable biometric sensor is
	// present and no fallback is permitted.
	MsgBiometricUnavailable = "Biometric authentication is not available on this device"

	// MsgBiometricDisabled is shown when a settings change would require
	// challenges while biometric authentication is switched off.
	MsgBiometricDisabled = "enable biometric authentication before requiring it for sensitive actions"
)
