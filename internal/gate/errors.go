// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "errors"

var (
	// ErrNotAuthenticated - a vault operation was attempted outside an
	// authenticated session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthorizationDenied - the biometric challenge for a sensitive
	// action failed or was cancelled. The underlying operation was not
	// invoked.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrAuthorizationInProgress - a challenge for the same action is
	// already outstanding.
	ErrAuthorizationInProgress = errors.New("authorization already in progress")

	// ErrBiometricUnavailable - no usable biometric sensor and no
	// permitted fallback.
	ErrBiometricUnavailable = errors.New("biometric authentication unavailable")

	// ErrBiometricDisabled - a settings change would require biometric
	// challenges while biometric authentication itself is switched off.
	ErrBiometricDisabled = errors.New("biometric authentication is disabled")
)
