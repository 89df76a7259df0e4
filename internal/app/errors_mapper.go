// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"

	"github.com/akimenko/securevault/internal/biometric"
	"github.com/akimenko/securevault/internal/gate"
	"github.com/akimenko/securevault/internal/service"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/internal/validators"
)

// UserMessage translates a business error into the message shown to the
// user. Unknown errors pass through verbatim so nothing is silently
// swallowed.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var invalid *validators.InvalidInputError

	switch {
	case errors.As(err, &invalid):
		return fmt.Sprintf("%s: %s %s", MsgInvalidDataProvided, invalid.Field, invalid.Reason)
	case errors.Is(err, validators.ErrInvalidInput):
		return MsgInvalidDataProvided

	case errors.Is(err, service.ErrNoteNotFound):
		return MsgNoteNotFound

	case errors.Is(err, gate.ErrNotAuthenticated):
		return MsgNotAuthenticated
	case errors.Is(err, gate.ErrAuthorizationInProgress):
		return MsgAuthorizationInProgress
	case errors.Is(err, gate.ErrAuthorizationDenied):
		return MsgAuthenticationFailed
	case errors.Is(err, gate.ErrBiometricDisabled):
		return MsgBiometricDisabled
	case errors.Is(err, gate.ErrBiometricUnavailable),
		errors.Is(err, biometric.ErrUnavailable):
		return MsgBiometricUnavailable

	case errors.Is(err, store.ErrStorageUnavailable):
		return MsgStorageUnavailable
	}

	return err.Error()
}
