package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akimenko/securevault/internal/gate"
	"github.com/akimenko/securevault/internal/service"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", service.ErrNoteNotFound, MsgNoteNotFound},
		{"wrapped not found", fmt.Errorf("delete: %w", service.ErrNoteNotFound), MsgNoteNotFound},
		{"not authenticated", gate.ErrNotAuthenticated, MsgNotAuthenticated},
		{"denied", fmt.Errorf("%w: cancelled", gate.ErrAuthorizationDenied), MsgAuthenticationFailed},
		{"in progress", gate.ErrAuthorizationInProgress, MsgAuthorizationInProgress},
		{"unavailable", gate.ErrBiometricUnavailable, MsgBiometricUnavailable},
		{"biometric disabled", gate.ErrBiometricDisabled, MsgBiometricDisabled},
		{"storage", store.ErrStorageUnavailable, MsgStorageUnavailable},
		{"unknown", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_InvalidInputNamesTheField(t *testing.T) {
	err := validators.NewInvalidInput(validators.FieldTitle, "must not be blank")
	assert.Equal(t, "invalid data provided: title must not be blank", UserMessage(err))
}
