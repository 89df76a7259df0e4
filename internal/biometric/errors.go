package biometric

import "errors"

var (
	// ErrUnavailable - no usable sensor: missing hardware or nothing enrolled.
	ErrUnavailable = errors.New("biometric authentication is not available on this device")
	// ErrCancelled - the user dismissed the challenge sheet.
	ErrCancelled = errors.New("biometric challenge cancelled")
	// ErrFailed - the sensor rejected the presented identity.
	ErrFailed = errors.New("biometric authentication failed")
)
