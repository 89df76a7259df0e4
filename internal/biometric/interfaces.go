// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package biometric abstracts the platform biometric sensor behind a
// challenger interface so the authorization gate can be exercised
// without hardware.
package biometric

import "context"

//go:generate mockgen -destination=../mock/mock_challenger.go -package=mock github.com/akimenko/securevault/internal/biometric Challenger

// Challenger is a source of user-presence proofs.
type Challenger interface {
	// Probe reports whether a biometric challenge can succeed at all:
	// the sensor exists and at least one identity is enrolled.
	Probe(ctx context.Context) bool

	// EnrolledKinds lists the sensor kinds with enrolled identities,
	// strongest first. Empty when Probe is false.
	EnrolledKinds(ctx context.Context) []Kind

	// Challenge prompts the user and blocks until they pass, cancel or
	// fail. A nil return means presence was proven. Otherwise the error
	// matches one of [ErrUnavailable], [ErrCancelled], [ErrFailed] via
	// [errors.Is].
	Challenge(ctx context.Context, prompt, fallbackLabel string) error
}

// DefaultFallbackLabel is shown on the challenge sheet's fallback
// button when the caller has no better wording.
const DefaultFallbackLabel = "Use Passcode"
