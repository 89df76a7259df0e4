// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akimenko/securevault/internal/biometric"
	"github.com/akimenko/securevault/internal/config"
	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/internal/mock"
	"github.com/akimenko/securevault/internal/service"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/internal/validators"
	"github.com/akimenko/securevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

type fixture struct {
	gate       *Gate
	challenger *biometric.ScriptedChallenger
	blobs      store.BlobStore
}

// newFixture wires a complete stack over an in-memory blob store. The
// challenger replays the given outcomes; the gate starts Authenticated
// so tests focus on per-action behavior. Use newColdFixture for the
// login and restore flows.
func newFixture(t *testing.T, outcomes ...error) *fixture {
	t.Helper()
	f := newColdFixture(t, outcomes...)
	f.gate.setState(StateAuthenticated)
	return f
}

func newColdFixture(t *testing.T, outcomes ...error) *fixture {
	t.Helper()

	blobs := store.NewMemoryBlobStore()
	storages := store.NewStoragesWithBlobs(blobs, logger.Nop())
	vault := service.NewVaultService(storages, validators.NewNoteValidator(), logger.Nop())
	challenger := biometric.NewScriptedChallenger([]biometric.Kind{biometric.KindFace}, outcomes...)

	g := NewGate(vault, storages.Session, challenger, config.App{}, logger.Nop())
	return &fixture{gate: g, challenger: challenger, blobs: blobs}
}

func (f *fixture) rawNotes(t *testing.T) string {
	t.Helper()
	raw, err := f.blobs.Get(context.Background(), store.KeyNotes)
	require.NoError(t, err)
	return raw
}

func (f *fixture) sessionFlag(t *testing.T) bool {
	t.Helper()
	storages := store.NewStoragesWithBlobs(f.blobs, logger.Nop())
	flag, err := storages.Session.Load(context.Background())
	require.NoError(t, err)
	return flag
}

// ─────────────────────────────────────────────
// Reachability
// ─────────────────────────────────────────────

func TestGate_UnauthenticatedAccessDenied(t *testing.T) {
	f := newColdFixture(t)
	ctx := context.Background()

	require.Equal(t, StateInitializing, f.gate.State())

	_, err := f.gate.ListNotes(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = f.gate.AddNote(ctx, "t", "c", models.CategoryPersonal)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = f.gate.DeleteNote(ctx, "1")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = f.gate.ExportSnapshot(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	err = f.gate.WipeAll(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Zero(t, f.challenger.ChallengeCount(), "denied calls never reach the challenger")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestGate_LoginSuccess(t *testing.T) {
	f := newColdFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.gate.Login(ctx))

	assert.Equal(t, StateAuthenticated, f.gate.State())
	assert.True(t, f.sessionFlag(t))
	require.Len(t, f.challenger.Prompts, 1)
	assert.Equal(t, "Authenticate to access your secure vault", f.challenger.Prompts[0])
}

func TestGate_LoginChallengeFailed(t *testing.T) {
	f := newColdFixture(t, biometric.ErrFailed)

	err := f.gate.Login(context.Background())
	require.ErrorIs(t, err, ErrAuthorizationDenied)
	assert.Equal(t, StateInitializing, f.gate.State(), "failed login does not settle the state")
}

func TestGate_LoginWithoutSensor(t *testing.T) {
	blobs := store.NewMemoryBlobStore()
	storages := store.NewStoragesWithBlobs(blobs, logger.Nop())
	vault := service.NewVaultService(storages, validators.NewNoteValidator(), logger.Nop())
	noSensor := biometric.NewScriptedChallenger(nil)

	t.Run("fallback off", func(t *testing.T) {
		g := NewGate(vault, storages.Session, noSensor, config.App{}, logger.Nop())
		require.ErrorIs(t, g.Login(context.Background()), ErrBiometricUnavailable)
	})

	t.Run("fallback on", func(t *testing.T) {
		g := NewGate(vault, storages.Session, noSensor, config.App{AllowInsecureFallback: true}, logger.Nop())
		require.NoError(t, g.Login(context.Background()))
		assert.Equal(t, StateAuthenticated, g.State())
	})
}

// ─────────────────────────────────────────────
// Restore
// ─────────────────────────────────────────────

func TestGate_RestoreWithoutFlag(t *testing.T) {
	f := newColdFixture(t)

	state := f.gate.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, state)
	assert.Zero(t, f.challenger.ChallengeCount(), "no flag, no welcome-back prompt")
}

func TestGate_RestoreWelcomeBack(t *testing.T) {
	f := newColdFixture(t, nil)
	ctx := context.Background()

	storages := store.NewStoragesWithBlobs(f.blobs, logger.Nop())
	require.NoError(t, storages.Session.Save(ctx, true))

	state := f.gate.Restore(ctx)

	assert.Equal(t, StateAuthenticated, state)
	require.Len(t, f.challenger.Prompts, 1)
	assert.Equal(t, "Welcome back! Please authenticate to access your secure notes.", f.challenger.Prompts[0])
}

func TestGate_RestoreFailedChallengeRewritesFlag(t *testing.T) {
	f := newColdFixture(t, biometric.ErrFailed)
	ctx := context.Background()

	storages := store.NewStoragesWithBlobs(f.blobs, logger.Nop())
	require.NoError(t, storages.Session.Save(ctx, true))

	state := f.gate.Restore(ctx)

	assert.Equal(t, StateUnauthenticated, state)
	assert.False(t, f.sessionFlag(t), "flag must be rewritten to false")
}

func TestGate_RestoreFailsClosedOnStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionRepository(ctrl)
	session.EXPECT().Load(gomock.Any()).Return(false, store.ErrStorageUnavailable)

	challenger := mock.NewMockChallenger(ctrl)

	blobs := store.NewMemoryBlobStore()
	storages := store.NewStoragesWithBlobs(blobs, logger.Nop())
	vault := service.NewVaultService(storages, validators.NewNoteValidator(), logger.Nop())

	g := NewGate(vault, session, challenger, config.App{}, logger.Nop())
	state := g.Restore(context.Background())

	// no challenger expectations were set: any challenge would fail the test
	assert.Equal(t, StateUnauthenticated, state)
}

// ─────────────────────────────────────────────
// Sensitive deletes
// ─────────────────────────────────────────────

func TestGate_DeleteSensitiveNoteRequiresChallenge(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	// seeded note "1" lives in passwords
	removed, err := f.gate.DeleteNote(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)

	require.Len(t, f.challenger.Prompts, 1)
	assert.Equal(t, "Authenticate to delete this sensitive note", f.challenger.Prompts[0])
}

func TestGate_DeleteSensitiveNoteDeniedLeavesVaultUntouched(t *testing.T) {
	f := newFixture(t, biometric.ErrCancelled)
	ctx := context.Background()

	_, err := f.gate.ListNotes(ctx) // force the seed so we can snapshot it
	require.NoError(t, err)
	before := f.rawNotes(t)

	_, err = f.gate.DeleteNote(ctx, "1")
	require.ErrorIs(t, err, ErrAuthorizationDenied)

	assert.Equal(t, before, f.rawNotes(t), "denied delete leaves the collection byte-identical")
}

func TestGate_DeletePersonalNoteNeverChallenges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// seeded note "3" lives in personal
	removed, err := f.gate.DeleteNote(ctx, "3")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Zero(t, f.challenger.ChallengeCount())
}

func TestGate_DeleteMissingNotePassesThroughNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.gate.DeleteNote(context.Background(), "missing-id")
	require.ErrorIs(t, err, service.ErrNoteNotFound)
	assert.Zero(t, f.challenger.ChallengeCount())
}

func TestGate_RequirementOffSkipsAllChallenges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	off := false
	_, err := f.gate.UpdateSettings(ctx, models.SettingsPatch{
		RequireBiometricForSensitiveActions: &off,
	})
	require.NoError(t, err)
	challengesAfterSettings := f.challenger.ChallengeCount() // the settings change itself was challenged

	_, err = f.gate.DeleteNote(ctx, "1")
	require.NoError(t, err)
	_, err = f.gate.ExportSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, challengesAfterSettings, f.challenger.ChallengeCount())
}

// ─────────────────────────────────────────────
// Sensitive adds, export, wipe
// ─────────────────────────────────────────────

func TestGate_AddNoteChallengesSensitiveCategoriesOnly(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.gate.AddNote(ctx, "diary", "dear diary", models.CategoryPersonal)
	require.NoError(t, err)
	assert.Zero(t, f.challenger.ChallengeCount())

	_, err = f.gate.AddNote(ctx, "bank", "iban", models.CategoryFinancial)
	require.NoError(t, err)
	require.Len(t, f.challenger.Prompts, 1)
	assert.Equal(t, "Authenticate to save this sensitive note", f.challenger.Prompts[0])
}

func TestGate_ExportAndWipeAlwaysChallenge(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()

	_, err := f.gate.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, f.gate.WipeAll(ctx))

	require.Equal(t, []string{
		"Authenticate to export your data",
		"Authenticate to clear all data",
	}, f.challenger.Prompts)
}

func TestGate_WipeDeniedLeavesDataInPlace(t *testing.T) {
	f := newFixture(t, biometric.ErrFailed)
	ctx := context.Background()

	_, err := f.gate.ListNotes(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, f.gate.WipeAll(ctx), ErrAuthorizationDenied)

	_, err = f.blobs.Get(ctx, store.KeyNotes)
	require.NoError(t, err, "notes blob still present")
}

// ─────────────────────────────────────────────
// Settings invariant
// ─────────────────────────────────────────────

func TestGate_SettingsCrossFieldInvariant(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()

	off := false
	// disabling biometrics while requirement stays on is rejected
	_, err := f.gate.UpdateSettings(ctx, models.SettingsPatch{BiometricEnabled: &off})
	require.ErrorIs(t, err, ErrBiometricDisabled)

	settings, err := f.gate.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.BiometricEnabled, "rejected patch must not persist")

	// dropping both in one patch is fine
	_, err = f.gate.UpdateSettings(ctx, models.SettingsPatch{
		BiometricEnabled:                    &off,
		RequireBiometricForSensitiveActions: &off,
	})
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// Concurrency
// ─────────────────────────────────────────────

// blockingChallenger parks every challenge until released.
type blockingChallenger struct {
	started chan struct{}
	release chan error
}

func (b *blockingChallenger) Probe(context.Context) bool { return true }

func (b *blockingChallenger) EnrolledKinds(context.Context) []biometric.Kind {
	return []biometric.Kind{biometric.KindFingerprint}
}

func (b *blockingChallenger) Challenge(context.Context, string, string) error {
	b.started <- struct{}{}
	return <-b.release
}

func TestGate_ConcurrentChallengeForSameAction(t *testing.T) {
	blobs := store.NewMemoryBlobStore()
	storages := store.NewStoragesWithBlobs(blobs, logger.Nop())
	vault := service.NewVaultService(storages, validators.NewNoteValidator(), logger.Nop())
	challenger := &blockingChallenger{started: make(chan struct{}), release: make(chan error)}

	g := NewGate(vault, storages.Session, challenger, config.App{}, logger.Nop())
	g.setState(StateAuthenticated)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	firstErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		_, err := g.ExportSnapshot(ctx)
		firstErr <- err
	}()

	<-challenger.started // first challenge is now outstanding

	_, err := g.ExportSnapshot(ctx)
	require.ErrorIs(t, err, ErrAuthorizationInProgress)

	challenger.release <- nil
	wg.Wait()
	require.NoError(t, <-firstErr)

	// the slot is free again
	go func() { <-challenger.started; challenger.release <- nil }()
	_, err = g.ExportSnapshot(ctx)
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// Activity tracking
// ─────────────────────────────────────────────

func TestGate_GatedCallsAdvanceLastActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f.gate.now = func() time.Time { return clock }

	_, err := f.gate.ListNotes(ctx)
	require.NoError(t, err)
	assert.True(t, f.gate.LastActivity().Equal(clock))

	clock = clock.Add(5 * time.Minute)
	_, err = f.gate.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, f.gate.LastActivity().Equal(clock))
}

func TestGate_LogoutClearsSessionFlag(t *testing.T) {
	f := newColdFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.gate.Login(ctx))
	require.True(t, f.sessionFlag(t))

	f.gate.Logout(ctx)

	assert.Equal(t, StateUnauthenticated, f.gate.State())
	assert.False(t, f.sessionFlag(t))

	_, err := f.gate.ListNotes(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGate_CapabilityLabel(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "Face ID", f.gate.CapabilityLabel(context.Background()))
}

func TestGate_VaultErrorsPassThrough(t *testing.T) {
	f := newFixture(t)

	_, err := f.gate.AddNote(context.Background(), "", "content", models.CategoryPersonal)
	require.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.False(t, errors.Is(err, ErrAuthorizationDenied))
}
