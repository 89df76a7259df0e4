// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate implements the authorization layer in front of the
// vault: a session state machine plus per-action biometric challenges
// for sensitive operations. The vault service itself never checks
// authorization; everything user-facing goes through the gate.
package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akimenko/securevault/internal/biometric"
	"github.com/akimenko/securevault/internal/config"
	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/internal/service"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/models"
)

// State is the authorization state of the session.
type State string

const (
	// StateInitializing - the gate exists but Restore has not run yet.
	StateInitializing State = "initializing"
	// StateUnauthenticated - no proven user presence; vault access denied.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticated - vault access allowed.
	StateAuthenticated State = "authenticated"
)

const (
	loginPrompt   = "Authenticate to access your secure vault"
	restorePrompt = "Welcome back! Please authenticate to access your secure notes."
)

// Gate fronts the vault service with session and challenge checks.
// It satisfies [service.VaultService], so callers that only read can
// stay ignorant of authorization.
type Gate struct {
	vault      service.VaultService
	session    store.SessionRepository
	challenger biometric.Challenger

	// allowInsecureFallback permits Login without any challenge when no
	// sensor is usable. Development convenience, off by default.
	allowInsecureFallback bool

	mu           sync.Mutex
	state        State
	inflight     map[string]struct{}
	lastActivity time.Time

	now    func() time.Time
	logger *logger.Logger
}

var _ service.VaultService = (*Gate)(nil)

// NewGate returns a gate in the Initializing state. Call Restore before
// serving requests.
func NewGate(vault service.VaultService, session store.SessionRepository, challenger biometric.Challenger, cfg config.App, logger *logger.Logger) *Gate {
	return &Gate{
		vault:                 vault,
		session:               session,
		challenger:            challenger,
		allowInsecureFallback: cfg.AllowInsecureFallback,
		state:                 StateInitializing,
		inflight:              make(map[string]struct{}),
		now:                   func() time.Time { return time.Now().UTC() },
		logger:                logger,
	}
}

// State returns the current session state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LastActivity returns the time of the most recent gated vault call or
// successful login. The idle worker compares it against the timeout.
func (g *Gate) LastActivity() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActivity
}

// CapabilityLabel names the strongest enrolled sensor for UI text.
func (g *Gate) CapabilityLabel(ctx context.Context) string {
	return biometric.LabelFor(g.challenger.EnrolledKinds(ctx))
}

// Restore settles the initial session state from the persisted flag.
// Fail-closed: a storage error, an unusable sensor or a failed
// challenge all end Unauthenticated; in the latter two cases the
// persisted flag is rewritten to false so the next start does not
// re-prompt.
func (g *Gate) Restore(ctx context.Context) State {
	authenticated, err := g.session.Load(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "Gate.Restore").Msg("session flag unreadable, failing closed")
		return g.setState(StateUnauthenticated)
	}
	if !authenticated {
		return g.setState(StateUnauthenticated)
	}

	if !g.challenger.Probe(ctx) {
		g.rewriteSessionFlag(ctx, false)
		return g.setState(StateUnauthenticated)
	}
	if err := g.challenger.Challenge(ctx, restorePrompt, biometric.DefaultFallbackLabel); err != nil {
		g.logger.Info().Err(err).Msg("restore challenge not passed")
		g.rewriteSessionFlag(ctx, false)
		return g.setState(StateUnauthenticated)
	}

	g.touch()
	return g.setState(StateAuthenticated)
}

// Login authenticates a new session. With a usable sensor this is a
// biometric challenge; without one it fails with
// [ErrBiometricUnavailable] unless the insecure development fallback is
// switched on.
func (g *Gate) Login(ctx context.Context) error {
	if g.challenger.Probe(ctx) {
		if err := g.challenger.Challenge(ctx, loginPrompt, biometric.DefaultFallbackLabel); err != nil {
			if errors.Is(err, biometric.ErrUnavailable) {
				return fmt.Errorf("%w: %w", ErrBiometricUnavailable, err)
			}
			return fmt.Errorf("%w: %w", ErrAuthorizationDenied, err)
		}
	} else if !g.allowInsecureFallback {
		return ErrBiometricUnavailable
	} else {
		g.logger.Warn().Msg("insecure fallback login: no biometric challenge performed")
	}

	g.rewriteSessionFlag(ctx, true)
	g.touch()
	g.setState(StateAuthenticated)
	return nil
}

// Logout ends the session and clears the persisted flag.
func (g *Gate) Logout(ctx context.Context) {
	g.rewriteSessionFlag(ctx, false)
	g.setState(StateUnauthenticated)
}

// ─────────────────────────────────────────────
// Gated vault operations
// ─────────────────────────────────────────────

func (g *Gate) ListNotes(ctx context.Context) ([]models.Note, error) {
	if err := g.requireAuthenticated(); err != nil {
		return nil, err
	}
	return g.vault.ListNotes(ctx)
}

func (g *Gate) ListNotesByCategory(ctx context.Context, category models.Category) ([]models.Note, error) {
	if err := g.requireAuthenticated(); err != nil {
		return nil, err
	}
	return g.vault.ListNotesByCategory(ctx, category)
}

func (g *Gate) GetNote(ctx context.Context, id string) (models.Note, error) {
	if err := g.requireAuthenticated(); err != nil {
		return models.Note{}, err
	}
	return g.vault.GetNote(ctx, id)
}

// AddNote creates a note. A sensitive target category requires a
// challenge before anything is written.
func (g *Gate) AddNote(ctx context.Context, title, content string, category models.Category) (models.Note, error) {
	if err := g.requireAuthenticated(); err != nil {
		return models.Note{}, err
	}
	if err := g.authorize(ctx, AddNoteAction{Category: category}); err != nil {
		return models.Note{}, err
	}
	return g.vault.AddNote(ctx, title, content, category)
}

func (g *Gate) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	if err := g.requireAuthenticated(); err != nil {
		return models.Note{}, err
	}
	return g.vault.UpdateNote(ctx, id, patch)
}

// DeleteNote removes a note. When the target belongs to a sensitive
// category the delete is challenged first; the category is resolved
// here, never taken from the caller.
func (g *Gate) DeleteNote(ctx context.Context, id string) (bool, error) {
	if err := g.requireAuthenticated(); err != nil {
		return false, err
	}
	if err := g.authorize(ctx, DeleteNoteAction{ID: id}); err != nil {
		return false, err
	}
	return g.vault.DeleteNote(ctx, id)
}

func (g *Gate) GetSettings(ctx context.Context) (models.Settings, error) {
	if err := g.requireAuthenticated(); err != nil {
		return models.Settings{}, err
	}
	return g.vault.GetSettings(ctx)
}

// UpdateSettings applies a settings patch. The resulting object may not
// require challenges while biometrics are disabled; such patches fail
// with [ErrBiometricDisabled] before anything is persisted.
func (g *Gate) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	if err := g.requireAuthenticated(); err != nil {
		return models.Settings{}, err
	}

	current, err := g.vault.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	prospective := patch.Apply(current)
	if prospective.RequireBiometricForSensitiveActions && !prospective.BiometricEnabled {
		return models.Settings{}, ErrBiometricDisabled
	}

	if err := g.authorize(ctx, ChangeSettingsAction{}); err != nil {
		return models.Settings{}, err
	}
	return g.vault.UpdateSettings(ctx, patch)
}

func (g *Gate) ExportSnapshot(ctx context.Context) (string, error) {
	if err := g.requireAuthenticated(); err != nil {
		return "", err
	}
	if err := g.authorize(ctx, ExportAction{}); err != nil {
		return "", err
	}
	return g.vault.ExportSnapshot(ctx)
}

func (g *Gate) WipeAll(ctx context.Context) error {
	if err := g.requireAuthenticated(); err != nil {
		return err
	}
	if err := g.authorize(ctx, WipeAllAction{}); err != nil {
		return err
	}
	return g.vault.WipeAll(ctx)
}

// ─────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────

func (g *Gate) requireAuthenticated() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	g.lastActivity = g.now()
	return nil
}

// authorize decides whether the action needs a challenge and runs it.
// The per-action category requirement is combined with the persisted
// preference: no challenge happens while
// requireBiometricForSensitiveActions is off.
func (g *Gate) authorize(ctx context.Context, action SensitiveAction) error {
	required, err := g.challengeRequired(ctx, action)
	if err != nil {
		return err
	}
	if !required {
		return nil
	}
	return g.challenge(ctx, action)
}

func (g *Gate) challengeRequired(ctx context.Context, action SensitiveAction) (bool, error) {
	settings, err := g.vault.GetSettings(ctx)
	if err != nil {
		return false, err
	}
	if !settings.RequireBiometricForSensitiveActions {
		return false, nil
	}

	switch a := action.(type) {
	case AddNoteAction:
		return a.Category.Sensitive(), nil
	case DeleteNoteAction:
		note, err := g.vault.GetNote(ctx, a.ID)
		if err != nil {
			// NotFound and storage failures surface as the vault would
			// report them; the delete itself is never reached.
			return false, err
		}
		return note.Category.Sensitive(), nil
	default:
		// Export, WipeAll, ChangeSettings touch the whole vault.
		return true, nil
	}
}

// challenge runs the biometric prompt for the action, holding a slot in
// the in-flight map so the same action cannot be prompted twice at
// once.
func (g *Gate) challenge(ctx context.Context, action SensitiveAction) error {
	key := action.key()

	g.mu.Lock()
	if _, outstanding := g.inflight[key]; outstanding {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAuthorizationInProgress, key)
	}
	g.inflight[key] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inflight, key)
		g.mu.Unlock()
	}()

	if !g.challenger.Probe(ctx) {
		return ErrBiometricUnavailable
	}
	if err := g.challenger.Challenge(ctx, action.prompt(), biometric.DefaultFallbackLabel); err != nil {
		if errors.Is(err, biometric.ErrUnavailable) {
			return fmt.Errorf("%w: %w", ErrBiometricUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrAuthorizationDenied, err)
	}
	return nil
}

func (g *Gate) setState(next State) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = next
	return next
}

func (g *Gate) touch() {
	g.mu.Lock()
	g.lastActivity = g.now()
	g.mu.Unlock()
}

// rewriteSessionFlag persists the flag best-effort. Losing it degrades
// to an extra login on the next start, so failures are only logged.
func (g *Gate) rewriteSessionFlag(ctx context.Context, authenticated bool) {
	if err := g.session.Save(ctx, authenticated); err != nil {
		g.logger.Warn().Err(err).Bool("authenticated", authenticated).Msg("session flag not persisted")
	}
}
