package biometric

import (
	"context"
	"sync"
)

// ScriptedChallenger replays a fixed sequence of challenge outcomes.
// It backs tests and the insecure development mode of the CLI.
type ScriptedChallenger struct {
	mu sync.Mutex

	available bool
	kinds     []Kind
	outcomes  []error

	// Prompts records every prompt passed to Challenge, in order.
	Prompts []string
}

// NewScriptedChallenger returns a challenger reporting the given sensor
// kinds and yielding the outcomes one per Challenge call. After the
// script is exhausted every further challenge succeeds.
func NewScriptedChallenger(kinds []Kind, outcomes ...error) *ScriptedChallenger {
	return &ScriptedChallenger{
		available: len(kinds) > 0,
		kinds:     kinds,
		outcomes:  outcomes,
	}
}

func (s *ScriptedChallenger) Probe(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

func (s *ScriptedChallenger) EnrolledKinds(_ context.Context) []Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return nil
	}
	kinds := make([]Kind, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

func (s *ScriptedChallenger) Challenge(_ context.Context, prompt, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)

	if !s.available {
		return ErrUnavailable
	}
	if len(s.outcomes) == 0 {
		return nil
	}
	outcome := s.outcomes[0]
	s.outcomes = s.outcomes[1:]
	return outcome
}

// ChallengeCount reports how many challenges have been issued so far.
func (s *ScriptedChallenger) ChallengeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Prompts)
}
