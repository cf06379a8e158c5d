// Package onboarding drives the first-run flow: set a PIN, reveal the recovery
// phrase word by word, prove the backup through a multiple-choice challenge,
// or import an existing phrase. Outcomes are persisted through the vault; the
// session itself lives only in memory and is discarded on completion.
package onboarding

import (
	"fmt"
	"strings"

	"uwt/vault"
)

// State is the current onboarding step.
type State string

const (
	StatePIN       State = "pin"
	StateSeedIntro State = "seed_intro"
	StateConfirm   State = "confirm"
	StateImport    State = "import"
	StateDone      State = "done"
)

// PINLength is the required number of PIN digits.
const PINLength = 6

// ValidationError marks a user-retryable failure: the session stays on the
// current step and nothing is committed. It never carries the offending value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError checks if err is a retryable validation failure.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Session is one run of the onboarding flow.
type Session struct {
	vault *vault.Vault

	state     State
	pin       string
	biometric bool
	seed      []string
	revealed  []bool
	challenge Challenge
	answers   map[int]string

	words        WordSource
	picker       IndexPicker
	confirmCount int
	distractors  []string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithWordSource overrides seed phrase generation.
func WithWordSource(source WordSource) SessionOption {
	return func(s *Session) { s.words = source }
}

// WithIndexPicker overrides which positions the challenge confirms.
func WithIndexPicker(picker IndexPicker) SessionOption {
	return func(s *Session) { s.picker = picker }
}

// WithConfirmCount overrides how many positions are confirmed.
func WithConfirmCount(k int) SessionOption {
	return func(s *Session) { s.confirmCount = k }
}

// WithDistractors overrides the distractor pool.
func WithDistractors(pool []string) SessionOption {
	return func(s *Session) { s.distractors = pool }
}

// NewSession starts a fresh onboarding run in the PIN step.
func NewSession(v *vault.Vault, opts ...SessionOption) *Session {
	s := &Session{
		vault:        v,
		state:        StatePIN,
		answers:      make(map[int]string),
		words:        VocabularySource,
		picker:       DefaultIndexPicker,
		confirmCount: 3,
		distractors:  DistractorPool,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current step.
func (s *Session) State() State {
	return s.state
}

// Biometric returns the recorded biometric-unlock preference.
func (s *Session) Biometric() bool {
	return s.biometric
}

// SetPIN validates the PIN candidate and, on success, persists the pin and
// biometric entries and advances to the seed reveal step.
func (s *Session) SetPIN(pin string, biometric bool) error {
	if s.state != StatePIN {
		return fmt.Errorf("set pin: not in pin step (state %s)", s.state)
	}
	if !validPIN(pin) {
		return &ValidationError{Message: fmt.Sprintf("PIN must be exactly %d digits", PINLength)}
	}
	s.pin = pin
	s.biometric = biometric
	s.vault.Set(vault.KeyPIN, pin)
	s.vault.Set(vault.KeyBiometric, biometric)

	s.seed = s.words(SeedLength)
	s.revealed = make([]bool, SeedLength)
	s.state = StateSeedIntro
	return nil
}

// StartImport switches from the PIN step to the import branch.
func (s *Session) StartImport() error {
	if s.state != StatePIN {
		return fmt.Errorf("start import: not in pin step (state %s)", s.state)
	}
	s.state = StateImport
	return nil
}

// CancelImport returns from the import branch to the PIN step.
func (s *Session) CancelImport() error {
	if s.state != StateImport {
		return fmt.Errorf("cancel import: not in import step (state %s)", s.state)
	}
	s.state = StatePIN
	return nil
}

// Import accepts a free-text recovery phrase and completes onboarding. Only
// non-emptiness is checked; format and checksum validation are out of scope
// for this build.
func (s *Session) Import(phrase string) error {
	if s.state != StateImport {
		return fmt.Errorf("import: not in import step (state %s)", s.state)
	}
	if strings.TrimSpace(phrase) == "" {
		return &ValidationError{Message: "recovery phrase must not be empty"}
	}
	s.state = StateDone
	return nil
}

// Seed returns a copy of the phrase for display. Callers must not persist it.
func (s *Session) Seed() []string {
	return append([]string(nil), s.seed...)
}

// Revealed returns a copy of the per-word reveal bits.
func (s *Session) Revealed() []bool {
	return append([]bool(nil), s.revealed...)
}

// Reveal marks word i as shown. Revealing an already revealed word is a no-op;
// bits only ever flip false to true.
func (s *Session) Reveal(i int) error {
	if s.state != StateSeedIntro {
		return fmt.Errorf("reveal: not in seed step (state %s)", s.state)
	}
	if i < 0 || i >= len(s.revealed) {
		return &ValidationError{Message: "word position out of range"}
	}
	s.revealed[i] = true
	return nil
}

// AllRevealed reports whether every word has been shown.
func (s *Session) AllRevealed() bool {
	for _, r := range s.revealed {
		if !r {
			return false
		}
	}
	return len(s.revealed) == SeedLength
}

// FinishReveal moves to the confirmation step. It refuses until every word
// has been revealed; skipping reveal-all is not allowed.
func (s *Session) FinishReveal() error {
	if s.state != StateSeedIntro {
		return fmt.Errorf("finish reveal: not in seed step (state %s)", s.state)
	}
	if !s.AllRevealed() {
		return &ValidationError{Message: "reveal all words before continuing"}
	}
	indices := s.picker(SeedLength, s.confirmCount)
	s.challenge = buildChallenge(s.seed, indices, s.distractors)
	s.answers = make(map[int]string)
	s.state = StateConfirm
	return nil
}

// Challenge returns the active confirmation challenge.
func (s *Session) Challenge() Challenge {
	return s.challenge
}

// Answer records the user's choice for a challenged position.
func (s *Session) Answer(index int, word string) error {
	if s.state != StateConfirm {
		return fmt.Errorf("answer: not in confirm step (state %s)", s.state)
	}
	if _, ok := s.challenge.Item(index); !ok {
		return &ValidationError{Message: "position is not part of the challenge"}
	}
	s.answers[index] = word
	return nil
}

// Confirm validates all recorded answers against the phrase. Every challenged
// position must match (case-insensitive). On success the vault records the
// backup as done together with a redacted placeholder phrase, and the session
// completes; the raw words are never persisted. On failure the session stays
// in the confirm step for another attempt.
func (s *Session) Confirm() error {
	if s.state != StateConfirm {
		return fmt.Errorf("confirm: not in confirm step (state %s)", s.state)
	}
	for _, item := range s.challenge.Items {
		if !strings.EqualFold(s.answers[item.Index], s.seed[item.Index]) {
			return &ValidationError{Message: "one or more words are incorrect, please try again"}
		}
	}
	placeholder := make([]string, len(s.seed))
	for i := range placeholder {
		placeholder[i] = redactedWord
	}
	s.vault.Set(vault.KeySeedBackedUp, true)
	s.vault.Set(vault.KeySeed, placeholder)
	s.state = StateDone
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
