package onboarding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwt/vault"
)

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *vault.Vault) {
	t.Helper()
	v := vault.New(vault.NewMemoryStorage())
	return NewSession(v, opts...), v
}

func revealAll(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < SeedLength; i++ {
		require.NoError(t, s.Reveal(i))
	}
}

func answerCorrectly(t *testing.T, s *Session) {
	t.Helper()
	seed := s.Seed()
	for _, item := range s.Challenge().Items {
		require.NoError(t, s.Answer(item.Index, seed[item.Index]))
	}
}

func TestSetPINHappyPath(t *testing.T) {
	s, v := newTestSession(t)

	require.NoError(t, s.SetPIN("123456", false))
	assert.Equal(t, StateSeedIntro, s.State())

	pin, ok := v.GetString(vault.KeyPIN)
	require.True(t, ok)
	assert.Equal(t, "123456", pin)

	bio, ok := v.GetBool(vault.KeyBiometric)
	require.True(t, ok)
	assert.False(t, bio)
}

func TestSetPINValidation(t *testing.T) {
	tests := []struct {
		name string
		pin  string
	}{
		{name: "too short", pin: "12345"},
		{name: "too long", pin: "1234567"},
		{name: "letters", pin: "12a456"},
		{name: "empty", pin: ""},
		{name: "spaces", pin: "123 56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, v := newTestSession(t)

			err := s.SetPIN(tt.pin, true)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, StatePIN, s.State(), "failed validation must not advance")
			assert.NotContains(t, err.Error(), tt.pin, "error must not echo the PIN")

			_, ok := v.Get(vault.KeyPIN)
			assert.False(t, ok, "nothing may be committed on failure")
		})
	}
}

func TestSeedPhraseShape(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))

	seed := s.Seed()
	require.Len(t, seed, SeedLength)
	for _, w := range seed {
		assert.Equal(t, w, strings.ToLower(w), "words must be lowercase")
		assert.NotEmpty(t, w)
	}
}

func TestRevealMonotonic(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))

	require.NoError(t, s.Reveal(3))
	require.NoError(t, s.Reveal(3)) // idempotent
	require.NoError(t, s.Reveal(0))

	revealed := s.Revealed()
	assert.True(t, revealed[0])
	assert.True(t, revealed[3])

	// a revealed bit never reverts across further actions
	require.NoError(t, s.Reveal(7))
	again := s.Revealed()
	assert.True(t, again[0])
	assert.True(t, again[3])
	assert.True(t, again[7])
}

func TestRevealOutOfRange(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))

	assert.True(t, IsValidationError(s.Reveal(-1)))
	assert.True(t, IsValidationError(s.Reveal(SeedLength)))
}

func TestFinishRevealRequiresAll(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))

	for i := 0; i < SeedLength-1; i++ {
		require.NoError(t, s.Reveal(i))
	}

	err := s.FinishReveal()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, StateSeedIntro, s.State())

	require.NoError(t, s.Reveal(SeedLength-1))
	require.NoError(t, s.FinishReveal())
	assert.Equal(t, StateConfirm, s.State())
}

func TestConfirmSuccess(t *testing.T) {
	s, v := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))
	revealAll(t, s)
	require.NoError(t, s.FinishReveal())
	answerCorrectly(t, s)

	require.NoError(t, s.Confirm())
	assert.Equal(t, StateDone, s.State())

	backedUp, ok := v.GetBool(vault.KeySeedBackedUp)
	require.True(t, ok)
	assert.True(t, backedUp)

	words, ok := v.GetStrings(vault.KeySeed)
	require.True(t, ok)
	require.Len(t, words, SeedLength)
	seed := s.Seed()
	for i, w := range words {
		assert.Equal(t, "REDACTED", w)
		assert.NotEqual(t, seed[i], w, "raw words must never be persisted")
	}
}

func TestConfirmCaseInsensitive(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))
	revealAll(t, s)
	require.NoError(t, s.FinishReveal())

	seed := s.Seed()
	for _, item := range s.Challenge().Items {
		require.NoError(t, s.Answer(item.Index, strings.ToUpper(seed[item.Index])))
	}
	require.NoError(t, s.Confirm())
	assert.Equal(t, StateDone, s.State())
}

func TestConfirmSingleWrongAnswerFails(t *testing.T) {
	s, v := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))
	revealAll(t, s)
	require.NoError(t, s.FinishReveal())

	seed := s.Seed()
	items := s.Challenge().Items
	require.Len(t, items, 3)
	for i, item := range items {
		word := seed[item.Index]
		if i == 1 { // wrong answer for the middle position
			for _, option := range item.Options {
				if option != word {
					word = option
					break
				}
			}
		}
		require.NoError(t, s.Answer(item.Index, word))
	}

	err := s.Confirm()
	require.Error(t, err)
	assert.True(t, IsValidationError(err), "wrong words are retryable, not fatal")
	assert.Equal(t, StateConfirm, s.State())

	_, ok := v.Get(vault.KeySeedBackedUp)
	assert.False(t, ok, "no partial commit on failure")
	_, ok = v.Get(vault.KeySeed)
	assert.False(t, ok)

	// a corrected retry succeeds
	answerCorrectly(t, s)
	require.NoError(t, s.Confirm())
	assert.Equal(t, StateDone, s.State())
}

func TestConfirmErrorNeverContainsSeedWords(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPIN("123456", false))
	revealAll(t, s)
	require.NoError(t, s.FinishReveal())

	err := s.Confirm() // no answers given
	require.Error(t, err)
	for _, w := range s.Seed() {
		assert.NotContains(t, err.Error(), w)
	}
}

func TestImportBranch(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.StartImport())
	assert.Equal(t, StateImport, s.State())

	err := s.Import("   ")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, StateImport, s.State())

	require.NoError(t, s.Import("twelve words separated by spaces"))
	assert.Equal(t, StateDone, s.State())
}

func TestImportCancelReturnsToPIN(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.StartImport())
	require.NoError(t, s.CancelImport())
	assert.Equal(t, StatePIN, s.State())

	require.NoError(t, s.SetPIN("123456", true))
	assert.Equal(t, StateSeedIntro, s.State())
}

func TestStepsRejectOutOfOrderCalls(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Error(t, s.Reveal(0))
	assert.Error(t, s.FinishReveal())
	assert.Error(t, s.Confirm())
	assert.Error(t, s.Import("phrase"))

	require.NoError(t, s.SetPIN("123456", false))
	assert.Error(t, s.SetPIN("654321", false), "pin step cannot be re-entered")
	assert.Error(t, s.StartImport(), "import only branches from the pin step")
}

func TestCustomPickerAndWordSource(t *testing.T) {
	source := func(n int) []string {
		words := make([]string, n)
		for i := range words {
			words[i] = Vocabulary[i%len(Vocabulary)]
		}
		return words
	}
	s, _ := newTestSession(t,
		WithWordSource(source),
		WithIndexPicker(FixedIndexPicker(0, 2, 4, 6)),
		WithConfirmCount(4),
	)
	require.NoError(t, s.SetPIN("123456", false))
	revealAll(t, s)
	require.NoError(t, s.FinishReveal())

	items := s.Challenge().Items
	require.Len(t, items, 4)
	assert.Equal(t, []int{0, 2, 4, 6}, []int{items[0].Index, items[1].Index, items[2].Index, items[3].Index})
}
