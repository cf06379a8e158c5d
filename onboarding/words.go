package onboarding

import "math/rand"

// SeedLength is the number of words in a recovery phrase.
const SeedLength = 12

// redactedWord is what gets persisted in place of each real seed word. The raw
// phrase never reaches the vault.
const redactedWord = "REDACTED"

// Vocabulary is the mock word list phrases are drawn from. Real derivation is
// out of scope for this build; any 12 lowercase words satisfy the contract.
var Vocabulary = []string{
	"globe", "future", "garden", "mint", "ocean", "ripple",
	"signal", "silk", "atom", "solace", "ember", "harbor",
}

// DistractorPool supplies wrong answers for confirmation challenges.
var DistractorPool = []string{"delta", "river", "stone"}

// WordSource produces an n-word seed phrase.
type WordSource func(n int) []string

// VocabularySource returns the vocabulary in fixed order, truncated or cycled
// to n words. Deterministic, which keeps onboarding flows reproducible.
func VocabularySource(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = Vocabulary[i%len(Vocabulary)]
	}
	return words
}

// ShuffledSource draws n words from the vocabulary in an order decided by r.
func ShuffledSource(r *rand.Rand) WordSource {
	return func(n int) []string {
		perm := r.Perm(len(Vocabulary))
		words := make([]string, n)
		for i := range words {
			words[i] = Vocabulary[perm[i%len(perm)]]
		}
		return words
	}
}
