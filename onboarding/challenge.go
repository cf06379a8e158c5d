package onboarding

import (
	"fmt"
	"math/rand"
	"sort"
)

// optionsPerItem is the size of each multiple-choice set: the true word plus
// two distractors.
const optionsPerItem = 3

// IndexPicker selects k of n seed positions to confirm.
type IndexPicker func(n, k int) []int

// FixedIndexPicker confirms the given positions, wrapped into range. This is
// the shipping policy: positions 1, 5 and 9.
func FixedIndexPicker(positions ...int) IndexPicker {
	return func(n, k int) []int {
		if k > len(positions) {
			k = len(positions)
		}
		indices := make([]int, k)
		for i := 0; i < k; i++ {
			indices[i] = positions[i] % n
		}
		return indices
	}
}

// DefaultIndexPicker is the fixed {1, 5, 9} policy.
var DefaultIndexPicker = FixedIndexPicker(1, 5, 9)

// RandomIndexPicker selects k distinct positions using r.
func RandomIndexPicker(r *rand.Rand) IndexPicker {
	return func(n, k int) []int {
		if k > n {
			k = n
		}
		perm := r.Perm(n)
		indices := append([]int(nil), perm[:k]...)
		sort.Ints(indices)
		return indices
	}
}

// ChallengeItem is one position to confirm with its sorted option set.
type ChallengeItem struct {
	Index   int      `json:"index"`
	Options []string `json:"options"`
}

// Challenge is the multiple-choice quiz proving the user recorded the phrase.
// The true words stay with the session; the challenge itself is safe to show.
type Challenge struct {
	Items []ChallengeItem `json:"items"`
}

// Item returns the item for a seed index, if the challenge covers it.
func (c Challenge) Item(index int) (ChallengeItem, bool) {
	for _, item := range c.Items {
		if item.Index == index {
			return item, true
		}
	}
	return ChallengeItem{}, false
}

// buildChallenge constructs the quiz for the chosen indices. Each option set
// holds exactly three distinct entries including the true word, sorted for a
// deterministic display order. A distractor pool that cannot supply two words
// different from the true word is a vocabulary defect, not a runtime
// condition, so it panics.
func buildChallenge(seed []string, indices []int, distractors []string) Challenge {
	items := make([]ChallengeItem, 0, len(indices))
	for _, idx := range indices {
		truth := seed[idx]
		options := []string{truth}
		for _, d := range distractors {
			if len(options) == optionsPerItem {
				break
			}
			if d == truth || contains(options, d) {
				continue
			}
			options = append(options, d)
		}
		if len(options) < optionsPerItem {
			panic(fmt.Sprintf("onboarding: distractor pool too small for position %d", idx))
		}
		sort.Strings(options)
		items = append(items, ChallengeItem{Index: idx, Options: options})
	}
	return Challenge{Items: items}
}

func contains(words []string, w string) bool {
	for _, existing := range words {
		if existing == w {
			return true
		}
	}
	return false
}
