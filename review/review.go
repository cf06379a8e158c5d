// Package review computes the risk flags and fee choices shown before a
// transfer or swap is confirmed. Evaluation is pure: the same draft always
// yields the same result, and nothing here talks to a chain.
package review

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Draft is a transfer or swap awaiting confirmation.
type Draft struct {
	Recipient string
	Amount    string
	Asset     string
	Unlimited bool
}

// Warning texts, in the order they are surfaced.
const (
	WarningNewRecipient = "New recipient address"
	WarningUnlimited    = "Unlimited approval selected"
)

// FeeTier is a named speed option with a human time estimate. Picking a tier
// never changes the draft's risk flags.
type FeeTier struct {
	Name     string `json:"name"`
	Estimate string `json:"estimate"`
}

// FeeTiers returns the static tier list, slowest first.
func FeeTiers() []FeeTier {
	return []FeeTier{
		{Name: "Eco", Estimate: "2-3 min"},
		{Name: "Normal", Estimate: "30s-1m"},
		{Name: "Fast", Estimate: "10-20s"},
	}
}

// Result is the derived, read-only view over a draft. It is recomputed on
// every change and never persisted.
type Result struct {
	IsNewRecipient      bool      `json:"isNewRecipient"`
	IsUnlimitedApproval bool      `json:"isUnlimitedApproval"`
	FeeTiers            []FeeTier `json:"feeTiers"`
	Warnings            []string  `json:"warnings"`
}

// Policy holds the known-recipients reference. A recipient counts as new when
// it does not share the prefix of the user's primary address; this mirrors a
// "haven't sent here before" heuristic rather than full equality.
type Policy struct {
	KnownPrefix string
}

// Evaluate derives the review result for a draft. Warnings keep a fixed
// order: new recipient first, unlimited approval second.
func (p Policy) Evaluate(d Draft) Result {
	result := Result{
		IsNewRecipient:      d.Recipient != "" && !strings.HasPrefix(d.Recipient, p.KnownPrefix),
		IsUnlimitedApproval: d.Unlimited,
		FeeTiers:            FeeTiers(),
	}
	if result.IsNewRecipient {
		result.Warnings = append(result.Warnings, WarningNewRecipient)
	}
	if result.IsUnlimitedApproval {
		result.Warnings = append(result.Warnings, WarningUnlimited)
	}
	return result
}

// ValidRecipient checks the recipient is a well-formed hex address. Offline
// format check only; no chain lookup.
func ValidRecipient(addr string) bool {
	return common.IsHexAddress(addr)
}
