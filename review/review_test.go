package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{KnownPrefix: "0x12"}

func TestEvaluateNewRecipientFlag(t *testing.T) {
	known := Draft{Recipient: "0x12aB84C3De90F15c2778De3A5C6B7dD1E0a4F921", Amount: "0.1", Asset: "ETH"}
	unknown := known
	unknown.Recipient = "0x99aB84C3De90F15c2778De3A5C6B7dD1E0a4F921"

	knownResult := testPolicy.Evaluate(known)
	unknownResult := testPolicy.Evaluate(unknown)

	assert.False(t, knownResult.IsNewRecipient)
	assert.True(t, unknownResult.IsNewRecipient)

	// only the recipient flag and its warning may differ
	assert.Equal(t, knownResult.IsUnlimitedApproval, unknownResult.IsUnlimitedApproval)
	assert.Equal(t, knownResult.FeeTiers, unknownResult.FeeTiers)
	assert.Empty(t, knownResult.Warnings)
	assert.Equal(t, []string{WarningNewRecipient}, unknownResult.Warnings)
}

func TestEvaluateIsPure(t *testing.T) {
	draft := Draft{Recipient: "0x99aB84C3De90F15c2778De3A5C6B7dD1E0a4F921", Amount: "1", Asset: "USDC", Unlimited: true}

	first := testPolicy.Evaluate(draft)
	second := testPolicy.Evaluate(draft)
	assert.Equal(t, first, second)
}

func TestEvaluateWarningOrder(t *testing.T) {
	tests := []struct {
		name     string
		draft    Draft
		warnings []string
	}{
		{
			name:     "no flags",
			draft:    Draft{Recipient: "0x12ff", Amount: "1", Asset: "ETH"},
			warnings: nil,
		},
		{
			name:     "new recipient only",
			draft:    Draft{Recipient: "0xffff", Amount: "1", Asset: "ETH"},
			warnings: []string{WarningNewRecipient},
		},
		{
			name:     "unlimited only",
			draft:    Draft{Recipient: "0x12ff", Amount: "1", Asset: "ETH", Unlimited: true},
			warnings: []string{WarningUnlimited},
		},
		{
			name:     "both, fixed order",
			draft:    Draft{Recipient: "0xffff", Amount: "1", Asset: "ETH", Unlimited: true},
			warnings: []string{WarningNewRecipient, WarningUnlimited},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testPolicy.Evaluate(tt.draft)
			assert.Equal(t, tt.warnings, result.Warnings)
		})
	}
}

func TestFeeTiersStaticAndOrdered(t *testing.T) {
	tiers := FeeTiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, "Eco", tiers[0].Name)
	assert.Equal(t, "Normal", tiers[1].Name)
	assert.Equal(t, "Fast", tiers[2].Name)
	for _, tier := range tiers {
		assert.NotEmpty(t, tier.Estimate)
	}
}

func TestValidRecipient(t *testing.T) {
	assert.True(t, ValidRecipient("0x12aB84C3De90F15c2778De3A5C6B7dD1E0a4F921"))
	assert.False(t, ValidRecipient("not an address"))
	assert.False(t, ValidRecipient(""))
	assert.False(t, ValidRecipient("0x1234"))
}

func TestSurfaceConfirmInvokesCallbackOnce(t *testing.T) {
	var calls int
	var got Draft
	surface := NewSurface(func(d Draft) {
		calls++
		got = d
	})

	draft := Draft{Recipient: "0xffff", Amount: "0.5", Asset: "ETH"}
	result := surface.Open(testPolicy, draft)
	assert.True(t, surface.IsOpen())
	assert.Equal(t, []string{WarningNewRecipient}, result.Warnings)

	assert.True(t, surface.Confirm())
	assert.False(t, surface.IsOpen())
	assert.Equal(t, 1, calls)
	assert.Equal(t, draft, got)

	// confirming again is a no-op
	assert.False(t, surface.Confirm())
	assert.Equal(t, 1, calls)
}

func TestSurfaceCancelSkipsCallback(t *testing.T) {
	var calls int
	surface := NewSurface(func(Draft) { calls++ })

	surface.Open(testPolicy, Draft{Recipient: "0xffff", Amount: "1", Asset: "ETH"})
	assert.True(t, surface.Cancel())
	assert.False(t, surface.IsOpen())
	assert.Zero(t, calls)

	assert.False(t, surface.Cancel())
	assert.False(t, surface.Confirm(), "cancel and confirm are the only exits, once")
}

func TestSurfaceResultOnlyWhileOpen(t *testing.T) {
	surface := NewSurface(nil)

	_, ok := surface.Result()
	assert.False(t, ok)

	surface.Open(testPolicy, Draft{Recipient: "0x12ff", Amount: "1", Asset: "ETH"})
	result, ok := surface.Result()
	require.True(t, ok)
	assert.False(t, result.IsNewRecipient)

	surface.Cancel()
	_, ok = surface.Result()
	assert.False(t, ok)
}

func TestSurfaceReopenReplacesState(t *testing.T) {
	surface := NewSurface(nil)

	surface.Open(testPolicy, Draft{Recipient: "0xffff", Amount: "1", Asset: "ETH"})
	surface.Open(testPolicy, Draft{Recipient: "0x12ff", Amount: "1", Asset: "ETH"})

	result, ok := surface.Result()
	require.True(t, ok)
	assert.False(t, result.IsNewRecipient)

	assert.True(t, surface.Confirm(), "nil callback is allowed")
}
