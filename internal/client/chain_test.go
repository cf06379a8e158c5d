package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwt/internal/model"
)

const primary = "0x12aB84C3De90F15c2778De3A5C6B7dD1E0a4F921"

func TestMockChainDeterministicForSeed(t *testing.T) {
	a := NewMockChainClient(1, primary)
	b := NewMockChainClient(1, primary)

	aETH, aUSDC, err := a.GetBalance(primary)
	require.NoError(t, err)
	bETH, bUSDC, err := b.GetBalance(primary)
	require.NoError(t, err)
	assert.Equal(t, aETH, bETH)
	assert.Equal(t, aUSDC, bUSDC)

	aTxs, err := a.TransactionHistory(primary)
	require.NoError(t, err)
	bTxs, err := b.TransactionHistory(primary)
	require.NoError(t, err)
	assert.Equal(t, aTxs, bTxs)
	assert.NotEmpty(t, aTxs)
}

func TestMockChainHistoryShape(t *testing.T) {
	c := NewMockChainClient(1, primary)

	txs, err := c.TransactionHistory(primary)
	require.NoError(t, err)
	for _, tx := range txs {
		assert.True(t, strings.HasPrefix(tx.TxID, "0x"))
		assert.Contains(t, []string{"ETH", "USDC"}, tx.Currency)
		switch tx.Type {
		case model.TransactionTypeDebit:
			assert.Equal(t, primary, tx.From)
		case model.TransactionTypeCredit:
			assert.Equal(t, primary, tx.To)
		default:
			t.Fatalf("unexpected type %q", tx.Type)
		}
	}
}

func TestMockChainSubmit(t *testing.T) {
	c := NewMockChainClient(1, primary)
	before, err := c.TransactionHistory(primary)
	require.NoError(t, err)

	txID, err := c.Submit(primary, "0x99aB84C3De90F15c2778De3A5C6B7dD1E0a4F921", "0.01", "ETH")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(txID, "0x"))

	after, err := c.TransactionHistory(primary)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	last := after[len(after)-1]
	assert.Equal(t, txID, last.TxID)
	assert.Equal(t, model.TransactionTypeDebit, last.Type)
	assert.Equal(t, "0.01", last.Amount)
}

func TestMockChainSubmitValidation(t *testing.T) {
	c := NewMockChainClient(1, primary)

	_, err := c.Submit(primary, "0xff", "nonsense", "ETH")
	assert.Error(t, err)

	_, err = c.Submit(primary, "0xff", "1", "DOGE")
	assert.Error(t, err)

	_, err = c.Submit(primary, "0xff", "99999999", "ETH")
	assert.Error(t, err, "cannot overdraw the fabricated balance")
}

func TestMockRates(t *testing.T) {
	r := NewMockRatesClient()

	rate, err := r.GetUSDRate("ETH")
	require.NoError(t, err)
	assert.Equal(t, "3500.00", rate)

	_, err = r.GetUSDRate("DOGE")
	assert.Error(t, err)
}
