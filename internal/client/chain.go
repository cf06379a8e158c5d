// Package client provides the chain and rates collaborators for the wallet
// screens. Both are fabricated: balances, history and submission results are
// generated locally and deterministically from a seed. Real providers would
// implement the same interfaces.
package client

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"uwt/internal/common"
	"uwt/internal/model"
)

// historyDepth is how many fabricated transactions a fresh client starts with.
const historyDepth = 5

// ChainClient serves balances and history and accepts transfers.
type ChainClient interface {
	GetBalance(address string) (eth string, usdc string, err error)
	TransactionHistory(address string) ([]model.Transaction, error)
	Submit(from, to, amount, asset string) (string, error)
}

// MockChainClient fabricates everything from a seeded source so screens and
// tests see stable data.
type MockChainClient struct {
	mu       sync.Mutex
	rng      *rand.Rand
	now      func() time.Time
	weiBal   uint64
	microBal uint64
	history  []model.Transaction
}

// NewMockChainClient builds a client whose balances and starting history are
// derived from seed.
func NewMockChainClient(seed int64, primary string) *MockChainClient {
	rng := rand.New(rand.NewSource(seed))
	c := &MockChainClient{
		rng: rng,
		now: time.Now,
		// roughly 0.5-2.5 ETH and 100-1100 USDC
		weiBal:   500_000_000_000_000_000 + uint64(rng.Int63n(2_000_000_000_000_000_000)),
		microBal: 100_000_000 + uint64(rng.Int63n(1_000_000_000)),
	}
	c.history = c.fabricateHistory(primary)
	return c
}

func (c *MockChainClient) fabricateHistory(primary string) []model.Transaction {
	txs := make([]model.Transaction, 0, historyDepth)
	base := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)
	for i := 0; i < historyDepth; i++ {
		kind := model.TransactionTypeCredit
		from, to := c.fakeAddress(), primary
		if i%2 == 0 {
			kind = model.TransactionTypeDebit
			from, to = primary, c.fakeAddress()
		}
		currency := "USDC"
		amount := common.MicroToUSDC(1_000_000 + uint64(c.rng.Int63n(50_000_000)))
		if i%3 == 0 {
			currency = "ETH"
			amount = common.WeiToETH(10_000_000_000_000_000 + uint64(c.rng.Int63n(100_000_000_000_000_000)))
		}
		txs = append(txs, model.Transaction{
			Type:      kind,
			TxID:      c.fakeTxID(),
			From:      from,
			To:        to,
			Amount:    amount,
			Currency:  currency,
			Timestamp: base.Add(time.Duration(i) * 26 * time.Hour),
			Status:    "confirmed",
		})
	}
	return txs
}

// GetBalance returns the fabricated ETH and USDC balances.
func (c *MockChainClient) GetBalance(address string) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.WeiToETH(c.weiBal), common.MicroToUSDC(c.microBal), nil
}

// TransactionHistory returns the fabricated log, newest last.
func (c *MockChainClient) TransactionHistory(address string) ([]model.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Transaction(nil), c.history...), nil
}

// Submit pretends to broadcast a transfer: it debits the balance, appends a
// history entry and returns a fabricated transaction id.
func (c *MockChainClient) Submit(from, to, amount, asset string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch asset {
	case "ETH":
		wei, err := common.ETHToWei(amount)
		if err != nil {
			return "", fmt.Errorf("invalid amount: %w", err)
		}
		if wei > c.weiBal {
			return "", fmt.Errorf("insufficient ETH balance")
		}
		c.weiBal -= wei
	case "USDC":
		micro, err := common.USDCToMicro(amount)
		if err != nil {
			return "", fmt.Errorf("invalid amount: %w", err)
		}
		if micro > c.microBal {
			return "", fmt.Errorf("insufficient USDC balance")
		}
		c.microBal -= micro
	default:
		return "", fmt.Errorf("unsupported asset: %s", asset)
	}

	txID := c.fakeTxID()
	c.history = append(c.history, model.Transaction{
		Type:      model.TransactionTypeDebit,
		TxID:      txID,
		From:      from,
		To:        to,
		Amount:    amount,
		Currency:  asset,
		Timestamp: c.now(),
		Status:    "confirmed",
	})
	return txID, nil
}

func (c *MockChainClient) fakeTxID() string {
	buf := make([]byte, 32)
	c.rng.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}

func (c *MockChainClient) fakeAddress() string {
	buf := make([]byte, 20)
	c.rng.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}
