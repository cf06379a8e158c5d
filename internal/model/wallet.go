package model

import (
	"time"

	"uwt/review"
	"uwt/session"
)

// SessionResponse represents response for GET /session
type SessionResponse struct {
	Route session.Route `json:"route"`
}

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	ETH     string `json:"eth"`
	USDC    string `json:"usdc"`
	Rate    string `json:"rate"`
	USD     string `json:"usd"`
}

// ReceiveResponse represents response for GET /wallet/receive
type ReceiveResponse struct {
	Address string `json:"address"`
	QR      string `json:"qr"` // base64-encoded PNG
}

// TransactionType transaction type
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// Transaction represents one fabricated history entry
type Transaction struct {
	Type      TransactionType `json:"type"`
	TxID      string          `json:"txId"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    string          `json:"amount"`
	Currency  string          `json:"currency"` // "ETH" or "USDC"
	Timestamp time.Time       `json:"timestamp"`
	Status    string          `json:"status"`
}

// TransactionsResponse represents response for GET /wallet/transactions
type TransactionsResponse struct {
	Address      string        `json:"address"`
	Transactions []Transaction `json:"transactions"`
}

// ReviewRequest represents request for POST /wallet/review and /wallet/send
type ReviewRequest struct {
	ToAddress string `json:"toAddress" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	Asset     string `json:"asset" validate:"required,oneof=ETH USDC"`
	Unlimited bool   `json:"unlimited"`
}

// ReviewResponse represents response for POST /wallet/review
type ReviewResponse struct {
	IsNewRecipient      bool             `json:"isNewRecipient"`
	IsUnlimitedApproval bool             `json:"isUnlimitedApproval"`
	FeeTiers            []review.FeeTier `json:"feeTiers"`
	Warnings            []string         `json:"warnings"`
}

// SendResponse represents response for POST /wallet/send
type SendResponse struct {
	TxID string `json:"txId"`
}

// ToastsResponse represents response for GET /notifications
type ToastsResponse struct {
	Toasts []ToastView `json:"toasts"`
}

// ToastView is one active toast.
type ToastView struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Level   string `json:"level"`
}

// LockStatusResponse represents response for the settings re-auth lock
type LockStatusResponse struct {
	Locked    bool `json:"locked"`
	Remaining int  `json:"remaining"`
}

// SeedPlaceholderResponse represents response for POST /settings/seed/reveal.
// Placeholders only; the raw phrase is never stored.
type SeedPlaceholderResponse struct {
	BackedUp bool     `json:"backedUp"`
	Words    []string `json:"words"`
}
