package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/go-kit/log"
	"github.com/skip2/go-qrcode"

	"uwt/internal/client"
	"uwt/internal/model"
	"uwt/internal/notify"
	"uwt/review"
	"uwt/session"
	"uwt/vault"
)

// WalletHandler serves the main application screens: balances, history,
// receive, and the transaction review flow. Every endpoint is gated on vault
// state; until onboarding is done the main app is unreachable.
type WalletHandler struct {
	vault   *vault.Vault
	chain   client.ChainClient
	rates   client.RatesClient
	toaster *notify.Toaster
	policy  review.Policy
	primary string
	logger  log.Logger
}

// NewWalletHandler creates the handler with its collaborators.
func NewWalletHandler(v *vault.Vault, chain client.ChainClient, rates client.RatesClient, toaster *notify.Toaster, policy review.Policy, primary string, logger log.Logger) *WalletHandler {
	return &WalletHandler{
		vault:   v,
		chain:   chain,
		rates:   rates,
		toaster: toaster,
		policy:  policy,
		primary: primary,
		logger:  logger,
	}
}

func (h *WalletHandler) gated(w http.ResponseWriter) bool {
	if session.Decide(h.vault) != session.RouteApp {
		writeError(w, http.StatusForbidden, "onboarding required")
		return true
	}
	return false
}

// GetBalance handles GET /wallet/balance
// @Summary      Wallet balance
// @Description  Returns fabricated ETH and USDC balances with a display rate
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if h.gated(w) {
		return
	}
	eth, usdc, err := h.chain.GetBalance(h.primary)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rate, err := h.rates.GetUSDRate("ETH")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: h.primary,
		ETH:     eth,
		USDC:    usdc,
		Rate:    rate,
		USD:     usdc, // USDC is displayed 1:1
	})
}

// TransactionHistory handles GET /wallet/transactions
// @Summary      Transaction history
// @Description  Returns the fabricated transaction log
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.TransactionsResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *WalletHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if h.gated(w) {
		return
	}
	txs, err := h.chain.TransactionHistory(h.primary)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionsResponse{Address: h.primary, Transactions: txs})
}

// Receive handles GET /wallet/receive
// @Summary      Receive info
// @Description  Returns the primary address with a QR code
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ReceiveResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /wallet/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if h.gated(w) {
		return
	}
	qr, err := generateQRCode(h.primary)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.ReceiveResponse{Address: h.primary, QR: qr})
}

// Review handles POST /wallet/review
// @Summary      Review a draft
// @Description  Computes risk flags, warnings and fee tiers for a transfer draft
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ReviewRequest  true  "Draft"
// @Success      200      {object}  model.ReviewResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/review [post]
func (h *WalletHandler) Review(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.gated(w) {
		return
	}
	var req model.ReviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid review payload")
		return
	}
	if !review.ValidRecipient(req.ToAddress) {
		writeError(w, http.StatusBadRequest, "invalid recipient address")
		return
	}
	result := h.policy.Evaluate(draftFrom(req))
	writeJSON(w, http.StatusOK, reviewResponse(result))
}

// Send handles POST /wallet/send
// @Summary      Confirm and send
// @Description  Opens the review surface for the draft, confirms it, and hands the draft to the mock submitter
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ReviewRequest  true  "Draft"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.gated(w) {
		return
	}
	var req model.ReviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid send payload")
		return
	}
	if !review.ValidRecipient(req.ToAddress) {
		writeError(w, http.StatusBadRequest, "invalid recipient address")
		return
	}

	var txID string
	var submitErr error
	surface := review.NewSurface(func(d review.Draft) {
		txID, submitErr = h.chain.Submit(h.primary, d.Recipient, d.Amount, d.Asset)
		if submitErr == nil {
			h.toaster.Push("Transaction submitted", notify.LevelSuccess)
		}
	})
	surface.Open(h.policy, draftFrom(req))
	surface.Confirm()

	if submitErr != nil {
		writeError(w, http.StatusBadRequest, submitErr.Error())
		return
	}
	h.logger.Log("msg", "transfer submitted", "asset", req.Asset)
	writeJSON(w, http.StatusOK, model.SendResponse{TxID: txID})
}

// Notifications handles GET /notifications
// @Summary      Active toasts
// @Description  Returns the current toast list in display order
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ToastsResponse
// @Router       /notifications [get]
func (h *WalletHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	toasts := h.toaster.Active()
	views := make([]model.ToastView, 0, len(toasts))
	for _, t := range toasts {
		views = append(views, model.ToastView{ID: t.ID, Message: t.Message, Level: string(t.Level)})
	}
	writeJSON(w, http.StatusOK, model.ToastsResponse{Toasts: views})
}

func draftFrom(req model.ReviewRequest) review.Draft {
	return review.Draft{
		Recipient: req.ToAddress,
		Amount:    req.Amount,
		Asset:     req.Asset,
		Unlimited: req.Unlimited,
	}
}

func reviewResponse(result review.Result) model.ReviewResponse {
	return model.ReviewResponse{
		IsNewRecipient:      result.IsNewRecipient,
		IsUnlimitedApproval: result.IsUnlimitedApproval,
		FeeTiers:            result.FeeTiers,
		Warnings:            result.Warnings,
	}
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", err
	}
	png, err := qr.PNG(256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
