package handler

import (
	"net/http"

	"uwt/internal/authlock"
	"uwt/internal/model"
	"uwt/session"
	"uwt/vault"
)

// SessionHandler answers the gate question for app entry.
type SessionHandler struct {
	vault *vault.Vault
}

// NewSessionHandler creates the handler.
func NewSessionHandler(v *vault.Vault) *SessionHandler {
	return &SessionHandler{vault: v}
}

// Route handles GET /session
// @Summary      Session route
// @Description  Decides between onboarding and the main app from vault contents
// @Tags         session
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /session [get]
func (h *SessionHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, model.SessionResponse{Route: session.Decide(h.vault)})
}

// SettingsHandler exposes the backup status and the re-auth-locked reveal of
// the stored seed placeholders.
type SettingsHandler struct {
	vault    *vault.Vault
	lock     *authlock.Countdown
	lockSecs int
}

// NewSettingsHandler creates the handler around a shared countdown.
func NewSettingsHandler(v *vault.Vault, lock *authlock.Countdown, lockSecs int) *SettingsHandler {
	return &SettingsHandler{vault: v, lock: lock, lockSecs: lockSecs}
}

// StartLock handles POST /settings/seed/lock
// @Summary      Start re-auth lock
// @Description  Arms the countdown that must reach zero before the seed view unlocks
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.LockStatusResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /settings/seed/lock [post]
func (h *SettingsHandler) StartLock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if session.Decide(h.vault) != session.RouteApp {
		writeError(w, http.StatusForbidden, "onboarding required")
		return
	}
	h.lock.Start(h.lockSecs)
	writeJSON(w, http.StatusOK, model.LockStatusResponse{Locked: true, Remaining: h.lock.Remaining()})
}

// LockStatus handles GET /settings/seed/lock
// @Summary      Re-auth lock status
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.LockStatusResponse
// @Router       /settings/seed/lock [get]
func (h *SettingsHandler) LockStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, model.LockStatusResponse{
		Locked:    h.lock.Active() && !h.lock.Unlocked(),
		Remaining: h.lock.Remaining(),
	})
}

// RevealSeed handles POST /settings/seed/reveal
// @Summary      Reveal stored seed placeholders
// @Description  Returns the redacted placeholder words once the countdown has expired
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.SeedPlaceholderResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /settings/seed/reveal [post]
func (h *SettingsHandler) RevealSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if session.Decide(h.vault) != session.RouteApp {
		writeError(w, http.StatusForbidden, "onboarding required")
		return
	}
	if !h.lock.Unlocked() {
		writeError(w, http.StatusForbidden, "re-authentication countdown still running")
		return
	}
	h.lock.Stop()

	backedUp, _ := h.vault.GetBool(vault.KeySeedBackedUp)
	words, _ := h.vault.GetStrings(vault.KeySeed)
	writeJSON(w, http.StatusOK, model.SeedPlaceholderResponse{BackedUp: backedUp, Words: words})
}
