package handler

import (
	"net/http"
	"sync"

	"github.com/go-kit/log"

	"uwt/internal/model"
	"uwt/onboarding"
	"uwt/session"
	"uwt/vault"
)

// OnboardingHandler drives the first-run flow over HTTP. One session exists at
// a time; it is created lazily and discarded once the gate opens.
type OnboardingHandler struct {
	mu      sync.Mutex
	vault   *vault.Vault
	session *onboarding.Session
	opts    []onboarding.SessionOption
	logger  log.Logger
}

// NewOnboardingHandler creates the handler. opts are forwarded to each new
// onboarding session (entropy and challenge policy injection).
func NewOnboardingHandler(v *vault.Vault, logger log.Logger, opts ...onboarding.SessionOption) *OnboardingHandler {
	return &OnboardingHandler{vault: v, opts: opts, logger: logger}
}

// current returns the active session, starting one if needed. A nil return
// means onboarding is already complete.
func (h *OnboardingHandler) current() *onboarding.Session {
	if session.Decide(h.vault) == session.RouteApp {
		h.session = nil
		return nil
	}
	if h.session == nil {
		h.session = onboarding.NewSession(h.vault, h.opts...)
		h.logger.Log("msg", "onboarding session started")
	}
	return h.session
}

// Status handles GET /onboarding/status
// @Summary      Onboarding status
// @Description  Returns the current onboarding step and reveal progress
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  model.OnboardingStatusResponse
// @Router       /onboarding/status [get]
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeJSON(w, http.StatusOK, model.OnboardingStatusResponse{State: onboarding.StateDone})
		return
	}
	writeJSON(w, http.StatusOK, model.OnboardingStatusResponse{
		State:    s.State(),
		Revealed: s.Revealed(),
	})
}

// SetPIN handles POST /onboarding/pin
// @Summary      Set PIN
// @Description  Records the 6-digit PIN and biometric preference, then moves to the seed step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      model.PINRequest  true  "PIN data"
// @Success      200      {object}  model.StepResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /onboarding/pin [post]
func (h *OnboardingHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.PINRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "PIN must be exactly 6 digits")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeError(w, http.StatusConflict, "onboarding already complete")
		return
	}
	if err := s.SetPIN(req.PIN, req.Biometric); err != nil {
		writeStepError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StepResponse{Success: true, State: s.State()})
}

// Seed handles GET /onboarding/seed
// @Summary      Seed phrase for reveal
// @Description  Returns the generated phrase and per-word reveal bits during the seed step
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  model.SeedResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /onboarding/seed [get]
func (h *OnboardingHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil || (s.State() != onboarding.StateSeedIntro && s.State() != onboarding.StateConfirm) {
		writeError(w, http.StatusConflict, "no seed phrase at this step")
		return
	}
	writeJSON(w, http.StatusOK, model.SeedResponse{Words: s.Seed(), Revealed: s.Revealed()})
}

// Reveal handles POST /onboarding/reveal
// @Summary      Reveal one word
// @Description  Marks a seed position as revealed; revealing twice is a no-op
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      model.RevealRequest  true  "Position"
// @Success      200      {object}  model.OnboardingStatusResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /onboarding/reveal [post]
func (h *OnboardingHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.RevealRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid word position")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeError(w, http.StatusConflict, "onboarding already complete")
		return
	}
	if err := s.Reveal(req.Index); err != nil {
		writeStepError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.OnboardingStatusResponse{State: s.State(), Revealed: s.Revealed()})
}

// FinishReveal handles POST /onboarding/reveal/finish
// @Summary      Finish reveal
// @Description  Moves to the confirmation step once every word has been revealed
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  model.StepResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /onboarding/reveal/finish [post]
func (h *OnboardingHandler) FinishReveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeError(w, http.StatusConflict, "onboarding already complete")
		return
	}
	if err := s.FinishReveal(); err != nil {
		writeStepError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StepResponse{Success: true, State: s.State()})
}

// Challenge handles GET /onboarding/challenge
// @Summary      Confirmation challenge
// @Description  Returns the challenged positions and their option sets
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  model.ChallengeResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /onboarding/challenge [get]
func (h *OnboardingHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil || s.State() != onboarding.StateConfirm {
		writeError(w, http.StatusConflict, "no active challenge")
		return
	}
	writeJSON(w, http.StatusOK, model.ChallengeResponse{Items: s.Challenge().Items})
}

// Confirm handles POST /onboarding/confirm
// @Summary      Confirm backup
// @Description  Validates the chosen words; on success the backup is recorded and onboarding completes
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConfirmRequest  true  "Chosen words"
// @Success      200      {object}  model.StepResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /onboarding/confirm [post]
func (h *OnboardingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.ConfirmRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid confirmation payload")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeError(w, http.StatusConflict, "onboarding already complete")
		return
	}
	for _, answer := range req.Answers {
		if err := s.Answer(answer.Index, answer.Word); err != nil {
			writeStepError(w, err)
			return
		}
	}
	if err := s.Confirm(); err != nil {
		writeStepError(w, err)
		return
	}
	h.logger.Log("msg", "seed backup confirmed")
	writeJSON(w, http.StatusOK, model.StepResponse{Success: true, State: s.State()})
}

// Import handles POST /onboarding/import
// @Summary      Import wallet
// @Description  Accepts a recovery phrase and completes onboarding directly
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Recovery phrase"
// @Success      200      {object}  model.StepResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /onboarding/import [post]
func (h *OnboardingHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.ImportRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid import payload")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.current()
	if s == nil {
		writeError(w, http.StatusConflict, "onboarding already complete")
		return
	}
	if s.State() == onboarding.StatePIN {
		if err := s.StartImport(); err != nil {
			writeStepError(w, err)
			return
		}
	}
	if err := s.Import(req.Phrase); err != nil {
		writeStepError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StepResponse{Success: true, State: s.State()})
}

// writeStepError maps a retryable validation failure to 400 and anything else
// (a step invoked out of order) to 409. The message never carries user input.
func writeStepError(w http.ResponseWriter, err error) {
	if onboarding.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusConflict, err.Error())
}
