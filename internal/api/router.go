package api

import (
	"net/http"
	"time"

	"github.com/go-kit/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "uwt/docs"
	"uwt/internal/authlock"
	"uwt/internal/client"
	"uwt/internal/config"
	"uwt/internal/handler"
	"uwt/internal/notify"
	"uwt/review"
	"uwt/vault"
)

// Deps carries the long-lived collaborators the router wires into handlers.
type Deps struct {
	Vault   *vault.Vault
	Chain   client.ChainClient
	Rates   client.RatesClient
	Toaster *notify.Toaster
	Lock    *authlock.Countdown
	Logger  log.Logger
}

// DefaultDeps builds the standard dependency set from configuration.
func DefaultDeps(logger log.Logger) Deps {
	cfg := config.Get()

	var storage vault.Storage
	if cfg.VaultFilePath != "" {
		storage = vault.NewFileStorage(cfg.VaultFilePath, logger)
	} else {
		storage = vault.NewMemoryStorage()
	}

	return Deps{
		Vault:   vault.New(storage, vault.WithLogger(logger)),
		Chain:   client.NewMockChainClient(cfg.MockChainSeed, cfg.PrimaryAddress),
		Rates:   client.NewMockRatesClient(),
		Toaster: notify.NewToaster(time.Duration(cfg.ToastTTLMillis) * time.Millisecond),
		Lock:    authlock.New(time.Second),
		Logger:  logger,
	}
}

// SetupRouter sets up router with handlers
func SetupRouter(deps Deps) (http.Handler, error) {
	cfg := config.Get()

	sessionHandler := handler.NewSessionHandler(deps.Vault)
	onboardingHandler := handler.NewOnboardingHandler(deps.Vault, deps.Logger)
	walletHandler := handler.NewWalletHandler(
		deps.Vault,
		deps.Chain,
		deps.Rates,
		deps.Toaster,
		review.Policy{KnownPrefix: config.GetKnownPrefix()},
		cfg.PrimaryAddress,
		deps.Logger,
	)
	settingsHandler := handler.NewSettingsHandler(deps.Vault, deps.Lock, cfg.LockCountdownSeconds)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Session gate
	mux.HandleFunc("/session", sessionHandler.Route)

	// Onboarding endpoints
	mux.HandleFunc("/onboarding/status", onboardingHandler.Status)
	mux.HandleFunc("/onboarding/pin", onboardingHandler.SetPIN)
	mux.HandleFunc("/onboarding/seed", onboardingHandler.Seed)
	mux.HandleFunc("/onboarding/reveal", onboardingHandler.Reveal)
	mux.HandleFunc("/onboarding/reveal/finish", onboardingHandler.FinishReveal)
	mux.HandleFunc("/onboarding/challenge", onboardingHandler.Challenge)
	mux.HandleFunc("/onboarding/confirm", onboardingHandler.Confirm)
	mux.HandleFunc("/onboarding/import", onboardingHandler.Import)

	// Wallet endpoints
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/transactions", walletHandler.TransactionHistory)
	mux.HandleFunc("/wallet/receive", walletHandler.Receive)
	mux.HandleFunc("/wallet/review", walletHandler.Review)
	mux.HandleFunc("/wallet/send", walletHandler.Send)
	mux.HandleFunc("/notifications", walletHandler.Notifications)

	// Settings endpoints
	mux.HandleFunc("/settings/seed/lock", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			settingsHandler.LockStatus(w, r)
			return
		}
		settingsHandler.StartLock(w, r)
	})
	mux.HandleFunc("/settings/seed/reveal", settingsHandler.RevealSeed)

	return logRequests(deps.Logger, mux), nil
}

// logRequests logs method and path for every request. Bodies are never logged.
func logRequests(logger log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log("method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}
