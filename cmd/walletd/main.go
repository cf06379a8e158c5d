// walletd serves the mock wallet API: onboarding, the vault-backed session
// gate, and the fabricated wallet screens. Nothing here touches a real chain.
//
// @title        Unnamed Wallet API
// @version      1.0
// @description  Mock wallet backend with onboarding, secure vault and transaction review
// @BasePath     /
package main

import (
	"net/http"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"uwt/internal/api"
	"uwt/internal/config"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := config.Init(); err != nil {
		level.Error(logger).Log("msg", "config init failed", "err", err)
		os.Exit(1)
	}

	deps := api.DefaultDeps(logger)
	defer deps.Toaster.Close()
	defer deps.Lock.Stop()

	router, err := api.SetupRouter(deps)
	if err != nil {
		level.Error(logger).Log("msg", "router setup failed", "err", err)
		os.Exit(1)
	}

	addr := ":" + config.GetPort()
	level.Info(logger).Log("msg", "server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
