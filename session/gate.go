// Package session decides, on every app entry, whether the user lands in
// onboarding or in the main application. The decision depends only on vault
// contents.
package session

import "uwt/vault"

// Route is where the gate sends the user.
type Route string

const (
	RouteOnboarding Route = "onboarding"
	RouteApp        Route = "app"
)

// Store is the subset of the vault the gate reads.
type Store interface {
	GetString(key string) (string, bool)
	GetBool(key string) (bool, bool)
}

// Decide routes to the main app only when a PIN exists and the seed backup is
// recorded as done. Anything less means onboarding, with the main app
// unreachable. Once both entries are present onboarding is never re-entered
// automatically; there is no explicit re-entry navigation in this build.
func Decide(store Store) Route {
	pin, ok := store.GetString(vault.KeyPIN)
	if !ok || pin == "" {
		return RouteOnboarding
	}
	backedUp, ok := store.GetBool(vault.KeySeedBackedUp)
	if !ok || !backedUp {
		return RouteOnboarding
	}
	return RouteApp
}
