// Package vault implements the namespaced envelope store that gates access to
// the rest of the app. Encryption is simulated: values are wrapped in a JSON
// envelope and base64-encoded, nothing more. A real build would swap the codec
// for an AEAD without changing this API.
//
// Every operation is total from the caller's viewpoint: Set and Remove never
// fail, Get reports a missing or corrupt value as absent. Payloads are never
// logged.
package vault

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/go-kit/log"
)

// Namespace prefixes every logical key so the vault cannot collide with
// unrelated entries in the backing store.
const Namespace = "vault_secure_"

const envelopeVersion = 1

// Logical keys the application stores.
const (
	KeyPIN          = "pin"
	KeyBiometric    = "biometric"
	KeySeedBackedUp = "seed_backed_up"
	KeySeed         = "seed"
)

// envelope is the persisted wrapper around a value. Only the vault sees it.
type envelope struct {
	V    int             `json:"v"`
	T    int64           `json:"t"`
	Data json.RawMessage `json:"data"`
}

// Vault is a key-value store over a Storage backend. Writes are last-write-wins;
// at most one writer exists at a time, so no further coordination is needed.
type Vault struct {
	storage Storage
	now     func() time.Time
	logger  log.Logger
}

// Option configures a Vault.
type Option func(*Vault)

// WithClock overrides the envelope timestamp source.
func WithClock(now func() time.Time) Option {
	return func(v *Vault) { v.now = now }
}

// WithLogger sets the logger. Only key names are ever logged, never values.
func WithLogger(logger log.Logger) Option {
	return func(v *Vault) { v.logger = logger }
}

// New creates a vault over the given storage.
func New(storage Storage, opts ...Option) *Vault {
	v := &Vault{
		storage: storage,
		now:     time.Now,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Set stores value under key, overwriting any previous value. Serialization
// failures drop the write silently.
func (v *Vault) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		v.logger.Log("msg", "vault write dropped", "key", key)
		return
	}
	env := envelope{
		V:    envelopeVersion,
		T:    v.now().UnixMilli(),
		Data: data,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		v.logger.Log("msg", "vault write dropped", "key", key)
		return
	}
	v.storage.Store(Namespace+key, base64.StdEncoding.EncodeToString(raw))
}

// Get returns the value stored under key. A missing, undecodable or otherwise
// corrupt entry reads as absent; corruption is never surfaced as an error.
func (v *Vault) Get(key string) (json.RawMessage, bool) {
	encoded, ok := v.storage.Load(Namespace + key)
	if !ok {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	if env.Data == nil {
		return nil, false
	}
	return env.Data, true
}

// Remove deletes the value under key unconditionally.
func (v *Vault) Remove(key string) {
	v.storage.Delete(Namespace + key)
}

// GetString reads key as a string value.
func (v *Vault) GetString(key string) (string, bool) {
	data, ok := v.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	return s, true
}

// GetBool reads key as a boolean value.
func (v *Vault) GetBool(key string) (bool, bool) {
	data, ok := v.Get(key)
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return false, false
	}
	return b, true
}

// GetStrings reads key as a string slice.
func (v *Vault) GetStrings(key string) ([]string, bool) {
	data, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return nil, false
	}
	return ss, true
}
