package config

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultCatalogBaseURL = "https://gateway.marvel.com/v1/public"
	defaultCatalogTimeout = 10 * time.Second

	defaultTokenIssuer   = "comicgate"
	defaultTokenDuration = time.Hour

	// generatedSignKeyBytes is the length of the token signing key generated
	// when no key is configured. Matches a 48-character hex secret.
	generatedSignKeyBytes = 24
)

// applyDefaults fills in defaults for every optional field left unset after
// merging all configuration sources.
//
// The token signing key is special: when absent, a random key is generated
// once and held for the process lifetime. Restarting (or reconfiguring) the
// process therefore invalidates all previously issued tokens, which is the
// accepted rotation model.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = defaultCatalogBaseURL
	}
	if cfg.Catalog.RequestTimeout == 0 {
		cfg.Catalog.RequestTimeout = defaultCatalogTimeout
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = generateSignKey()
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The upstream catalog key pair is checked here so that a missing secret
// fails the process at startup instead of surfacing later as an upstream
// authentication rejection mid-request.
func (cfg *StructuredConfig) validate() error {
	if cfg.Catalog.PublicKey == "" || cfg.Catalog.PrivateKey == "" {
		return ErrMissingCatalogKeys
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// generateSignKey returns a fresh random hex-encoded signing key.
func generateSignKey() string {
	key := make([]byte, generatedSignKeyBytes)
	// rand.Read never returns an error on supported platforms
	_, _ = rand.Read(key)
	return hex.EncodeToString(key)
}
