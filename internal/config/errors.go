package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingCatalogKeys indicates that one or both halves of the
	// upstream catalog key pair are absent. The key pair is required to
	// sign outbound requests, so its absence is fatal at startup.
	ErrMissingCatalogKeys = errors.New("missing upstream catalog key pair")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
