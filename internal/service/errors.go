package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a caller-supplied field that
	// must be non-empty is missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the account does not
	// exist or the password does not match. The two cases are deliberately
	// indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownFilterType is returned when a search request names a filter
	// type other than "character" or "comic".
	ErrUnknownFilterType = errors.New("unknown filter type")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single outcome for every token
	// validation failure: expired, malformed, or bad signature. Callers must
	// not learn which sub-reason occurred.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
