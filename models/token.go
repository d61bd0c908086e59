package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every access token issued by the
// gateway. On top of the standard registered claims it identifies the
// account by name and e-mail, mirroring what the account endpoints return.
type Claims struct {
	// Name is the unique account name the token was issued for.
	Name string `json:"name"`

	// Email is the e-mail address of the account.
	Email string `json:"email"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for identity claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
