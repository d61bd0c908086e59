package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"
)

// Signer derives time-bound request signatures for the upstream catalog from
// a shared key pair.
//
// The upstream verifies md5(ts + privateKey + publicKey) against the "hash"
// query parameter, so both the digest function and the concatenation order
// are part of the wire contract and cannot change on this side alone.
//
// A Signer holds only immutable key material and is safe for concurrent use.
// Timestamps are taken fresh per call, never cached: a reused timestamp can
// be rejected by the upstream signature check.
type Signer struct {
	publicKey  string
	privateKey string
	now        func() time.Time
}

// NewSigner constructs a Signer for the given key pair. Key presence is
// enforced by config validation at startup, so construction is total.
func NewSigner(publicKey, privateKey string) *Signer {
	return &Signer{
		publicKey:  publicKey,
		privateKey: privateKey,
		now:        time.Now,
	}
}

// PublicKey returns the public half of the key pair, sent alongside the
// signature as the "apikey" query parameter.
func (s *Signer) PublicKey() string {
	return s.publicKey
}

// Sign computes the lowercase hex signature for the given timestamp string.
// Deterministic: the same timestamp always yields the same signature.
func (s *Signer) Sign(ts string) string {
	sum := md5.Sum([]byte(ts + s.privateKey + s.publicKey))
	return hex.EncodeToString(sum[:])
}

// AuthParams takes a fresh timestamp and returns it together with the
// matching signature. Called once per outbound request.
func (s *Signer) AuthParams() (ts string, hash string) {
	ts = timestamp(s.now())
	return ts, s.Sign(ts)
}

// timestamp renders t as decimal seconds since the epoch with microsecond
// precision, e.g. "1700000000.123456".
func timestamp(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', -1, 64)
}
