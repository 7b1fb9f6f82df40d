package claimx

import (
	"maps"
	"slices"
	"time"
)

// Payload is the immutable decoded claims set of one token.
//
// Typed accessors cover the registered claims; Claim exposes every claim,
// registered ones included, with full JSON shape fidelity.
type Payload struct {
	issuer    string
	subject   string
	audience  []string
	expiresAt *time.Time
	notBefore *time.Time
	issuedAt  *time.Time
	id        string
	claims    map[string]ClaimValue
}

// Issuer returns the "iss" claim, or "" when not present as a string.
func (p *Payload) Issuer() string { return p.issuer }

// Subject returns the "sub" claim, or "" when not present as a string.
func (p *Payload) Subject() string { return p.subject }

// Audience returns the normalized "aud" claim. The result is nil when the
// claim is missing or unusable and an empty non-nil list when the claim is
// the empty string.
func (p *Payload) Audience() []string { return slices.Clone(p.audience) }

// ExpiresAt returns the "exp" claim as an instant, or nil.
func (p *Payload) ExpiresAt() *time.Time { return p.expiresAt }

// NotBefore returns the "nbf" claim as an instant, or nil.
func (p *Payload) NotBefore() *time.Time { return p.notBefore }

// IssuedAt returns the "iat" claim as an instant, or nil.
func (p *Payload) IssuedAt() *time.Time { return p.issuedAt }

// ID returns the "jti" claim, or "" when not present as a string.
func (p *Payload) ID() string { return p.id }

// Claim returns the named claim. Missing claims yield an absent ClaimValue,
// so the result is always safe to query.
func (p *Payload) Claim(name string) ClaimValue {
	return p.claims[name]
}

// Claims returns a copy of the full claims map. Its key set matches the
// decoded tree exactly.
func (p *Payload) Claims() map[string]ClaimValue {
	return maps.Clone(p.claims)
}
