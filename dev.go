package claimx

// DevBypassClaims holds attributes used when issuing synthetic payloads in
// dev mode.
type DevBypassClaims struct {
	Subject  string
	Issuer   string
	Audience []string
}

// ToCallerPayload converts the dev bypass configuration into a decoded
// caller payload. It builds a claims tree and runs it through the regular
// decoder so dev-mode payloads behave exactly like decoded tokens.
func (d DevBypassClaims) ToCallerPayload() CallerPayload {
	tree := ClaimsTree{}
	if d.Issuer != "" {
		tree["iss"] = TextValue(d.Issuer)
	}
	if d.Subject != "" {
		tree["sub"] = TextValue(d.Subject)
	}
	if len(d.Audience) > 0 {
		items := make([]Value, len(d.Audience))
		for i, aud := range d.Audience {
			items[i] = TextValue(aud)
		}
		tree["aud"] = ArrayValue(items...)
	}

	// The tree is non-nil and holds only string shapes, so decoding
	// cannot fail.
	payload, _ := DecodePayload(tree)
	return CallerPayload{
		Payload:   payload,
		DevBypass: true,
	}
}

// DefaultDevBypassClaims returns a baseline payload suitable for local
// development.
func DefaultDevBypassClaims(audience string) DevBypassClaims {
	aud := audience
	if aud == "" {
		aud = "https://dev.local"
	}
	return DevBypassClaims{
		Subject:  "dev-bypass",
		Issuer:   "claimx.dev",
		Audience: []string{aud},
	}
}
