package claimx

// Header is the immutable decoded header segment of one token.
type Header struct {
	algorithm   string
	typ         string
	contentType string
	keyID       string
	claims      map[string]ClaimValue
}

// DecodeHeader decodes an already-parsed header tree. A nil tree means the
// upstream JSON step produced null instead of an object and fails.
func DecodeHeader(tree ClaimsTree) (*Header, error) {
	if tree == nil {
		return nil, newErrorWithMessage(ErrCodeNullMap,
			"Parsing the Header's JSON resulted on a Null map", nil)
	}

	claims := make(map[string]ClaimValue, len(tree))
	for name, value := range tree {
		claims[name] = ClaimValue{value: value}
	}

	return &Header{
		algorithm:   textClaim(tree, "alg"),
		typ:         textClaim(tree, "typ"),
		contentType: textClaim(tree, "cty"),
		keyID:       textClaim(tree, "kid"),
		claims:      claims,
	}, nil
}

// Algorithm returns the "alg" header parameter, or "".
func (h *Header) Algorithm() string { return h.algorithm }

// Type returns the "typ" header parameter, or "".
func (h *Header) Type() string { return h.typ }

// ContentType returns the "cty" header parameter, or "".
func (h *Header) ContentType() string { return h.contentType }

// KeyID returns the "kid" header parameter, or "".
func (h *Header) KeyID() string { return h.keyID }

// Claim returns the named header parameter with full shape fidelity.
func (h *Header) Claim(name string) ClaimValue {
	return h.claims[name]
}
