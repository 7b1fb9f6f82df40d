package claimx

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
)

// Token is a decoded, unverified compact JWT.
type Token struct {
	raw       string
	header    *Header
	payload   *Payload
	signature []byte
}

// DecodeCompact splits a compact serialization into its three segments,
// base64url-decodes them and decodes header and payload. The signature is
// preserved as raw bytes but not verified.
func DecodeCompact(raw string) (*Token, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, newError(ErrCodeMalformedToken,
			fmt.Errorf("expected 3 dot-delimited parts, got %d", len(parts)))
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, fmt.Errorf("decode header segment: %w", err))
	}
	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, fmt.Errorf("decode payload segment: %w", err))
	}
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, fmt.Errorf("decode signature segment: %w", err))
	}

	headerTree, err := ParseClaimsTree(headerJSON)
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, fmt.Errorf("header segment: %w", err))
	}
	header, err := DecodeHeader(headerTree)
	if err != nil {
		return nil, err
	}

	payloadTree, err := ParseClaimsTree(payloadJSON)
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, fmt.Errorf("payload segment: %w", err))
	}
	payload, err := DecodePayload(payloadTree)
	if err != nil {
		return nil, err
	}

	return &Token{
		raw:       raw,
		header:    header,
		payload:   payload,
		signature: signature,
	}, nil
}

// Raw returns the original compact serialization.
func (t *Token) Raw() string { return t.raw }

// Header returns the decoded header segment.
func (t *Token) Header() *Header { return t.header }

// Payload returns the decoded claims segment.
func (t *Token) Payload() *Payload { return t.payload }

// Signature returns a copy of the raw signature bytes.
func (t *Token) Signature() []byte { return slices.Clone(t.signature) }
