package claimx

import (
	"fmt"
	"time"
)

// DecodePayload decodes an already-parsed claims tree into a Payload.
//
// A nil tree means the upstream JSON step produced null instead of an
// object and fails immediately. Every key of the tree, registered or not,
// is retained in the generic claims map alongside the typed fields.
func DecodePayload(tree ClaimsTree) (*Payload, error) {
	if tree == nil {
		return nil, newError(ErrCodeNullMap, nil)
	}

	audience, err := stringOrArray(tree, "aud")
	if err != nil {
		return nil, err
	}
	issuedAt, err := timeFromSeconds(tree, "iat")
	if err != nil {
		return nil, err
	}
	expiresAt, err := timeFromSeconds(tree, "exp")
	if err != nil {
		return nil, err
	}
	notBefore, err := timeFromSeconds(tree, "nbf")
	if err != nil {
		return nil, err
	}

	claims := make(map[string]ClaimValue, len(tree))
	for name, value := range tree {
		claims[name] = ClaimValue{value: value}
	}

	return &Payload{
		issuer:    textClaim(tree, "iss"),
		subject:   textClaim(tree, "sub"),
		audience:  audience,
		expiresAt: expiresAt,
		notBefore: notBefore,
		issuedAt:  issuedAt,
		id:        textClaim(tree, "jti"),
		claims:    claims,
	}, nil
}

// stringOrArray normalizes a claim conventionally shaped as either one
// string or an array of strings. An empty string yields an empty list, not
// a one-element list. Shapes other than string and array are treated as
// "claim not applicable" and yield nil.
func stringOrArray(tree ClaimsTree, name string) ([]string, error) {
	value, ok := tree[name]
	if !ok {
		return nil, nil
	}

	switch value.kind {
	case KindNull:
		return nil, nil
	case KindArray:
		out := make([]string, len(value.arr))
		for i, item := range value.arr {
			if item.kind != KindText {
				return nil, newError(ErrCodeArrayContents,
					fmt.Errorf("claim %q: array element %d has kind %s", name, i, item.kind))
			}
			out[i] = item.text
		}
		return out, nil
	case KindText:
		if value.text == "" {
			return []string{}, nil
		}
		return []string{value.text}, nil
	default:
		return nil, nil
	}
}

// timeFromSeconds converts a claim holding whole epoch seconds into a
// millisecond-precision instant. The multiplication stays in int64 so
// seconds values beyond 2^31 convert exactly.
func timeFromSeconds(tree ClaimsTree, name string) (*time.Time, error) {
	value, ok := tree[name]
	if !ok || value.kind == KindNull {
		return nil, nil
	}
	if value.kind != KindNumber {
		return nil, newError(ErrCodeNonNumericDate,
			fmt.Errorf("the claim %q contained a non-numeric date value", name))
	}

	seconds, err := value.num.Int64()
	if err != nil {
		f, ferr := value.num.Float64()
		if ferr != nil {
			return nil, newError(ErrCodeNonNumericDate,
				fmt.Errorf("the claim %q contained a non-numeric date value", name))
		}
		seconds = int64(f)
	}

	instant := time.UnixMilli(seconds * 1000).UTC()
	return &instant, nil
}

// textClaim extracts a plain string-valued claim. Any non-string shape,
// absent and null included, falls back to the empty string; the raw value
// stays reachable through the generic claims map.
func textClaim(tree ClaimsTree, name string) string {
	value, ok := tree[name]
	if !ok || value.kind != KindText {
		return ""
	}
	return value.text
}
