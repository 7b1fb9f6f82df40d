package claimx

import (
	"fmt"
	"maps"
)

// ClaimValue wraps one claim's JSON value and exposes safe coercion
// accessors. The zero value represents an absent claim.
//
// Absent and explicit JSON null are kept distinct internally but behave
// identically through every accessor.
type ClaimValue struct {
	value Value
}

// NewClaimValue wraps a JSON value as a claim.
func NewClaimValue(v Value) ClaimValue {
	return ClaimValue{value: v}
}

// Raw returns the wrapped JSON value.
func (c ClaimValue) Raw() Value {
	return c.value
}

// IsNull reports whether the claim is absent or an explicit JSON null.
func (c ClaimValue) IsNull() bool {
	return c.value.kind == KindAbsent || c.value.kind == KindNull
}

// AsString returns the text content, or nil when the claim is absent, null
// or of any non-string shape.
func (c ClaimValue) AsString() *string {
	if c.value.kind != KindText {
		return nil
	}
	s := c.value.text
	return &s
}

// AsBool returns the boolean content, nil when absent or null, and a
// *CoercionError when the claim holds an incompatible shape.
func (c ClaimValue) AsBool() (*bool, error) {
	if c.IsNull() {
		return nil, nil
	}
	if c.value.kind != KindBool {
		return nil, &CoercionError{Target: "bool", Kind: c.value.kind, Index: -1}
	}
	b := c.value.b
	return &b, nil
}

// AsFloat64 returns the numeric content, nil when absent or null, and a
// *CoercionError when the claim holds an incompatible shape.
func (c ClaimValue) AsFloat64() (*float64, error) {
	if c.IsNull() {
		return nil, nil
	}
	if c.value.kind != KindNumber {
		return nil, &CoercionError{Target: "float64", Kind: c.value.kind, Index: -1}
	}
	f, err := c.value.num.Float64()
	if err != nil {
		return nil, &CoercionError{Target: "float64", Kind: c.value.kind, Index: -1, Err: err}
	}
	return &f, nil
}

// AsInt64 returns the numeric content truncated to an integer, nil when
// absent or null, and a *CoercionError when the claim holds an incompatible
// shape.
func (c ClaimValue) AsInt64() (*int64, error) {
	if c.IsNull() {
		return nil, nil
	}
	if c.value.kind != KindNumber {
		return nil, &CoercionError{Target: "int64", Kind: c.value.kind, Index: -1}
	}
	if i, err := c.value.num.Int64(); err == nil {
		return &i, nil
	}
	f, err := c.value.num.Float64()
	if err != nil {
		return nil, &CoercionError{Target: "int64", Kind: c.value.kind, Index: -1, Err: err}
	}
	i := int64(f)
	return &i, nil
}

// AsMap returns the object fields, nil when absent or null, and a
// *CoercionError when the claim holds an incompatible shape.
func (c ClaimValue) AsMap() (map[string]Value, error) {
	if c.IsNull() {
		return nil, nil
	}
	if c.value.kind != KindObject {
		return nil, &CoercionError{Target: "map", Kind: c.value.kind, Index: -1}
	}
	return maps.Clone(c.value.obj), nil
}

// AsList decodes an array-shaped claim element by element using the supplied
// decoder. Absent and null claims yield nil; any other non-array shape and
// any element the decoder rejects yield a *CoercionError, the latter naming
// the offending position.
func AsList[T any](c ClaimValue, decode func(Value) (T, error)) ([]T, error) {
	if c.IsNull() {
		return nil, nil
	}
	if c.value.kind != KindArray {
		return nil, &CoercionError{Target: "list", Kind: c.value.kind, Index: -1}
	}
	out := make([]T, len(c.value.arr))
	for i, item := range c.value.arr {
		decoded, err := decode(item)
		if err != nil {
			return nil, &CoercionError{Target: "list element", Kind: item.kind, Index: i, Err: err}
		}
		out[i] = decoded
	}
	return out, nil
}

// AsStrings decodes an array-shaped claim whose elements are all strings.
func AsStrings(c ClaimValue) ([]string, error) {
	return AsList(c, func(v Value) (string, error) {
		if v.kind != KindText {
			return "", fmt.Errorf("expected a string, got %s", v.kind)
		}
		return v.text, nil
	})
}
