package claimx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
)

func TestClaimValue_IsNull(t *testing.T) {
	if !(ClaimValue{}).IsNull() {
		t.Fatal("absent claim should be null")
	}
	if !NewClaimValue(NullValue()).IsNull() {
		t.Fatal("explicit null claim should be null")
	}
	if NewClaimValue(TextValue("x")).IsNull() {
		t.Fatal("text claim should not be null")
	}
	if NewClaimValue(BoolValue(false)).IsNull() {
		t.Fatal("boolean claim should not be null")
	}
}

func TestClaimValue_AbsentAndNullBehaveAlike(t *testing.T) {
	for _, claim := range []ClaimValue{{}, NewClaimValue(NullValue())} {
		if got := claim.AsString(); got != nil {
			t.Fatalf("AsString: expected nil, got %v", got)
		}
		if got, err := claim.AsBool(); got != nil || err != nil {
			t.Fatalf("AsBool: got %v, err %v", got, err)
		}
		if got, err := claim.AsFloat64(); got != nil || err != nil {
			t.Fatalf("AsFloat64: got %v, err %v", got, err)
		}
		if got, err := claim.AsInt64(); got != nil || err != nil {
			t.Fatalf("AsInt64: got %v, err %v", got, err)
		}
		if got, err := claim.AsMap(); got != nil || err != nil {
			t.Fatalf("AsMap: got %v, err %v", got, err)
		}
		if got, err := AsStrings(claim); got != nil || err != nil {
			t.Fatalf("AsStrings: got %v, err %v", got, err)
		}
	}
}

func TestClaimValue_AsString(t *testing.T) {
	if got := NewClaimValue(TextValue("admin")).AsString(); got == nil || *got != "admin" {
		t.Fatalf("unexpected result: %v", got)
	}
	// Permissive fallback: non-string shapes yield nil, not an error.
	if got := NewClaimValue(IntValue(42)).AsString(); got != nil {
		t.Fatalf("number: expected nil, got %v", got)
	}
	if got := NewClaimValue(BoolValue(true)).AsString(); got != nil {
		t.Fatalf("boolean: expected nil, got %v", got)
	}
}

func TestClaimValue_AsBool(t *testing.T) {
	got, err := NewClaimValue(BoolValue(true)).AsBool()
	if err != nil {
		t.Fatalf("AsBool: %v", err)
	}
	if got == nil || !*got {
		t.Fatalf("unexpected result: %v", got)
	}

	_, err = NewClaimValue(TextValue("true")).AsBool()
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("expected *CoercionError, got %v", err)
	}
	if coercionErr.Kind != KindText {
		t.Fatalf("unexpected kind: %s", coercionErr.Kind)
	}
}

func TestClaimValue_AsFloat64(t *testing.T) {
	got, err := NewClaimValue(NumberValue(json.Number("10101010"))).AsFloat64()
	if err != nil {
		t.Fatalf("AsFloat64: %v", err)
	}
	if got == nil || *got != 10101010 {
		t.Fatalf("unexpected result: %v", got)
	}

	_, err = NewClaimValue(TextValue("123")).AsFloat64()
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("expected *CoercionError, got %v", err)
	}
}

func TestClaimValue_AsInt64(t *testing.T) {
	got, err := NewClaimValue(IntValue(2147493647)).AsInt64()
	if err != nil {
		t.Fatalf("AsInt64: %v", err)
	}
	if got == nil || *got != 2147493647 {
		t.Fatalf("unexpected result: %v", got)
	}

	// Fractional numbers truncate toward zero.
	got, err = NewClaimValue(NumberValue(json.Number("12.9"))).AsInt64()
	if err != nil {
		t.Fatalf("AsInt64 fractional: %v", err)
	}
	if got == nil || *got != 12 {
		t.Fatalf("unexpected fractional result: %v", got)
	}

	if _, err := NewClaimValue(ArrayValue(IntValue(1))).AsInt64(); err == nil {
		t.Fatal("expected error for array shape")
	}
}

func TestClaimValue_AsMap(t *testing.T) {
	claim := NewClaimValue(ObjectValue(map[string]Value{
		"name": TextValue("john"),
		"age":  IntValue(123),
	}))

	got, err := claim.AsMap()
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected size: %d", len(got))
	}
	if got["name"].Text() != "john" {
		t.Fatalf("unexpected name: %v", got["name"])
	}

	if _, err := NewClaimValue(TextValue("x")).AsMap(); err == nil {
		t.Fatal("expected error for string shape")
	}
}

func TestAsStrings(t *testing.T) {
	claim := NewClaimValue(ArrayValue(TextValue("a"), TextValue("b")))
	got, err := AsStrings(claim)
	if err != nil {
		t.Fatalf("AsStrings: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected result: %v", got)
	}

	// Generic list access requires an array shape, unlike the
	// string-or-array audience rule.
	_, err = AsStrings(NewClaimValue(TextValue("a")))
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("expected *CoercionError, got %v", err)
	}
}

func TestAsList_ElementDecoder(t *testing.T) {
	claim := NewClaimValue(ArrayValue(IntValue(1), IntValue(2), IntValue(3)))

	got, err := AsList(claim, func(v Value) (int64, error) {
		if v.Kind() != KindNumber {
			return 0, fmt.Errorf("expected a number, got %s", v.Kind())
		}
		return v.Number().Int64()
	})
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestAsList_ReportsOffendingPosition(t *testing.T) {
	claim := NewClaimValue(ArrayValue(TextValue("ok"), IntValue(5)))

	_, err := AsStrings(claim)
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("expected *CoercionError, got %v", err)
	}
	if coercionErr.Index != 1 {
		t.Fatalf("unexpected index: %d", coercionErr.Index)
	}
}
