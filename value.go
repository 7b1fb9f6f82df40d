package claimx

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-json"
)

// Kind identifies the JSON shape carried by a Value.
type Kind int

const (
	// KindAbsent marks a claim whose key is missing from the tree.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindText
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of an already-parsed JSON claims tree.
// The zero value is the absent marker.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	text string
	arr  []Value
	obj  map[string]Value
}

// ClaimsTree maps claim names to their JSON values for one token segment.
// A nil tree is the null-map sentinel, not an empty object.
type ClaimsTree map[string]Value

// NullValue returns the explicit JSON null value.
func NullValue() Value { return Value{kind: KindNull} }

// BoolValue wraps a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue wraps a JSON number kept in its textual form.
func NumberValue(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// IntValue wraps an integer as a JSON number.
func IntValue(i int64) Value {
	return Value{kind: KindNumber, num: json.Number(fmt.Sprintf("%d", i))}
}

// TextValue wraps a JSON string.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// ArrayValue wraps the given elements as a JSON array.
func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(items)}
}

// ObjectValue wraps the given fields as a JSON object.
func ObjectValue(fields map[string]Value) Value {
	return Value{kind: KindObject, obj: maps.Clone(fields)}
}

// Kind reports the JSON shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean content; meaningful only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric content; meaningful only for KindNumber.
func (v Value) Number() json.Number { return v.num }

// Text returns the string content; meaningful only for KindText.
func (v Value) Text() string { return v.text }

// Items returns a copy of the array elements; nil unless KindArray.
func (v Value) Items() []Value { return slices.Clone(v.arr) }

// Fields returns a copy of the object fields; nil unless KindObject.
func (v Value) Fields() map[string]Value { return maps.Clone(v.obj) }

// ParseClaimsTree parses one raw JSON segment into a claims tree.
// The JSON literal null yields a nil tree without an error; the caller's
// decoder turns that into its null-map failure.
func ParseClaimsTree(data []byte) (ClaimsTree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse claims JSON: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	tree := make(ClaimsTree, len(raw))
	for name, node := range raw {
		value, err := valueFromAny(node)
		if err != nil {
			return nil, fmt.Errorf("claim %q: %w", name, err)
		}
		tree[name] = value
	}
	return tree, nil
}

func valueFromAny(node any) (Value, error) {
	switch n := node.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(n), nil
	case json.Number:
		return NumberValue(n), nil
	case string:
		return TextValue(n), nil
	case []any:
		items := make([]Value, len(n))
		for i, elem := range n {
			value, err := valueFromAny(elem)
			if err != nil {
				return Value{}, err
			}
			items[i] = value
		}
		return Value{kind: KindArray, arr: items}, nil
	case map[string]any:
		fields := make(map[string]Value, len(n))
		for name, elem := range n {
			value, err := valueFromAny(elem)
			if err != nil {
				return Value{}, err
			}
			fields[name] = value
		}
		return Value{kind: KindObject, obj: fields}, nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value of type %T", node)
	}
}
