package claimx

import "fmt"

// ErrorCode represents decode error categories.
type ErrorCode string

const (
	ErrCodeNullMap             ErrorCode = "null_map"
	ErrCodeNonNumericDate      ErrorCode = "non_numeric_date"
	ErrCodeArrayContents       ErrorCode = "array_contents"
	ErrCodeMalformedToken      ErrorCode = "malformed_token"
	ErrCodeInvalidToken        ErrorCode = "invalid_token"
	ErrCodeIssuerNotRegistered ErrorCode = "issuer_not_registered"
	ErrCodeJWKSUnavailable     ErrorCode = "jwks_unavailable"
)

var errorMessages = map[ErrorCode]string{
	ErrCodeNullMap:             "Parsing the Payload's JSON resulted on a Null map",
	ErrCodeNonNumericDate:      "Claim contains a non-numeric date value",
	ErrCodeArrayContents:       "Couldn't map the Claim's array contents to String",
	ErrCodeMalformedToken:      "Malformed token",
	ErrCodeInvalidToken:        "Invalid token",
	ErrCodeIssuerNotRegistered: "Issuer not registered",
	ErrCodeJWKSUnavailable:     "JWKS unavailable",
}

// Error wraps decode errors with a stable code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	base := e.Message
	if base == "" {
		base = string(e.Code)
	}
	if e.Err == nil {
		return base
	}
	return fmt.Sprintf("%s: %v", base, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = string(code)
	}
	return &Error{Code: code, Message: msg, Err: err}
}

func newErrorWithMessage(code ErrorCode, msg string, err error) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CoercionError reports an accessor call incompatible with a claim's JSON
// shape. It is local to that call and never invalidates an already decoded
// Payload.
type CoercionError struct {
	Target string
	Kind   Kind
	Index  int
	Err    error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("cannot decode array element %d as %s: %v", e.Index, e.Target, e.Err)
	}
	return fmt.Sprintf("cannot coerce %s value to %s", e.Kind, e.Target)
}

// Unwrap returns the underlying error, if any.
func (e *CoercionError) Unwrap() error {
	return e.Err
}
