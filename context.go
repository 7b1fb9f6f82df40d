package claimx

import "context"

type callerPayloadKey struct{}

// CallerPayload represents the caller context stored after token decoding.
type CallerPayload struct {
	Payload   *Payload
	DevBypass bool
}

// BindCallerPayload stores the decoded payload inside the context for
// downstream consumers.
func BindCallerPayload(ctx context.Context, payload CallerPayload) context.Context {
	return context.WithValue(ctx, callerPayloadKey{}, payload)
}

// CallerPayloadFromContext retrieves a payload previously stored in the
// context.
func CallerPayloadFromContext(ctx context.Context) (CallerPayload, bool) {
	if ctx == nil {
		return CallerPayload{}, false
	}
	value := ctx.Value(callerPayloadKey{})
	if value == nil {
		return CallerPayload{}, false
	}
	payload, ok := value.(CallerPayload)
	return payload, ok
}
