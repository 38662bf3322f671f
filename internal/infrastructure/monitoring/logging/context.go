package logging

import "context"

// Canonical field keys shared by the HTTP layer and the audit service.
const (
	FieldRequestID = "request_id"
	FieldAuditID   = "audit_id"
	FieldProvider  = "provider"
)

type requestIDKey struct{}

// WithRequestID stores a request identifier in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request identifier stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns l enriched with the request_id carried by ctx, if any.
func FromContext(ctx context.Context, l Logger) Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return l.With(String(FieldRequestID, id))
	}
	return l
}

//Personal.AI order the ending
