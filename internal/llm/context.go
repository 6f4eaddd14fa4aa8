package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// PurposeUnknown labels requests made without WithPurpose.
const PurposeUnknown = "unknown"

// WithPurpose labels every request made with ctx, e.g. "quiz-gen". The label
// is stored with the request event and shown by `learninghub llm stats`.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
