package common

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	TraceIDHeader       = "X-Trace-Id"

	// MaxFrameBytes bounds a single uploaded or streamed frame before normalization.
	MaxFrameBytes = 8 << 20
)
