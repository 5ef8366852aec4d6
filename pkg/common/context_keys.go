package common

type contextKey string

const (
	TraceIdKey        contextKey = "trace_id"
	UserClaimsKey     contextKey = "user_claims"
	WsSemaphoreKey    contextKey = "ws_semaphore"
	LatencyContextKey contextKey = "__execution_time"
)
