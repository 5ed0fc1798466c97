package middleware

// Context keys used to store per-request metadata.
const (
	ContextKeyRequestID  = "request_id"
	ContextKeySessionID  = "session_id"
	ContextKeyController = "controller"
)

// Header and cookie names shared with the browser.
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderSessionID   = "X-Session-ID"
	SessionCookieName = "barber_session"
)
