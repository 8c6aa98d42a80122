package sentinel

import "errors"

// Sentinel errors for transport and storage facts. The gateway and session
// store return these (optionally wrapped) so callers can branch with
// errors.Is without parsing messages.
//
// These represent factual states, not validation failures:
// - ErrNotFound: the requested entity does not exist server-side
// - ErrUnauthorized: the server rejected the credentials or bearer token
// - ErrForbidden: authenticated but not allowed
// - ErrConflict: the action was already performed (duplicate like/vote)
// - ErrThrottled: the client-side throttle or the server refused for rate
// - ErrUnavailable: transport failure, open circuit, or 5xx
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrThrottled    = errors.New("throttled")
	ErrUnavailable  = errors.New("unavailable")
)
