package httpx

import "net/http"

// Recoverable failure responses. Every denial path here answers the request
// with a redirect or an error payload; none of them panic or abort the server.

const (
	// Body code sent with 503 so callers can tell a search-index outage
	// apart from a generic unavailable response.
	CodeSearchUnavailable = "search_unavailable"
)

// AuthExpired answers an invalid or stale authentication token.
// JSON clients get a 422 payload, browsers are sent to the auth error page.
func AuthExpired(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		JSONError(w, http.StatusUnprocessableEntity, "auth_expired", nil)
		return
	}
	http.Redirect(w, r, "/auth_error", http.StatusFound)
}

// Denied answers an authorization failure for JSON clients with a 403.
// Browser denials are handled by the policy guards, which redirect with a
// notice instead.
func Denied(w http.ResponseWriter) {
	JSONError(w, http.StatusForbidden, "forbidden", nil)
}

// NotFound answers a request for an unknown resource or response format.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	http.Redirect(w, r, "/404", http.StatusFound)
}

// UpstreamUnavailable signals that a collaborator (the search index) is
// unreachable, distinct from a generic 503 by the body code.
func UpstreamUnavailable(w http.ResponseWriter) {
	JSONError(w, http.StatusServiceUnavailable, CodeSearchUnavailable, nil)
}

// Timeout sends the client to the timeout page.
func Timeout(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		JSONError(w, http.StatusGatewayTimeout, "timeout", nil)
		return
	}
	http.Redirect(w, r, "/timeout", http.StatusFound)
}
