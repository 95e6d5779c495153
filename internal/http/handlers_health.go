package httpx

import (
	"io"
	"net/http"
	"strconv"
)

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// sessionStatusResponse is the body of GET /api/session.
type sessionStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserAccountID *int64 `json:"userAccountId,omitempty"`
}

// sessionStatus reports whether the calling tab is signed in.
func sessionStatus(w http.ResponseWriter, r *http.Request) {
	resp := sessionStatusResponse{}
	if raw, ok := SessionIdentifier(r.Context()); ok {
		resp.Authenticated = true
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			resp.UserAccountID = &id
		}
	}
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, http.StatusOK, resp)
}
