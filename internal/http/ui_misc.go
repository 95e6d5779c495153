package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
)

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// renderErrorPage renders the standalone error layout with the given status.
func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, p errorPage) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	_, authenticated := SessionIdentifier(r.Context())
	data := map[string]any{
		"AppName":         appName,
		"Title":           p.Title + " - " + appName,
		"Code":            strconv.Itoa(p.Status),
		"Heading":         p.Title,
		"Message":         p.Message,
		"IsAuthenticated": authenticated,
		"HomeURL":         h.urlFor(route.Home, nil),
		"LoginURL":        h.urlFor(route.Login, nil),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(p.Status)
	if h.T == nil {
		_, _ = w.Write([]byte(p.Message))
		return
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().ErrorContext(r.Context(), "error page render failed", "error", err)
	}
}

// NotFound handles unmatched paths. Browsers get an HTML page, API clients JSON.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}
	h.renderErrorPage(w, r, errorPage{
		Status:  http.StatusNotFound,
		Title:   "Page Not Found",
		Message: "The page you're looking for doesn't exist.",
	})
}

// Secure serves the public landing page unauthenticated visitors are sent to.
func (h *UIHandlers) Secure(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageSecure, "Welcome"),
		Fetch: func(_ context.Context, data map[string]any) error {
			data["LoginURL"] = h.urlFor(route.Login, nil)
			data["CreateAccountURL"] = h.urlFor(route.CreateAccount, nil)
			data["CatalogURL"] = h.urlFor(route.GameCatalog, nil)
			data["HomeURL"] = h.urlFor(route.Home, nil)
			return nil
		},
	})
}
