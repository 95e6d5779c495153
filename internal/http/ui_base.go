package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
	"github.com/boardgamehub/boardgame-ui/internal/http/ui/viewmodel"
	"github.com/boardgamehub/boardgame-ui/internal/service"
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Routes    *route.Table
	Accounts  *service.AccountService
	Dashboard *service.DashboardService
	Games     *service.GameCopyService
	Catalog   *service.CatalogService
	Events    *service.EventBoardService
	Lending   *service.LendingService

	// CookieDomain scopes the tab cookie reissued at sign-in.
	CookieDomain string
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// urlFor builds the path of a named route, falling back to the landing route.
func (h *UIHandlers) urlFor(name string, params map[string]string) string {
	return h.Routes.URLOrLanding(name, params)
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

func pageMeta(page, title string) PageMeta {
	return PageMeta{Title: title + " - " + appName, PageTitle: title, CurrentPage: page}
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}
	if id, ok := SessionIdentifier(r.Context()); ok {
		layout.IsAuthenticated = true
		layout.UserID = id
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"AppName":         appName,
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"UserID":          layout.UserID,
		"CSRFToken":       layout.CSRFToken,
		"Inputs":          ViewInputs(r.Context()),
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A failed fetch still renders the page with an error message.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := NewTemplateData(r, spec.Meta).Build()
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page data fetch failed",
				slog.String("page", spec.Meta.CurrentPage),
				slog.Any("error", err),
			)
			markPageError(data, err)
		}
	}
	h.renderPage(w, r, data)
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	var fieldErrors map[string]string
	data["ErrorMessage"] = processError(err, &fieldErrors)
}

// renderPage renders a page with htmx partial support.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	// htmx updates document.title from a <title> in the swapped content.
	title, _ := data["Title"].(string)
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	page, _ := data["CurrentPage"].(string)
	if err := h.T.execute(w, ContentTemplateFor(page), data); err != nil {
		h.logAndRenderTemplateError(w, r, err)
	}
}

func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "template render failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "Unable to render page.", http.StatusInternalServerError)
}

// renderForm is an ErrorRenderer that re-renders the current page.
func (h *UIHandlers) renderForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderPage(w, r, data)
}

// currentUserID returns the numeric account ID stored in the tab's session.
func currentUserID(r *http.Request) (int64, bool) {
	raw, ok := SessionIdentifier(r.Context())
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// memberFromInputs resolves the {userId} view input of member-scoped routes.
// Only the signed-in member may act on their own pages.
func memberFromInputs(r *http.Request) (int64, error) {
	raw := ViewInputs(r.Context())["userId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NotFoundf("member %q not found", raw)
	}
	self, ok := currentUserID(r)
	if !ok || self != id {
		return 0, apperrors.Unauthorized(errMsgForbidden)
	}
	return id, nil
}

// failAction renders a plain error page for an action that has no form to return to.
func (h *UIHandlers) failAction(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().WarnContext(r.Context(), "action failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	msg := apperrors.Message(err)
	if !apperrors.IsValidation(err) {
		var fieldErrors map[string]string
		msg = processError(err, &fieldErrors)
	}
	h.renderErrorPage(w, r, errorPage{Status: apperrors.HTTPStatus(err), Message: msg})
}
