package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// Home renders the member dashboard.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageHome, "Dashboard"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, ok := currentUserID(r)
			if !ok {
				return apperrors.Unauthorized(errMsgForbidden)
			}
			member := map[string]string{"userId": strconv.FormatInt(userID, 10)}
			data["Dashboard"] = h.Dashboard.Load(ctx, userID)
			data["YourGamesURL"] = h.urlFor(route.YourGames, member)
			data["AddGameURL"] = h.urlFor(route.AddGame, member)
			data["CreateEventURL"] = h.urlFor(route.CreateEvent, member)
			data["RegisterEventURL"] = h.urlFor(route.RegisterEvent, nil)
			data["CatalogURL"] = h.urlFor(route.GameCatalog, nil)
			return nil
		},
	})
}

// DecideBorrowRequest accepts or declines a borrow request addressed to the member.
// POST /borrow-requests/{requestId}/{decision}.
func (h *UIHandlers) DecideBorrowRequest(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		h.failAction(w, r, apperrors.Unauthorized(errMsgForbidden))
		return
	}
	requestID, err := strconv.ParseInt(r.PathValue("requestId"), 10, 64)
	if err != nil || requestID <= 0 {
		h.NotFound(w, r)
		return
	}

	var accept bool
	switch r.PathValue("decision") {
	case "accept":
		accept = true
	case "decline":
		accept = false
	default:
		h.NotFound(w, r)
		return
	}

	req, err := h.Lending.Decide(r.Context(), ownerID, requestID, accept)
	if err != nil {
		h.failAction(w, r, err)
		return
	}
	h.logger().InfoContext(r.Context(), "borrow request decided",
		slog.Int64("request_id", req.ID),
		slog.String("status", string(req.Status)),
	)
	redirectAfterAction(w, r, h.urlFor(route.Home, nil))
}
