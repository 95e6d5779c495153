package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
	"github.com/boardgamehub/boardgame-ui/internal/http/validation"
)

const maxDescriptionLen = 2000

func memberParams(userID int64) map[string]string {
	return map[string]string{"userId": strconv.FormatInt(userID, 10)}
}

// YourGames lists the copies the member owns.
func (h *UIHandlers) YourGames(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageYourGames, "Your Games"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, err := memberFromInputs(r)
			if err != nil {
				return err
			}
			data["AddGameURL"] = h.urlFor(route.AddGame, memberParams(userID))
			data["DeleteURL"] = h.urlFor(route.YourGames, memberParams(userID)) + "/delete"
			search := ViewInputs(ctx)["q"]
			data["Search"] = search
			copies, err := h.Games.ListOwned(ctx, userID)
			if err != nil {
				return err
			}
			data["TotalGames"] = len(copies)
			rows := make([]map[string]any, 0, len(copies))
			for _, c := range copies {
				if !titleMatches(c.Title, search) {
					continue
				}
				rows = append(rows, map[string]any{
					"Copy": c,
					"EditURL": h.urlFor(route.EditGame, map[string]string{
						"userId": strconv.FormatInt(userID, 10),
						"title":  c.Title,
					}),
				})
			}
			data["Games"] = rows
			return nil
		},
	})
}

// titleMatches reports whether title contains search, ignoring case.
func titleMatches(title, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(title), strings.ToLower(search))
}

// DeleteGames removes the selected copies.
// POST /your-games/{userId}/delete with one "title" value per copy.
func (h *UIHandlers) DeleteGames(w http.ResponseWriter, r *http.Request) {
	userID, err := memberFromInputs(r)
	if err != nil {
		h.failAction(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	if err := h.Games.DeleteMany(r.Context(), userID, r.PostForm["title"]); err != nil {
		h.failAction(w, r, err)
		return
	}
	redirectAfterAction(w, r, h.urlFor(route.YourGames, memberParams(userID)))
}

func addGameMeta() PageMeta { return pageMeta(PageAddGame, "Add a Game") }

// catalogTitles lists catalog titles for the add-game picker. Failures leave it empty.
func (h *UIHandlers) catalogTitles(ctx context.Context) []string {
	if h.Catalog == nil {
		return nil
	}
	titles, err := h.Catalog.Titles(ctx)
	if err != nil {
		h.logger().WarnContext(ctx, "loading catalog titles failed", "error", err)
		return nil
	}
	return titles
}

// AddGamePage renders the add-a-copy form.
func (h *UIHandlers) AddGamePage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: addGameMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			if _, err := memberFromInputs(r); err != nil {
				return err
			}
			data["Titles"] = h.catalogTitles(ctx)
			return nil
		},
	})
}

// AddGame adds a copy to the member's collection.
func (h *UIHandlers) AddGame(w http.ResponseWriter, r *http.Request) {
	userID, err := memberFromInputs(r)
	if err != nil {
		h.failAction(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	form := r.PostForm

	fv := validation.New().
		Validate("title", form.Get("title"), validation.Required("Title", maxNameLen)).
		Validate("description", form.Get("description"), validation.Optional("Description", maxDescriptionLen))
	var actionErr error
	if fv.Valid() {
		_, actionErr = h.Games.Add(r.Context(), userID, model.GameCopyCreateRequest{
			Title:       form.Get("title"),
			Description: form.Get("description"),
		})
		if actionErr == nil {
			redirectAfterAction(w, r, h.urlFor(route.YourGames, memberParams(userID)))
			return
		}
	}

	RenderError(ErrorOpts{
		W: w, R: r, Err: actionErr, FieldErrors: fv.Errors(),
		Renderer: h.renderForm, PageMeta: addGameMeta(),
		Form: form,
		Data: map[string]any{"Titles": h.catalogTitles(r.Context())},
	})
}

func editGameMeta() PageMeta { return pageMeta(PageEditGame, "Edit Game") }

// EditGamePage renders the description and status form of one copy.
func (h *UIHandlers) EditGamePage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: editGameMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, err := memberFromInputs(r)
			if err != nil {
				return err
			}
			data["BackURL"] = h.urlFor(route.YourGames, memberParams(userID))
			gc, err := h.Games.Get(ctx, userID, ViewInputs(ctx)["title"])
			if err != nil {
				return err
			}
			data["Copy"] = gc
			data["Form"] = map[string]string{
				"description": gc.Description,
				"status":      string(gc.Status),
			}
			return nil
		},
	})
}

// EditGame updates the description and status of one copy. Only changed
// fields are sent to the backend.
func (h *UIHandlers) EditGame(w http.ResponseWriter, r *http.Request) {
	userID, err := memberFromInputs(r)
	if err != nil {
		h.failAction(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	form := r.PostForm
	title := ViewInputs(r.Context())["title"]

	fv := validation.New().
		Validate("description", form.Get("description"), validation.Optional("Description", maxDescriptionLen))
	var patch model.GameCopyPatch
	if _, ok := form["description"]; ok {
		desc := strings.TrimSpace(form.Get("description"))
		patch.Description = &desc
	}
	if raw := form.Get("status"); raw != "" {
		if status, ok := model.ParseGameStatus(raw); ok {
			patch.Status = &status
		} else {
			fv.Validate("status", raw, validation.OneOf("Status", gameStatusNames()))
		}
	}

	var actionErr error
	if fv.Valid() {
		changed, err := h.Games.Update(r.Context(), userID, title, patch)
		if err == nil {
			h.logger().InfoContext(r.Context(), "game copy updated",
				"title", title, "changed", strings.Join(changed, ","))
			redirectAfterAction(w, r, h.urlFor(route.YourGames, memberParams(userID)))
			return
		}
		actionErr = err
	}

	RenderError(ErrorOpts{
		W: w, R: r, Err: actionErr, FieldErrors: fv.Errors(),
		Renderer: h.renderForm, PageMeta: editGameMeta(),
		Form: form,
		Data: map[string]any{
			"Copy":    model.GameCopy{Title: title, Owner: userID},
			"BackURL": h.urlFor(route.YourGames, memberParams(userID)),
		},
	})
}

func gameStatusNames() []string {
	statuses := model.GameStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	return names
}
