package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
	"github.com/boardgamehub/boardgame-ui/internal/http/validation"
	"github.com/boardgamehub/boardgame-ui/internal/service"
)

const maxEventParticipants = 100

func createEventMeta() PageMeta { return pageMeta(PageCreateEvent, "Host an Event") }

// CreateEventPage renders the event form. The game picker lists the member's copies.
func (h *UIHandlers) CreateEventPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: createEventMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, err := memberFromInputs(r)
			if err != nil {
				return err
			}
			data["Titles"] = h.ownedTitles(ctx, userID)
			return nil
		},
	})
}

func (h *UIHandlers) ownedTitles(ctx context.Context, userID int64) []string {
	copies, err := h.Games.ListOwned(ctx, userID)
	if err != nil {
		h.logger().WarnContext(ctx, "loading owned games failed", "error", err)
		return nil
	}
	titles := make([]string, 0, len(copies))
	for _, c := range copies {
		titles = append(titles, c.Title)
	}
	return titles
}

// CreateEvent schedules an event hosted by the member.
func (h *UIHandlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
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
		Validate("eventName", form.Get("eventName"), validation.Required("Event name", maxNameLen)).
		Validate("eventDate", form.Get("eventDate"), validation.Layout("Date", model.EventDateLayout)).
		Validate("eventTime", form.Get("eventTime"), validation.Layout("Time", "15:04", model.EventTimeLayout)).
		Validate("location", form.Get("location"), validation.Required("Location", maxNameLen)).
		Validate("maxParticipants", form.Get("maxParticipants"),
			validation.IntRange("Max participants", 1, maxEventParticipants)).
		Validate("gameTitle", form.Get("gameTitle"), validation.Required("Game", maxNameLen)).
		Validate("description", form.Get("description"), validation.Optional("Description", maxDescriptionLen))

	var actionErr error
	if fv.Valid() {
		maxParticipants, _ := strconv.Atoi(form.Get("maxParticipants"))
		_, actionErr = h.Events.Create(r.Context(), userID, model.EventCreateRequest{
			EventName:       form.Get("eventName"),
			EventDate:       form.Get("eventDate"),
			EventTime:       form.Get("eventTime"),
			Location:        form.Get("location"),
			Description:     form.Get("description"),
			MaxParticipants: maxParticipants,
			GameTitle:       form.Get("gameTitle"),
		})
		if actionErr == nil {
			redirectAfterAction(w, r, h.urlFor(route.RegisterEvent, nil))
			return
		}
	}

	RenderError(ErrorOpts{
		W: w, R: r, Err: actionErr, FieldErrors: fv.Errors(),
		Renderer: h.renderForm, PageMeta: createEventMeta(),
		Form: form,
		Data: map[string]any{"Titles": h.ownedTitles(r.Context(), userID)},
	})
}

// sortToggle returns the tab-scoped sort state of the event tables.
func sortToggle(r *http.Request) *service.SortToggle {
	if holder, ok := HolderFromContext(r.Context()); ok {
		return service.NewSortToggle(holder)
	}
	return service.NewSortToggle(nil)
}

// eventBoardQuery maps the register-event view inputs and stored sorts to a board query.
func eventBoardQuery(ctx context.Context, in map[string]string, sorts *service.SortToggle) service.EventBoardQuery {
	return service.EventBoardQuery{
		Registered: service.EventTableQuery{
			Search:   in["q_registered"],
			ShowPast: in["past_registered"] != "",
			Sort:     sorts.Current(ctx, service.TableRegistered),
		},
		Available: service.EventTableQuery{
			Search:   in["q_available"],
			ShowPast: in["past_available"] != "",
			ShowFull: in["show_full"] != "",
			Sort:     sorts.Current(ctx, service.TableAvailable),
		},
	}
}

// RegisterEventPage renders the events the member joined and those still open.
func (h *UIHandlers) RegisterEventPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageRegisterEvent, "Events"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			in := ViewInputs(ctx)
			q := eventBoardQuery(ctx, in, sortToggle(r))
			data["Query"] = q
			data["Filters"] = in
			userID, ok := currentUserID(r)
			if !ok {
				return apperrors.Unauthorized(errMsgForbidden)
			}
			data["CreateEventURL"] = h.urlFor(route.CreateEvent, memberParams(userID))
			board, err := h.Events.Load(ctx, userID, q)
			if err != nil {
				return err
			}
			data["Board"] = board
			return nil
		},
	})
}

// boardReturnURL rebuilds the register-event URL from the filter fields a
// board form carried along.
func (h *UIHandlers) boardReturnURL(form url.Values) string {
	base := h.urlFor(route.RegisterEvent, nil)
	d, ok := h.Routes.Lookup(route.RegisterEvent)
	if !ok || d.Query == nil {
		return base
	}
	q := url.Values{}
	for k, v := range d.Query(form) {
		q.Set(k, v)
	}
	if enc := q.Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}

func eventIDFromForm(form url.Values) (int64, error) {
	id, err := strconv.ParseInt(form.Get("eventId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationField("eventId", "Choose an event.")
	}
	return id, nil
}

// JoinEvent registers the member for an event.
func (h *UIHandlers) JoinEvent(w http.ResponseWriter, r *http.Request) {
	h.eventAction(w, r, h.Events.Join)
}

// CancelEvent removes the member's registration for an event.
func (h *UIHandlers) CancelEvent(w http.ResponseWriter, r *http.Request) {
	h.eventAction(w, r, h.Events.Cancel)
}

func (h *UIHandlers) eventAction(
	w http.ResponseWriter,
	r *http.Request,
	act func(ctx context.Context, userID, eventID int64) error,
) {
	userID, ok := currentUserID(r)
	if !ok {
		h.failAction(w, r, apperrors.Unauthorized(errMsgForbidden))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	eventID, err := eventIDFromForm(r.PostForm)
	if err != nil {
		h.failAction(w, r, err)
		return
	}
	if err := act(r.Context(), userID, eventID); err != nil {
		h.failAction(w, r, err)
		return
	}
	redirectAfterAction(w, r, h.boardReturnURL(r.PostForm))
}

// SortEvents advances the three-state sort of one board table.
// POST /register-event/sort with table and key fields.
func (h *UIHandlers) SortEvents(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	table, key := r.PostForm.Get("table"), r.PostForm.Get("key")
	if !service.IsEventTable(table) || !service.IsSortableEventKey(key) {
		h.failAction(w, r, apperrors.Validationf("cannot sort %q by %q", table, key))
		return
	}
	if _, err := sortToggle(r).Toggle(r.Context(), table, key); err != nil {
		h.failAction(w, r, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "could not save sort order"))
		return
	}
	redirectAfterAction(w, r, h.boardReturnURL(r.PostForm))
}
