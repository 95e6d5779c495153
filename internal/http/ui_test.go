package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

func TestUI_Home_RendersDashboardSections(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.users.EXPECT().Get(gomock.Any(), int64(7)).
		Return(&model.UserAccount{ID: 7, Name: "Ada", AccountType: model.AccountTypeGameOwner}, nil)
	h.regs.EXPECT().ListByUser(gomock.Any(), int64(7)).
		Return([]model.EventRegistration{{EventID: 3}}, nil)
	h.events.EXPECT().List(gomock.Any()).Return([]model.Event{
		{ID: 3, EventName: "Catan Night", EventDate: "2026-04-12", MaxParticipants: 4},
		{ID: 4, EventName: "Not mine", EventDate: "2026-04-13"},
	}, nil)
	h.borrows.EXPECT().ListByUser(gomock.Any(), int64(7)).Return([]model.BorrowRequest{{
		ID: 21, Status: model.RequestPending, OwnerID: 7, BorrowerID: 9,
		GameTitle: "Azul", StartDate: "2026-04-01", EndDate: "2026-04-08",
	}}, nil)
	h.copies.EXPECT().List(gomock.Any()).Return(nil, errors.New("backend down"))

	w := b.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Hello, Ada")
	assert.Contains(t, body, "Catan Night")
	assert.NotContains(t, body, "Not mine")
	assert.Contains(t, body, "Error loading recommendations.")

	doc := parseHTML(t, body)
	actions := formActions(doc)
	assert.Contains(t, actions, "/borrow-requests/21/accept")
	assert.Contains(t, actions, "/borrow-requests/21/decline")
}

func TestUI_DecideBorrowRequest(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.borrows.EXPECT().Get(gomock.Any(), int64(21)).
		Return(&model.BorrowRequest{ID: 21, OwnerID: 7, Status: model.RequestPending}, nil)
	h.borrows.EXPECT().Accept(gomock.Any(), int64(21)).
		Return(&model.BorrowRequest{ID: 21, OwnerID: 7, Status: model.RequestAccepted}, nil)

	w := b.post("/borrow-requests/21/accept", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestUI_DecideBorrowRequest_UnknownDecision(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	w := b.post("/borrow-requests/21/maybe", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUI_DecideBorrowRequest_AlreadyDecided(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.borrows.EXPECT().Get(gomock.Any(), int64(21)).
		Return(&model.BorrowRequest{ID: 21, OwnerID: 7, Status: model.RequestDeclined}, nil)

	w := b.post("/borrow-requests/21/accept", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already been decided")
}

func TestUI_YourGames_ListsCopies(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return([]model.GameCopy{
		{Title: "Catan", Owner: 7, Status: model.GameStatusAvailable},
		{Title: "Ticket to Ride", Owner: 7, Status: model.GameStatusBorrowed},
	}, nil)

	w := b.get("/your-games/7")

	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w.Body.String())
	links := findAll(doc, func(n *httpNode) bool { return n.Data == "a" && attr(n, "href") == "/edit-game/7/Ticket%20to%20Ride" })
	assert.Len(t, links, 1)
	assert.Contains(t, formActions(doc), "/your-games/7/delete")
	assert.Contains(t, w.Body.String(), "badge-warning")
}

func TestUI_YourGames_FiltersByTitle(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return([]model.GameCopy{
		{Title: "Catan", Owner: 7, Status: model.GameStatusAvailable},
		{Title: "Ticket to Ride", Owner: 7, Status: model.GameStatusAvailable},
		{Title: "Catan: Seafarers", Owner: 7, Status: model.GameStatusAvailable},
	}, nil).Times(2)

	w := b.get("/your-games/7?q=CATAN")
	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w.Body.String())
	boxes := findAll(doc, func(n *httpNode) bool { return n.Data == "input" && attr(n, "name") == "title" })
	var titles []string
	for _, n := range boxes {
		titles = append(titles, attr(n, "value"))
	}
	assert.Equal(t, []string{"Catan", "Catan: Seafarers"}, titles)
	search := findAll(doc, func(n *httpNode) bool { return n.Data == "input" && attr(n, "name") == "q" })
	require.Len(t, search, 1)
	assert.Equal(t, "CATAN", attr(search[0], "value"))

	w = b.get("/your-games/7?q=azul")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No games match")
}

func TestUI_Home_PlayerHidesOwnerLinks(t *testing.T) {
	tests := []struct {
		name        string
		accountType model.AccountType
		wantLinks   bool
	}{
		{name: "player", accountType: model.AccountTypePlayer, wantLinks: false},
		{name: "game owner", accountType: model.AccountTypeGameOwner, wantLinks: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRouterHarness(t)
			b := h.browser(t)
			b.signIn(7)

			h.users.EXPECT().Get(gomock.Any(), int64(7)).
				Return(&model.UserAccount{ID: 7, Name: "Ada", AccountType: tt.accountType}, nil)
			h.regs.EXPECT().ListByUser(gomock.Any(), int64(7)).Return(nil, nil)
			h.events.EXPECT().List(gomock.Any()).Return(nil, nil)
			h.borrows.EXPECT().ListByUser(gomock.Any(), int64(7)).Return(nil, nil)
			h.copies.EXPECT().List(gomock.Any()).Return(nil, nil)

			w := b.get("/")
			require.Equal(t, http.StatusOK, w.Code)
			doc := parseHTML(t, w.Body.String())
			quick := findAll(doc, func(n *httpNode) bool {
				return n.Data == "nav" && strings.Contains(attr(n, "class"), "quick-links")
			})
			require.Len(t, quick, 1)
			owner := findAll(quick[0], func(n *httpNode) bool {
				href := attr(n, "href")
				return n.Data == "a" && (href == "/your-games/7" || href == "/add-game/7")
			})
			if tt.wantLinks {
				assert.Len(t, owner, 2)
			} else {
				assert.Empty(t, owner)
			}
			hosting := findAll(quick[0], func(n *httpNode) bool { return n.Data == "a" && attr(n, "href") == "/create-event/7" })
			assert.Len(t, hosting, 1)
		})
	}
}

func TestUI_YourGames_OtherMemberIsRejected(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	w := b.get("/your-games/8")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), errMsgForbidden)
}

func TestUI_DeleteGames(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().Delete(gomock.Any(), int64(7), "Catan").Return(nil)
	h.copies.EXPECT().Delete(gomock.Any(), int64(7), "Azul").Return(nil)

	w := b.post("/your-games/7/delete", url.Values{"title": {"Catan", "Azul", "Catan"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/your-games/7", w.Header().Get("Location"))
}

func TestUI_AddGame(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().Create(gomock.Any(), int64(7), model.GameCopyCreateRequest{
		Title: "Azul", Description: "Tiles", Owner: 7,
	}).Return(&model.GameCopy{Title: "Azul", Owner: 7}, nil)

	w := b.post("/add-game/7", url.Values{"title": {"Azul"}, "description": {"Tiles"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/your-games/7", w.Header().Get("Location"))
}

func TestUI_AddGame_MissingTitleRerendersForm(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	// Only the game list is fetched; review lookups would fail the mock.
	h.games.EXPECT().List(gomock.Any()).Return([]model.Game{{Title: "Azul"}}, nil)

	w := b.post("/add-game/7", url.Values{"description": {"Tiles"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Title is required.")
	assert.Contains(t, body, "Tiles")
	assert.Contains(t, body, `<option value="Azul">`)
}

func TestUI_EditGame_SendsOnlyChangedFields(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().Get(gomock.Any(), int64(7), "Catan").
		Return(&model.GameCopy{Title: "Catan", Owner: 7, Description: "Same", Status: model.GameStatusAvailable}, nil)
	h.copies.EXPECT().UpdateStatus(gomock.Any(), int64(7), "Catan", model.GameStatusDamaged).Return(nil)

	w := b.post("/edit-game/7/Catan", url.Values{"description": {"Same"}, "status": {"damaged"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/your-games/7", w.Header().Get("Location"))
}

func TestUI_EditGame_RejectsUnknownStatus(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	w := b.post("/edit-game/7/Catan", url.Values{"status": {"LOST"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Status must be one of")
}

func TestUI_EditGamePage_PrefillsForm(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().Get(gomock.Any(), int64(7), "Catan").
		Return(&model.GameCopy{Title: "Catan", Owner: 7, Description: "Sheep", Status: model.GameStatusBorrowed}, nil)

	w := b.get("/edit-game/7/Catan")

	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w.Body.String())
	selected := findAll(doc, func(n *httpNode) bool {
		return n.Data == "option" && attr(n, "value") == "BORROWED" && hasAttr(n, "selected")
	})
	assert.Len(t, selected, 1)
	assert.Contains(t, w.Body.String(), "Sheep")
}

func TestUI_CreateEvent(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.events.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req model.EventCreateRequest) (*model.Event, error) {
			assert.Equal(t, "Catan Night", req.EventName)
			assert.Equal(t, 4, req.MaxParticipants)
			assert.Equal(t, "19:30:00", req.EventTime)
			return &model.Event{ID: 5}, nil
		})

	w := b.post("/create-event/7", url.Values{
		"eventName":       {"Catan Night"},
		"eventDate":       {"2026-04-12"},
		"eventTime":       {"19:30"},
		"location":        {"Library"},
		"maxParticipants": {"4"},
		"gameTitle":       {"Catan"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register-event", w.Header().Get("Location"))
}

func TestUI_CreateEvent_FieldErrors(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.copies.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return([]model.GameCopy{{Title: "Catan"}}, nil)

	w := b.post("/create-event/7", url.Values{
		"eventName":       {"Catan Night"},
		"eventDate":       {"12/04/2026"},
		"eventTime":       {"19:30"},
		"location":        {"Library"},
		"maxParticipants": {"0"},
		"gameTitle":       {"Catan"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Date has an invalid format.")
	assert.Contains(t, body, "Max participants must be between 1 and 100.")
}

func upcomingEvents() []model.Event {
	return []model.Event{
		{ID: 1, EventName: "Azul Afternoon", EventDate: "2026-04-02", EventTime: "14:00:00",
			Location: "Cafe", GameTitle: "Azul", MaxParticipants: 4, CurrentRegistrations: 1},
		{ID: 2, EventName: "Brass Evening", EventDate: "2026-04-01", EventTime: "19:00:00",
			Location: "Pub", GameTitle: "Brass", MaxParticipants: 3, CurrentRegistrations: 3},
		{ID: 3, EventName: "Catan Night", EventDate: "2026-04-03", EventTime: "19:00:00",
			Location: "Library", GameTitle: "Catan", MaxParticipants: 6, CurrentRegistrations: 2},
		{ID: 4, EventName: "Old Meetup", EventDate: "2026-01-01", EventTime: "19:00:00",
			Location: "Hall", GameTitle: "Chess", MaxParticipants: 2},
	}
}

func TestUI_RegisterEvent_SplitsAndFiltersBoard(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.events.EXPECT().List(gomock.Any()).Return(upcomingEvents(), nil)
	h.regs.EXPECT().ListByUser(gomock.Any(), int64(7)).Return([]model.EventRegistration{{EventID: 3}}, nil)

	w := b.get("/register-event?q_available=a")

	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w.Body.String())

	registered := tableText(doc, "events-registered")
	available := tableText(doc, "events-available")
	assert.Contains(t, registered, "Catan Night")
	assert.NotContains(t, available, "Catan Night")
	assert.Contains(t, available, "Azul Afternoon")
	assert.NotContains(t, available, "Brass Evening", "full events are hidden by default")
	assert.NotContains(t, available, "Old Meetup", "past events are hidden by default")

	// Join forms carry the active filters so the board comes back the same.
	forms := findAll(doc, func(n *httpNode) bool { return n.Data == "form" && attr(n, "action") == "/register-event/join" })
	require.NotEmpty(t, forms)
	assert.Equal(t, "a", hiddenValue(forms[0], "q_available"))
}

func TestUI_RegisterEvent_SortToggleIsTabScoped(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	w := b.post("/register-event/sort", url.Values{"table": {"available"}, "key": {"start"}, "show_full": {"1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register-event?show_full=1", w.Header().Get("Location"))

	h.events.EXPECT().List(gomock.Any()).Return(upcomingEvents(), nil).Times(2)
	h.regs.EXPECT().ListByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(2)

	w = b.get("/register-event?show_full=1")
	require.Equal(t, http.StatusOK, w.Code)
	available := tableText(parseHTML(t, w.Body.String()), "events-available")
	assert.Less(t, strings.Index(available, "Brass Evening"), strings.Index(available, "Azul Afternoon"))
	assert.Contains(t, available, "▲")

	// A second tab keeps the unsorted backend order.
	other := h.browser(t)
	other.signIn(7)
	w = other.get("/register-event?show_full=1")
	available = tableText(parseHTML(t, w.Body.String()), "events-available")
	assert.Less(t, strings.Index(available, "Azul Afternoon"), strings.Index(available, "Brass Evening"))
	assert.NotContains(t, available, "▲")
}

func TestUI_RegisterEvent_SortRejectsUnknownColumn(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	w := b.post("/register-event/sort", url.Values{"table": {"available"}, "key": {"password"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot sort")
}

func TestUI_JoinAndCancelEvent(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.regs.EXPECT().Create(gomock.Any(), model.EventRegistrationRequest{ParticipantID: 7, EventID: 3}).
		Return(&model.EventRegistration{EventID: 3}, nil)
	h.regs.EXPECT().Cancel(gomock.Any(), int64(7), int64(1)).Return(nil)

	w := b.post("/register-event/join", url.Values{"eventId": {"3"}, "q_registered": {"cat"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register-event?q_registered=cat", w.Header().Get("Location"))

	w = b.post("/register-event/cancel", url.Values{"eventId": {"1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register-event", w.Header().Get("Location"))
}

func TestUI_JoinEvent_BackendConflict(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.regs.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.FromStatus(http.StatusConflict, "event is full"))

	w := b.post("/register-event/join", url.Values{"eventId": {"2"}})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "event is full")
}

func TestUI_GameCatalog_FiltersByCategory(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)

	h.games.EXPECT().List(gomock.Any()).Return([]model.Game{
		{Title: "Catan", Category: "Strategy"},
		{Title: "Dixit", Category: "Party"},
	}, nil)
	h.reviews.EXPECT().ListByGame(gomock.Any(), "Catan").
		Return([]model.Review{{Rating: 4}, {Rating: 5}}, nil)

	w := b.get("/games?category=strategy")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Catan")
	assert.NotContains(t, body, "<h3>Dixit</h3>")
	assert.Contains(t, body, "★★★★★")
	assert.Contains(t, body, "4.5 out of 5")
	doc := parseHTML(t, body)
	options := findAll(doc, func(n *httpNode) bool { return n.Data == "option" && attr(n, "value") == "Party" })
	assert.Len(t, options, 1)
}

func TestUI_UserSettingsAndUpdate(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.users.EXPECT().Get(gomock.Any(), int64(7)).
		Return(&model.UserAccount{ID: 7, Name: "Ada", Email: "ada@example.com", AccountType: model.AccountTypePlayer}, nil)

	w := b.get("/userSetting")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
	assert.Contains(t, w.Body.String(), "Player")

	h.users.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
		Return(&model.UserAccount{ID: 7, Name: "Ada L"}, nil)

	w = b.post("/update", url.Values{
		"name": {"Ada L"}, "email": {"ada@example.com"}, "password": {"pw"}, "accountType": {"GAMEOWNER"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/userSetting", w.Header().Get("Location"))
}

func TestUI_DeleteAccountEndsSession(t *testing.T) {
	h := newRouterHarness(t)
	b := h.browser(t)
	b.signIn(7)

	h.users.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	w := b.post("/userSetting/delete", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/secure", w.Header().Get("Location"))
	_, ok := b.identifier()
	assert.False(t, ok)
}

func hasAttr(n *httpNode, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// tableText returns the concatenated text of the table with the given id.
func tableText(doc *httpNode, id string) string {
	tables := findAll(doc, func(n *httpNode) bool { return n.Data == "table" && attr(n, "id") == id })
	if len(tables) == 0 {
		return ""
	}
	var sb strings.Builder
	var walk func(*httpNode)
	walk = func(n *httpNode) {
		if n.FirstChild == nil && n.Data != "" && n.Type == textNodeType {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(tables[0])
	return sb.String()
}
