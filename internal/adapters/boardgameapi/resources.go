package boardgameapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

var (
	_ core.UserAccountAPI       = (*UserAccounts)(nil)
	_ core.GameAPI              = (*Games)(nil)
	_ core.GameCopyAPI          = (*GameCopies)(nil)
	_ core.EventAPI             = (*Events)(nil)
	_ core.EventRegistrationAPI = (*EventRegistrations)(nil)
	_ core.ReviewAPI            = (*Reviews)(nil)
	_ core.BorrowRequestAPI     = (*BorrowRequests)(nil)
)

// UserAccounts talks to /UserAccount.
type UserAccounts struct{ c *Client }

func (u *UserAccounts) Get(ctx context.Context, id int64) (*model.UserAccount, error) {
	var out model.UserAccount
	err := u.c.do(ctx, call{
		method: http.MethodGet, accounts: true,
		segments: []string{"UserAccount", idSegment(id)},
		out:      &out, op: "get user account",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserAccounts) List(ctx context.Context) ([]model.UserAccount, error) {
	var out struct {
		Accounts []model.UserAccount `json:"userAccountResponseDtoList"`
	}
	err := u.c.do(ctx, call{
		method: http.MethodGet, accounts: true,
		segments: []string{"UserAccount"},
		out:      &out, op: "list user accounts",
	})
	if err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (u *UserAccounts) Create(ctx context.Context, req model.UserAccountRequest) (*model.UserAccount, error) {
	var out model.UserAccount
	err := u.c.do(ctx, call{
		method: http.MethodPost, accounts: true,
		segments: []string{"UserAccount"},
		body:     req, out: &out, op: "create user account",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserAccounts) Update(ctx context.Context, id int64, req model.UserAccountRequest) (*model.UserAccount, error) {
	var out model.UserAccount
	err := u.c.do(ctx, call{
		method: http.MethodPut, accounts: true,
		segments: []string{"UserAccount", idSegment(id)},
		body:     req, out: &out, op: "update user account",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserAccounts) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, call{
		method: http.MethodDelete, accounts: true,
		segments: []string{"UserAccount", idSegment(id)},
		op:       "delete user account",
	})
}

// Login checks credentials. The backend takes both values as path segments.
func (u *UserAccounts) Login(ctx context.Context, id int64, password string) (*model.UserAccount, error) {
	var out model.UserAccount
	err := u.c.do(ctx, call{
		method: http.MethodPost, accounts: true,
		segments: []string{"UserAccount", "login", idSegment(id), password},
		out:      &out, op: "login",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Games talks to /api/games.
type Games struct{ c *Client }

func (g *Games) List(ctx context.Context) ([]model.Game, error) {
	var out []model.Game
	err := g.c.do(ctx, call{method: http.MethodGet, segments: []string{"games"}, out: &out, op: "list games"})
	return out, err
}

func (g *Games) Get(ctx context.Context, title string) (*model.Game, error) {
	var out model.Game
	err := g.c.do(ctx, call{method: http.MethodGet, segments: []string{"games", title}, out: &out, op: "get game"})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GameCopies talks to /api/gamecopies.
type GameCopies struct{ c *Client }

func (g *GameCopies) List(ctx context.Context) ([]model.GameCopy, error) {
	var out []model.GameCopy
	err := g.c.do(ctx, call{method: http.MethodGet, segments: []string{"gamecopies"}, out: &out, op: "list game copies"})
	return out, err
}

func (g *GameCopies) ListByOwner(ctx context.Context, userID int64) ([]model.GameCopy, error) {
	var out []model.GameCopy
	err := g.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"gamecopies", idSegment(userID)},
		out:      &out, op: "list owner game copies",
	})
	return out, err
}

// Get finds a copy by title in the owner's collection. The backend has no
// single-copy endpoint.
func (g *GameCopies) Get(ctx context.Context, userID int64, title string) (*model.GameCopy, error) {
	copies, err := g.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range copies {
		if copies[i].Title == title {
			return &copies[i], nil
		}
	}
	return nil, apperrors.NotFoundf("Game with title %s not found", title)
}

func (g *GameCopies) Create(
	ctx context.Context,
	userID int64,
	req model.GameCopyCreateRequest,
) (*model.GameCopy, error) {
	req.Owner = userID
	var out model.GameCopy
	err := g.c.do(ctx, call{
		method:   http.MethodPost,
		segments: []string{"gamecopies", idSegment(userID)},
		body:     req, out: &out, op: "create game copy",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GameCopies) UpdateStatus(ctx context.Context, userID int64, title string, status model.GameStatus) error {
	return g.c.do(ctx, call{
		method:   http.MethodPut,
		segments: []string{"gamecopies", idSegment(userID), "status", title},
		query:    url.Values{"status": {string(status)}},
		op:       "update game copy status",
	})
}

func (g *GameCopies) UpdateDescription(ctx context.Context, userID int64, title, description string) error {
	return g.c.do(ctx, call{
		method:   http.MethodPut,
		segments: []string{"gamecopies", idSegment(userID), "description", title},
		query:    url.Values{"newDescription": {description}},
		op:       "update game copy description",
	})
}

func (g *GameCopies) Delete(ctx context.Context, userID int64, title string) error {
	return g.c.do(ctx, call{
		method:   http.MethodDelete,
		segments: []string{"gamecopies", idSegment(userID), title},
		op:       "delete game copy",
	})
}

// Events talks to /api/events.
type Events struct{ c *Client }

func (e *Events) List(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	err := e.c.do(ctx, call{method: http.MethodGet, segments: []string{"events"}, out: &out, op: "list events"})
	return out, err
}

func (e *Events) Get(ctx context.Context, id int64) (*model.Event, error) {
	var out model.Event
	err := e.c.do(ctx, call{method: http.MethodGet, segments: []string{"events", idSegment(id)}, out: &out, op: "get event"})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Events) Create(ctx context.Context, userID int64, req model.EventCreateRequest) (*model.Event, error) {
	var out model.Event
	err := e.c.do(ctx, call{
		method:   http.MethodPost,
		segments: []string{"events", idSegment(userID)},
		body:     req, out: &out, op: "create event",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDescription sends the description as a plain text body.
func (e *Events) UpdateDescription(ctx context.Context, id int64, description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.ValidationField("description", "description cannot be empty")
	}
	return e.c.do(ctx, call{
		method:   http.MethodPut,
		segments: []string{"events", idSegment(id), "description"},
		text:     description,
		op:       "update event description",
	})
}

func (e *Events) Delete(ctx context.Context, id int64) error {
	return e.c.do(ctx, call{method: http.MethodDelete, segments: []string{"events", idSegment(id)}, op: "delete event"})
}

// EventRegistrations talks to /api/eventregistrations.
type EventRegistrations struct{ c *Client }

func (r *EventRegistrations) ListByUser(ctx context.Context, userID int64) ([]model.EventRegistration, error) {
	var out []model.EventRegistration
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"eventregistrations", "user", idSegment(userID)},
		out:      &out, op: "list user registrations",
	})
	return out, err
}

func (r *EventRegistrations) ListByEvent(ctx context.Context, eventID int64) ([]model.EventRegistration, error) {
	var out []model.EventRegistration
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"eventregistrations", "event", idSegment(eventID)},
		out:      &out, op: "list event registrations",
	})
	return out, err
}

func (r *EventRegistrations) Get(ctx context.Context, userID, eventID int64) (*model.EventRegistration, error) {
	var out model.EventRegistration
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"eventregistrations", idSegment(userID), idSegment(eventID)},
		out:      &out, op: "get registration",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EventRegistrations) Create(
	ctx context.Context,
	req model.EventRegistrationRequest,
) (*model.EventRegistration, error) {
	var out model.EventRegistration
	err := r.c.do(ctx, call{
		method:   http.MethodPost,
		segments: []string{"eventregistrations"},
		body:     req, out: &out, op: "create registration",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EventRegistrations) Cancel(ctx context.Context, userID, eventID int64) error {
	return r.c.do(ctx, call{
		method:   http.MethodDelete,
		segments: []string{"eventregistrations", idSegment(userID), idSegment(eventID)},
		op:       "cancel registration",
	})
}

// Reviews talks to /api/reviews.
type Reviews struct{ c *Client }

func (r *Reviews) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	var out []model.Review
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"reviews", "user", idSegment(userID)},
		out:      &out, op: "list user reviews",
	})
	return out, err
}

func (r *Reviews) ListByGame(ctx context.Context, title string) ([]model.Review, error) {
	var out []model.Review
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"reviews", "game", title},
		out:      &out, op: "list game reviews",
	})
	return out, err
}

func (r *Reviews) Get(ctx context.Context, userID int64, title string) (*model.Review, error) {
	var out model.Review
	err := r.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"reviews", idSegment(userID), title},
		out:      &out, op: "get review",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Reviews) Create(ctx context.Context, userID int64, req model.ReviewCreateRequest) (*model.Review, error) {
	req.ReviewKey.ReviewerID = userID
	var out model.Review
	err := r.c.do(ctx, call{
		method:   http.MethodPost,
		segments: []string{"reviews", idSegment(userID)},
		body:     req, out: &out, op: "create review",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Reviews) Delete(ctx context.Context, userID int64, title string) error {
	return r.c.do(ctx, call{
		method:   http.MethodDelete,
		segments: []string{"reviews", idSegment(userID), title},
		op:       "delete review",
	})
}

// BorrowRequests talks to /api/borrowrequests.
type BorrowRequests struct{ c *Client }

func (b *BorrowRequests) ListByUser(ctx context.Context, userID int64) ([]model.BorrowRequest, error) {
	var out []model.BorrowRequest
	err := b.c.do(ctx, call{
		method:   http.MethodGet,
		segments: []string{"borrowrequests", "user", idSegment(userID)},
		out:      &out, op: "list borrow requests",
	})
	return out, err
}

func (b *BorrowRequests) Get(ctx context.Context, id int64) (*model.BorrowRequest, error) {
	return b.single(ctx, http.MethodGet, "get borrow request", idSegment(id))
}

func (b *BorrowRequests) Create(ctx context.Context, req model.BorrowRequestCreate) (*model.BorrowRequest, error) {
	var out model.BorrowRequest
	err := b.c.do(ctx, call{
		method:   http.MethodPost,
		segments: []string{"borrowrequests"},
		body:     req, out: &out, op: "create borrow request",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BorrowRequests) Accept(ctx context.Context, id int64) (*model.BorrowRequest, error) {
	return b.single(ctx, http.MethodPut, "accept borrow request", idSegment(id), "accept")
}

func (b *BorrowRequests) Decline(ctx context.Context, id int64) (*model.BorrowRequest, error) {
	return b.single(ctx, http.MethodPut, "decline borrow request", idSegment(id), "decline")
}

func (b *BorrowRequests) single(ctx context.Context, method, op string, segments ...string) (*model.BorrowRequest, error) {
	var out model.BorrowRequest
	err := b.c.do(ctx, call{
		method:   method,
		segments: append([]string{"borrowrequests"}, segments...),
		out:      &out, op: op,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
