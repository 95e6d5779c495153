package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// Event board tables.
const (
	TableRegistered = "registered"
	TableAvailable  = "available"
)

// sortableEventKeys are the column keys accepted by the event board.
var sortableEventKeys = map[string]bool{
	"name":     true,
	"host":     true,
	"game":     true,
	"location": true,
	"start":    true,
}

// IsSortableEventKey reports whether key names a sortable event column.
func IsSortableEventKey(key string) bool { return sortableEventKeys[key] }

// IsEventTable reports whether table names an event board table.
func IsEventTable(table string) bool { return table == TableRegistered || table == TableAvailable }

// EventRow is one event as shown on the board.
type EventRow struct {
	ID                   int64
	Name                 string
	Host                 string
	Game                 string
	Description          string
	Location             string
	StartTime            string
	StartsAt             time.Time
	CurrentRegistrations int
	MaxParticipants      int
	Full                 bool
}

// EventTableQuery filters and sorts one table of the board.
type EventTableQuery struct {
	Search   string
	ShowPast bool
	// ShowFull only applies to the available table.
	ShowFull bool
	Sort     SortState
}

// EventBoardQuery carries the per-table settings.
type EventBoardQuery struct {
	Registered EventTableQuery
	Available  EventTableQuery
}

// EventBoard is the register-event page model.
type EventBoard struct {
	Registered   []EventRow
	Available    []EventRow
	ErrorMessage string
}

// EventBoardServiceOptions groups dependencies for EventBoardService.
type EventBoardServiceOptions struct {
	Events        core.EventAPI
	Registrations core.EventRegistrationAPI
	// Now overrides the clock used to decide which events are upcoming.
	Now func() time.Time
}

// EventBoardService splits events into those the user joined and those still open.
type EventBoardService struct {
	events        core.EventAPI
	registrations core.EventRegistrationAPI
	now           func() time.Time
}

// NewEventBoardService constructs a new EventBoardService.
func NewEventBoardService(opts EventBoardServiceOptions) *EventBoardService {
	if opts.Events == nil {
		panic("EventAPI is required")
	}
	if opts.Registrations == nil {
		panic("EventRegistrationAPI is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &EventBoardService{events: opts.Events, registrations: opts.Registrations, now: now}
}

// Load fetches all events and the user's registrations and builds both tables.
func (s *EventBoardService) Load(ctx context.Context, userID int64, q EventBoardQuery) (*EventBoard, error) {
	var (
		all  []model.Event
		regs []model.EventRegistration
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.events.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		regs, err = s.registrations.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load event board: %w", err)
	}

	now := s.now()
	joined := make(map[int64]bool, len(regs))
	for _, r := range regs {
		joined[r.EventID] = true
	}

	board := &EventBoard{}
	for _, e := range all {
		row := newEventRow(e, now.Location())
		if joined[e.ID] {
			board.Registered = append(board.Registered, row)
		} else {
			board.Available = append(board.Available, row)
		}
	}

	board.Registered = filterEvents(board.Registered, q.Registered, now, true)
	board.Available = filterEvents(board.Available, q.Available, now, q.Available.ShowFull)
	sortEvents(board.Registered, q.Registered.Sort)
	sortEvents(board.Available, q.Available.Sort)
	return board, nil
}

// Join registers the user for an event.
func (s *EventBoardService) Join(ctx context.Context, userID, eventID int64) error {
	if eventID <= 0 {
		return apperrors.ValidationField("eventId", "event is required")
	}
	_, err := s.registrations.Create(ctx, model.EventRegistrationRequest{ParticipantID: userID, EventID: eventID})
	if err != nil {
		return fmt.Errorf("join event %d: %w", eventID, err)
	}
	return nil
}

// Cancel removes the user's registration for an event.
func (s *EventBoardService) Cancel(ctx context.Context, userID, eventID int64) error {
	if err := s.registrations.Cancel(ctx, userID, eventID); err != nil {
		return fmt.Errorf("cancel event %d: %w", eventID, err)
	}
	return nil
}

// Create schedules a new event hosted by userID.
func (s *EventBoardService) Create(ctx context.Context, userID int64, req model.EventCreateRequest) (*model.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	ev, err := s.events.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return ev, nil
}

func newEventRow(e model.Event, loc *time.Location) EventRow {
	startsAt, _ := e.StartsAt(loc)
	host := e.CreatorName
	if host == "" && e.CreatorID != 0 {
		host = "Member #" + strconv.FormatInt(e.CreatorID, 10)
	}
	return EventRow{
		ID:                   e.ID,
		Name:                 e.EventName,
		Host:                 host,
		Game:                 e.GameTitle,
		Description:          e.Description,
		Location:             e.Location,
		StartTime:            FormatEventStart(startsAt),
		StartsAt:             startsAt,
		CurrentRegistrations: e.CurrentRegistrations,
		MaxParticipants:      e.MaxParticipants,
		Full:                 e.Full(),
	}
}

// FormatEventStart renders a start time like "Sat Jun 01 2024 at 18:30".
func FormatEventStart(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Mon Jan 02 2006") + " at " + t.Format("15:04")
}

func filterEvents(rows []EventRow, q EventTableQuery, now time.Time, showFull bool) []EventRow {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := rows[:0:0]
	for _, r := range rows {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if !q.ShowPast && !r.StartsAt.After(now) {
			continue
		}
		if !showFull && r.Full {
			continue
		}
		out = append(out, r)
	}
	return out
}

func sortEvents(rows []EventRow, s SortState) {
	if !s.Active() || !IsSortableEventKey(s.Key) {
		return
	}
	slices.SortStableFunc(rows, func(a, b EventRow) int {
		var c int
		if s.Key == "start" {
			c = a.StartsAt.Compare(b.StartsAt)
		} else {
			c = cmp.Compare(strings.ToLower(eventField(a, s.Key)), strings.ToLower(eventField(b, s.Key)))
		}
		return c * s.Direction()
	})
}

func eventField(r EventRow, key string) string {
	switch key {
	case "name":
		return r.Name
	case "host":
		return r.Host
	case "game":
		return r.Game
	case "location":
		return r.Location
	default:
		return ""
	}
}
