package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
)

const (
	maxRecommendations = 2

	msgNoRegistrations     = "You haven't registered for any events yet. Join an event to get started!"
	msgNoMatchingEvents    = "No upcoming events found. Join an event to get started!"
	msgRegistrationsFailed = "Error loading event registrations. Please try again later."
	msgEventsFailed        = "Error loading events. Please try again later."
	msgNoBorrowRequests    = "You don't have any borrowing requests yet. Borrow a game to get started!"
	msgBorrowFailed        = "Error loading borrowing requests. Please try again later."
	msgProfileFailed       = "Error loading your profile. Please try again later."
	msgRecommendFailed     = "Error loading recommendations. Please try again later."
	defaultRecommendation  = "Suggested for you!"
)

// DashboardAPIs are the backend ports the dashboard reads from.
type DashboardAPIs struct {
	Users          core.UserAccountAPI
	Registrations  core.EventRegistrationAPI
	Events         core.EventAPI
	BorrowRequests core.BorrowRequestAPI
	GameCopies     core.GameCopyAPI
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	APIs   DashboardAPIs
	Logger *slog.Logger
	// Shuffle permutes recommendation candidates. Defaults to math/rand/v2.Shuffle.
	Shuffle func(n int, swap func(i, j int))
}

// DashboardService assembles the home page.
type DashboardService struct {
	apis    DashboardAPIs
	logger  *slog.Logger
	shuffle func(n int, swap func(i, j int))
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	a := opts.APIs
	if a.Users == nil || a.Registrations == nil || a.Events == nil || a.BorrowRequests == nil || a.GameCopies == nil {
		panic("dashboard requires all backend APIs")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	shuffle := opts.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &DashboardService{apis: a, logger: logger.With("component", "dashboard"), shuffle: shuffle}
}

// DashboardEvent is an event the user registered for.
type DashboardEvent struct {
	ID              int64
	Name            string
	Date            string
	Day             int
	Month           string
	MaxParticipants int
}

// DashboardBorrow is one of the user's borrow requests.
type DashboardBorrow struct {
	ID        int64
	GameTitle string
	Status    model.RequestStatus
	StartDate string
	EndDate   string
	Day       int
	Month     string
	// Incoming marks requests where the user is the lender.
	Incoming bool
}

// Recommendation is a copy owned by someone else.
type Recommendation struct {
	Title       string
	Description string
	Owner       string
	State       string
}

// Dashboard is the home page model. Each section carries its own message so
// one failing backend call does not blank the page.
type Dashboard struct {
	User         *model.UserAccount
	AccountLabel string
	IsPlayer     bool
	UserMessage  string

	Events        []DashboardEvent
	EventsMessage string

	BorrowRequests []DashboardBorrow
	BorrowMessage  string

	Recommendations        []Recommendation
	RecommendationsMessage string
}

// Load fetches every dashboard section concurrently.
func (s *DashboardService) Load(ctx context.Context, userID int64) *Dashboard {
	var (
		user    *model.UserAccount
		regs    []model.EventRegistration
		events  []model.Event
		borrows []model.BorrowRequest
		copies  []model.GameCopy

		userErr, regsErr, eventsErr, borrowErr, copiesErr error
	)

	// Sections fail independently, so goroutines record errors instead of returning them.
	var g errgroup.Group
	g.Go(func() error { user, userErr = s.apis.Users.Get(ctx, userID); return nil })
	g.Go(func() error { regs, regsErr = s.apis.Registrations.ListByUser(ctx, userID); return nil })
	g.Go(func() error { events, eventsErr = s.apis.Events.List(ctx); return nil })
	g.Go(func() error { borrows, borrowErr = s.apis.BorrowRequests.ListByUser(ctx, userID); return nil })
	g.Go(func() error { copies, copiesErr = s.apis.GameCopies.List(ctx); return nil })
	_ = g.Wait()

	d := &Dashboard{}

	if userErr != nil {
		s.logger.WarnContext(ctx, "dashboard user fetch failed", "user_id", userID, "error", userErr)
		d.UserMessage = msgProfileFailed
	} else if user != nil {
		d.User = user
		d.AccountLabel = user.AccountType.Label()
		d.IsPlayer = user.AccountType == model.AccountTypePlayer
	}

	d.Events, d.EventsMessage = s.registeredEvents(ctx, regs, regsErr, events, eventsErr)
	d.BorrowRequests, d.BorrowMessage = s.borrowRequests(ctx, userID, borrows, borrowErr)

	if copiesErr != nil {
		s.logger.WarnContext(ctx, "dashboard recommendations fetch failed", "error", copiesErr)
		d.RecommendationsMessage = msgRecommendFailed
	} else {
		d.Recommendations = s.recommend(userID, copies)
	}
	return d
}

func (s *DashboardService) registeredEvents(
	ctx context.Context,
	regs []model.EventRegistration,
	regsErr error,
	events []model.Event,
	eventsErr error,
) ([]DashboardEvent, string) {
	if regsErr != nil {
		s.logger.WarnContext(ctx, "dashboard registrations fetch failed", "error", regsErr)
		return nil, msgRegistrationsFailed
	}
	if len(regs) == 0 {
		return nil, msgNoRegistrations
	}
	if eventsErr != nil {
		s.logger.WarnContext(ctx, "dashboard events fetch failed", "error", eventsErr)
		return nil, msgEventsFailed
	}

	joined := make(map[int64]bool, len(regs))
	for _, r := range regs {
		joined[r.EventID] = true
	}
	var out []DashboardEvent
	for _, e := range events {
		if !joined[e.ID] {
			continue
		}
		de := DashboardEvent{ID: e.ID, Name: e.EventName, Date: e.EventDate, MaxParticipants: e.MaxParticipants}
		if d, err := time.Parse(model.EventDateLayout, e.EventDate); err == nil {
			de.Day = d.Day()
			de.Month = d.Format("Jan")
		}
		out = append(out, de)
	}
	if len(out) == 0 {
		return nil, msgNoMatchingEvents
	}
	return out, ""
}

func (s *DashboardService) borrowRequests(
	ctx context.Context,
	userID int64,
	borrows []model.BorrowRequest,
	err error,
) ([]DashboardBorrow, string) {
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard borrow requests fetch failed", "error", err)
		return nil, msgBorrowFailed
	}
	if len(borrows) == 0 {
		return nil, msgNoBorrowRequests
	}
	out := make([]DashboardBorrow, 0, len(borrows))
	for _, b := range borrows {
		db := DashboardBorrow{
			ID:        b.ID,
			GameTitle: b.GameTitle,
			Status:    b.Status,
			StartDate: b.StartDate,
			EndDate:   formatShortDate(b.EndDate),
			Incoming:  b.OwnerID == userID && b.BorrowerID != userID,
		}
		if d, ok := parseDay(b.StartDate); ok {
			db.Day = d.Day()
			db.Month = d.Format("Jan")
		}
		out = append(out, db)
	}
	return out, ""
}

func (s *DashboardService) recommend(userID int64, copies []model.GameCopy) []Recommendation {
	candidates := make([]model.GameCopy, 0, len(copies))
	for _, c := range copies {
		if c.Owner != userID {
			candidates = append(candidates, c)
		}
	}
	s.shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	out := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		desc := c.OriginalDescription
		if desc == "" {
			desc = defaultRecommendation
		}
		out = append(out, Recommendation{Title: c.Title, Description: desc, Owner: c.OwnerName, State: c.Description})
	}
	return out
}

// parseDay accepts a plain date or an RFC 3339 timestamp.
func parseDay(raw string) (time.Time, bool) {
	if d, err := time.Parse(model.EventDateLayout, raw); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return d, true
	}
	if len(raw) >= len(model.EventDateLayout) {
		if d, err := time.Parse(model.EventDateLayout, raw[:len(model.EventDateLayout)]); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// formatShortDate renders "Jun 3, 2024". Unparseable input is returned unchanged.
func formatShortDate(raw string) string {
	d, ok := parseDay(raw)
	if !ok {
		return raw
	}
	return d.Format("Jan 2, 2006")
}
