package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
)

const maxConcurrentReviewFetches = 4

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Games   core.GameAPI
	Reviews core.ReviewAPI
	Logger  *slog.Logger
}

// CatalogEntry is a game with its review summary.
type CatalogEntry struct {
	model.Game
	ReviewCount   int
	AverageRating float64
}

// Catalog is the game-catalog page model.
type Catalog struct {
	Entries    []CatalogEntry
	Categories []string
	Category   string
}

// CatalogService lists the shared game catalog.
type CatalogService struct {
	games   core.GameAPI
	reviews core.ReviewAPI
	logger  *slog.Logger
}

// NewCatalogService constructs a new CatalogService. Reviews is optional.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Games == nil {
		panic("GameAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		games:   opts.Games,
		reviews: opts.Reviews,
		logger:  logger.With("component", "catalog"),
	}
}

// Titles lists every catalog title in display order, without review summaries.
func (s *CatalogService) Titles(ctx context.Context) ([]string, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	titles := make([]string, 0, len(games))
	for _, g := range games {
		titles = append(titles, g.Title)
	}
	slices.SortFunc(titles, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return titles, nil
}

// Load lists games, optionally restricted to category (case-insensitive),
// and attaches review summaries. A failed review lookup leaves that entry unrated.
func (s *CatalogService) Load(ctx context.Context, category string) (*Catalog, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	category = strings.TrimSpace(category)
	cat := &Catalog{Category: category}
	seen := map[string]bool{}
	for _, g := range games {
		if c := strings.TrimSpace(g.Category); c != "" && !seen[strings.ToLower(c)] {
			seen[strings.ToLower(c)] = true
			cat.Categories = append(cat.Categories, c)
		}
		if category != "" && !strings.EqualFold(strings.TrimSpace(g.Category), category) {
			continue
		}
		cat.Entries = append(cat.Entries, CatalogEntry{Game: g})
	}
	slices.Sort(cat.Categories)
	slices.SortFunc(cat.Entries, func(a, b CatalogEntry) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	if s.reviews != nil {
		var g errgroup.Group
		g.SetLimit(maxConcurrentReviewFetches)
		for i := range cat.Entries {
			entry := &cat.Entries[i]
			g.Go(func() error {
				reviews, err := s.reviews.ListByGame(ctx, entry.Title)
				if err != nil {
					s.logger.WarnContext(ctx, "catalog review fetch failed", "title", entry.Title, "error", err)
					return nil
				}
				summarizeReviews(entry, reviews)
				return nil
			})
		}
		_ = g.Wait()
	}
	return cat, nil
}

func summarizeReviews(entry *CatalogEntry, reviews []model.Review) {
	if len(reviews) == 0 {
		return
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	entry.ReviewCount = len(reviews)
	entry.AverageRating = float64(total) / float64(len(reviews))
}
