package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// maxConcurrentDeletes bounds DeleteMany fan-out against the backend.
const maxConcurrentDeletes = 4

// GameCopyServiceOptions groups dependencies for GameCopyService.
type GameCopyServiceOptions struct {
	Copies core.GameCopyAPI
	Logger *slog.Logger
}

// GameCopyService manages the copies in a member's collection.
type GameCopyService struct {
	copies core.GameCopyAPI
	logger *slog.Logger
}

// NewGameCopyService constructs a new GameCopyService.
func NewGameCopyService(opts GameCopyServiceOptions) *GameCopyService {
	if opts.Copies == nil {
		panic("GameCopyAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GameCopyService{copies: opts.Copies, logger: logger.With("component", "game_copies")}
}

// ListOwned returns the user's copies.
func (s *GameCopyService) ListOwned(ctx context.Context, userID int64) ([]model.GameCopy, error) {
	copies, err := s.copies.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list game copies: %w", err)
	}
	return copies, nil
}

// Get returns one of the user's copies by title.
func (s *GameCopyService) Get(ctx context.Context, userID int64, title string) (*model.GameCopy, error) {
	return s.copies.Get(ctx, userID, title)
}

// Add creates a copy in the user's collection.
func (s *GameCopyService) Add(ctx context.Context, userID int64, req model.GameCopyCreateRequest) (*model.GameCopy, error) {
	req.Owner = userID
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	gc, err := s.copies.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("add game copy: %w", err)
	}
	return gc, nil
}

// Update applies patch to a copy, calling the backend only for fields that
// differ from the stored copy. It returns the names of the fields it changed.
func (s *GameCopyService) Update(
	ctx context.Context,
	userID int64,
	title string,
	patch model.GameCopyPatch,
) ([]string, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	current, err := s.copies.Get(ctx, userID, title)
	if err != nil {
		return nil, err
	}

	var changed []string
	if patch.Description != nil && *patch.Description != current.Description {
		if err := s.copies.UpdateDescription(ctx, userID, current.Title, *patch.Description); err != nil {
			return changed, fmt.Errorf("update description: %w", err)
		}
		changed = append(changed, "description")
	}
	if patch.Status != nil && *patch.Status != current.Status {
		if err := s.copies.UpdateStatus(ctx, userID, current.Title, *patch.Status); err != nil {
			return changed, fmt.Errorf("update status: %w", err)
		}
		changed = append(changed, "status")
	}
	return changed, nil
}

// Delete removes one copy.
func (s *GameCopyService) Delete(ctx context.Context, userID int64, title string) error {
	if err := s.copies.Delete(ctx, userID, title); err != nil {
		return fmt.Errorf("delete %q: %w", title, err)
	}
	return nil
}

// DeleteMany removes several copies concurrently. Blank and repeated titles
// are ignored. The first failure is returned once every delete has finished.
func (s *GameCopyService) DeleteMany(ctx context.Context, userID int64, titles []string) error {
	seen := make(map[string]bool, len(titles))
	var g errgroup.Group
	g.SetLimit(maxConcurrentDeletes)
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		g.Go(func() error {
			err := s.Delete(ctx, userID, title)
			if err != nil {
				s.logger.WarnContext(ctx, "delete game copy failed", "user_id", userID, "title", title, "error", err)
			}
			return err
		})
	}
	if len(seen) == 0 {
		return apperrors.ValidationField("titles", "select at least one game to delete")
	}
	return g.Wait()
}
