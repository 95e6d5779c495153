package service

import (
	"context"
	"fmt"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// LendingService lets owners decide on borrow requests for their copies.
type LendingService struct {
	requests core.BorrowRequestAPI
}

// NewLendingService constructs a new LendingService.
func NewLendingService(requests core.BorrowRequestAPI) *LendingService {
	if requests == nil {
		panic("BorrowRequestAPI is required")
	}
	return &LendingService{requests: requests}
}

// Decide accepts or declines a pending request addressed to ownerID.
func (s *LendingService) Decide(
	ctx context.Context,
	ownerID, requestID int64,
	accept bool,
) (*model.BorrowRequest, error) {
	req, err := s.requests.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("load borrow request %d: %w", requestID, err)
	}
	if req.OwnerID != ownerID {
		return nil, apperrors.Unauthorized("only the owner can decide on this request")
	}
	if req.Status != model.RequestPending {
		return nil, apperrors.Conflict("this request has already been decided")
	}

	if accept {
		return s.requests.Accept(ctx, requestID)
	}
	return s.requests.Decline(ctx, requestID)
}
