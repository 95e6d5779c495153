// Package core defines the ports between the view-model services and the
// board game backend.
package core

import (
	"context"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
)

// The interfaces below are implemented by the boardgameapi adapter and mocked
// in tests. IDs are the backend's numeric account and event identifiers.

// UserAccountAPI manages member accounts.
type UserAccountAPI interface {
	Get(ctx context.Context, id int64) (*model.UserAccount, error)
	List(ctx context.Context) ([]model.UserAccount, error)
	Create(ctx context.Context, req model.UserAccountRequest) (*model.UserAccount, error)
	Update(ctx context.Context, id int64, req model.UserAccountRequest) (*model.UserAccount, error)
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, id int64, password string) (*model.UserAccount, error)
}

// GameAPI reads the shared game catalog.
type GameAPI interface {
	List(ctx context.Context) ([]model.Game, error)
	Get(ctx context.Context, title string) (*model.Game, error)
}

// GameCopyAPI manages the physical copies members own.
type GameCopyAPI interface {
	List(ctx context.Context) ([]model.GameCopy, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.GameCopy, error)
	Get(ctx context.Context, userID int64, title string) (*model.GameCopy, error)
	Create(ctx context.Context, userID int64, req model.GameCopyCreateRequest) (*model.GameCopy, error)
	UpdateStatus(ctx context.Context, userID int64, title string, status model.GameStatus) error
	UpdateDescription(ctx context.Context, userID int64, title, description string) error
	Delete(ctx context.Context, userID int64, title string) error
}

// EventAPI manages scheduled game nights.
type EventAPI interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, userID int64, req model.EventCreateRequest) (*model.Event, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	Delete(ctx context.Context, id int64) error
}

// EventRegistrationAPI manages event participation.
type EventRegistrationAPI interface {
	ListByUser(ctx context.Context, userID int64) ([]model.EventRegistration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.EventRegistration, error)
	Get(ctx context.Context, userID, eventID int64) (*model.EventRegistration, error)
	Create(ctx context.Context, req model.EventRegistrationRequest) (*model.EventRegistration, error)
	Cancel(ctx context.Context, userID, eventID int64) error
}

// ReviewAPI manages game reviews.
type ReviewAPI interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Review, error)
	ListByGame(ctx context.Context, title string) ([]model.Review, error)
	Get(ctx context.Context, userID int64, title string) (*model.Review, error)
	Create(ctx context.Context, userID int64, req model.ReviewCreateRequest) (*model.Review, error)
	Delete(ctx context.Context, userID int64, title string) error
}

// BorrowRequestAPI manages lending requests between members.
type BorrowRequestAPI interface {
	ListByUser(ctx context.Context, userID int64) ([]model.BorrowRequest, error)
	Get(ctx context.Context, id int64) (*model.BorrowRequest, error)
	Create(ctx context.Context, req model.BorrowRequestCreate) (*model.BorrowRequest, error)
	Accept(ctx context.Context, id int64) (*model.BorrowRequest, error)
	Decline(ctx context.Context, id int64) (*model.BorrowRequest, error)
}
