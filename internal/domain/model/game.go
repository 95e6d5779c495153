package model

import (
	"errors"
	"strings"
)

// Game is a catalog entry shared by every copy of the same title.
type Game struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// GameStatus is the lending state of a physical copy.
type GameStatus string

const (
	GameStatusAvailable GameStatus = "AVAILABLE"
	GameStatusBorrowed  GameStatus = "BORROWED"
	GameStatusDamaged   GameStatus = "DAMAGED"
)

// Valid reports whether the status is supported.
func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusAvailable, GameStatusBorrowed, GameStatusDamaged:
		return true
	default:
		return false
	}
}

// ParseGameStatus normalizes a form value and reports whether it is supported.
func ParseGameStatus(value string) (GameStatus, bool) {
	s := GameStatus(strings.ToUpper(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// GameStatuses lists the statuses in display order.
func GameStatuses() []GameStatus {
	return []GameStatus{GameStatusAvailable, GameStatusBorrowed, GameStatusDamaged}
}

// GameCopy is a member's physical copy of a game.
type GameCopy struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Owner               int64      `json:"owner"`
	OwnerName           string     `json:"ownerName"`
	Status              GameStatus `json:"status"`
	OriginalDescription string     `json:"originalDescription"`
}

// GameCopyCreateRequest adds a copy to a member's collection.
type GameCopyCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       int64  `json:"owner"`
}

// Validate validates GameCopyCreateRequest.
func (r *GameCopyCreateRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Owner <= 0 {
		return errors.New("owner is required")
	}
	r.Description = strings.TrimSpace(r.Description)
	return nil
}

// GameCopyPatch carries the editable fields of a copy. Nil fields are left unchanged.
type GameCopyPatch struct {
	Description *string
	Status      *GameStatus
}

// HasUpdates reports whether any field is set.
func (p GameCopyPatch) HasUpdates() bool {
	return p.Description != nil || p.Status != nil
}

// Validate validates GameCopyPatch.
func (p GameCopyPatch) Validate() error {
	if !p.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if p.Status != nil && !p.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}
