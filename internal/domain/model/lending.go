package model

import (
	"errors"
	"strings"
)

// RequestStatus is the decision state of a borrow request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

// BorrowRequest asks an owner to lend a copy for a date range.
type BorrowRequest struct {
	ID           int64         `json:"id"`
	Status       RequestStatus `json:"status"`
	RequestDate  string        `json:"requestDate"`
	DecisionDate string        `json:"decisionDate,omitempty"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	BorrowerID   int64         `json:"borrowerId"`
	OwnerID      int64         `json:"ownerId"`
	GameTitle    string        `json:"gameTitle"`
}

// BorrowRequestCreate is the payload for a new borrow request.
type BorrowRequestCreate struct {
	BorrowerID int64  `json:"borrowerId"`
	OwnerID    int64  `json:"ownerId"`
	GameTitle  string `json:"gameTitle"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// Validate validates BorrowRequestCreate.
func (r *BorrowRequestCreate) Validate() error {
	if r.BorrowerID <= 0 || r.OwnerID <= 0 {
		return errors.New("borrower and owner are required")
	}
	if r.BorrowerID == r.OwnerID {
		return errors.New("cannot borrow your own game")
	}
	if strings.TrimSpace(r.GameTitle) == "" {
		return errors.New("game title is required")
	}
	if r.StartDate == "" || r.EndDate == "" {
		return errors.New("start and end dates are required")
	}
	if r.EndDate < r.StartDate {
		return errors.New("end date must not be before start date")
	}
	return nil
}

// Review is a member's rating of a game.
type Review struct {
	GameTitle  string `json:"gameTitle"`
	ReviewerID int64  `json:"reviewerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date,omitempty"`
}

// ReviewKey identifies a review by game and reviewer.
type ReviewKey struct {
	GameTitle  string `json:"gameTitle"`
	ReviewerID int64  `json:"reviewerId"`
}

// ReviewCreateRequest is the payload for a new review.
type ReviewCreateRequest struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ReviewKey ReviewKey `json:"reviewKey"`
}

// Validate validates ReviewCreateRequest.
func (r *ReviewCreateRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.ReviewKey.GameTitle) == "" {
		return errors.New("game title is required")
	}
	return nil
}
