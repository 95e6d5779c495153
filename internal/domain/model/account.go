// Package model holds the board game records exchanged with the backend API.
package model

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const maxAccountNameLen = 255

// AccountType distinguishes members who lend games from those who only play.
type AccountType string

const (
	AccountTypeGameOwner AccountType = "GAMEOWNER"
	AccountTypePlayer    AccountType = "PLAYER"
)

// Valid reports whether the account type is supported by the backend.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeGameOwner, AccountTypePlayer:
		return true
	default:
		return false
	}
}

// Label returns the human readable name shown on settings and dashboard pages.
func (t AccountType) Label() string {
	switch t {
	case AccountTypeGameOwner:
		return "Game Owner"
	case AccountTypePlayer:
		return "Player"
	default:
		return string(t)
	}
}

// ParseAccountType normalizes a form value and reports whether it is supported.
func ParseAccountType(value string) (AccountType, bool) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// UserAccount mirrors the backend account representation.
type UserAccount struct {
	ID          int64       `json:"userAccountID"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	AccountType AccountType `json:"accountType"`
}

// UserAccountRequest creates or replaces an account.
type UserAccountRequest struct {
	Name        string      `json:"name"`
	Password    string      `json:"password"`
	Email       string      `json:"email"`
	AccountType AccountType `json:"accountType"`
}

// Validate checks the request and normalizes the account type.
func (r *UserAccountRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(name) > maxAccountNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Password) == "" {
		return errors.New("password is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return errors.New("email must be a valid address")
	}
	t, ok := ParseAccountType(string(r.AccountType))
	if !ok {
		return errors.New("account type must be GAMEOWNER or PLAYER")
	}
	r.Name = name
	r.Email = strings.TrimSpace(r.Email)
	r.AccountType = t
	return nil
}
