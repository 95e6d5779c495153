package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Users core.UserAccountAPI
}

// AccountService handles sign-in, sign-up and profile changes against the backend.
type AccountService struct {
	users core.UserAccountAPI
}

// NewAccountService constructs a new AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	if opts.Users == nil {
		panic("UserAccountAPI is required")
	}
	return &AccountService{users: opts.Users}
}

// ParseAccountID parses a numeric account identifier.
func ParseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationField("accountId", "Account ID must be a positive number")
	}
	return id, nil
}

// Login verifies credentials and returns the account.
func (s *AccountService) Login(ctx context.Context, rawID, password string) (*model.UserAccount, error) {
	id, err := ParseAccountID(rawID)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "Password is required")
	}
	acct, err := s.users.Login(ctx, id, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return acct, nil
}

// Register creates an account.
func (s *AccountService) Register(ctx context.Context, req model.UserAccountRequest) (*model.UserAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	acct, err := s.users.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return acct, nil
}

// Profile returns the account of userID.
func (s *AccountService) Profile(ctx context.Context, userID int64) (*model.UserAccount, error) {
	acct, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return acct, nil
}

// Update replaces the account details of userID.
func (s *AccountService) Update(
	ctx context.Context,
	userID int64,
	req model.UserAccountRequest,
) (*model.UserAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	acct, err := s.users.Update(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return acct, nil
}

// Delete removes the account of userID.
func (s *AccountService) Delete(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
