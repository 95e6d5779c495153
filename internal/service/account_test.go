package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
	"github.com/boardgamehub/boardgame-ui/internal/mocks"
)

func newAccountService(t *testing.T) (*AccountService, *mocks.MockUserAccountAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserAccountAPI(ctrl)
	return NewAccountService(AccountServiceOptions{Users: users}), users
}

func TestParseAccountID(t *testing.T) {
	id, err := ParseAccountID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "-1", "0"} {
		_, err := ParseAccountID(raw)
		assert.True(t, apperrors.IsValidation(err), raw)
	}
}

func TestAccountService_Login(t *testing.T) {
	svc, users := newAccountService(t)
	ctx := context.Background()

	users.EXPECT().Login(ctx, int64(42), "pw").Return(&model.UserAccount{ID: 42}, nil)
	acct, err := svc.Login(ctx, "42", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(42), acct.ID)

	users.EXPECT().Login(ctx, int64(42), "bad").Return(nil, apperrors.FromStatus(400, "Invalid password"))
	_, err = svc.Login(ctx, "42", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid password", apperrors.Message(err))

	_, err = svc.Login(ctx, "42", "")
	assert.Equal(t, "password", apperrors.GetField(err))

	_, err = svc.Login(ctx, "ada", "pw")
	assert.Equal(t, "accountId", apperrors.GetField(err))
}

func TestAccountService_Register(t *testing.T) {
	svc, users := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, model.UserAccountRequest{Name: "Ada"})
	assert.True(t, apperrors.IsValidation(err))

	users.EXPECT().Create(ctx, model.UserAccountRequest{
		Name: "Ada", Password: "pw", Email: "ada@example.com", AccountType: model.AccountTypePlayer,
	}).Return(&model.UserAccount{ID: 7, Name: "Ada"}, nil)

	acct, err := svc.Register(ctx, model.UserAccountRequest{
		Name: "Ada", Password: "pw", Email: "ada@example.com", AccountType: "player",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.ID)
}

func TestAccountService_UpdateAndDelete(t *testing.T) {
	svc, users := newAccountService(t)
	ctx := context.Background()
	req := model.UserAccountRequest{Name: "Ada", Password: "pw", Email: "ada@example.com", AccountType: model.AccountTypeGameOwner}

	users.EXPECT().Update(ctx, int64(42), req).Return(&model.UserAccount{ID: 42, Name: "Ada"}, nil)
	_, err := svc.Update(ctx, 42, req)
	require.NoError(t, err)

	users.EXPECT().Delete(ctx, int64(42)).Return(apperrors.NotFound("User not found"))
	err = svc.Delete(ctx, 42)
	assert.True(t, apperrors.IsNotFound(err))
}
