// Package mocks provides gomock implementations of the backend API ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	games := mocks.NewMockGameCopyAPI(ctrl)
//	games.EXPECT().ListByOwner(gomock.Any(), int64(42)).Return(copies, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_account_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core UserAccountAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=game_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core GameAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=game_copy_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core GameCopyAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=event_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core EventAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=event_registration_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core EventRegistrationAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=review_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core ReviewAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=borrow_request_api_mock.go github.com/boardgamehub/boardgame-ui/internal/core BorrowRequestAPI
