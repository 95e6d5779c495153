package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	"github.com/boardgamehub/boardgame-ui/internal/mocks"
)

func TestCatalogService_LoadFiltersAndRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	reviews := mocks.NewMockReviewAPI(ctrl)
	var logs bytes.Buffer
	svc := NewCatalogService(CatalogServiceOptions{
		Games:   games,
		Reviews: reviews,
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
	})
	ctx := context.Background()

	games.EXPECT().List(ctx).Return([]model.Game{
		{Title: "Risk", Category: "Strategy"},
		{Title: "Codenames", Category: "Party"},
		{Title: "Catan", Category: "strategy"},
	}, nil)
	reviews.EXPECT().ListByGame(ctx, "Catan").Return([]model.Review{{Rating: 5}, {Rating: 4}}, nil)
	reviews.EXPECT().ListByGame(ctx, "Risk").Return(nil, errors.New("boom"))

	cat, err := svc.Load(ctx, "Strategy")
	require.NoError(t, err)

	require.Len(t, cat.Entries, 2)
	assert.Equal(t, "Catan", cat.Entries[0].Title)
	assert.Equal(t, 2, cat.Entries[0].ReviewCount)
	assert.InDelta(t, 4.5, cat.Entries[0].AverageRating, 0.001)
	assert.Equal(t, 0, cat.Entries[1].ReviewCount)
	assert.Equal(t, []string{"Party", "Strategy"}, cat.Categories)
	assert.Contains(t, logs.String(), "catalog review fetch failed")
	assert.Contains(t, logs.String(), "title=Risk")
}

func TestCatalogService_TitlesSkipsReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	reviews := mocks.NewMockReviewAPI(ctrl)
	svc := NewCatalogService(CatalogServiceOptions{Games: games, Reviews: reviews})

	games.EXPECT().List(gomock.Any()).Return([]model.Game{
		{Title: "risk"}, {Title: "Azul"}, {Title: "Catan"},
	}, nil)

	titles, err := svc.Titles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Azul", "Catan", "risk"}, titles)

	games.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))
	_, err = svc.Titles(context.Background())
	require.Error(t, err)
}

func TestCatalogService_LoadWithoutReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	svc := NewCatalogService(CatalogServiceOptions{Games: games})

	games.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))
	_, err := svc.Load(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list games")
}
