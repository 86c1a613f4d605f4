package cache_test

import (
	"context"
	"errors"
	"poolhire/shared/cache"
	"poolhire/shared/cache/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quote struct {
	Total int64 `json:"total"`
}

func TestRemember_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRedisCache(ctrl)

	store.EXPECT().Get(gomock.Any(), "pool:quote:1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*quote) = quote{Total: 6500}

			return nil
		})

	got, err := cache.Remember(context.Background(), store, "pool:quote:1", 60, func(context.Context) (quote, error) {
		t.Fatal("loader must not run on a hit")

		return quote{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6500), got.Total)
}

func TestRemember_MissLoadsAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRedisCache(ctrl)
	saved := make(chan any, 1)

	store.EXPECT().Get(gomock.Any(), "pool:quote:1", gomock.Any()).Return(cache.Nil)
	store.EXPECT().Save(gomock.Any(), "pool:quote:1", quote{Total: 4200}, 60).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			saved <- value

			return nil
		})

	got, err := cache.Remember(context.Background(), store, "pool:quote:1", 60, func(context.Context) (quote, error) {
		return quote{Total: 4200}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4200), got.Total)

	select {
	case value := <-saved:
		assert.Equal(t, quote{Total: 4200}, value)
	case <-time.After(time.Second):
		t.Fatal("value was not cached")
	}
}

func TestRemember_LoadErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRedisCache(ctrl)
	loadErr := errors.New("pool not found")

	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := cache.Remember(context.Background(), store, "pool:quote:2", 60, func(context.Context) (quote, error) {
		return quote{}, loadErr
	})

	assert.ErrorIs(t, err, loadErr)
}
