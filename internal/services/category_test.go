package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
)

func TestCategoryService_GetCategories_CachesResult(t *testing.T) {
	categoryRepo := &mockCategoryRepo{categories: []entities.Category{
		{ID: 1, Name: "Belt"},
		{ID: 2, Name: "Motor"},
	}}
	cache := newMockCacheRepo()
	svc := NewCategoryService(categoryRepo, cache, time.Minute, zap.NewNop())

	first, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, categoryRepo.calls)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, categoryRepo.calls, "second read must come from cache")
}

func TestCategoryService_GetCategories_NoCacheConfigured(t *testing.T) {
	categoryRepo := &mockCategoryRepo{categories: []entities.Category{{ID: 1, Name: "Belt"}}}
	svc := NewCategoryService(categoryRepo, nil, time.Minute, zap.NewNop())

	list, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
