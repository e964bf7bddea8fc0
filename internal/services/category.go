package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
)

const categoriesCacheKey = "categories:all"

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
}

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	cacheRepository    repositories.CacheRepositoryInterface
	cacheTTL           time.Duration
	logger             *zap.Logger
}

func NewCategoryService(
	categoryRepository repositories.CategoryRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		cacheRepository:    cacheRepository,
		cacheTTL:           cacheTTL,
		logger:             logger,
	}
}

// GetCategories serves the shared categories dictionary, cached with a TTL.
// The cache is best-effort: a cache failure falls back to the database.
func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	if s.cacheRepository != nil {
		if cached, err := s.cacheRepository.Get(ctx, categoriesCacheKey); err == nil {
			var list []dto.CategoryDTO
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return list, nil
			}
		}
	}

	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		s.logger.Error("loading categories failed", zap.Error(err))
		return nil, err
	}

	list := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		list = append(list, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}

	if s.cacheRepository != nil {
		if encoded, err := json.Marshal(list); err == nil {
			if err := s.cacheRepository.Set(ctx, categoriesCacheKey, string(encoded), s.cacheTTL); err != nil {
				s.logger.Warn("caching categories failed", zap.Error(err))
			}
		}
	}

	return list, nil
}
