package service

import (
	"context"

	"grover-graphql/internal/cache"
	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
)

type CategoryService interface {
	Categories(ctx context.Context, f *filter.CategoryFilter) ([]model.CategoryResponse, error)
	CategoryOf(ctx context.Context, product model.ProductResponse) (*model.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, c cache.Cache) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        cacheOrNop(c),
	}
}

func (s *categoryService) Categories(ctx context.Context, f *filter.CategoryFilter) ([]model.CategoryResponse, error) {
	var resp []model.CategoryResponse
	err := cached(ctx, s.cache, cache.Key("categories", f), &resp, func() error {
		categories, err := s.categoryRepo.Find(ctx, f)
		if err != nil {
			return err
		}
		resp = make([]model.CategoryResponse, 0, len(categories))
		for i := range categories {
			resp = append(resp, categories[i].ToResponse())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *categoryService) CategoryOf(ctx context.Context, product model.ProductResponse) (*model.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, product.CategoryID)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	resp := category.ToResponse()
	return &resp, nil
}
