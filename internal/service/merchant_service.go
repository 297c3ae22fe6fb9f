package service

import (
	"context"

	"grover-graphql/internal/cache"
	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
)

type MerchantService interface {
	Merchants(ctx context.Context, f *filter.MerchantFilter) ([]model.MerchantResponse, error)
	MerchantsForProduct(ctx context.Context, product model.ProductResponse, f *filter.MerchantFilter) ([]model.MerchantResponse, error)
	MerchantOf(ctx context.Context, product model.ProductResponse) (*model.MerchantResponse, error)
	LocationOf(ctx context.Context, merchant model.MerchantResponse) (*model.LocationResponse, error)
}

type merchantService struct {
	merchantRepo repository.MerchantRepository
	cache        cache.Cache
}

func NewMerchantService(merchantRepo repository.MerchantRepository, c cache.Cache) MerchantService {
	return &merchantService{
		merchantRepo: merchantRepo,
		cache:        cacheOrNop(c),
	}
}

// Merchants lists one entry per store location.
func (s *merchantService) Merchants(ctx context.Context, f *filter.MerchantFilter) ([]model.MerchantResponse, error) {
	var resp []model.MerchantResponse
	err := cached(ctx, s.cache, cache.Key("merchants", f), &resp, func() error {
		locations, err := s.merchantRepo.FindLocations(ctx, f)
		if err != nil {
			return err
		}
		resp = merchantResponses(locations)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *merchantService) MerchantsForProduct(ctx context.Context, product model.ProductResponse, f *filter.MerchantFilter) ([]model.MerchantResponse, error) {
	locations, err := s.merchantRepo.FindLocationsForProduct(ctx, product.ProductID, f)
	if err != nil {
		return nil, err
	}
	return merchantResponses(locations), nil
}

// MerchantOf is nil unless the product was resolved at a merchant.
func (s *merchantService) MerchantOf(ctx context.Context, product model.ProductResponse) (*model.MerchantResponse, error) {
	if product.MerchantID == nil {
		return nil, nil
	}
	location, err := s.merchantRepo.FindLocationByID(ctx, *product.MerchantID)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	resp := location.ToMerchantResponse()
	return &resp, nil
}

func (s *merchantService) LocationOf(ctx context.Context, merchant model.MerchantResponse) (*model.LocationResponse, error) {
	location, err := s.merchantRepo.FindLocationByID(ctx, merchant.ID)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	resp := location.ToResponse()
	return &resp, nil
}

func merchantResponses(locations []model.Location) []model.MerchantResponse {
	resp := make([]model.MerchantResponse, 0, len(locations))
	for i := range locations {
		resp = append(resp, locations[i].ToMerchantResponse())
	}
	return resp
}
