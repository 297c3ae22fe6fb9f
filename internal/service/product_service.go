package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
	"grover-graphql/internal/ws"
	"grover-graphql/pkg/logger"
	"grover-graphql/pkg/validator"
)

type UpdatePriceInput struct {
	// ProductID is the variant id of the product at its merchant.
	ProductID string  `validate:"required,numeric_id"`
	Price     float64 `validate:"gte=0"`
}

type ProductService interface {
	Products(ctx context.Context, f *filter.ProductFilter, scope Scope) ([]model.ProductResponse, error)
	UpdateProductPrice(ctx context.Context, input UpdatePriceInput) (*model.ProductResponse, error)
	PriceHistory(ctx context.Context, product model.ProductResponse) ([]model.PriceRevisionResponse, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	variantRepo  repository.VariantRepository
	events       Publisher
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	variantRepo repository.VariantRepository,
	events Publisher,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		variantRepo:  variantRepo,
		events:       publisherOrNop(events),
	}
}

func (s *productService) Products(ctx context.Context, f *filter.ProductFilter, scope Scope) ([]model.ProductResponse, error) {
	// nil means no restriction; empty means no category matched
	var categoryIDs []uint
	if f.NeedsCategoryLookup() {
		ids, err := s.categoryRepo.FindIDsByName(ctx, f.Category)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []model.ProductResponse{}, nil
		}
		categoryIDs = ids
	}

	switch scope.Kind {
	case ScopeRoot:
		products, err := s.productRepo.Search(ctx, f, categoryIDs)
		if err != nil {
			return nil, err
		}
		return productResponses(products), nil

	case ScopeCategory:
		products, err := s.productRepo.FindInCategory(ctx, scope.ParentID, f, categoryIDs)
		if err != nil {
			return nil, err
		}
		return productResponses(products), nil

	case ScopeMerchant:
		variants, err := s.productRepo.FindAtLocation(ctx, scope.ParentID, f, categoryIDs)
		if err != nil {
			return nil, err
		}
		resp := make([]model.ProductResponse, 0, len(variants))
		for i := range variants {
			resp = append(resp, variants[i].ToResponse())
		}
		return resp, nil

	case ScopeList:
		items, err := s.productRepo.FindInList(ctx, scope.ParentID, f, categoryIDs)
		if err != nil {
			return nil, err
		}
		resp := make([]model.ProductResponse, 0, len(items))
		for i := range items {
			if items[i].Product != nil {
				resp = append(resp, items[i].Product.ToResponse())
			}
		}
		return resp, nil

	default:
		return nil, fmt.Errorf("unknown product scope %s", scope.Kind)
	}
}

func productResponses(products []model.Product) []model.ProductResponse {
	resp := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, products[i].ToResponse())
	}
	return resp
}

// UpdateProductPrice returns nil when the variant does not exist.
func (s *productService) UpdateProductPrice(ctx context.Context, input UpdatePriceInput) (*model.ProductResponse, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	variantID, _ := validator.ParseID(input.ProductID)

	variant, err := s.variantRepo.UpdatePrice(ctx, variantID, input.Price)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "update price of product %d", variantID)
	}

	resp := variant.ToResponse()
	logger.FromContext(ctx).Info("product price updated",
		zap.Uint("variant_id", variant.ID),
		zap.Float64("price", variant.Price),
	)

	s.events.Publish(ws.Event{
		Type:    ws.EventPriceUpdate,
		Action:  model.ActionPriceUpdate,
		Payload: resp,
		Message: fmt.Sprintf("%s now costs %.2f", resp.Name, variant.Price),
	})

	return &resp, nil
}

// PriceHistory is empty for products not resolved at a merchant.
func (s *productService) PriceHistory(ctx context.Context, product model.ProductResponse) ([]model.PriceRevisionResponse, error) {
	if product.VariantID == nil {
		return []model.PriceRevisionResponse{}, nil
	}
	history, err := s.variantRepo.History(ctx, *product.VariantID)
	if err != nil {
		return nil, err
	}
	resp := make([]model.PriceRevisionResponse, 0, len(history))
	for i := range history {
		resp = append(resp, history[i].ToResponse())
	}
	return resp, nil
}
