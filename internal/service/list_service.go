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

type AddToListInput struct {
	ListID    string `validate:"required,numeric_id"`
	ProductID string `validate:"required,numeric_id"`
}

type ListService interface {
	List(ctx context.Context, f *filter.ListFilter) (*model.ListResponse, error)
	AddToList(ctx context.Context, input AddToListInput) (*model.ListResponse, error)
}

type listService struct {
	listRepo    repository.ListRepository
	productRepo repository.ProductRepository
	events      Publisher
}

func NewListService(listRepo repository.ListRepository, productRepo repository.ProductRepository, events Publisher) ListService {
	return &listService{
		listRepo:    listRepo,
		productRepo: productRepo,
		events:      publisherOrNop(events),
	}
}

// List looks a list up by id, else by owner, else by name. It is nil when
// nothing matches or no filter is given.
func (s *listService) List(ctx context.Context, f *filter.ListFilter) (*model.ListResponse, error) {
	if f.IsEmpty() {
		return nil, nil
	}

	var (
		list *model.ProductList
		err  error
	)
	switch {
	case f.ID != nil:
		list, err = s.listRepo.FindByID(ctx, *f.ID)
	case f.UserID != nil:
		list, err = s.listRepo.FindByOwner(ctx, *f.UserID)
	default:
		list, err = s.listRepo.FindByName(ctx, *f.Name)
	}
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	resp := list.ToResponse()
	return &resp, nil
}

// AddToList returns nil when either the list or the product does not exist.
func (s *listService) AddToList(ctx context.Context, input AddToListInput) (*model.ListResponse, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	listID, _ := validator.ParseID(input.ListID)
	productID, _ := validator.ParseID(input.ProductID)

	list, err := s.listRepo.FindByID(ctx, listID)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err = translate(err); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	item, err := s.listRepo.AddItem(ctx, list.ID, product.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "add product %d to list %d", product.ID, list.ID)
	}

	logger.FromContext(ctx).Info("product added to list",
		zap.Uint("list_id", list.ID),
		zap.Uint("product_id", product.ID),
		zap.Int("quantity", item.Quantity),
	)

	resp := list.ToResponse()
	s.events.Publish(ws.Event{
		Type:   ws.EventListUpdate,
		Action: "item_added",
		Payload: map[string]interface{}{
			"list":       resp,
			"product_id": product.ID,
			"quantity":   item.Quantity,
		},
		Message: fmt.Sprintf("%s added to %s", product.Name, list.Name),
	})

	return &resp, nil
}
