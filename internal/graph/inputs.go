package graph

import (
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"grover-graphql/internal/filter"
	"grover-graphql/pkg/validator"
)

type stringFilterInput struct {
	StartsWith *string
	EndsWith   *string
	Matches    *string
}

func (in *stringFilterInput) toFilter() *filter.StringFilter {
	if in == nil {
		return nil
	}
	return &filter.StringFilter{
		StartsWith: in.StartsWith,
		EndsWith:   in.EndsWith,
		Matches:    in.Matches,
	}
}

type categoryFilterInput struct {
	ID          *graphql.ID
	Name        *stringFilterInput
	Description *stringFilterInput
}

func (in *categoryFilterInput) toFilter() (*filter.CategoryFilter, error) {
	if in == nil {
		return nil, nil
	}
	id, err := optionalID(in.ID)
	if err != nil {
		return nil, err
	}
	return &filter.CategoryFilter{
		ID:          id,
		Name:        in.Name.toFilter(),
		Description: in.Description.toFilter(),
	}, nil
}

type productFilterInput struct {
	ID         *graphql.ID
	Name       *stringFilterInput
	CategoryID *int32
	Category   *stringFilterInput
}

func (in *productFilterInput) toFilter() (*filter.ProductFilter, error) {
	if in == nil {
		return nil, nil
	}
	id, err := optionalID(in.ID)
	if err != nil {
		return nil, err
	}
	f := &filter.ProductFilter{
		ID:       id,
		Name:     in.Name.toFilter(),
		Category: in.Category.toFilter(),
	}
	if in.CategoryID != nil {
		if *in.CategoryID < 0 {
			return nil, fmt.Errorf("invalid categoryId %d", *in.CategoryID)
		}
		categoryID := uint(*in.CategoryID)
		f.CategoryID = &categoryID
	}
	return f, nil
}

type locationFilterInput struct {
	Address *stringFilterInput
	City    *stringFilterInput
	State   *stringFilterInput
	Zip     *stringFilterInput
}

func (in *locationFilterInput) toFilter() *filter.LocationFilter {
	if in == nil {
		return nil
	}
	return &filter.LocationFilter{
		Address: in.Address.toFilter(),
		City:    in.City.toFilter(),
		State:   in.State.toFilter(),
		Zip:     in.Zip.toFilter(),
	}
}

type merchantFilterInput struct {
	ID       *graphql.ID
	Name     *stringFilterInput
	Location *locationFilterInput
}

func (in *merchantFilterInput) toFilter() (*filter.MerchantFilter, error) {
	if in == nil {
		return nil, nil
	}
	id, err := optionalID(in.ID)
	if err != nil {
		return nil, err
	}
	return &filter.MerchantFilter{
		ID:       id,
		Name:     in.Name.toFilter(),
		Location: in.Location.toFilter(),
	}, nil
}

type listFilterInput struct {
	ID     *graphql.ID
	UserID *graphql.ID
	Name   *string
}

func (in *listFilterInput) toFilter() (*filter.ListFilter, error) {
	if in == nil {
		return nil, nil
	}
	id, err := optionalID(in.ID)
	if err != nil {
		return nil, err
	}
	userID, err := optionalID(in.UserID)
	if err != nil {
		return nil, err
	}
	return &filter.ListFilter{ID: id, UserID: userID, Name: in.Name}, nil
}

type updateProductPriceInput struct {
	ProductID graphql.ID
	Price     float64
}

type addToListInput struct {
	ListID    graphql.ID
	ProductID graphql.ID
}

func optionalID(id *graphql.ID) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	v, err := validator.ParseID(string(*id))
	if err != nil {
		return nil, fmt.Errorf("invalid ID %q", string(*id))
	}
	return &v, nil
}
