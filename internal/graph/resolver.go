package graph

import (
	"context"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"grover-graphql/internal/model"
	"grover-graphql/internal/service"
)

// Resolver is the root of both Query and Mutation.
type Resolver struct {
	categories service.CategoryService
	products   service.ProductService
	merchants  service.MerchantService
	lists      service.ListService
}

func NewResolver(
	categories service.CategoryService,
	products service.ProductService,
	merchants service.MerchantService,
	lists service.ListService,
) *Resolver {
	return &Resolver{
		categories: categories,
		products:   products,
		merchants:  merchants,
		lists:      lists,
	}
}

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

func optionalToID(id *uint) *graphql.ID {
	if id == nil {
		return nil
	}
	v := toID(*id)
	return &v
}

// ==================== Query ====================

func (r *Resolver) Categories(ctx context.Context, args struct{ FilterBy *categoryFilterInput }) ([]*categoryResolver, error) {
	f, err := args.FilterBy.toFilter()
	if err != nil {
		return nil, err
	}
	categories, err := r.categories.Categories(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*categoryResolver, 0, len(categories))
	for _, c := range categories {
		out = append(out, &categoryResolver{root: r, category: c})
	}
	return out, nil
}

func (r *Resolver) Products(ctx context.Context, args struct{ FilterBy *productFilterInput }) ([]*productResolver, error) {
	return r.resolveProducts(ctx, args.FilterBy, service.RootScope())
}

func (r *Resolver) Merchants(ctx context.Context, args struct{ FilterBy *merchantFilterInput }) ([]*merchantResolver, error) {
	f, err := args.FilterBy.toFilter()
	if err != nil {
		return nil, err
	}
	merchants, err := r.merchants.Merchants(ctx, f)
	if err != nil {
		return nil, err
	}
	return r.merchantResolvers(merchants), nil
}

func (r *Resolver) List(ctx context.Context, args struct{ FilterBy *listFilterInput }) (*listResolver, error) {
	f, err := args.FilterBy.toFilter()
	if err != nil {
		return nil, err
	}
	list, err := r.lists.List(ctx, f)
	if err != nil || list == nil {
		return nil, err
	}
	return &listResolver{root: r, list: *list}, nil
}

// ==================== Mutation ====================

func (r *Resolver) UpdateProductPrice(ctx context.Context, args struct{ Input updateProductPriceInput }) (*productResolver, error) {
	product, err := r.products.UpdateProductPrice(ctx, service.UpdatePriceInput{
		ProductID: string(args.Input.ProductID),
		Price:     args.Input.Price,
	})
	if err != nil || product == nil {
		return nil, err
	}
	return &productResolver{root: r, product: *product}, nil
}

func (r *Resolver) AddToList(ctx context.Context, args struct{ Input addToListInput }) (*listResolver, error) {
	list, err := r.lists.AddToList(ctx, service.AddToListInput{
		ListID:    string(args.Input.ListID),
		ProductID: string(args.Input.ProductID),
	})
	if err != nil || list == nil {
		return nil, err
	}
	return &listResolver{root: r, list: *list}, nil
}

// ==================== helpers ====================

func (r *Resolver) resolveProducts(ctx context.Context, in *productFilterInput, scope service.Scope) ([]*productResolver, error) {
	f, err := in.toFilter()
	if err != nil {
		return nil, err
	}
	products, err := r.products.Products(ctx, f, scope)
	if err != nil {
		return nil, err
	}
	out := make([]*productResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &productResolver{root: r, product: p})
	}
	return out, nil
}

func (r *Resolver) merchantResolvers(merchants []model.MerchantResponse) []*merchantResolver {
	out := make([]*merchantResolver, 0, len(merchants))
	for _, m := range merchants {
		out = append(out, &merchantResolver{root: r, merchant: m})
	}
	return out
}
