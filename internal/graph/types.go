package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"grover-graphql/internal/model"
	"grover-graphql/internal/service"
)

type categoryResolver struct {
	root     *Resolver
	category model.CategoryResponse
}

func (c *categoryResolver) ID() graphql.ID { return toID(c.category.ID) }

func (c *categoryResolver) Name() string { return c.category.Name }

func (c *categoryResolver) Description() *string {
	if c.category.Description == "" {
		return nil
	}
	return &c.category.Description
}

func (c *categoryResolver) Products(ctx context.Context, args struct{ FilterBy *productFilterInput }) ([]*productResolver, error) {
	return c.root.resolveProducts(ctx, args.FilterBy, service.CategoryScope(c.category.ID))
}

type productResolver struct {
	root    *Resolver
	product model.ProductResponse
}

func (p *productResolver) ID() graphql.ID { return toID(p.product.ID) }

func (p *productResolver) Name() string { return p.product.Name }

func (p *productResolver) Picture() *string {
	if p.product.Picture == "" {
		return nil
	}
	return &p.product.Picture
}

func (p *productResolver) Price() *float64 { return p.product.Price }

func (p *productResolver) Weight() *float64 { return p.product.Weight }

func (p *productResolver) Units() *int32 {
	if p.product.Units == nil {
		return nil
	}
	v := int32(*p.product.Units)
	return &v
}

func (p *productResolver) CategoryID() graphql.ID { return toID(p.product.CategoryID) }

func (p *productResolver) MerchantID() *graphql.ID { return optionalToID(p.product.MerchantID) }

func (p *productResolver) VariantID() *graphql.ID { return optionalToID(p.product.VariantID) }

func (p *productResolver) Category(ctx context.Context) (*categoryResolver, error) {
	category, err := p.root.categories.CategoryOf(ctx, p.product)
	if err != nil || category == nil {
		return nil, err
	}
	return &categoryResolver{root: p.root, category: *category}, nil
}

func (p *productResolver) Merchant(ctx context.Context) (*merchantResolver, error) {
	merchant, err := p.root.merchants.MerchantOf(ctx, p.product)
	if err != nil || merchant == nil {
		return nil, err
	}
	return &merchantResolver{root: p.root, merchant: *merchant}, nil
}

func (p *productResolver) Merchants(ctx context.Context, args struct{ FilterBy *merchantFilterInput }) ([]*merchantResolver, error) {
	f, err := args.FilterBy.toFilter()
	if err != nil {
		return nil, err
	}
	merchants, err := p.root.merchants.MerchantsForProduct(ctx, p.product, f)
	if err != nil {
		return nil, err
	}
	return p.root.merchantResolvers(merchants), nil
}

func (p *productResolver) History(ctx context.Context) ([]*priceRevisionResolver, error) {
	history, err := p.root.products.PriceHistory(ctx, p.product)
	if err != nil {
		return nil, err
	}
	out := make([]*priceRevisionResolver, 0, len(history))
	for _, h := range history {
		out = append(out, &priceRevisionResolver{h})
	}
	return out, nil
}

type priceRevisionResolver struct {
	rev model.PriceRevisionResponse
}

func (h *priceRevisionResolver) Revision() int32 { return int32(h.rev.Revision) }

func (h *priceRevisionResolver) Action() string { return h.rev.Action }

func (h *priceRevisionResolver) Timestamp() Date { return Date{h.rev.Timestamp} }

func (h *priceRevisionResolver) Price() float64 { return h.rev.Price }

func (h *priceRevisionResolver) Weight() float64 { return h.rev.Weight }

func (h *priceRevisionResolver) Units() int32 { return int32(h.rev.Units) }

type merchantResolver struct {
	root     *Resolver
	merchant model.MerchantResponse
}

func (m *merchantResolver) ID() graphql.ID { return toID(m.merchant.ID) }

func (m *merchantResolver) Name() string { return m.merchant.Name }

// Location reuses the address loaded with the merchant and only queries
// when none came with it.
func (m *merchantResolver) Location(ctx context.Context) (*locationResolver, error) {
	if m.merchant.Location != (model.LocationResponse{}) {
		return &locationResolver{m.merchant.Location}, nil
	}
	location, err := m.root.merchants.LocationOf(ctx, m.merchant)
	if err != nil || location == nil {
		return nil, err
	}
	return &locationResolver{*location}, nil
}

func (m *merchantResolver) Products(ctx context.Context, args struct{ FilterBy *productFilterInput }) ([]*productResolver, error) {
	return m.root.resolveProducts(ctx, args.FilterBy, service.MerchantScope(m.merchant.ID))
}

type locationResolver struct {
	location model.LocationResponse
}

func (l *locationResolver) Address() string { return l.location.Address }

func (l *locationResolver) City() string { return l.location.City }

func (l *locationResolver) State() string { return l.location.State }

func (l *locationResolver) Zip() string { return l.location.Zip }

type listResolver struct {
	root *Resolver
	list model.ListResponse
}

func (l *listResolver) ID() graphql.ID { return toID(l.list.ID) }

func (l *listResolver) Name() string { return l.list.Name }

func (l *listResolver) Products(ctx context.Context, args struct{ FilterBy *productFilterInput }) ([]*productResolver, error) {
	return l.root.resolveProducts(ctx, args.FilterBy, service.ListScope(l.list.ID))
}
