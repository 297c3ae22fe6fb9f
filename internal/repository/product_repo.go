package repository

import (
	"context"

	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository queries products under each parent scope. categoryIDs,
// when non nil, restricts results to those categories; it carries the
// result of resolving a category name filter.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Search(ctx context.Context, f *filter.ProductFilter, categoryIDs []uint) ([]model.Product, error)
	FindInCategory(ctx context.Context, categoryID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.Product, error)
	FindAtLocation(ctx context.Context, locationID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.Variant, error)
	FindInList(ctx context.Context, listID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.ProductListItem, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// productConditions applies a product filter to the product columns of table,
// which is either PRODUCT itself or the alias of a joined product.
func productConditions(table string, f *filter.ProductFilter, categoryIDs []uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f != nil {
			if f.ID != nil {
				db = db.Where(clause.Eq{Column: col(table, "Product_id"), Value: *f.ID})
			}
			db = f.Name.Scope(col(table, "Product_name"))(db)
			if f.CategoryID != nil {
				db = db.Where(clause.Eq{Column: col(table, "Category_id"), Value: *f.CategoryID})
			}
		}
		if categoryIDs != nil {
			db = db.Where(clause.IN{Column: col(table, "Category_id"), Values: uintValues(categoryIDs)})
		}
		return db
	}
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Search(ctx context.Context, f *filter.ProductFilter, categoryIDs []uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Scopes(productConditions(tableProduct, f, categoryIDs)).
		Order(asc(col(tableProduct, "Product_id"))).
		Find(&products).Error
	return products, err
}

// FindInCategory never leaves categoryID, even when the filter names other categories.
func (r *productRepo) FindInCategory(ctx context.Context, categoryID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: col(tableProduct, "Category_id"), Value: categoryID}).
		Scopes(productConditions(tableProduct, f, categoryIDs)).
		Order(asc(col(tableProduct, "Product_id"))).
		Find(&products).Error
	return products, err
}

// FindAtLocation returns the variants sold at a location with their product loaded.
func (r *productRepo) FindAtLocation(ctx context.Context, locationID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.Variant, error) {
	var variants []model.Variant
	err := r.db.WithContext(ctx).
		Joins("Product").
		Where(clause.Eq{Column: col(tableVariant, "Address_id"), Value: locationID}).
		Scopes(productConditions(joinedProduct, f, categoryIDs)).
		Order(asc(col(tableVariant, "Productitem_id"))).
		Find(&variants).Error
	return variants, err
}

// FindInList returns the items of a list with their product loaded.
func (r *productRepo) FindInList(ctx context.Context, listID uint, f *filter.ProductFilter, categoryIDs []uint) ([]model.ProductListItem, error) {
	var items []model.ProductListItem
	err := r.db.WithContext(ctx).
		Joins("Product").
		Where(clause.Eq{Column: col(tableListItem, "List_id"), Value: listID}).
		Scopes(productConditions(joinedProduct, f, categoryIDs)).
		Order(asc(col(tableListItem, "Listitem_id"))).
		Find(&items).Error
	return items, err
}
