package repository

import (
	"context"

	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MerchantRepository serves store locations together with their merchant.
type MerchantRepository interface {
	FindLocations(ctx context.Context, f *filter.MerchantFilter) ([]model.Location, error)
	FindLocationByID(ctx context.Context, id uint) (*model.Location, error)
	FindLocationsForProduct(ctx context.Context, productID uint, f *filter.MerchantFilter) ([]model.Location, error)
}

type merchantRepo struct {
	db *gorm.DB
}

func NewMerchantRepo(db *gorm.DB) MerchantRepository {
	return &merchantRepo{db}
}

func locationConditions(f *filter.LocationFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.IsEmpty() {
			return db
		}
		db = f.Address.Scope(col(tableLocation, "Address_2"))(db)
		db = f.City.Scope(col(tableLocation, "city"))(db)
		db = f.State.Scope(col(tableLocation, "state"))(db)
		for _, expr := range f.Zip.ZipExpressions(col(tableLocation, "zip_code")) {
			db = db.Where(expr)
		}
		return db
	}
}

func merchantConditions(f *filter.MerchantFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.IsEmpty() {
			return db
		}
		if f.ID != nil {
			db = db.Where(clause.Eq{Column: col(tableLocation, "Address_id"), Value: *f.ID})
		}
		return db.Scopes(
			f.Name.Scope(col(joinedMerchant, "store_name")),
			locationConditions(f.Location),
		)
	}
}

// FindLocations ANDs every filter that is set.
func (r *merchantRepo) FindLocations(ctx context.Context, f *filter.MerchantFilter) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Joins("Merchant").
		Scopes(merchantConditions(f)).
		Order(asc(col(tableLocation, "Address_id"))).
		Find(&locations).Error
	return locations, err
}

func (r *merchantRepo) FindLocationByID(ctx context.Context, id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.WithContext(ctx).Joins("Merchant").First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// FindLocationsForProduct returns each location with a variant of the product, once,
// narrowed the same way FindLocations is.
func (r *merchantRepo) FindLocationsForProduct(ctx context.Context, productID uint, f *filter.MerchantFilter) ([]model.Location, error) {
	stocked := r.db.Model(&model.Variant{}).
		Select("Address_id").
		Where(clause.Eq{Column: col(tableVariant, "Product_id"), Value: productID})

	var locations []model.Location
	err := r.db.WithContext(ctx).
		Joins("Merchant").
		Where("? IN (?)", col(tableLocation, "Address_id"), stocked).
		Scopes(merchantConditions(f)).
		Order(asc(col(tableLocation, "Address_id"))).
		Find(&locations).Error
	return locations, err
}
