package repository

import (
	"context"
	"time"

	"grover-graphql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VariantRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Variant, error)
	UpdatePrice(ctx context.Context, id uint, price float64) (*model.Variant, error)
	History(ctx context.Context, variantID uint) ([]model.VariantHistory, error)
}

type variantRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewVariantRepo(db *gorm.DB) VariantRepository {
	return &variantRepo{db: db, now: time.Now}
}

func (r *variantRepo) FindByID(ctx context.Context, id uint) (*model.Variant, error) {
	var variant model.Variant
	if err := r.db.WithContext(ctx).Joins("Product").First(&variant, id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdatePrice sets the price and appends the next history revision in one
// transaction, holding a row lock on the variant.
func (r *variantRepo) UpdatePrice(ctx context.Context, id uint, price float64) (*model.Variant, error) {
	var updated model.Variant

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Variant
		if err := forUpdate(tx).First(&existing, id).Error; err != nil {
			return err
		}
		var product model.Product
		if err := tx.First(&product, existing.ProductID).Error; err != nil {
			return err
		}
		existing.Product = &product

		err := tx.Model(&model.Variant{}).
			Where(clause.Eq{Column: col(tableVariant, "Productitem_id"), Value: id}).
			Update("Price", price).Error
		if err != nil {
			return err
		}
		existing.Price = price

		var last int
		err = tx.Model(&model.VariantHistory{}).
			Where(clause.Eq{Column: col(tableHistory, "Productitem_id"), Value: id}).
			Select("COALESCE(MAX(revision), 0)").
			Scan(&last).Error
		if err != nil {
			return err
		}

		history := existing.Snapshot(last+1, model.ActionPriceUpdate, r.now().UTC())
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *variantRepo) History(ctx context.Context, variantID uint) ([]model.VariantHistory, error) {
	var history []model.VariantHistory
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: col(tableHistory, "Productitem_id"), Value: variantID}).
		Order(asc(col(tableHistory, "revision"))).
		Find(&history).Error
	return history, err
}

// forUpdate adds a row lock where the dialect has one.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
