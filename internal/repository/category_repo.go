package repository

import (
	"context"

	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	Find(ctx context.Context, f *filter.CategoryFilter) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindIDsByName(ctx context.Context, name *filter.StringFilter) ([]uint, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Find(ctx context.Context, f *filter.CategoryFilter) ([]model.Category, error) {
	q := r.db.WithContext(ctx).Model(&model.Category{})
	if f != nil {
		if f.ID != nil {
			q = q.Where(clause.Eq{Column: col(tableCategory, "Category_id"), Value: *f.ID})
		}
		q = q.Scopes(
			f.Name.Scope(col(tableCategory, "Category_Name")),
			f.Description.Scope(col(tableCategory, "Category_Description")),
		)
	}

	var categories []model.Category
	err := q.Order(asc(col(tableCategory, "Category_id"))).Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindIDsByName resolves a category name filter to the matching ids.
func (r *categoryRepo) FindIDsByName(ctx context.Context, name *filter.StringFilter) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Scopes(name.Scope(col(tableCategory, "Category_Name"))).
		Order(asc(col(tableCategory, "Category_id"))).
		Pluck("Category_id", &ids).Error
	return ids, err
}
