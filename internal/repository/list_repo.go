package repository

import (
	"context"

	"grover-graphql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepository interface {
	FindByID(ctx context.Context, id uint) (*model.ProductList, error)
	FindByOwner(ctx context.Context, ownerID uint) (*model.ProductList, error)
	FindByName(ctx context.Context, name string) (*model.ProductList, error)
	AddItem(ctx context.Context, listID, productID uint) (*model.ProductListItem, error)
}

type listRepo struct {
	db *gorm.DB
}

func NewListRepo(db *gorm.DB) ListRepository {
	return &listRepo{db}
}

func (r *listRepo) FindByID(ctx context.Context, id uint) (*model.ProductList, error) {
	var list model.ProductList
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByOwner returns the owner's first list.
func (r *listRepo) FindByOwner(ctx context.Context, ownerID uint) (*model.ProductList, error) {
	var list model.ProductList
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: col(tableList, "User_id"), Value: ownerID}).
		Order(asc(col(tableList, "List_id"))).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepo) FindByName(ctx context.Context, name string) (*model.ProductList, error) {
	var list model.ProductList
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: col(tableList, "List_name"), Value: name}).
		Order(asc(col(tableList, "List_id"))).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// AddItem puts one unit of the product on the list, bumping the quantity
// when the product is already there. The insert and the bump are a single
// upsert on (List_id, Product_id).
func (r *listRepo) AddItem(ctx context.Context, listID, productID uint) (*model.ProductListItem, error) {
	var item model.ProductListItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "List_id"}, {Name: "Product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"Quantity": bumpQuantity(tx)}),
		}).Create(&model.ProductListItem{Quantity: 1, ProductID: productID, ProductListID: listID}).Error
		if err != nil {
			return err
		}
		return tx.
			Where(clause.Eq{Column: col(tableListItem, "List_id"), Value: listID}).
			Where(clause.Eq{Column: col(tableListItem, "Product_id"), Value: productID}).
			Take(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// bumpQuantity is the stored quantity plus one. Postgres needs the table
// name to tell the stored row from EXCLUDED.
func bumpQuantity(tx *gorm.DB) clause.Expr {
	quantity := clause.Column{Name: "Quantity"}
	if tx.Dialector.Name() == "postgres" {
		quantity = col(tableListItem, "Quantity")
	}
	return gorm.Expr("? + 1", quantity)
}
