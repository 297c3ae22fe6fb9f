// Package seed writes a small demo catalog. Running it twice is a no-op.
package seed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
	"grover-graphql/pkg/validator"
)

type product struct {
	name, picture, category string
}

type location struct {
	merchant, number, street, city, state string
	zip                                   int
}

type variant struct {
	product, street string
	units           int
	weight, price   float64
}

var (
	categories = []model.Category{
		{Name: "Dairy", Description: "Milk, cheese and eggs"},
		{Name: "Bakery", Description: "Fresh bread and pastries"},
		{Name: "Produce", Description: "Fruit and vegetables"},
	}

	products = []product{
		{"Whole Milk", "whole-milk.png", "Dairy"},
		{"Cheddar", "cheddar.png", "Dairy"},
		{"Rye Bread", "rye-bread.png", "Bakery"},
		{"Bagel", "bagel.png", "Bakery"},
		{"Gala Apple", "gala-apple.png", "Produce"},
		{"Banana", "banana.png", "Produce"},
	}

	merchants = []string{"ShopRite", "Whole Foods"}

	locations = []location{
		{"ShopRite", "900", "Clinton St", "Hoboken", "NJ", 7030},
		{"ShopRite", "25", "Hudson St", "Jersey City", "NJ", 7302},
		{"Whole Foods", "3495", "Route 1", "Princeton", "NJ", 8540},
	}

	variants = []variant{
		{"Whole Milk", "Clinton St", 1, 3.8, 4.29},
		{"Whole Milk", "Route 1", 1, 3.8, 5.49},
		{"Cheddar", "Route 1", 1, 0.2, 6.99},
		{"Rye Bread", "Clinton St", 1, 0.7, 3.99},
		{"Bagel", "Hudson St", 6, 0.6, 4.50},
		{"Gala Apple", "Hudson St", 6, 1.2, 2.50},
		{"Banana", "Clinton St", 1, 1.0, 0.69},
	}
)

// Options configure the demo user.
type Options struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Run writes the demo catalog, a demo user and their first list.
func Run(ctx context.Context, db *gorm.DB, opts Options, log *zap.Logger) error {
	if errs := validator.ValidateStruct(opts); len(errs) > 0 {
		return errors.Wrap(errs[0], "seed options")
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Categories & products
		categoryIDs := make(map[string]uint, len(categories))
		for _, c := range categories {
			c := c
			if err := tx.Where(model.Category{Name: c.Name}).Attrs(c).FirstOrCreate(&c).Error; err != nil {
				return errors.Wrapf(err, "category %s", c.Name)
			}
			categoryIDs[c.Name] = c.ID
		}

		productIDs := make(map[string]uint, len(products))
		for _, p := range products {
			row := model.Product{Name: p.name, Picture: p.picture, CategoryID: categoryIDs[p.category]}
			if err := tx.Where(model.Product{Name: p.name}).Attrs(row).FirstOrCreate(&row).Error; err != nil {
				return errors.Wrapf(err, "product %s", p.name)
			}
			productIDs[p.name] = row.ID
		}

		// 2. Merchants & locations
		merchantIDs := make(map[string]uint, len(merchants))
		for _, name := range merchants {
			row := model.Merchant{Name: name}
			if err := tx.Where(model.Merchant{Name: name}).FirstOrCreate(&row).Error; err != nil {
				return errors.Wrapf(err, "merchant %s", name)
			}
			merchantIDs[name] = row.ID
		}

		locationIDs := make(map[string]uint, len(locations))
		for _, l := range locations {
			row := model.Location{
				StreetNumber: l.number,
				StreetName:   l.street,
				Zip:          l.zip,
				City:         l.city,
				State:        l.state,
				MerchantID:   merchantIDs[l.merchant],
			}
			key := model.Location{StreetNumber: l.number, StreetName: l.street, MerchantID: row.MerchantID}
			if err := tx.Where(key).Attrs(row).FirstOrCreate(&row).Error; err != nil {
				return errors.Wrapf(err, "location %s", l.street)
			}
			locationIDs[l.street] = row.ID
		}

		// 3. Variants, each with its first history revision
		now := time.Now().UTC()
		for _, v := range variants {
			key := model.Variant{ProductID: productIDs[v.product], LocationID: locationIDs[v.street]}
			var row model.Variant
			res := tx.Where(key).Limit(1).Find(&row)
			if res.Error != nil {
				return errors.Wrapf(res.Error, "variant %s", v.product)
			}
			if res.RowsAffected > 0 {
				continue
			}

			row = key
			row.Units, row.Weight, row.Price = v.units, v.weight, v.price
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrapf(err, "variant %s", v.product)
			}
			history := row.Snapshot(1, model.ActionInsert, now)
			if err := tx.Create(&history).Error; err != nil {
				return errors.Wrapf(err, "history of %s", v.product)
			}
		}

		// 4. Demo user & list
		users := repository.NewUserRepo(tx)
		user, err := users.FindByEmail(opts.Email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &model.User{Email: opts.Email, FirstName: "Demo", LastName: "Shopper"}
			if err := user.SetPassword(opts.Password); err != nil {
				return errors.Wrap(err, "hash password")
			}
			if err := users.Create(user); err != nil {
				return errors.Wrap(err, "create user")
			}
			log.Info("demo user created", zap.String("email", user.Email))
		} else if err != nil {
			return errors.Wrap(err, "find user")
		}

		list := model.ProductList{Name: "Weekly groceries", OwnerID: user.ID}
		if err := tx.Where(list).FirstOrCreate(&list).Error; err != nil {
			return errors.Wrap(err, "list")
		}
		for _, name := range []string{"Whole Milk", "Rye Bread"} {
			item := model.ProductListItem{ProductListID: list.ID, ProductID: productIDs[name]}
			if err := tx.Where(item).Attrs(model.ProductListItem{Quantity: 1}).FirstOrCreate(&item).Error; err != nil {
				return errors.Wrapf(err, "list item %s", name)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("demo catalog seeded",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.Int("locations", len(locations)),
		zap.Int("variants", len(variants)),
	)
	return nil
}
