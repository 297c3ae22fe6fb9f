// Package testutil provides an in-memory database seeded with a small
// catalog for tests across packages.
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"grover-graphql/internal/model"
	"grover-graphql/pkg/database"
)

// Fixtures are the rows written by Seed.
type Fixtures struct {
	Dairy, Bakery, Produce *model.Category

	Milk, Butter, Bread, Bagel, Apple *model.Product

	ShopRite, Whole *model.Merchant

	// Hoboken and Jersey City belong to ShopRite, Princeton to Whole.
	Hoboken, JerseyCity, Princeton *model.Location

	MilkHoboken, MilkPrinceton, BreadHoboken, AppleJerseyCity *model.Variant

	Alice, Bob *model.User

	Weekly, Party *model.ProductList
}

// NewDB opens a migrated in-memory SQLite database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver:   database.DriverSQLite,
		DSN:      ":memory:",
		LogLevel: "silent",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// Seed writes the fixture catalog.
func Seed(t testing.TB, db *gorm.DB) *Fixtures {
	t.Helper()

	f := &Fixtures{
		Dairy:   &model.Category{ID: 1, Name: "Dairy", Description: "Milk, cheese and eggs"},
		Bakery:  &model.Category{ID: 2, Name: "Bakery", Description: "Fresh bread"},
		Produce: &model.Category{ID: 3, Name: "Produce", Description: "Fruit and vegetables"},
	}
	create(t, db, f.Dairy, f.Bakery, f.Produce)

	f.Milk = &model.Product{ID: 10, Name: "Whole Milk", Picture: "milk.png", CategoryID: 1}
	f.Butter = &model.Product{ID: 11, Name: "Butter 50%_off", Picture: "butter.png", CategoryID: 1}
	f.Bread = &model.Product{ID: 12, Name: "Rye Bread", Picture: "rye.png", CategoryID: 2}
	f.Bagel = &model.Product{ID: 13, Name: "Bagel", Picture: "bagel.png", CategoryID: 2}
	f.Apple = &model.Product{ID: 14, Name: "Gala Apple", Picture: "apple.png", CategoryID: 3}
	create(t, db, f.Milk, f.Butter, f.Bread, f.Bagel, f.Apple)

	f.ShopRite = &model.Merchant{ID: 1, Name: "ShopRite"}
	f.Whole = &model.Merchant{ID: 2, Name: "Whole Foods"}
	create(t, db, f.ShopRite, f.Whole)

	f.Hoboken = &model.Location{ID: 100, StreetNumber: "900", StreetName: "Clinton St", Zip: 7030, City: "Hoboken", State: "NJ", MerchantID: 1}
	f.JerseyCity = &model.Location{ID: 101, StreetNumber: "25", StreetName: "Hudson St", Zip: 7302, City: "Jersey City", State: "NJ", MerchantID: 1}
	f.Princeton = &model.Location{ID: 102, StreetNumber: "3495", StreetName: "Route 1", Zip: 8540, City: "Princeton", State: "NJ", MerchantID: 2}
	create(t, db, f.Hoboken, f.JerseyCity, f.Princeton)

	f.MilkHoboken = &model.Variant{ID: 1000, Units: 1, Weight: 3.8, Price: 4.29, ProductID: 10, LocationID: 100}
	f.MilkPrinceton = &model.Variant{ID: 1001, Units: 1, Weight: 3.8, Price: 5.49, ProductID: 10, LocationID: 102}
	f.BreadHoboken = &model.Variant{ID: 1002, Units: 1, Weight: 0.7, Price: 3.99, ProductID: 12, LocationID: 100}
	f.AppleJerseyCity = &model.Variant{ID: 1003, Units: 6, Weight: 1.2, Price: 2.5, ProductID: 14, LocationID: 101}
	create(t, db, f.MilkHoboken, f.MilkPrinceton, f.BreadHoboken, f.AppleJerseyCity)

	f.Alice = &model.User{ID: 1, Email: "alice@example.com", Password: "x", FirstName: "Alice"}
	f.Bob = &model.User{ID: 2, Email: "bob@example.com", Password: "x", FirstName: "Bob"}
	create(t, db, f.Alice, f.Bob)

	f.Weekly = &model.ProductList{ID: 50, Name: "Weekly", OwnerID: 1}
	f.Party = &model.ProductList{ID: 51, Name: "Party", OwnerID: 2}
	create(t, db, f.Weekly, f.Party)

	create(t, db,
		&model.ProductListItem{ID: 500, Quantity: 2, ProductID: 10, ProductListID: 50},
		&model.ProductListItem{ID: 501, Quantity: 1, ProductID: 12, ProductListID: 50},
		&model.ProductListItem{ID: 502, Quantity: 3, ProductID: 14, ProductListID: 50},
		&model.ProductListItem{ID: 503, Quantity: 1, ProductID: 13, ProductListID: 51},
	)

	return f
}

func create(t testing.TB, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
