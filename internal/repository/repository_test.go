package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"grover-graphql/internal/filter"
	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
	"grover-graphql/internal/testutil"
)

var (
	str = testutil.Ptr[string]
	id  = testutil.Ptr[uint]
)

func setup(t *testing.T) (*gorm.DB, *testutil.Fixtures) {
	t.Helper()
	db := testutil.NewDB(t)
	return db, testutil.Seed(t, db)
}

func productIDs(products []model.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCategoryRepoFind(t *testing.T) {
	db, _ := setup(t)
	repo := repository.NewCategoryRepo(db)
	ctx := context.Background()

	all, err := repo.Find(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := repo.Find(ctx, &filter.CategoryFilter{Name: &filter.StringFilter{EndsWith: str("ry")}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Dairy", got[0].Name)
	assert.Equal(t, "Bakery", got[1].Name)

	got, err = repo.Find(ctx, &filter.CategoryFilter{
		Name:        &filter.StringFilter{EndsWith: str("ry")},
		Description: &filter.StringFilter{StartsWith: str("Fresh")},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bakery", got[0].Name)

	got, err = repo.Find(ctx, &filter.CategoryFilter{ID: id(3)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Produce", got[0].Name)
}

func TestCategoryRepoFindByID(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewCategoryRepo(db)

	c, err := repo.FindByID(context.Background(), f.Bakery.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakery", c.Name)

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepoFindIDsByName(t *testing.T) {
	db, _ := setup(t)
	repo := repository.NewCategoryRepo(db)

	ids, err := repo.FindIDsByName(context.Background(), &filter.StringFilter{StartsWith: str("Ba")})
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)

	ids, err = repo.FindIDsByName(context.Background(), &filter.StringFilter{Matches: str("Frozen")})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProductRepoSearch(t *testing.T) {
	db, _ := setup(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	all, err := repo.Search(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11, 12, 13, 14}, productIDs(all))

	got, err := repo.Search(ctx, &filter.ProductFilter{CategoryID: id(2)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{12, 13}, productIDs(got))

	got, err = repo.Search(ctx, &filter.ProductFilter{Name: &filter.StringFilter{StartsWith: str("B")}}, []uint{2})
	require.NoError(t, err)
	assert.Equal(t, []uint{13}, productIDs(got))

	got, err = repo.Search(ctx, &filter.ProductFilter{ID: id(14)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{14}, productIDs(got))
}

func TestProductRepoFindInCategoryIntersects(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	got, err := repo.FindInCategory(ctx, f.Dairy.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, productIDs(got))

	// a filter naming another category cannot widen the parent category
	got, err = repo.FindInCategory(ctx, f.Dairy.ID, &filter.ProductFilter{CategoryID: id(2)}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.FindInCategory(ctx, f.Dairy.ID, nil, []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, productIDs(got))
}

func TestProductRepoFindAtLocation(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	variants, err := repo.FindAtLocation(ctx, f.Hoboken.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, uint(1000), variants[0].ID)
	require.NotNil(t, variants[0].Product)
	assert.Equal(t, "Whole Milk", variants[0].Product.Name)
	assert.Equal(t, 4.29, variants[0].Price)
	assert.Equal(t, "Rye Bread", variants[1].Product.Name)

	variants, err = repo.FindAtLocation(ctx, f.Hoboken.ID, &filter.ProductFilter{Name: &filter.StringFilter{EndsWith: str("Bread")}}, nil)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, uint(1002), variants[0].ID)

	variants, err = repo.FindAtLocation(ctx, f.Hoboken.ID, nil, []uint{f.Dairy.ID})
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, uint(10), variants[0].ProductID)

	variants, err = repo.FindAtLocation(ctx, f.Hoboken.ID, &filter.ProductFilter{ID: id(f.Apple.ID)}, nil)
	require.NoError(t, err)
	assert.Empty(t, variants)
}

func TestProductRepoFindInList(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	items, err := repo.FindInList(ctx, f.Weekly.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Whole Milk", items[0].Product.Name)
	assert.Equal(t, 2, items[0].Quantity)

	items, err = repo.FindInList(ctx, f.Weekly.ID, &filter.ProductFilter{CategoryID: id(f.Produce.ID)}, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gala Apple", items[0].Product.Name)

	items, err = repo.FindInList(ctx, 999, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMerchantRepoFindLocations(t *testing.T) {
	db, _ := setup(t)
	repo := repository.NewMerchantRepo(db)
	ctx := context.Background()

	all, err := repo.FindLocations(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[0].Merchant)
	assert.Equal(t, "ShopRite", all[0].Merchant.Name)
	assert.Equal(t, "Whole Foods", all[2].Merchant.Name)

	got, err := repo.FindLocations(ctx, &filter.MerchantFilter{Name: &filter.StringFilter{Matches: str("ShopRite")}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindLocations(ctx, &filter.MerchantFilter{Location: &filter.LocationFilter{
		City: &filter.StringFilter{StartsWith: str("Jersey")},
	}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(101), got[0].ID)

	got, err = repo.FindLocations(ctx, &filter.MerchantFilter{
		Name:     &filter.StringFilter{Matches: str("ShopRite")},
		Location: &filter.LocationFilter{Zip: &filter.StringFilter{StartsWith: str("085")}},
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.FindLocations(ctx, &filter.MerchantFilter{Location: &filter.LocationFilter{
		Address: &filter.StringFilter{EndsWith: str("Route 1")},
	}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Whole Foods", got[0].Merchant.Name)
}

func TestMerchantRepoFindLocationByID(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewMerchantRepo(db)

	loc, err := repo.FindLocationByID(context.Background(), f.Princeton.ID)
	require.NoError(t, err)
	assert.Equal(t, "Princeton", loc.City)
	require.NotNil(t, loc.Merchant)
	assert.Equal(t, "Whole Foods", loc.Merchant.Name)

	_, err = repo.FindLocationByID(context.Background(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMerchantRepoFindLocationsForProduct(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewMerchantRepo(db)

	locs, err := repo.FindLocationsForProduct(context.Background(), f.Milk.ID, nil)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, uint(100), locs[0].ID)
	assert.Equal(t, uint(102), locs[1].ID)
	assert.Equal(t, "Whole Foods", locs[1].Merchant.Name)

	locs, err = repo.FindLocationsForProduct(context.Background(), f.Milk.ID, &filter.MerchantFilter{
		Name: &filter.StringFilter{StartsWith: str("whole")},
	})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, uint(102), locs[0].ID)

	locs, err = repo.FindLocationsForProduct(context.Background(), f.Milk.ID, &filter.MerchantFilter{
		Location: &filter.LocationFilter{Zip: &filter.StringFilter{StartsWith: str("070")}},
	})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, uint(100), locs[0].ID)

	locs, err = repo.FindLocationsForProduct(context.Background(), f.Bagel.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestVariantRepoUpdatePriceAppendsHistory(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewVariantRepo(db)
	ctx := context.Background()

	v, err := repo.UpdatePrice(ctx, f.MilkHoboken.ID, 3.99)
	require.NoError(t, err)
	assert.Equal(t, 3.99, v.Price)
	require.NotNil(t, v.Product)
	assert.Equal(t, "Whole Milk", v.Product.Name)

	_, err = repo.UpdatePrice(ctx, f.MilkHoboken.ID, 3.49)
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, f.MilkHoboken.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.49, stored.Price)

	history, err := repo.History(ctx, f.MilkHoboken.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Revision)
	assert.Equal(t, 3.99, history[0].Price)
	assert.Equal(t, 2, history[1].Revision)
	assert.Equal(t, 3.49, history[1].Price)
	assert.Equal(t, model.ActionPriceUpdate, history[1].Action)
	assert.Equal(t, f.Hoboken.ID, history[1].LocationID)

	// revisions are per variant
	_, err = repo.UpdatePrice(ctx, f.MilkPrinceton.ID, 5.00)
	require.NoError(t, err)
	history, err = repo.History(ctx, f.MilkPrinceton.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Revision)
}

func TestVariantRepoUpdatePriceMissing(t *testing.T) {
	db, _ := setup(t)
	repo := repository.NewVariantRepo(db)

	_, err := repo.UpdatePrice(context.Background(), 4242, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&model.VariantHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListRepoLookups(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewListRepo(db)
	ctx := context.Background()

	l, err := repo.FindByID(ctx, f.Party.ID)
	require.NoError(t, err)
	assert.Equal(t, "Party", l.Name)

	l, err = repo.FindByOwner(ctx, f.Alice.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Weekly.ID, l.ID)

	l, err = repo.FindByName(ctx, "Party")
	require.NoError(t, err)
	assert.Equal(t, f.Bob.ID, l.OwnerID)

	_, err = repo.FindByName(ctx, "Nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListRepoAddItem(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewListRepo(db)
	ctx := context.Background()

	item, err := repo.AddItem(ctx, f.Party.ID, f.Milk.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.NotZero(t, item.ID)

	again, err := repo.AddItem(ctx, f.Party.ID, f.Milk.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, again.ID)
	assert.Equal(t, 2, again.Quantity)

	var count int64
	require.NoError(t, db.Model(&model.ProductListItem{}).Where(&model.ProductListItem{ProductListID: f.Party.ID}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestListRepoAddItemConcurrently(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewListRepo(db)
	assert.True(t, db.Migrator().HasIndex(&model.ProductListItem{}, "idx_list_product"))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddItem(context.Background(), f.Party.ID, f.Bread.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var items []model.ProductListItem
	require.NoError(t, db.Where(&model.ProductListItem{ProductListID: f.Party.ID, ProductID: f.Bread.ID}).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	dup := model.ProductListItem{Quantity: 1, ProductID: f.Bread.ID, ProductListID: f.Party.ID}
	assert.Error(t, db.Create(&dup).Error)
}

func TestUserRepo(t *testing.T) {
	db, f := setup(t)
	repo := repository.NewUserRepo(db)

	u, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.Alice.ID, u.ID)

	require.NoError(t, repo.UpdatePassword(u.ID, "hashed"))
	u, err = repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed", u.Password)

	carol := &model.User{Email: "carol@example.com", FirstName: "Carol"}
	require.NoError(t, carol.SetPassword("pw"))
	require.NoError(t, repo.Create(carol))
	assert.NotZero(t, carol.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
