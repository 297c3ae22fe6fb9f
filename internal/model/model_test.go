package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatZip(t *testing.T) {
	assert.Equal(t, "07030", FormatZip(7030))
	assert.Equal(t, "10001", FormatZip(10001))
	assert.Equal(t, "00000", FormatZip(0))
}

func TestLocationToMerchantResponse(t *testing.T) {
	loc := Location{
		ID:           4,
		StreetNumber: "12",
		StreetName:   "Main St",
		Zip:          7030,
		City:         "Hoboken",
		State:        "NJ",
		Merchant:     &Merchant{ID: 1, Name: "ShopRite"},
	}

	resp := loc.ToMerchantResponse()
	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, "ShopRite", resp.Name)
	assert.Equal(t, "12 Main St", resp.Location.Address)
	assert.Equal(t, "07030", resp.Location.Zip)

	loc.Merchant = nil
	assert.Equal(t, "", loc.ToMerchantResponse().Name)
}

func TestVariantToResponse(t *testing.T) {
	v := Variant{
		ID:         9,
		Units:      2,
		Weight:     1.5,
		Price:      3.99,
		ProductID:  3,
		LocationID: 4,
		Product:    &Product{ID: 3, Name: "Milk", Picture: "milk.png", CategoryID: 1},
	}

	resp := v.ToResponse()
	assert.Equal(t, uint(9), resp.ID)
	assert.Equal(t, uint(3), resp.ProductID)
	require.NotNil(t, resp.VariantID)
	assert.Equal(t, uint(9), *resp.VariantID)
	require.NotNil(t, resp.Price)
	assert.Equal(t, 3.99, *resp.Price)
	require.NotNil(t, resp.MerchantID)
	assert.Equal(t, uint(4), *resp.MerchantID)
	assert.Equal(t, "Milk", resp.Name)
	assert.Equal(t, uint(1), resp.CategoryID)

	// mutating the variant must not leak into the response
	v.Price = 5
	assert.Equal(t, 3.99, *resp.Price)
}

func TestVariantSnapshot(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := Variant{ID: 9, Units: 1, Weight: 2, Price: 3, ProductID: 4, LocationID: 5}

	h := v.Snapshot(7, ActionPriceUpdate, at)
	assert.Equal(t, VariantHistory{
		VariantID:  9,
		Revision:   7,
		Action:     ActionPriceUpdate,
		Timestamp:  at,
		Units:      1,
		Weight:     2,
		Price:      3,
		ProductID:  4,
		LocationID: 5,
	}, h)
}

func TestUserPassword(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, u.SetPassword("secret"))
	assert.NotEqual(t, "secret", u.Password)
	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.Equal(t, "Ada Lovelace", u.FullName())

	u.LastName = ""
	assert.Equal(t, "Ada", u.FullName())
}
