package model

import (
	"fmt"
	"strings"
)

// Merchant is a retailer (STORE table) owning one or more locations
type Merchant struct {
	ID        uint       `gorm:"column:store_id;primaryKey" json:"id"`
	Name      string     `gorm:"column:store_name;type:varchar(255);uniqueIndex" json:"name"`
	Locations []Location `gorm:"foreignKey:MerchantID" json:"locations,omitempty"`
}

func (Merchant) TableName() string {
	return "STORE"
}

// Location is a single store address (STORELOCATION table)
type Location struct {
	ID           uint      `gorm:"column:Address_id;primaryKey" json:"id"`
	StreetNumber string    `gorm:"column:Address_1;type:varchar(255)" json:"street_number"`
	StreetName   string    `gorm:"column:Address_2;type:varchar(255)" json:"street_name"`
	Zip          int       `gorm:"column:zip_code" json:"zip"`
	City         string    `gorm:"column:city;type:varchar(255)" json:"city"`
	State        string    `gorm:"column:state;type:varchar(255)" json:"state"`
	MerchantID   uint      `gorm:"column:store_id;index" json:"merchant_id"`
	Merchant     *Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`

	Variants []Variant `gorm:"foreignKey:LocationID" json:"variants,omitempty"`
}

func (Location) TableName() string {
	return "STORELOCATION"
}

// LocationResponse is the flattened address served to clients
type LocationResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// MerchantResponse is one store location of a merchant. ID is the location id.
type MerchantResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Location LocationResponse `json:"location"`
}

// FormatZip renders a zip code with its leading zeros (e.g. 07030).
func FormatZip(zip int) string {
	return fmt.Sprintf("%05d", zip)
}

func (l *Location) ToResponse() LocationResponse {
	return LocationResponse{
		Address: strings.TrimSpace(l.StreetNumber + " " + l.StreetName),
		City:    l.City,
		State:   l.State,
		Zip:     FormatZip(l.Zip),
	}
}

// ToMerchantResponse requires Merchant to be loaded.
func (l *Location) ToMerchantResponse() MerchantResponse {
	name := ""
	if l.Merchant != nil {
		name = l.Merchant.Name
	}
	return MerchantResponse{
		ID:       l.ID,
		Name:     name,
		Location: l.ToResponse(),
	}
}
