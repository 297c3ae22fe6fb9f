package model

import "time"

// Variant is a product's price point at one location (PRODUCTITEM table)
type Variant struct {
	ID         uint      `gorm:"column:Productitem_id;primaryKey" json:"id"`
	Units      int       `gorm:"column:Units" json:"units"`
	Weight     float64   `gorm:"column:Weight" json:"weight"`
	Price      float64   `gorm:"column:Price" json:"price"`
	ProductID  uint      `gorm:"column:Product_id;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	LocationID uint      `gorm:"column:Address_id;index" json:"location_id"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`

	Histories []VariantHistory `gorm:"foreignKey:VariantID" json:"histories,omitempty"`
}

func (Variant) TableName() string {
	return "PRODUCTITEM"
}

// History actions
const (
	ActionInsert      = "insert"
	ActionPriceUpdate = "price_update"
)

// VariantHistory is the append-only audit trail of a variant, keyed by (variant, revision)
type VariantHistory struct {
	VariantID  uint      `gorm:"column:Productitem_id;primaryKey;autoIncrement:false" json:"variant_id"`
	Revision   int       `gorm:"column:revision;primaryKey;autoIncrement:false" json:"revision"`
	Action     string    `gorm:"column:action;type:varchar(20)" json:"action"`
	Timestamp  time.Time `gorm:"column:dt_datetime" json:"timestamp"`
	Units      int       `gorm:"column:Units" json:"units"`
	Weight     float64   `gorm:"column:Weight" json:"weight"`
	Price      float64   `gorm:"column:Price" json:"price"`
	ProductID  uint      `gorm:"column:Product_id" json:"product_id"`
	LocationID uint      `gorm:"column:Address_id" json:"location_id"`
}

func (VariantHistory) TableName() string {
	return "PRODUCTITEM_HIST"
}

// ToResponse requires Product to be loaded.
func (v *Variant) ToResponse() ProductResponse {
	id := v.ID
	locationID := v.LocationID
	price := v.Price
	weight := v.Weight
	units := v.Units

	resp := ProductResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		VariantID:  &id,
		Price:      &price,
		Weight:     &weight,
		Units:      &units,
		MerchantID: &locationID,
	}
	if v.Product != nil {
		resp.Name = v.Product.Name
		resp.Picture = v.Product.Picture
		resp.CategoryID = v.Product.CategoryID
	}
	return resp
}

// Snapshot builds the history row recording the variant's current state.
func (v *Variant) Snapshot(revision int, action string, at time.Time) VariantHistory {
	return VariantHistory{
		VariantID:  v.ID,
		Revision:   revision,
		Action:     action,
		Timestamp:  at,
		Units:      v.Units,
		Weight:     v.Weight,
		Price:      v.Price,
		ProductID:  v.ProductID,
		LocationID: v.LocationID,
	}
}

// PriceRevisionResponse is one history entry served to clients
type PriceRevisionResponse struct {
	Revision  int       `json:"revision"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Weight    float64   `json:"weight"`
	Units     int       `json:"units"`
}

func (h *VariantHistory) ToResponse() PriceRevisionResponse {
	return PriceRevisionResponse{
		Revision:  h.Revision,
		Action:    h.Action,
		Timestamp: h.Timestamp,
		Price:     h.Price,
		Weight:    h.Weight,
		Units:     h.Units,
	}
}
