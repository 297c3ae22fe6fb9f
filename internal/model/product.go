package model

type Product struct {
	ID         uint      `gorm:"column:Product_id;primaryKey" json:"id"`
	Name       string    `gorm:"column:Product_name;type:varchar(255);uniqueIndex" json:"name"`
	Picture    string    `gorm:"column:Picture;type:varchar(255)" json:"picture"`
	CategoryID uint      `gorm:"column:Category_id;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// Relasi
	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "PRODUCT"
}

// ProductResponse is the GraphQL shape of a product.
// ID is the variant id when the product was resolved at a merchant,
// otherwise the product id. ProductID always holds the product id.
type ProductResponse struct {
	ID         uint     `json:"id"`
	ProductID  uint     `json:"product_id"`
	VariantID  *uint    `json:"variant_id,omitempty"`
	Name       string   `json:"name"`
	Picture    string   `json:"picture"`
	Price      *float64 `json:"price,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Units      *int     `json:"units,omitempty"`
	CategoryID uint     `json:"category_id"`
	MerchantID *uint    `json:"merchant_id,omitempty"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		ProductID:  p.ID,
		Name:       p.Name,
		Picture:    p.Picture,
		CategoryID: p.CategoryID,
	}
}
