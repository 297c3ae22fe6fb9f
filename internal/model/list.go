package model

// ProductList is a user's saved shopping list (PRODUCTLIST table)
type ProductList struct {
	ID      uint              `gorm:"column:List_id;primaryKey" json:"id"`
	Name    string            `gorm:"column:List_name;type:varchar(255);index" json:"name"`
	OwnerID uint              `gorm:"column:User_id;index" json:"owner_id"`
	Owner   *User             `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Items   []ProductListItem `gorm:"foreignKey:ProductListID" json:"items,omitempty"`
}

func (ProductList) TableName() string {
	return "PRODUCTLIST"
}

// ProductListItem is one product on a list (PRODUCTLISTITEM table). A product
// appears at most once per list.
type ProductListItem struct {
	ID            uint     `gorm:"column:Listitem_id;primaryKey" json:"id"`
	Quantity      int      `gorm:"column:Quantity;default:1" json:"quantity"`
	ProductID     uint     `gorm:"column:Product_id;index;uniqueIndex:idx_list_product,priority:2" json:"product_id"`
	Product       *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductListID uint     `gorm:"column:List_id;uniqueIndex:idx_list_product,priority:1" json:"product_list_id"`
}

func (ProductListItem) TableName() string {
	return "PRODUCTLISTITEM"
}

type ListResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}

func (l *ProductList) ToResponse() ListResponse {
	return ListResponse{
		ID:      l.ID,
		Name:    l.Name,
		OwnerID: l.OwnerID,
	}
}
