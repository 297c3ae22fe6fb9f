package model

// Category groups products (CATEGORY table).
type Category struct {
	ID          uint      `gorm:"column:Category_id;primaryKey" json:"id"`
	Name        string    `gorm:"column:Category_Name;type:varchar(255);uniqueIndex" json:"name"`
	Description string    `gorm:"column:Category_Description;type:text" json:"description"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "CATEGORY"
}

// CategoryResponse is the GraphQL shape of a category
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
