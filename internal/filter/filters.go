package filter

// CategoryFilter narrows the categories query.
type CategoryFilter struct {
	ID          *uint
	Name        *StringFilter
	Description *StringFilter
}

func (f *CategoryFilter) IsEmpty() bool {
	return f == nil || (f.ID == nil && f.Name.IsEmpty() && f.Description.IsEmpty())
}

// ProductFilter narrows any products field. CategoryID wins over Category
// when both are given.
type ProductFilter struct {
	ID         *uint
	Name       *StringFilter
	CategoryID *uint
	Category   *StringFilter
}

func (f *ProductFilter) IsEmpty() bool {
	return f == nil || (f.ID == nil && f.Name.IsEmpty() && f.CategoryID == nil && f.Category.IsEmpty())
}

// NeedsCategoryLookup reports whether the category name filter has to be
// resolved to category ids before products can be queried.
func (f *ProductFilter) NeedsCategoryLookup() bool {
	return f != nil && f.CategoryID == nil && !f.Category.IsEmpty()
}

// LocationFilter narrows merchants by address. Address applies to the street name.
type LocationFilter struct {
	Address *StringFilter
	City    *StringFilter
	State   *StringFilter
	Zip     *StringFilter
}

func (f *LocationFilter) IsEmpty() bool {
	return f == nil || (f.Address.IsEmpty() && f.City.IsEmpty() && f.State.IsEmpty() && f.Zip.IsEmpty())
}

// MerchantFilter narrows the merchants query. ID is a location id.
type MerchantFilter struct {
	ID       *uint
	Name     *StringFilter
	Location *LocationFilter
}

func (f *MerchantFilter) IsEmpty() bool {
	return f == nil || (f.ID == nil && f.Name.IsEmpty() && f.Location.IsEmpty())
}

// ListFilter selects a single list: by id, else owner, else name.
type ListFilter struct {
	ID     *uint
	UserID *uint
	Name   *string
}

func (f *ListFilter) IsEmpty() bool {
	return f == nil || (f.ID == nil && f.UserID == nil && f.Name == nil)
}
