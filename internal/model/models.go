package model

// All lists every table model, in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&Merchant{},
		&Location{},
		&Variant{},
		&VariantHistory{},
		&User{},
		&ProductList{},
		&ProductListItem{},
	}
}
