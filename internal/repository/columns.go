package repository

import "gorm.io/gorm/clause"

// Legacy column names are mixed case, so every condition goes through
// clause.Column to get dialect correct quoting.
func col(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// Table names, and the aliases gorm gives joined belongs-to relations.
const (
	tableCategory  = "CATEGORY"
	tableProduct   = "PRODUCT"
	tableLocation  = "STORELOCATION"
	tableVariant   = "PRODUCTITEM"
	tableHistory   = "PRODUCTITEM_HIST"
	tableList      = "PRODUCTLIST"
	tableListItem  = "PRODUCTLISTITEM"
	joinedProduct  = "Product"
	joinedMerchant = "Merchant"
)

func asc(c clause.Column) clause.OrderByColumn {
	return clause.OrderByColumn{Column: c}
}

func uintValues(ids []uint) []interface{} {
	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return values
}
