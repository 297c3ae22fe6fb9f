// Package filter holds the composite filter arguments accepted by the
// GraphQL surface and turns them into gorm conditions.
package filter

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscape is the escape character used in generated LIKE patterns.
// It is passed as a literal so the same SQL works on MySQL, PostgreSQL and SQLite.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// StringFilter matches a text column by prefix, suffix or exact value.
// Every predicate that is set must hold.
type StringFilter struct {
	StartsWith *string
	EndsWith   *string
	Matches    *string
}

func (f *StringFilter) IsEmpty() bool {
	return f == nil || (f.StartsWith == nil && f.EndsWith == nil && f.Matches == nil)
}

// Expressions returns one condition per predicate, applied to col.
func (f *StringFilter) Expressions(col clause.Column) []clause.Expression {
	if f.IsEmpty() {
		return nil
	}

	var exprs []clause.Expression
	if f.StartsWith != nil {
		exprs = append(exprs, like(col, likeEscaper.Replace(*f.StartsWith)+"%"))
	}
	if f.EndsWith != nil {
		exprs = append(exprs, like(col, "%"+likeEscaper.Replace(*f.EndsWith)))
	}
	if f.Matches != nil {
		exprs = append(exprs, clause.Expr{SQL: "? = ?", Vars: []interface{}{col, *f.Matches}})
	}
	return exprs
}

// Scope adds the filter's conditions on col to a query.
func (f *StringFilter) Scope(col clause.Column) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, expr := range f.Expressions(col) {
			db = db.Where(expr)
		}
		return db
	}
}

// Match evaluates the filter against a value in memory.
func (f *StringFilter) Match(value string) bool {
	if f.IsEmpty() {
		return true
	}
	if f.StartsWith != nil && !strings.HasPrefix(value, *f.StartsWith) {
		return false
	}
	if f.EndsWith != nil && !strings.HasSuffix(value, *f.EndsWith) {
		return false
	}
	if f.Matches != nil && value != *f.Matches {
		return false
	}
	return true
}

func like(col clause.Column, pattern string) clause.Expression {
	return clause.Expr{
		SQL:  "? LIKE ? ESCAPE '" + likeEscape + "'",
		Vars: []interface{}{col, pattern},
	}
}

// never is a condition no row satisfies.
var never = clause.Expr{SQL: "1 = 0"}
