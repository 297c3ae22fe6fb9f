package filter

import (
	"strconv"

	"gorm.io/gorm/clause"
)

const zipDigits = 5

// ZipExpressions applies a string filter to an integer zip column as if the
// column held the zero padded five digit code. Prefix and suffix checks are
// turned into numeric range and modulo conditions so no dialect specific cast
// is needed. Input that is not a run of at most five digits matches nothing.
func (f *StringFilter) ZipExpressions(col clause.Column) []clause.Expression {
	if f.IsEmpty() {
		return nil
	}

	var exprs []clause.Expression
	if f.StartsWith != nil {
		p, ok := parseZipPart(*f.StartsWith)
		if !ok {
			return []clause.Expression{never}
		}
		if n := len(*f.StartsWith); n > 0 {
			span := pow10(zipDigits - n)
			exprs = append(exprs, clause.Expr{
				SQL:  "? BETWEEN ? AND ?",
				Vars: []interface{}{col, p * span, (p+1)*span - 1},
			})
		}
	}
	if f.EndsWith != nil {
		s, ok := parseZipPart(*f.EndsWith)
		if !ok {
			return []clause.Expression{never}
		}
		if n := len(*f.EndsWith); n > 0 {
			exprs = append(exprs, clause.Expr{
				SQL:  "? % ? = ?",
				Vars: []interface{}{col, pow10(n), s},
			})
		}
	}
	if f.Matches != nil {
		m, ok := parseZipPart(*f.Matches)
		if !ok || len(*f.Matches) != zipDigits {
			return []clause.Expression{never}
		}
		exprs = append(exprs, clause.Expr{SQL: "? = ?", Vars: []interface{}{col, m}})
	}
	return exprs
}

func parseZipPart(s string) (int, bool) {
	if len(s) > zipDigits {
		return 0, false
	}
	if s == "" {
		return 0, true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
