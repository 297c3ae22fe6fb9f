package service

import "fmt"

type ScopeKind int

const (
	ScopeRoot ScopeKind = iota
	ScopeMerchant
	ScopeCategory
	ScopeList
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeRoot:
		return "root"
	case ScopeMerchant:
		return "merchant"
	case ScopeCategory:
		return "category"
	case ScopeList:
		return "list"
	default:
		return fmt.Sprintf("scope(%d)", int(k))
	}
}

// Scope is the parent a products field is resolved under. ParentID is a
// location id for ScopeMerchant, a category id for ScopeCategory and a list
// id for ScopeList.
type Scope struct {
	Kind     ScopeKind
	ParentID uint
}

func RootScope() Scope { return Scope{Kind: ScopeRoot} }

func MerchantScope(locationID uint) Scope { return Scope{Kind: ScopeMerchant, ParentID: locationID} }

func CategoryScope(categoryID uint) Scope { return Scope{Kind: ScopeCategory, ParentID: categoryID} }

func ListScope(listID uint) Scope { return Scope{Kind: ScopeList, ParentID: listID} }
