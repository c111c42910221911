// internal/query/filters.go
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilterValue is returned when an id-like filter is not a positive integer
// or an enumerated filter holds an unknown value.
var ErrInvalidFilterValue = errors.New("invalid filter value")

// ProductFilter holds the optional product list filters.
// Featured is tri-state: nil means no constraint.
type ProductFilter struct {
	Search     string
	CategoryID *int64
	BrandID    *int64
	Featured   *bool
}

// Conditions returns the product predicates in a fixed order:
// active flag, search, category, brand, featured.
func (f ProductFilter) Conditions() ([]Condition, error) {
	conds := []Condition{Eq("p.is_active", true)}

	if search := Contains(f.Search, "p.name", "p.description", "c.name", "b.name"); search != nil {
		conds = append(conds, search)
	}

	if f.CategoryID != nil {
		if err := positiveID("category_id", *f.CategoryID); err != nil {
			return nil, err
		}
		conds = append(conds, Eq("p.category_id", *f.CategoryID))
	}

	if f.BrandID != nil {
		if err := positiveID("brand_id", *f.BrandID); err != nil {
			return nil, err
		}
		conds = append(conds, Eq("p.brand_id", *f.BrandID))
	}

	if f.Featured != nil {
		conds = append(conds, Eq("p.is_featured", *f.Featured))
	}

	return conds, nil
}

// CategoryFilter holds the optional category list filters.
type CategoryFilter struct {
	Search   string
	ParentID *int64
}

func (f CategoryFilter) Conditions() ([]Condition, error) {
	conds := []Condition{Eq("c.is_active", true)}

	if search := Contains(f.Search, "c.name", "c.description"); search != nil {
		conds = append(conds, search)
	}

	if f.ParentID != nil {
		if err := positiveID("parent_id", *f.ParentID); err != nil {
			return nil, err
		}
		conds = append(conds, Eq("c.parent_id", *f.ParentID))
	}

	return conds, nil
}

// BrandFilter holds the optional brand list filters.
type BrandFilter struct {
	Search string
}

func (f BrandFilter) Conditions() ([]Condition, error) {
	conds := []Condition{Eq("b.is_active", true)}

	if search := Contains(f.Search, "b.name", "b.description"); search != nil {
		conds = append(conds, search)
	}

	return conds, nil
}

// OrderFilter holds the optional order list filters.
type OrderFilter struct {
	CustomerID    *int64
	Status        string
	PaymentStatus string
}

var (
	orderStatuses   = []string{"pending", "processing", "shipped", "delivered", "cancelled", "refunded"}
	paymentStatuses = []string{"pending", "paid", "failed", "refunded"}
)

func (f OrderFilter) Conditions() ([]Condition, error) {
	var conds []Condition

	if f.CustomerID != nil {
		if err := positiveID("customer_id", *f.CustomerID); err != nil {
			return nil, err
		}
		conds = append(conds, Eq("o.customer_id", *f.CustomerID))
	}

	if f.Status != "" {
		if !oneOf(f.Status, orderStatuses) {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidFilterValue, f.Status)
		}
		conds = append(conds, Eq("o.status", f.Status))
	}

	if f.PaymentStatus != "" {
		if !oneOf(f.PaymentStatus, paymentStatuses) {
			return nil, fmt.Errorf("%w: payment_status %q", ErrInvalidFilterValue, f.PaymentStatus)
		}
		conds = append(conds, Eq("o.payment_status", f.PaymentStatus))
	}

	return conds, nil
}

// CustomerFilter holds the optional customer list filters.
type CustomerFilter struct {
	Search string
}

func (f CustomerFilter) Conditions() ([]Condition, error) {
	var conds []Condition

	if search := Contains(f.Search, "c.first_name", "c.last_name", "c.email"); search != nil {
		conds = append(conds, search)
	}

	return conds, nil
}

// ProductSort selects the product list ordering.
type ProductSort struct {
	Field string
	Order string
}

var productSortColumns = map[string]string{
	"created_at": "p.created_at",
	"price":      "p.price",
	"name":       "p.name",
}

// OrderBy returns whitelisted ORDER BY expressions, always ending with the
// primary key so equal sort values page deterministically.
func (s ProductSort) OrderBy() ([]string, error) {
	field := s.Field
	if field == "" {
		field = "created_at"
	}
	column, ok := productSortColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: sort %q", ErrInvalidFilterValue, s.Field)
	}

	dir := strings.ToUpper(s.Order)
	switch dir {
	case "":
		dir = "DESC"
	case "ASC", "DESC":
	default:
		return nil, fmt.Errorf("%w: order %q", ErrInvalidFilterValue, s.Order)
	}

	return []string{column + " " + dir, "p.id " + dir}, nil
}

func positiveID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidFilterValue, name)
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
