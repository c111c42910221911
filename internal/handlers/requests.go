// internal/handlers/requests.go
package handlers

import (
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

// PageQuery is embedded by every list request.
type PageQuery struct {
	Page  int `form:"page,default=1" validate:"min=1"`
	Limit int `form:"limit,default=10" validate:"min=1,max=100"`
}

type ProductListQuery struct {
	PageQuery
	Search     string `form:"search" validate:"max=100"`
	CategoryID int64  `form:"category_id" validate:"omitempty,min=1"`
	BrandID    int64  `form:"brand_id" validate:"omitempty,min=1"`
	Featured   string `form:"featured" validate:"tristate"`
	Sort       string `form:"sort" validate:"omitempty,oneof=created_at price name"`
	Order      string `form:"order" validate:"omitempty,oneof=asc desc"`
}

func (q ProductListQuery) Filter() query.ProductFilter {
	return query.ProductFilter{
		Search:     q.Search,
		CategoryID: optionalID(q.CategoryID),
		BrandID:    optionalID(q.BrandID),
		Featured:   utils.ParseTriState(q.Featured),
	}
}

func (q ProductListQuery) ProductSort() query.ProductSort {
	return query.ProductSort{Field: q.Sort, Order: q.Order}
}

type ProductSearchQuery struct {
	PageQuery
	Q string `form:"q" validate:"required,max=100"`
}

type CategoryListQuery struct {
	PageQuery
	Search   string `form:"search" validate:"max=100"`
	ParentID int64  `form:"parent_id" validate:"omitempty,min=1"`
}

func (q CategoryListQuery) Filter() query.CategoryFilter {
	return query.CategoryFilter{Search: q.Search, ParentID: optionalID(q.ParentID)}
}

type BrandListQuery struct {
	PageQuery
	Search string `form:"search" validate:"max=100"`
}

type OrderListQuery struct {
	PageQuery
	CustomerID    int64  `form:"customer_id" validate:"omitempty,min=1"`
	Status        string `form:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	PaymentStatus string `form:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
}

func (q OrderListQuery) Filter() query.OrderFilter {
	return query.OrderFilter{
		CustomerID:    optionalID(q.CustomerID),
		Status:        q.Status,
		PaymentStatus: q.PaymentStatus,
	}
}

type CustomerListQuery struct {
	PageQuery
	Search string `form:"search" validate:"max=100"`
}

// optionalID maps the zero value of an omitted query parameter to nil.
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
