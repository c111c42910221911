// internal/models/views.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models returned by the services. List rows carry derived aggregates;
// detail records carry their owned collections, never nil.

type ProductSummary struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	SKU              string           `json:"sku"`
	Price            decimal.Decimal  `json:"price"`
	ComparePrice     *decimal.Decimal `json:"compare_price"`
	CategoryID       *int64           `json:"category_id"`
	CategoryName     *string          `json:"category_name"`
	BrandID          *int64           `json:"brand_id"`
	BrandName        *string          `json:"brand_name"`
	IsActive         bool             `json:"is_active"`
	IsFeatured       bool             `json:"is_featured"`
	VariantCount     int64            `json:"variant_count"`
	TotalStock       int64            `json:"total_stock"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type ProductDetail struct {
	ProductSummary
	Variants   []VariantView   `json:"variants"`
	Images     []ImageView     `json:"images"`
	Attributes []AttributeView `json:"attributes"`
}

type VariantView struct {
	ID            int64           `json:"id"`
	VariantName   string          `json:"variant_name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

type ImageView struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type AttributeView struct {
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
}

type CategoryView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ParentID     *int64    `json:"parent_id"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BrandView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	Website      string `json:"website"`
	ProductCount int64  `json:"product_count"`
}

type OrderSummary struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerID     int64           `json:"customer_id"`
	Status         OrderStatus     `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Currency       string          `json:"currency"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type OrderDetail struct {
	OrderSummary
	Items []OrderItemView `json:"items"`
}

type OrderItemView struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName *string         `json:"product_name"`
	VariantID   *int64          `json:"variant_id"`
	VariantName *string         `json:"variant_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type CustomerSummary struct {
	ID            int64           `json:"id"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Phone         string          `json:"phone"`
	IsActive      bool            `json:"is_active"`
	EmailVerified bool            `json:"email_verified"`
	TotalOrders   int64           `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	CreatedAt     time.Time       `json:"created_at"`
}

type DashboardStats struct {
	TotalProducts    int64           `json:"total_products"`
	TotalCategories  int64           `json:"total_categories"`
	TotalBrands      int64           `json:"total_brands"`
	TotalCustomers   int64           `json:"total_customers"`
	TotalOrders      int64           `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PendingOrders    int64           `json:"pending_orders"`
	FeaturedProducts int64           `json:"featured_products"`
}
