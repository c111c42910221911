// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name             string           `json:"name" gorm:"size:255;not null;index"`
	Description      string           `json:"description" gorm:"type:text"`
	ShortDescription string           `json:"short_description" gorm:"size:500"`
	SKU              string           `json:"sku" gorm:"size:100;uniqueIndex;not null"`
	Price            decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	ComparePrice     *decimal.Decimal `json:"compare_price" gorm:"type:decimal(10,2)"`
	CategoryID       *int64           `json:"category_id" gorm:"index"`
	BrandID          *int64           `json:"brand_id" gorm:"index"`
	IsActive         bool             `json:"is_active" gorm:"not null;index"`
	IsFeatured       bool             `json:"is_featured" gorm:"not null;index"`

	// Relationships
	Category   *Category          `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand      *Brand             `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Variants   []ProductVariant   `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	Images     []ProductImage     `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Attributes []ProductAttribute `json:"attributes,omitempty" gorm:"foreignKey:ProductID"`
}

type ProductVariant struct {
	ID            int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID     int64           `json:"product_id" gorm:"not null;index"`
	VariantName   string          `json:"variant_name" gorm:"size:255;not null"`
	SKU           string          `json:"sku" gorm:"size:100;uniqueIndex;not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null"`
	IsActive      bool            `json:"is_active" gorm:"not null"`
}

type ProductImage struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID int64  `json:"product_id" gorm:"not null;index"`
	ImageURL  string `json:"image_url" gorm:"size:500;not null"`
	AltText   string `json:"alt_text" gorm:"size:255"`
	IsPrimary bool   `json:"is_primary" gorm:"not null"`
	SortOrder int    `json:"sort_order" gorm:"not null"`
}

type ProductAttribute struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID      int64  `json:"product_id" gorm:"not null;index"`
	AttributeName  string `json:"attribute_name" gorm:"size:100;not null"`
	AttributeValue string `json:"attribute_value" gorm:"size:255;not null"`
}
