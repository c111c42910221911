// internal/models/order.go
package models

import (
	"github.com/shopspring/decimal"
)

type Customer struct {
	BaseModel
	Email         string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	FirstName     string `json:"first_name" gorm:"size:100;not null"`
	LastName      string `json:"last_name" gorm:"size:100;not null"`
	Phone         string `json:"phone" gorm:"size:50"`
	IsActive      bool   `json:"is_active" gorm:"not null;index"`
	EmailVerified bool   `json:"email_verified" gorm:"not null"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

type Order struct {
	BaseModel
	OrderNumber    string          `json:"order_number" gorm:"size:50;uniqueIndex;not null"`
	CustomerID     int64           `json:"customer_id" gorm:"not null;index"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(20);not null;index"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(12,2);not null"`
	ShippingAmount decimal.Decimal `json:"shipping_amount" gorm:"type:decimal(12,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Currency       string          `json:"currency" gorm:"size:3;not null"`
	PaymentStatus  PaymentStatus   `json:"payment_status" gorm:"type:varchar(20);not null;index"`

	// Relationships
	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `json:"order_id" gorm:"not null;index"`
	ProductID  int64           `json:"product_id" gorm:"not null;index"`
	VariantID  *int64          `json:"variant_id" gorm:"index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
}
