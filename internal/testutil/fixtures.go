// internal/testutil/fixtures.go
package testutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
)

// BaseTime is the creation time of the first fixture row; helpers that take
// an ordinal offset it by that many minutes.
var BaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func At(minutes int) time.Time {
	return BaseTime.Add(time.Duration(minutes) * time.Minute)
}

func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func CreateCategory(t *testing.T, db *gorm.DB, name string, active bool) *models.Category {
	t.Helper()

	category := &models.Category{
		BaseModel:   models.BaseModel{CreatedAt: BaseTime, UpdatedAt: BaseTime},
		Name:        name,
		Description: name + " department",
		IsActive:    active,
	}
	require.NoError(t, db.Create(category).Error, "failed to create category")
	return category
}

func CreateBrand(t *testing.T, db *gorm.DB, name string, active bool) *models.Brand {
	t.Helper()

	brand := &models.Brand{
		BaseModel:   models.BaseModel{CreatedAt: BaseTime, UpdatedAt: BaseTime},
		Name:        name,
		Description: name + " brand",
		LogoURL:     "https://cdn.example.com/" + name + ".png",
		Website:     "https://" + name + ".example.com",
		IsActive:    active,
	}
	require.NoError(t, db.Create(brand).Error, "failed to create brand")
	return brand
}

// CreateProduct inserts p, filling SKU, price and timestamps when unset.
func CreateProduct(t *testing.T, db *gorm.DB, p models.Product) *models.Product {
	t.Helper()

	if p.SKU == "" {
		p.SKU = "SKU-" + uuid.NewString()
	}
	if p.Price.IsZero() {
		p.Price = Price("19.99")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = BaseTime
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	require.NoError(t, db.Create(&p).Error, "failed to create product")
	return &p
}

// CreateActiveProducts inserts n active products named prefix-1..prefix-n,
// each one minute newer than the previous.
func CreateActiveProducts(t *testing.T, db *gorm.DB, prefix string, n int) []*models.Product {
	t.Helper()

	out := make([]*models.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, CreateProduct(t, db, models.Product{
			BaseModel: models.BaseModel{CreatedAt: At(i)},
			Name:      prefixName(prefix, i),
			IsActive:  true,
		}))
	}
	return out
}

func CreateVariant(t *testing.T, db *gorm.DB, productID int64, name string, stock int, active bool) *models.ProductVariant {
	t.Helper()

	variant := &models.ProductVariant{
		ProductID:     productID,
		VariantName:   name,
		SKU:           "VAR-" + uuid.NewString(),
		Price:         Price("24.50"),
		StockQuantity: stock,
		IsActive:      active,
	}
	require.NoError(t, db.Create(variant).Error, "failed to create variant")
	return variant
}

func CreateImage(t *testing.T, db *gorm.DB, productID int64, url string, sortOrder int, primary bool) *models.ProductImage {
	t.Helper()

	image := &models.ProductImage{
		ProductID: productID,
		ImageURL:  url,
		AltText:   "image of product",
		IsPrimary: primary,
		SortOrder: sortOrder,
	}
	require.NoError(t, db.Create(image).Error, "failed to create image")
	return image
}

func CreateAttribute(t *testing.T, db *gorm.DB, productID int64, name, value string) *models.ProductAttribute {
	t.Helper()

	attr := &models.ProductAttribute{
		ProductID:      productID,
		AttributeName:  name,
		AttributeValue: value,
	}
	require.NoError(t, db.Create(attr).Error, "failed to create attribute")
	return attr
}

func CreateCustomer(t *testing.T, db *gorm.DB, first, last, email string, createdAt time.Time) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		BaseModel:     models.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
		Email:         email,
		FirstName:     first,
		LastName:      last,
		Phone:         "+1-555-0100",
		IsActive:      true,
		EmailVerified: true,
	}
	require.NoError(t, db.Create(customer).Error, "failed to create customer")
	return customer
}

// CreateOrder inserts an order whose subtotal equals total with no tax or shipping.
func CreateOrder(t *testing.T, db *gorm.DB, customerID int64, number string, total string,
	status models.OrderStatus, payment models.PaymentStatus, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		BaseModel:      models.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
		OrderNumber:    number,
		CustomerID:     customerID,
		Status:         status,
		Subtotal:       Price(total),
		TaxAmount:      decimal.Zero,
		ShippingAmount: decimal.Zero,
		TotalAmount:    Price(total),
		Currency:       "USD",
		PaymentStatus:  payment,
	}
	require.NoError(t, db.Create(order).Error, "failed to create order")
	return order
}

func CreateOrderItem(t *testing.T, db *gorm.DB, orderID, productID int64, variantID *int64, qty int, unit string) *models.OrderItem {
	t.Helper()

	unitPrice := Price(unit)
	item := &models.OrderItem{
		OrderID:    orderID,
		ProductID:  productID,
		VariantID:  variantID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
	require.NoError(t, db.Create(item).Error, "failed to create order item")
	return item
}

func prefixName(prefix string, i int) string {
	return prefix + "-" + strconv.Itoa(i)
}
