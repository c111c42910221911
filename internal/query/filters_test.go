// internal/query/filters_test.go
package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func render(t *testing.T, conds []Condition) Statement {
	t.Helper()
	return From("t").Where(conds...).Build()
}

func TestProductFilter_Empty(t *testing.T) {
	conds, err := ProductFilter{}.Conditions()
	require.NoError(t, err)

	stmt := render(t, conds)
	assert.Equal(t, "SELECT * FROM t WHERE p.is_active = ?", stmt.SQL)
	assert.Equal(t, []interface{}{true}, stmt.Args)
}

func TestProductFilter_AllFilters(t *testing.T) {
	conds, err := ProductFilter{
		Search:     " Widget ",
		CategoryID: int64Ptr(2),
		BrandID:    int64Ptr(5),
		Featured:   boolPtr(false),
	}.Conditions()
	require.NoError(t, err)

	stmt := render(t, conds)
	expected := "SELECT * FROM t WHERE p.is_active = ? AND " +
		"(LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(c.name) LIKE ? OR LOWER(b.name) LIKE ?) AND " +
		"p.category_id = ? AND p.brand_id = ? AND p.is_featured = ?"
	assert.Equal(t, expected, stmt.SQL)
	assert.Equal(t, []interface{}{
		true, "%widget%", "%widget%", "%widget%", "%widget%", int64(2), int64(5), false,
	}, stmt.Args)
}

func TestProductFilter_FeaturedTriState(t *testing.T) {
	tests := []struct {
		name     string
		featured *bool
		want     []interface{}
	}{
		{"unset", nil, []interface{}{true}},
		{"true", boolPtr(true), []interface{}{true, true}},
		{"false", boolPtr(false), []interface{}{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds, err := ProductFilter{Featured: tt.featured}.Conditions()
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, conds).Args)
		})
	}
}

func TestProductFilter_RejectsNonPositiveIDs(t *testing.T) {
	_, err := ProductFilter{CategoryID: int64Ptr(0)}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)

	_, err = ProductFilter{BrandID: int64Ptr(-4)}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)
}

func TestCategoryFilter(t *testing.T) {
	conds, err := CategoryFilter{Search: "home", ParentID: int64Ptr(1)}.Conditions()
	require.NoError(t, err)

	stmt := render(t, conds)
	assert.Equal(t,
		"SELECT * FROM t WHERE c.is_active = ? AND (LOWER(c.name) LIKE ? OR LOWER(c.description) LIKE ?) AND c.parent_id = ?",
		stmt.SQL)
	assert.Equal(t, []interface{}{true, "%home%", "%home%", int64(1)}, stmt.Args)

	_, err = CategoryFilter{ParentID: int64Ptr(0)}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)
}

func TestBrandFilter(t *testing.T) {
	conds, err := BrandFilter{}.Conditions()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE b.is_active = ?", render(t, conds).SQL)
}

func TestOrderFilter(t *testing.T) {
	conds, err := OrderFilter{}.Conditions()
	require.NoError(t, err)
	assert.Empty(t, conds)

	conds, err = OrderFilter{CustomerID: int64Ptr(9), Status: "pending", PaymentStatus: "paid"}.Conditions()
	require.NoError(t, err)
	stmt := render(t, conds)
	assert.Equal(t, "SELECT * FROM t WHERE o.customer_id = ? AND o.status = ? AND o.payment_status = ?", stmt.SQL)
	assert.Equal(t, []interface{}{int64(9), "pending", "paid"}, stmt.Args)

	_, err = OrderFilter{Status: "lost"}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)

	_, err = OrderFilter{PaymentStatus: "maybe"}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)

	_, err = OrderFilter{CustomerID: int64Ptr(0)}.Conditions()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)
}

func TestCustomerFilter(t *testing.T) {
	conds, err := CustomerFilter{Search: "ann"}.Conditions()
	require.NoError(t, err)

	stmt := render(t, conds)
	assert.Equal(t,
		"SELECT * FROM t WHERE (LOWER(c.first_name) LIKE ? OR LOWER(c.last_name) LIKE ? OR LOWER(c.email) LIKE ?)",
		stmt.SQL)
	assert.Len(t, stmt.Args, 3)
}

func TestProductSort(t *testing.T) {
	order, err := ProductSort{}.OrderBy()
	require.NoError(t, err)
	assert.Equal(t, []string{"p.created_at DESC", "p.id DESC"}, order)

	order, err = ProductSort{Field: "price", Order: "asc"}.OrderBy()
	require.NoError(t, err)
	assert.Equal(t, []string{"p.price ASC", "p.id ASC"}, order)

	_, err = ProductSort{Field: "p.id; DROP TABLE products"}.OrderBy()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)

	_, err = ProductSort{Order: "sideways"}.OrderBy()
	assert.ErrorIs(t, err, ErrInvalidFilterValue)
}
