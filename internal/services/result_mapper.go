// internal/services/result_mapper.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/javajoker/ecom-backend/internal/models"
)

// flexBool decodes JSON booleans and the 0/1 integers that MySQL and SQLite
// emit for boolean columns inside JSON objects.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

type imageElem struct {
	ID        int64    `json:"id"`
	ImageURL  string   `json:"image_url"`
	AltText   *string  `json:"alt_text"`
	IsPrimary flexBool `json:"is_primary"`
	SortOrder int      `json:"sort_order"`
}

type attributeElem struct {
	ID             int64  `json:"id"`
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
}

// decodeArray parses a serialized JSON array. Absent, empty and JSON null
// sources all yield an empty, non-nil slice.
func decodeArray[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

type productDetailRow struct {
	models.ProductSummary
	Variants   []byte
	Images     []byte
	Attributes []byte
}

func mapProductDetail(row productDetailRow) (*models.ProductDetail, error) {
	variants, err := decodeArray[models.VariantView](row.Variants)
	if err != nil {
		return nil, fmt.Errorf("variants: %w", err)
	}
	sort.SliceStable(variants, func(i, j int) bool { return variants[i].ID < variants[j].ID })

	elems, err := decodeArray[imageElem](row.Images)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	// Aggregate functions do not guarantee element order.
	sort.SliceStable(elems, func(i, j int) bool {
		if elems[i].SortOrder != elems[j].SortOrder {
			return elems[i].SortOrder < elems[j].SortOrder
		}
		return elems[i].ID < elems[j].ID
	})
	images := make([]models.ImageView, 0, len(elems))
	for _, e := range elems {
		img := models.ImageView{
			ID:        e.ID,
			ImageURL:  e.ImageURL,
			IsPrimary: bool(e.IsPrimary),
			SortOrder: e.SortOrder,
		}
		if e.AltText != nil {
			img.AltText = *e.AltText
		}
		images = append(images, img)
	}

	attrs, err := decodeArray[attributeElem](row.Attributes)
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].ID < attrs[j].ID })
	attributes := make([]models.AttributeView, 0, len(attrs))
	for _, a := range attrs {
		attributes = append(attributes, models.AttributeView{
			AttributeName:  a.AttributeName,
			AttributeValue: a.AttributeValue,
		})
	}

	return &models.ProductDetail{
		ProductSummary: row.ProductSummary,
		Variants:       variants,
		Images:         images,
		Attributes:     attributes,
	}, nil
}

// orderRow serves both the list and the detail query; Items stays nil
// when the statement does not select it.
type orderRow struct {
	models.OrderSummary
	CustomerFirstName *string
	CustomerLastName  *string
	Items             []byte
}

func (r orderRow) summary() models.OrderSummary {
	out := r.OrderSummary
	out.CustomerName = fullName(r.CustomerFirstName, r.CustomerLastName)
	return out
}

func mapOrderDetail(row orderRow) (*models.OrderDetail, error) {
	items, err := decodeArray[models.OrderItemView](row.Items)
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &models.OrderDetail{
		OrderSummary: row.summary(),
		Items:        items,
	}, nil
}

func fullName(first, last *string) string {
	var parts []string
	for _, p := range []*string{first, last} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	return strings.Join(parts, " ")
}
