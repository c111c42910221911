// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null;index"`
	Description string `json:"description" gorm:"type:text"`
	ParentID    *int64 `json:"parent_id" gorm:"index"`
	IsActive    bool   `json:"is_active" gorm:"not null;index"`

	Parent *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}

type Brand struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null;index"`
	Description string `json:"description" gorm:"type:text"`
	LogoURL     string `json:"logo_url" gorm:"size:500"`
	Website     string `json:"website" gorm:"size:500"`
	IsActive    bool   `json:"is_active" gorm:"not null;index"`
}
