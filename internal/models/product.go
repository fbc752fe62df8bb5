// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null;index"`
	Description   string         `json:"desc" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Discount      float64        `json:"discount" gorm:"type:decimal(5,2);default:0"`
	Stock         int            `json:"stock" gorm:"default:0"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	Status        bool           `json:"status" gorm:"default:true;index"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	CategoryID    *uuid.UUID     `json:"category_id" gorm:"type:uuid;index"`
	SubcategoryID *uuid.UUID     `json:"subcategory_id" gorm:"type:uuid;index"`

	// Relationships
	Category    *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Subcategory *Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
}

// PrimaryImage returns the thumbnail URL, empty when no image was uploaded.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
