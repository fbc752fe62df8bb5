// internal/models/banner.go
package models

import (
	"time"
)

type Banner struct {
	BaseModel
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Image       string     `json:"image" gorm:"size:512;not null"`
	Link        string     `json:"link" gorm:"size:512"`
	BannerType  BannerType `json:"banner_type" gorm:"type:varchar(20);default:'promo';index"`
	Priority    int        `json:"priority" gorm:"default:0;index"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Active      bool       `json:"active" gorm:"default:true;index"`
}

// Valid reports whether t is one of the known banner placements.
func (t BannerType) Valid() bool {
	switch t {
	case BannerTypeHero, BannerTypePromo, BannerTypeSeasonal:
		return true
	}
	return false
}

// IsLive reports whether the banner should be shown at t: the active flag is
// set and t falls inside the optional scheduling window.
func (b *Banner) IsLive(t time.Time) bool {
	if !b.Active {
		return false
	}
	if b.StartDate != nil && t.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && t.After(*b.EndDate) {
		return false
	}
	return true
}
