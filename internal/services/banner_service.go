// internal/services/banner_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type BannerService struct {
	db *gorm.DB
}

type CreateBannerRequest struct {
	Title       string            `json:"title" validate:"required,min=2,max=255"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image" validate:"required"`
	Link        string            `json:"link,omitempty"`
	BannerType  models.BannerType `json:"banner_type" validate:"required"`
	Priority    int               `json:"priority,omitempty"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

type UpdateBannerRequest struct {
	Title       *string            `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string            `json:"description,omitempty"`
	Image       *string            `json:"image,omitempty"`
	Link        *string            `json:"link,omitempty"`
	BannerType  *models.BannerType `json:"banner_type,omitempty"`
	Priority    *int               `json:"priority,omitempty"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Active      *bool              `json:"active,omitempty"`
}

func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{db: db}
}

func (s *BannerService) CreateBanner(req *CreateBannerRequest) (*models.Banner, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.BannerType.Valid() {
		return nil, errors.New("invalid banner type")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	banner := &models.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		BannerType:  req.BannerType,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Active:      active,
	}

	if err := s.db.Create(banner).Error; err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return banner, nil
}

func (s *BannerService) GetBanner(id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("banner not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &banner, nil
}

// ListBanners returns all banners for the admin console. When liveOnly is
// set, only banners currently inside their display window are included.
func (s *BannerService) ListBanners(bannerType *models.BannerType, liveOnly bool) ([]models.Banner, error) {
	query := s.db.Order("priority DESC, created_at DESC")

	if bannerType != nil {
		query = query.Where("banner_type = ?", *bannerType)
	}
	if liveOnly {
		now := time.Now()
		query = query.Where("active = ?", true).
			Where("start_date IS NULL OR start_date <= ?", now).
			Where("end_date IS NULL OR end_date >= ?", now)
	}

	var banners []models.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

func (s *BannerService) UpdateBanner(id uuid.UUID, req *UpdateBannerRequest) (*models.Banner, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("banner not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.BannerType != nil {
		if !req.BannerType.Valid() {
			return nil, errors.New("invalid banner type")
		}
		banner.BannerType = *req.BannerType
	}
	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Description != nil {
		banner.Description = *req.Description
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.Link != nil {
		banner.Link = *req.Link
	}
	if req.Priority != nil {
		banner.Priority = *req.Priority
	}
	if req.StartDate != nil {
		banner.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		banner.EndDate = req.EndDate
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if banner.StartDate != nil && banner.EndDate != nil && banner.EndDate.Before(*banner.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	if err := s.db.Save(&banner).Error; err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}

	return &banner, nil
}

func (s *BannerService) DeleteBanner(id uuid.UUID) error {
	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("banner not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&banner).Error; err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	return nil
}
