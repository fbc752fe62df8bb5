// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=255"`
	Description   string     `json:"desc" validate:"required,min=5"`
	Price         float64    `json:"price" validate:"required,min=0.01"`
	Discount      float64    `json:"discount" validate:"omitempty,min=0,max=100"`
	Stock         int        `json:"stock" validate:"min=0"`
	Images        []string   `json:"images,omitempty"`
	Status        *bool      `json:"status,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string    `json:"desc,omitempty" validate:"omitempty,min=5"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,min=0.01"`
	Discount      *float64   `json:"discount,omitempty" validate:"omitempty,min=0,max=100"`
	Stock         *int       `json:"stock,omitempty" validate:"omitempty,min=0"`
	Images        []string   `json:"images,omitempty"`
	Status        *bool      `json:"status,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	Status        *bool      `json:"status,omitempty"`
	PriceMin      *float64   `json:"price_min,omitempty"`
	PriceMax      *float64   `json:"price_max,omitempty"`
	InStock       *bool      `json:"in_stock,omitempty"`
	Search        string     `json:"search,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.verifyCategoryPair(req.CategoryID, req.SubcategoryID); err != nil {
		return nil, err
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Discount:      req.Discount,
		Stock:         req.Stock,
		Images:        req.Images,
		Status:        status,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.Preload("Category").Preload("Subcategory").First(product, product.ID)

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	query := s.db.Preload("Category").Preload("Subcategory")

	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.CategoryID != nil || req.SubcategoryID != nil {
		categoryID := product.CategoryID
		subcategoryID := product.SubcategoryID
		if req.CategoryID != nil {
			categoryID = req.CategoryID
		}
		if req.SubcategoryID != nil {
			subcategoryID = req.SubcategoryID
		}
		if err := s.verifyCategoryPair(categoryID, subcategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.SubcategoryID = subcategoryID
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.Preload("Category").Preload("Subcategory").First(&product, product.ID)

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) SearchProducts(params *ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Preload("Subcategory")

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *params.SubcategoryID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}
	if params.InStock != nil {
		if *params.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock = 0")
		}
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = utils.ApplySort(query, params.PaginationParams, []string{"created_at", "name", "price", "stock", "rating"})
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	return products, total, nil
}

// AdjustStock applies a relative stock delta, clamping at zero.
func (s *ProductService) AdjustStock(id uuid.UUID, delta int) (*models.Product, error) {
	var product models.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		newStock := product.Stock + delta
		if newStock < 0 {
			newStock = 0
		}
		product.Stock = newStock

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *ProductService) verifyCategoryPair(categoryID, subcategoryID *uuid.UUID) error {
	if subcategoryID != nil {
		var subcategory models.Subcategory
		if err := s.db.First(&subcategory, *subcategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("subcategory not found")
			}
			return fmt.Errorf("database error: %w", err)
		}
		if categoryID != nil && subcategory.CategoryID != *categoryID {
			return errors.New("subcategory does not belong to the given category")
		}
		return nil
	}

	if categoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("category not found")
			}
			return fmt.Errorf("database error: %w", err)
		}
	}

	return nil
}
