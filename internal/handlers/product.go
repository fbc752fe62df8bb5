// internal/handlers/product.go
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/services"
	"github.com/freshcart/grocery-backend/internal/utils"
)

// ProductStore is the catalog surface the handler needs; *services.ProductService
// implements it.
type ProductStore interface {
	SearchProducts(params *services.ProductSearchParams) ([]models.Product, int64, error)
	GetProduct(id uuid.UUID) (*models.Product, error)
	CreateProduct(req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id uuid.UUID) error
	AdjustStock(id uuid.UUID, delta int) (*models.Product, error)
}

// DemandCacheInvalidator drops cached demand snapshots after catalog writes;
// *services.AnalyticsService implements it.
type DemandCacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

type ProductHandler struct {
	productService   ProductStore
	storageService   *services.StorageService
	analyticsService DemandCacheInvalidator
}

func NewProductHandler(productService ProductStore, storageService *services.StorageService, analyticsService DemandCacheInvalidator) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		storageService:   storageService,
		analyticsService: analyticsService,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := &services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Search:           c.Query("search"),
	}

	if categoryStr := c.Query("category_id"); categoryStr != "" {
		if id, err := uuid.Parse(categoryStr); err == nil {
			params.CategoryID = &id
		}
	}
	if subcategoryStr := c.Query("subcategory_id"); subcategoryStr != "" {
		if id, err := uuid.Parse(subcategoryStr); err == nil {
			params.SubcategoryID = &id
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.ParseBool(statusStr); err == nil {
			params.Status = &status
		}
	}
	if minStr := c.Query("price_min"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			params.PriceMin = &min
		}
	}
	if maxStr := c.Query("price_max"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			params.PriceMax = &max
		}
	}
	if stockStr := c.Query("in_stock"); stockStr != "" {
		if inStock, err := strconv.ParseBool(stockStr); err == nil {
			params.InStock = &inStock
		}
	}

	products, total, err := h.productService.SearchProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params.PaginationParams))
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	h.analyticsService.InvalidateCache(c.Request.Context())

	utils.CreatedResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	// Price and stock edits feed the cached catalog stats
	h.analyticsService.InvalidateCache(c.Request.Context())

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	h.analyticsService.InvalidateCache(c.Request.Context())

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted successfully",
	})
}

// PUT /api/products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Delta int `json:"delta" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.AdjustStock(id, req.Delta)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	h.analyticsService.InvalidateCache(c.Request.Context())

	utils.SuccessResponse(c, product)
}

// POST /api/products/upload
func (h *ProductHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image file provided", err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	options := h.storageService.GetDefaultUploadOptions("products")
	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}
