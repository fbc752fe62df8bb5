// internal/handlers/banner.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/services"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type BannerHandler struct {
	bannerService  *services.BannerService
	storageService *services.StorageService
}

func NewBannerHandler(bannerService *services.BannerService, storageService *services.StorageService) *BannerHandler {
	return &BannerHandler{
		bannerService:  bannerService,
		storageService: storageService,
	}
}

// GET /api/banners
func (h *BannerHandler) ListBanners(c *gin.Context) {
	var bannerType *models.BannerType
	if typeStr := c.Query("type"); typeStr != "" {
		t := models.BannerType(typeStr)
		if !t.Valid() {
			utils.BadRequestResponse(c, "Invalid banner type", nil)
			return
		}
		bannerType = &t
	}

	liveOnly := false
	if liveStr := c.Query("live"); liveStr != "" {
		if live, err := strconv.ParseBool(liveStr); err == nil {
			liveOnly = live
		}
	}

	banners, err := h.bannerService.ListBanners(bannerType, liveOnly)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, banners)
}

// GET /api/banners/:id
func (h *BannerHandler) GetBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	banner, err := h.bannerService.GetBanner(id)
	if err != nil {
		utils.NotFoundResponse(c, "Banner")
		return
	}

	utils.SuccessResponse(c, banner)
}

// POST /api/banners
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	banner, err := h.bannerService.CreateBanner(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, banner)
}

// PUT /api/banners/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	var req services.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	banner, err := h.bannerService.UpdateBanner(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, banner)
}

// DELETE /api/banners/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid banner ID", nil)
		return
	}

	if err := h.bannerService.DeleteBanner(id); err != nil {
		utils.NotFoundResponse(c, "Banner")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Banner deleted successfully",
	})
}

// POST /api/banners/upload
func (h *BannerHandler) UploadImage(c *gin.Context) {
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

	options := h.storageService.GetDefaultUploadOptions("banners")
	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}
