package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	apperrors "github.com/seyirtepe/seyirtepe-backend/internal/errors"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
	mediaService   service.MediaService
}

func NewProductController(productService service.ProductService, mediaService service.MediaService) *ProductController {
	return &ProductController{
		productService: productService,
		mediaService:   mediaService,
	}
}

type ProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageURL     string  `json:"image_url"`
	CategoryID   uint    `json:"category_id" binding:"required"`
	DisplayOrder int     `json:"display_order"`
}

// GetProducts lists products, optionally filtered by ?category_id
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid category_id")
			return
		}
		categoryID = uint(parsed)
	}

	products, err := ctrl.productService.GetProducts(categoryID)
	if err != nil {
		log.Error("Failed to fetch products", err, map[string]interface{}{
			"category_id": categoryID,
		})
		apperrors.InternalError(c, "failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name, price and category_id are required")
		return
	}

	product := &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.productService.CreateProduct(product); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.BadRequest(c, apperrors.CategoryNotFound, "the referenced category does not exist")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "product create")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates a product
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name, price and category_id are required")
		return
	}

	product := &model.Product{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.productService.UpdateProduct(product); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.BadRequest(c, apperrors.CategoryNotFound, "the referenced category does not exist")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "product update")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a product
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "product delete")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores a product image and returns its URL
// POST /api/v1/products/upload-image
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	uploadImage(c, ctrl.mediaService, "products")
}
