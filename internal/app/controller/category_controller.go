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

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

// GetCategories lists all categories
// GET /api/v1/categories
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.GetCategories()
	if err != nil {
		log.Error("Failed to fetch categories", err)
		apperrors.InternalError(c, "failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoriesWithProducts lists all categories with their products
// GET /api/v1/categories/with-products
func (ctrl *CategoryController) GetCategoriesWithProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.GetCategoriesWithProducts()
	if err != nil {
		log.Error("Failed to fetch categories with products", err)
		apperrors.InternalError(c, "failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory returns one category
// GET /api/v1/categories/:id
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := ctrl.categoryService.GetCategoryByID(id)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetCategoryWithProducts returns one category with its products
// GET /api/v1/categories/:id/with-products
func (ctrl *CategoryController) GetCategoryWithProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := ctrl.categoryService.GetCategoryWithProducts(id)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category
// POST /api/v1/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "category name is required")
		return
	}

	category := &model.Category{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.categoryService.CreateCategory(category); err != nil {
		if errors.Is(err, service.ErrCategoryNameExists) {
			apperrors.Conflict(c, apperrors.CategoryNameExists, "a category with this name already exists")
			return
		}
		log.Error("Failed to create category", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category create")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a category
// PUT /api/v1/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "category name is required")
		return
	}

	category := &model.Category{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.categoryService.UpdateCategory(category); err != nil {
		if errors.Is(err, service.ErrCategoryNameExists) {
			apperrors.Conflict(c, apperrors.CategoryNameExists, "a category with this name already exists")
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "category not found")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category update")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category and its products
// DELETE /api/v1/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.categoryService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "category not found")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCategoryError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCategoryNotFound) {
		apperrors.NotFound(c, apperrors.CategoryNotFound, "category not found")
		return
	}
	middleware.GetLoggerFromContext(c).Error("Failed to fetch category", err)
	apperrors.InternalError(c, "failed to fetch category")
}

// parseIDParam parses the :id path parameter. On failure it writes a
// 400 response and returns ok=false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid id")
		return 0, false
	}
	return uint(id), true
}
