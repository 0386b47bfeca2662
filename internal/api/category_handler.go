package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler holds the category service dependency.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// --- DTOs ---

type CategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

type CategoryResponse struct {
	ID           string    `json:"_id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

func MapCategoryToResponse(cat *domain.Category) CategoryResponse {
	if cat == nil {
		return CategoryResponse{}
	}
	return CategoryResponse{
		ID:           cat.ID.Hex(),
		CategoryID:   cat.CategoryID,
		CategoryName: cat.CategoryName,
		Status:       cat.Status,
		CreatedAt:    cat.CreatedAt,
		UpdatedAt:    cat.UpdatedAt,
	}
}

// --- Handler Methods ---

// CreateCategory creates a new gym category; a duplicate name is a 400.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.CategoryName)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Category created successfully",
		"category_id": category.CategoryID,
	})
}

// GetCategories lists every category.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = MapCategoryToResponse(&cat)
	}

	c.JSON(http.StatusOK, gin.H{"categories": responses})
}

// UpdateCategory renames an existing category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("category_id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.categoryService.Update(c.Request.Context(), categoryID, req.CategoryName)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category updated successfully"})
}

// DeleteCategory removes a category permanently.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("category_id")

	err := h.categoryService.Delete(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
