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

// FacilityHandler holds the facility service dependency.
type FacilityHandler struct {
	facilityService service.FacilityService
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(facilityService service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilityService: facilityService}
}

// --- DTOs ---

type FacilityRequest struct {
	FacilityName string `json:"facility_name" binding:"required"`
}

// FacilityResponse exposes the document including the store id as a string.
type FacilityResponse struct {
	ID           string    `json:"_id"`
	FacilityID   string    `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// MapFacilityToResponse converts a domain.Facility to its DTO.
func MapFacilityToResponse(f *domain.Facility) FacilityResponse {
	if f == nil {
		return FacilityResponse{}
	}
	return FacilityResponse{
		ID:           f.ID.Hex(),
		FacilityID:   f.FacilityID,
		FacilityName: f.FacilityName,
		Status:       f.Status,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// --- Handler Methods ---

// CreateFacility creates a new facility; a duplicate name is a 400.
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var req FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	facility, err := h.facilityService.Create(c.Request.Context(), req.FacilityName)
	if err != nil {
		if errors.Is(err, service.ErrFacilityExists) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Facility created successfully",
		"facility_id": facility.FacilityID,
	})
}

// GetFacilities lists every facility.
func (h *FacilityHandler) GetFacilities(c *gin.Context) {
	facilities, err := h.facilityService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	responses := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		responses[i] = MapFacilityToResponse(&f)
	}

	c.JSON(http.StatusOK, gin.H{"facilities": responses})
}

// UpdateFacility renames an existing facility.
func (h *FacilityHandler) UpdateFacility(c *gin.Context) {
	facilityID := c.Param("facility_id")

	var req FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.facilityService.Update(c.Request.Context(), facilityID, req.FacilityName)
	if err != nil {
		if errors.Is(err, service.ErrFacilityNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "facility updated successfully"})
}

// DeleteFacility removes a facility permanently.
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	facilityID := c.Param("facility_id")

	err := h.facilityService.Delete(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, service.ErrFacilityNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "facility deleted successfully"})
}
