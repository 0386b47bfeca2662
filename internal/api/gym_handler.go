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

// GymHandler holds the gym service dependency.
type GymHandler struct {
	gymService service.GymService
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(gymService service.GymService) *GymHandler {
	return &GymHandler{gymService: gymService}
}

// --- DTOs ---

type CreateGymRequest struct {
	GymName           string         `json:"gym_name" binding:"required"`
	CategoryID        string         `json:"category_id"`
	City              string         `json:"city"`
	Distance          float64        `json:"distance"`
	Address           string         `json:"address"`
	Contact           map[string]any `json:"contact"`
	Booking           map[string]any `json:"booking"`
	About             string         `json:"about"`
	Facilities        []string       `json:"facilities"`
	FacilityNotes     string         `json:"facility_notes"`
	OpeningHours      map[string]any `json:"opening_hours"`
	MembershipOptions map[string]any `json:"membership_options"`
	LogoURL           string         `json:"logo_url"`
	CoverImageURL     string         `json:"cover_image_url"`
	Gallery           []string       `json:"gallery"`
}

type GymResponse struct {
	ID                string         `json:"_id"`
	GymID             string         `json:"gym_id"`
	GymName           string         `json:"gym_name"`
	CategoryID        string         `json:"category_id"`
	City              string         `json:"city"`
	Distance          float64        `json:"distance"`
	Address           string         `json:"address"`
	Contact           map[string]any `json:"contact"`
	Booking           map[string]any `json:"booking"`
	About             string         `json:"about"`
	Facilities        []string       `json:"facilities"`
	FacilityNotes     string         `json:"facility_notes"`
	OpeningHours      map[string]any `json:"opening_hours"`
	MembershipOptions map[string]any `json:"membership_options"`
	LogoURL           string         `json:"logo_url"`
	CoverImageURL     string         `json:"cover_image_url"`
	Gallery           []string       `json:"gallery"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at,omitempty"`
}

func MapGymToResponse(gym *domain.Gym) GymResponse {
	if gym == nil {
		return GymResponse{}
	}
	return GymResponse{
		ID:                gym.ID.Hex(),
		GymID:             gym.GymID,
		GymName:           gym.GymName,
		CategoryID:        gym.CategoryID,
		City:              gym.City,
		Distance:          gym.Distance,
		Address:           gym.Address,
		Contact:           gym.Contact,
		Booking:           gym.Booking,
		About:             gym.About,
		Facilities:        gym.Facilities,
		FacilityNotes:     gym.FacilityNotes,
		OpeningHours:      gym.OpeningHours,
		MembershipOptions: gym.MembershipOptions,
		LogoURL:           gym.LogoURL,
		CoverImageURL:     gym.CoverImageURL,
		Gallery:           gym.Gallery,
		Status:            gym.Status,
		CreatedAt:         gym.CreatedAt,
		UpdatedAt:         gym.UpdatedAt,
	}
}

func mapRequestToGym(req *CreateGymRequest) *domain.Gym {
	gym := &domain.Gym{
		GymName:           req.GymName,
		CategoryID:        req.CategoryID,
		City:              req.City,
		Distance:          req.Distance,
		Address:           req.Address,
		Contact:           req.Contact,
		Booking:           req.Booking,
		About:             req.About,
		FacilityNotes:     req.FacilityNotes,
		OpeningHours:      req.OpeningHours,
		MembershipOptions: req.MembershipOptions,
		LogoURL:           req.LogoURL,
		CoverImageURL:     req.CoverImageURL,
	}
	if req.Facilities != nil {
		gym.Facilities = append([]string{}, req.Facilities...)
	}
	if req.Gallery != nil {
		gym.Gallery = append([]string{}, req.Gallery...)
	}
	return gym
}

// --- Handler Methods ---

// CreateGym registers a new gym; a duplicate gym name is a 400.
func (h *GymHandler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	gym, err := h.gymService.Create(c.Request.Context(), mapRequestToGym(&req))
	if err != nil {
		if errors.Is(err, service.ErrGymExists) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "gym created successfully",
		"gym_id":  gym.GymID,
	})
}

// GetGyms lists every gym.
func (h *GymHandler) GetGyms(c *gin.Context) {
	gyms, err := h.gymService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	responses := make([]GymResponse, len(gyms))
	for i, gym := range gyms {
		responses[i] = MapGymToResponse(&gym)
	}

	c.JSON(http.StatusOK, gin.H{"gyms": responses})
}

// UpdateGym applies a partial update; only fields present in the body change.
func (h *GymHandler) UpdateGym(c *gin.Context) {
	gymID := c.Param("gym_id")

	var patch domain.GymPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.gymService.Update(c.Request.Context(), gymID, &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGymNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGymExists):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gym updated successfully"})
}

// DeleteGym removes a gym permanently.
func (h *GymHandler) DeleteGym(c *gin.Context) {
	gymID := c.Param("gym_id")

	err := h.gymService.Delete(c.Request.Context(), gymID)
	if err != nil {
		if errors.Is(err, service.ErrGymNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gym deleted successfully"})
}
