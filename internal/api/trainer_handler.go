package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
	"fithub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs ---

type CreateTrainerRequest struct {
	FullName              string                 `json:"full_name" binding:"required"`
	Experience            int                    `json:"experience"`
	PrimarySpecialization string                 `json:"primary_specialization" binding:"required"`
	Languages             []string               `json:"languages"`
	ShortBio              string                 `json:"short_bio"`
	Skills                domain.Skills          `json:"skills"`
	Certifications        []domain.Certification `json:"certifications"`
	PreferredMode         domain.PreferredMode   `json:"preferred_mode"`
	WeeklySchedule        []domain.ScheduleEntry `json:"weekly_schedule"`
	Pricing               domain.Pricing         `json:"pricing"`
	Media                 domain.Media           `json:"media"`
}

type TrainerResponse struct {
	ID                    string                 `json:"_id"`
	TrainerID             string                 `json:"trainer_id"`
	FullName              string                 `json:"full_name"`
	Experience            int                    `json:"experience"`
	PrimarySpecialization string                 `json:"primary_specialization"`
	Languages             []string               `json:"languages"`
	ShortBio              string                 `json:"short_bio"`
	Skills                domain.Skills          `json:"skills"`
	Certifications        []domain.Certification `json:"certifications"`
	PreferredMode         domain.PreferredMode   `json:"preferred_mode"`
	WeeklySchedule        []domain.ScheduleEntry `json:"weekly_schedule"`
	Pricing               domain.Pricing         `json:"pricing"`
	Media                 domain.Media           `json:"media"`
	Status                string                 `json:"status"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func MapTrainerToResponse(trainer *domain.Trainer) TrainerResponse {
	if trainer == nil {
		return TrainerResponse{}
	}
	return TrainerResponse{
		ID:                    trainer.ID.Hex(),
		TrainerID:             trainer.TrainerID,
		FullName:              trainer.FullName,
		Experience:            trainer.Experience,
		PrimarySpecialization: trainer.PrimarySpecialization,
		Languages:             trainer.Languages,
		ShortBio:              trainer.ShortBio,
		Skills:                trainer.Skills,
		Certifications:        trainer.Certifications,
		PreferredMode:         trainer.PreferredMode,
		WeeklySchedule:        trainer.WeeklySchedule,
		Pricing:               trainer.Pricing,
		Media:                 trainer.Media,
		Status:                trainer.Status,
		CreatedAt:             trainer.CreatedAt,
		UpdatedAt:             trainer.UpdatedAt,
	}
}

func mapRequestToTrainer(req *CreateTrainerRequest) *domain.Trainer {
	trainer := &domain.Trainer{
		FullName:              req.FullName,
		Experience:            req.Experience,
		PrimarySpecialization: req.PrimarySpecialization,
		ShortBio:              req.ShortBio,
		Skills:                req.Skills,
		PreferredMode:         req.PreferredMode,
		Pricing:               req.Pricing,
		Media:                 req.Media,
	}
	if req.Languages != nil {
		trainer.Languages = append([]string{}, req.Languages...)
	}
	if req.Certifications != nil {
		trainer.Certifications = append([]domain.Certification{}, req.Certifications...)
	}
	if req.WeeklySchedule != nil {
		trainer.WeeklySchedule = make([]domain.ScheduleEntry, len(req.WeeklySchedule))
		for i, entry := range req.WeeklySchedule {
			trainer.WeeklySchedule[i] = domain.ScheduleEntry{
				Days:      append([]string{}, entry.Days...),
				Checked:   entry.Checked,
				TimeSlots: append([]string{}, entry.TimeSlots...),
			}
		}
	}
	return trainer
}

func mapTrainersToResponses(trainers []domain.Trainer) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i, trainer := range trainers {
		responses[i] = MapTrainerToResponse(&trainer)
	}
	return responses
}

// parsePagination reads page/limit query params, falling back to sane
// defaults on anything missing or malformed.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}

// --- Handler Methods ---

// CreateTrainer registers a new trainer profile; a trainer with the same
// name and primary specialization is a 400.
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.trainerService.Create(c.Request.Context(), mapRequestToTrainer(&req))
	if err != nil {
		if errors.Is(err, service.ErrTrainerExists) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Trainer created successfully",
		"trainer_id":   trainer.TrainerID,
		"trainer_data": MapTrainerToResponse(trainer),
	})
}

// GetTrainers lists trainers with pagination and optional status and
// specialization filters. An omitted status matches every trainer, soft
// deleted ones included.
func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	page, limit := parsePagination(c)
	status := c.Query("status")
	specialization := c.Query("specialization")

	trainers, total, err := h.trainerService.List(c.Request.Context(), status, specialization, page, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainers":    mapTrainersToResponses(trainers),
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages(total, limit),
	})
}

// GetTrainer fetches a single trainer profile by its trainer id.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainerID := c.Param("trainer_id")

	trainer, err := h.trainerService.GetByID(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, MapTrainerToResponse(trainer))
}

// UpdateTrainer applies a partial update; only fields present in the body
// change.
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	trainerID := c.Param("trainer_id")

	var patch domain.TrainerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.trainerService.Update(c.Request.Context(), trainerID, &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTrainerExists):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer updated successfully"})
}

// DeleteTrainer marks a trainer as deleted without removing the document.
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	trainerID := c.Param("trainer_id")

	err := h.trainerService.SoftDelete(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully (soft delete)"})
}

// HardDeleteTrainer removes the trainer document permanently.
func (h *TrainerHandler) HardDeleteTrainer(c *gin.Context) {
	trainerID := c.Param("trainer_id")

	err := h.trainerService.HardDelete(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer permanently deleted"})
}

// GetTrainersBySpecialization lists active trainers for one specialization.
func (h *TrainerHandler) GetTrainersBySpecialization(c *gin.Context) {
	specialization := c.Param("specialization")
	page, limit := parsePagination(c)

	trainers, total, err := h.trainerService.BySpecialization(c.Request.Context(), specialization, page, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainers":       mapTrainersToResponses(trainers),
		"total":          total,
		"page":           page,
		"limit":          limit,
		"specialization": specialization,
	})
}

// SearchTrainers runs a multi-criteria search over active trainers and
// echoes the applied filters back in the response.
func (h *TrainerHandler) SearchTrainers(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := repository.TrainerFilter{
		Query:     c.Query("query"),
		Languages: c.QueryArray("languages"),
		Skills:    c.QueryArray("skills"),
	}
	if raw := c.Query("min_experience"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinExperience = &v
		}
	}
	if raw := c.Query("max_experience"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MaxExperience = &v
		}
	}

	trainers, total, err := h.trainerService.Search(c.Request.Context(), filter, page, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainers": mapTrainersToResponses(trainers),
		"total":    total,
		"page":     page,
		"limit":    limit,
		"filters_applied": gin.H{
			"query":          filter.Query,
			"min_experience": filter.MinExperience,
			"max_experience": filter.MaxExperience,
			"languages":      filter.Languages,
			"skills":         filter.Skills,
		},
	})
}
