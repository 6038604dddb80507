package handlers

import (
	"net/http"

	"diamond-price-service/internal/adapters/primary/http/dto"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	formSvc       *services.FormService
	predictionSvc *services.PredictionService
}

func New(
	formSvc *services.FormService,
	predictionSvc *services.PredictionService,
) *Handler {
	return &Handler{
		formSvc:       formSvc,
		predictionSvc: predictionSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Form
	r.GET("/form", h.GetForm)
	r.POST("/preview", h.PreviewInput)

	// Action
	r.POST("/predict", h.Predict)
}

// Health reports 200 only when an artifact is loaded.
func (h *Handler) Health(c *gin.Context) {
	result := h.predictionSvc.Status()
	status := dto.ToArtifactStatus(result)
	if _, ok := result.(domain.Loaded); !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "artifact": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "artifact": status})
}
