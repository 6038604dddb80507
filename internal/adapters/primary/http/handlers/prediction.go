package handlers

import (
	"errors"
	"io"
	"net/http"

	"diamond-price-service/internal/adapters/primary/http/dto"
	"diamond-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		FormSchema: h.formSvc.Schema(),
		Artifact:   dto.ToArtifactStatus(h.predictionSvc.Status()),
	})
}

func (h *Handler) PreviewInput(c *gin.Context) {
	record, ok := h.bindRecord(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToPreviewResponse(h.formSvc.Preview(record)))
}

func (h *Handler) Predict(c *gin.Context) {
	// Refuse early so an unusable artifact is reported even for bad input.
	if failed, ok := h.predictionSvc.Status().(domain.Failed); ok {
		mapDomainError(c, failed.Err())
		return
	}

	record, ok := h.bindRecord(c)
	if !ok {
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), record)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString("request_id")).Warn("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PredictionResponse{
		Prediction: prediction,
		Input:      dto.ToPreviewResponse(h.formSvc.Preview(record)),
	})
}

func (h *Handler) bindRecord(c *gin.Context) (domain.PredictionRecord, bool) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: dto.KindInvalidRequest})
		return domain.PredictionRecord{}, false
	}

	record, err := h.formSvc.Bind(req.ToFormValues())
	if err != nil {
		mapDomainError(c, err)
		return domain.PredictionRecord{}, false
	}
	return record, true
}
