package handlers

import (
	"context"
	"errors"
	"net/http"

	"diamond-price-service/internal/adapters/primary/http/dto"
	"diamond-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusClientClosedRequest is the nginx convention for a request the client abandoned.
const statusClientClosedRequest = 499

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrInputConstructionFailed):
		c.JSON(http.StatusBadRequest, dto.ToErrorResponse(err))

	// Artifact unavailable: prediction is disabled until an operator fixes the file
	case errors.Is(err, domain.ErrArtifactMissing),
		errors.Is(err, domain.ErrArtifactLoadFailed),
		errors.Is(err, domain.ErrArtifactNotLoaded):
		c.JSON(http.StatusServiceUnavailable, dto.ToErrorResponse(err))

	// The artifact rejected this record; the user may retry with other inputs
	case errors.Is(err, domain.ErrPredictionFailed):
		c.JSON(http.StatusUnprocessableEntity, dto.ToErrorResponse(err))

	// The caller gave up before the artifact was consulted
	case errors.Is(err, context.Canceled):
		c.JSON(statusClientClosedRequest, dto.ToErrorResponse(err))
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, dto.ToErrorResponse(err))

	default:
		log.WithError(err).Error("unmapped error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: dto.KindInternal})
	}
}
