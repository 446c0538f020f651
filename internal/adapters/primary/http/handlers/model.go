package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/adapters/primary/http/dto"
)

// ListModels returns the registered models and their version-to-stage
// mapping, filtered by the configured tag allow-list.
func (h *Handler) ListModels(c *gin.Context) {
	models, err := h.modelSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list models failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ToModelResponse(m))
	}
	c.JSON(http.StatusOK, items)
}

// ListImages returns the container tags known for each allow-listed model.
func (h *Handler) ListImages(c *gin.Context) {
	tags, err := h.imageSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list images failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ImageResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, dto.ToImageResponse(t))
	}
	c.JSON(http.StatusOK, items)
}
