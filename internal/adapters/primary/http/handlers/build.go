package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/adapters/primary/http/dto"
	"mlflow-packer/internal/core/domain"
)

// BuildModel builds and pushes a serving image for a model version. A
// missing model or version is reported as a 200 with a message body, which
// the API's clients rely on.
func (h *Handler) BuildModel(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingModelName.Error()})
		return
	}
	version := c.Query("version")
	if version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingVersion.Error()})
		return
	}
	envManager := c.DefaultQuery("env", domain.EnvManagerBaseImage)

	result, err := h.buildSvc.Build(c.Request.Context(), name, version, envManager)
	switch {
	case errors.Is(err, domain.ErrModelNotFound):
		c.JSON(http.StatusOK, dto.BuildResponse{Result: "Model not found."})
	case errors.Is(err, domain.ErrVersionNotFound):
		c.JSON(http.StatusOK, dto.BuildResponse{Result: "Version not found."})
	case err != nil:
		log.WithError(err).WithFields(log.Fields{
			"name":    name,
			"version": version,
		}).Error("build failed")
		mapDomainError(c, err)
	default:
		c.JSON(http.StatusOK, dto.BuildResponse{Result: result.Output})
	}
}
