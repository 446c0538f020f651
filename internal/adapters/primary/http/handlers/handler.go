package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mlflow-packer/internal/core/services"
)

type Handler struct {
	modelSvc *services.ModelService
	imageSvc *services.ImageService
	buildSvc *services.BuildService
}

func New(modelSvc *services.ModelService, imageSvc *services.ImageService, buildSvc *services.BuildService) *Handler {
	return &Handler{
		modelSvc: modelSvc,
		imageSvc: imageSvc,
		buildSvc: buildSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/docs", h.Docs)
	r.GET("/models", h.ListModels)
	r.GET("/images", h.ListImages)
	r.GET("/build", h.BuildModel)
}

// Root redirects to the API documentation.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}
