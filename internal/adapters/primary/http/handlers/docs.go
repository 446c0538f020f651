package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type apiDoc struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Endpoints   []endpointDoc `json:"endpoints"`
}

// Docs returns the API index the root endpoint redirects to.
func (h *Handler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, apiDoc{
		Title:       "MLflow Packer",
		Description: "Build and push mlflow models.",
		Version:     "0.1.0",
		Endpoints: []endpointDoc{
			{Method: "GET", Path: "/models", Description: "List registered models and their version stages"},
			{Method: "GET", Path: "/images", Description: "List container tags per model"},
			{Method: "GET", Path: "/build", Description: "Build and push a model version (query: name, version, env)"},
			{Method: "GET", Path: "/healthz", Description: "Liveness probe"},
		},
	})
}
