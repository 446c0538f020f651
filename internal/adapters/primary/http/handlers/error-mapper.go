package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mlflow-packer/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingModelName),
		errors.Is(err, domain.ErrMissingVersion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
