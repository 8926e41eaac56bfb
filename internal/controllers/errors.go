package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/models"
)

// handleServiceError translates service-layer errors into the response
// envelope. notFoundMsg names the resource without revealing whether it
// exists under another owner. Anything unrecognized becomes a generic 500.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Fail(notFoundMsg))
	default:
		log.Printf("ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, models.Fail("Server error"))
	}
}
