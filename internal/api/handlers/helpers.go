package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"teamup-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorsMap := make(map[string]string)
	for _, fieldError := range errs {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "lte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}

// respondValidationError writes a 400 with per-field details when err is a
// validator.ValidationErrors, or a generic 400 otherwise.
func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
}

// respondServiceError maps service-layer errors to HTTP statuses. fallback
// is logged and returned as a 500 message for unexpected errors.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
