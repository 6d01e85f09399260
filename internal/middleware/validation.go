package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type BadRequestErrorResponse struct {
	Message string            `json:"message"`
	Details []ValidationError `json:"details"`
}

// ValidateRequest runs struct validation and returns field-level errors, or
// nil when the request is valid. Only presence (required) tags are used in
// this service.
func ValidateRequest(obj any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	for _, err := range err.(validator.ValidationErrors) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: getErrorMsg(err),
			Type:    err.Tag(),
		})
	}

	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	default:
		return "Invalid value"
	}
}

// RespondWithValidationError writes a 400 with the given top-level message
// and the field-level details.
func RespondWithValidationError(c *gin.Context, message string, validationErrors []ValidationError) {
	c.JSON(http.StatusBadRequest, BadRequestErrorResponse{
		Message: message,
		Details: validationErrors,
	})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}
