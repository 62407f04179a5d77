package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/monibridge/core/types"
)

// APIResponse writes the uniform JSON envelope every endpoint returns.
func APIResponse(ctx *gin.Context, httpCode int, status string, message string, data interface{}) {
	ctx.JSON(httpCode, types.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// GetErrorData flattens gin binding errors into field-level error data.
func GetErrorData(err error) []types.ErrorData {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		data := make([]types.ErrorData, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			data = append(data, types.ErrorData{
				Field:   fieldErr.Field(),
				Message: validationMessage(fieldErr),
			})
		}
		return data
	}

	return []types.ErrorData{{Field: "", Message: err.Error()}}
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fieldErr.Field(), fieldErr.Tag())
	}
}
