package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/lib/apperr"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalMessage = "Internal server error"

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var tagNamesOnce sync.Once

// registerJSONTagNames makes binding errors name fields by their JSON keys.
func registerJSONTagNames() {
	tagNamesOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Success: false, Message: message})
}

// renderError maps a service failure to its status code. Internal errors never leak their cause.
func (h *Handler) renderError(c *gin.Context, err error) {
	var status int

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindInternal:
		h.log.ErrorContext(c.Request.Context(), "request failed",
			sl.Err(err), slog.String("request_id", c.GetString(requestIDKey)))
		writeError(c, http.StatusInternalServerError, internalMessage)
		return
	}

	writeError(c, status, apperr.MessageOf(err, internalMessage))
}

func bindingMessage(err error) string {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
		timeErr        *time.ParseError
	)

	switch {
	case errors.As(err, &validationErrs):
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, describeField(fieldErr))
		}
		return strings.Join(messages, "; ")
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return "Malformed JSON body"
	case errors.As(err, &timeErr):
		return "date must be formatted as YYYY-MM-DD"
	default:
		return "Invalid request body"
	}
}

func describeField(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fieldErr.Field() + " is invalid"
	}
}
