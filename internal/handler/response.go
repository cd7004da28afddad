package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"go.uber.org/zap"
)

// Responder writes the shared response envelope and translates errors to
// status codes in one place
type Responder struct {
	logger  *zap.Logger
	devMode bool
}

// NewResponder creates a new responder
func NewResponder(logger *zap.Logger, devMode bool) *Responder {
	return &Responder{logger: logger, devMode: devMode}
}

// OK writes a 200 success envelope
func (r *Responder) OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope
func (r *Responder) Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, dto.Response{Success: true, Message: message, Data: data})
}

// statusFor maps operational error kinds to HTTP status codes
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail translates err into an error envelope. Operational errors surface
// verbatim; anything else is logged and reported generically outside
// development mode.
func (r *Responder) Fail(c *gin.Context, err error) {
	if appErr, ok := domain.AsAppError(err); ok {
		c.JSON(statusFor(appErr.Kind), dto.ErrorResponse{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	r.logger.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	message := "Something went wrong"
	if r.devMode {
		message = err.Error()
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// BindError translates a gin binding failure into a 400 envelope with
// field-level detail where the validator provides it
func (r *Responder) BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		r.Fail(c, domain.NewValidationError("Validation failed", fields...))
		return
	}

	r.Fail(c, domain.NewValidationError("Validation failed", domain.FieldError{
		Field:   "body",
		Message: err.Error(),
	}))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please provide a valid email"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "oneof":
		return "Value is not one of the allowed options"
	default:
		return "Invalid value"
	}
}
