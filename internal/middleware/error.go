package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sigmaSd/AlbumCam/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, domain.ErrValidation):
		code = fiber.StatusUnprocessableEntity
		errorCode = "VALIDATION_ERROR"
		message = err.Error()
	case errors.Is(err, domain.ErrDuplicateName):
		code = fiber.StatusConflict
		errorCode = "DUPLICATE_NAME"
		message = err.Error()
	case errors.Is(err, domain.ErrProtectedEntity):
		code = fiber.StatusForbidden
		errorCode = "PROTECTED_ENTITY"
		message = err.Error()
	case errors.Is(err, domain.ErrPermissionDenied):
		code = fiber.StatusForbidden
		errorCode = "PERMISSION_DENIED"
		message = err.Error()
	case errors.Is(err, domain.ErrNotReady):
		code = fiber.StatusConflict
		errorCode = "NOT_READY"
		message = err.Error()
	case errors.Is(err, domain.ErrCaptureBusy):
		code = fiber.StatusConflict
		errorCode = "CAPTURE_IN_PROGRESS"
		message = err.Error()
	case errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrAssetNotFound):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = err.Error()
	default:
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message

			switch code {
			case fiber.StatusBadRequest:
				errorCode = "BAD_REQUEST"
			case fiber.StatusNotFound:
				errorCode = "NOT_FOUND"
			case fiber.StatusConflict:
				errorCode = "CONFLICT"
			case fiber.StatusUnprocessableEntity:
				errorCode = "VALIDATION_ERROR"
			}
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}
