package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

var errInvalidBody = errors.New("cuerpo inválido")

// ErrorHandler traduce los errores que devuelven los handlers a la respuesta HTTP.
// Los errores no clasificados se registran y salen como INTERNAL con mensaje opaco.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)
		if status == fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("request_id", c.Locals("requestid")).
				Msg("error interno")
		}
		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	var fieldErr *domain.FieldError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fieldErr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: fieldErr.Message, Field: fieldErr.Field}
	case errors.Is(err, errInvalidBody):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "TIMEOUT", Message: "la petición excedió el tiempo máximo"}
	case errors.As(err, &fiberErr):
		code := "HTTP_ERROR"
		if fiberErr.Code == fiber.StatusNotFound {
			code = "NOT_FOUND"
		}
		return fiberErr.Code, dto.ErrorResponse{Code: code, Message: fiberErr.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}
}
