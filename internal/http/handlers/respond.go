package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/http/dto"
	"go.uber.org/zap"
)

// AppErrorHandler shapes errors that escape the router itself, an
// unmatched method or path mostly, into the same envelope the handlers
// produce.
func AppErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusMethodNotAllowed:
				return fail(c, log, apperr.MethodNotAllowed())
			case fiber.StatusNotFound:
				return fail(c, log, apperr.NotFound("resource not found"))
			}
			return c.Status(fe.Code).JSON(dto.Fail(fe.Message, ""))
		}
		return fail(c, log, err)
	}
}

// fail maps a service error to a status code and the uniform envelope.
// Every handler funnels its errors through here; raw store errors never
// reach the wire.
func fail(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := statusOf(apperr.KindOf(err))
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err),
		)
		return c.Status(status).JSON(dto.Fail("Internal server error", ""))
	}
	return c.Status(status).JSON(dto.Fail(apperr.MessageOf(err), ""))
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindValidation, apperr.KindInvalidAction:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindMethodNotAllowed:
		return fiber.StatusMethodNotAllowed
	default:
		return fiber.StatusInternalServerError
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg, ""))
}
