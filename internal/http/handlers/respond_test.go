package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/apperr"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		kind apperr.Kind
		want int
	}{
		{"unauthorized", apperr.KindUnauthorized, fiber.StatusUnauthorized},
		{"validation", apperr.KindValidation, fiber.StatusBadRequest},
		{"invalid action", apperr.KindInvalidAction, fiber.StatusBadRequest},
		{"not found", apperr.KindNotFound, fiber.StatusNotFound},
		{"conflict", apperr.KindConflict, fiber.StatusConflict},
		{"method not allowed", apperr.KindMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"internal", apperr.KindInternal, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusOf(tt.kind); got != tt.want {
				t.Errorf("statusOf(%v) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}
