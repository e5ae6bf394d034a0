package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

func TestAnalysisDispatchUnknownAction(t *testing.T) {
	svc := services.NewAnalysisService(nil, nil, 7*24*time.Hour, zap.NewNop())
	h := NewAnalysisHandler(svc, 1000, zap.NewNop())

	app := fiber.New()
	app.Post("/analysis", h.Dispatch)

	req := httptest.NewRequest("POST", "/analysis", strings.NewReader(`{"action":"drop_tables"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Error != "Invalid action" {
		t.Errorf("error = %q, want %q", body.Error, "Invalid action")
	}
}

func TestAnalysisDispatchRejectsBadBody(t *testing.T) {
	svc := services.NewAnalysisService(nil, nil, 7*24*time.Hour, zap.NewNop())
	h := NewAnalysisHandler(svc, 1000, zap.NewNop())

	app := fiber.New()
	app.Post("/analysis", h.Dispatch)

	req := httptest.NewRequest("POST", "/analysis", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestAnalysisDispatchCheckRecentRequiresFields(t *testing.T) {
	svc := services.NewAnalysisService(nil, nil, 7*24*time.Hour, zap.NewNop())
	h := NewAnalysisHandler(svc, 1000, zap.NewNop())

	app := fiber.New()
	app.Post("/analysis", h.Dispatch)

	req := httptest.NewRequest("POST", "/analysis",
		strings.NewReader(`{"action":"check_recent_analysis","data":{}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
