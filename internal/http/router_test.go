package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/config"
	"github.com/kchsung/connecta-manager/internal/http/handlers"
	"github.com/kchsung/connecta-manager/internal/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// newTestApp wires the full router with nil-store services; the routes
// under test never reach a repository.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := zap.NewNop()
	cfg := &config.Config{
		DefaultPageLimit:   1000,
		RateLimitPerMinute: 100,
		RecentWindow:       7 * 24 * time.Hour,
	}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})

	campaignService := services.NewCampaignService(nil, nil, log)
	influencerService := services.NewInfluencerService(nil, nil, log)
	participationService := services.NewParticipationService(nil, nil, nil, log)
	contentService := services.NewContentService(nil, nil, log)
	metricService := services.NewMetricService(nil, nil, nil, log)
	analysisService := services.NewAnalysisService(nil, nil, cfg.RecentWindow, log)
	analyticsService := services.NewAnalyticsService(nil, nil, nil, nil, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.AppErrorHandler(log),
	})
	SetupRouter(app, cfg, log, rdb,
		handlers.NewCampaignHandler(campaignService, cfg.DefaultPageLimit, log),
		handlers.NewInfluencerHandler(influencerService, cfg.DefaultPageLimit, log),
		handlers.NewParticipationHandler(participationService, cfg.DefaultPageLimit, log),
		handlers.NewContentHandler(contentService, log),
		handlers.NewMetricHandler(metricService, log),
		handlers.NewAnalysisHandler(analysisService, cfg.DefaultPageLimit, log),
		handlers.NewAnalyticsHandler(analyticsService, log),
	)
	return app
}

func assertCORSHeaders(t *testing.T, h nethttp.Header) {
	t.Helper()
	checks := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	}
	for header, want := range checks {
		if got := h.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestOptionsPreflightReturns200WithCORS(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/api/v1/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("preflight status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	assertCORSHeaders(t, resp.Header)

	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Errorf("preflight body = %q, want empty", body)
	}
}

func TestBareOptionsReturns200WithCORS(t *testing.T) {
	app := newTestApp(t)

	// No Origin header: not a browser preflight, still 200 + CORS.
	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/api/v1/influencers", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	assertCORSHeaders(t, resp.Header)
}

func TestMethodNotAllowedEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusMethodNotAllowed)
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
	if body.Error != "Method not allowed" {
		t.Errorf("error = %q, want %q", body.Error, "Method not allowed")
	}
}
