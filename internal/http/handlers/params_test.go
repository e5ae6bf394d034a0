package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestPageParams(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		limit, offset := pageParams(c, 1000)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/", 1000, 0},
		{"explicit", "/?limit=50&offset=100", 50, 100},
		{"all means default", "/?limit=all", 1000, 0},
		{"garbage ignored", "/?limit=abc&offset=-5", 1000, 0},
		{"zero limit ignored", "/?limit=0", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			var body struct {
				Limit  int `json:"limit"`
				Offset int `json:"offset"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Limit != tt.wantLimit || body.Offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want limit=%d offset=%d",
					body.Limit, body.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestQueryFilter(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		v := queryFilter(c, "platform")
		if v == nil {
			return c.SendString("nil")
		}
		return c.SendString(*v)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?platform=instagram", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	buf := make([]byte, 32)
	n, _ := resp.Body.Read(buf)
	if got := string(buf[:n]); got != "instagram" {
		t.Errorf("got %q, want %q", got, "instagram")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	n, _ = resp.Body.Read(buf)
	if got := string(buf[:n]); got != "nil" {
		t.Errorf("absent query should return nil, handler wrote %q", got)
	}
}
