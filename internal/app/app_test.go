package app

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"auditpdf/internal/config"
)

func testAppCfg() config.Config {
	var cfg config.Config
	cfg.PDF.TimeoutSecs = 5
	cfg.PDF.TruncationPolicy = "drop"
	return cfg
}

func TestAuditEndpoint_EndToEnd(t *testing.T) {
	app := SetupApp(testAppCfg(), nil)

	req := httptest.NewRequest("POST", "/v1/audit", strings.NewReader(
		`{"name":"Acme Co","email":"a@x.com","field":"Plumbing","website":"acme.com","problem":"We lose leads because no one answers the phone after hours."}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Errorf("expected X-Request-ID response header")
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		PDF string `json:"pdf"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(body.PDF)
	if err != nil {
		t.Fatalf("decoding pdf field: %v", err)
	}
	if !bytes.HasPrefix(decoded, []byte("%PDF-")) {
		t.Fatalf("decoded bytes do not start with PDF magic header")
	}
}

func TestAuditEndpoint_MissingFieldBody(t *testing.T) {
	app := SetupApp(testAppCfg(), nil)

	req := httptest.NewRequest("POST", "/v1/audit", strings.NewReader(
		`{"name":"","email":"a@x.com","field":"Plumbing","problem":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	if got := string(raw); got != `{"error":"Missing required fields"}` {
		t.Fatalf("unexpected 400 body: %s", got)
	}
}

func TestUnknownRoute_JSON404(t *testing.T) {
	app := SetupApp(testAppCfg(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("404 response is not JSON: %s", ct)
	}
	raw, _ := io.ReadAll(resp.Body)
	if got := string(raw); got != `{"error":"Not Found"}` {
		t.Fatalf("unexpected 404 body: %s", got)
	}
}
