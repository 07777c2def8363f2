package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobmcallan/finchat/internal/app"
	"github.com/bobmcallan/finchat/internal/server"
)

// testServer creates an httptest.Server with the full finchat-server handler.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("FINCHAT_WARM_CACHE", "off")
	configPath := writeTestConfig(t)
	a, err := app.NewApp(configPath)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	srv := server.NewServer(a)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status=ok, got %q", body["status"])
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/health", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for POST /api/health, got %d", resp.StatusCode)
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/transactions", "application/json",
		strings.NewReader(`{"category":"rent","amount":1200,"date":"2026-10-01"}`))
	if err != nil {
		t.Fatalf("POST /api/transactions failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/transactions")
	if err != nil {
		t.Fatalf("GET /api/transactions failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Transactions []map[string]interface{} `json:"transactions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Transactions) != 1 || body.Transactions[0]["category"] != "rent" {
		t.Errorf("unexpected transactions %v", body.Transactions)
	}
}

// --- test helpers ---

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	config := `
[storage.ledger]
path = "` + filepath.ToSlash(filepath.Join(dir, "data", "finance.db")) + `"

[logging]
level = "error"
outputs = ["console"]
file_path = "` + filepath.ToSlash(filepath.Join(dir, "logs", "finchat.log")) + `"
`
	configPath := filepath.Join(dir, "finchat.toml")
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}
