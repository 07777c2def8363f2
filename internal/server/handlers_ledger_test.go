package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bobmcallan/finchat/internal/models"
)

func TestTransactions_AddAndList(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/transactions", `{"category":"groceries","amount":42.50}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doRequest(t, srv, http.MethodPost, "/api/transactions", `{"category":"rent","amount":"1200","date":"2026-01-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	json.NewDecoder(rec.Body).Decode(&body)
	if len(body.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(body.Transactions))
	}
	if body.Transactions[0].Category != "rent" {
		t.Errorf("expected date ordering with rent first, got %+v", body.Transactions)
	}
	g := body.Transactions[1]
	if g.Category != "groceries" || g.Amount.StringFixed(2) != "42.50" || g.Date != time.Now().Format("2006-01-02") {
		t.Errorf("unexpected groceries row %+v", g)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/transactions/summary", "")
	var sum models.LedgerSummary
	json.NewDecoder(rec.Body).Decode(&sum)
	if sum.Count != 2 || sum.Total.StringFixed(2) != "1242.50" {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestTransactions_Validation(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"category":"x"}`},
		{"blank category", `{"category":" ","amount":1}`},
		{"bad date", `{"category":"x","amount":1,"date":"01/01/2026"}`},
		{"invalid json", `{"category":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodPost, "/api/transactions", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}

	if rec := doRequest(t, srv, http.MethodDelete, "/api/transactions", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE: expected 405, got %d", rec.Code)
	}
}
