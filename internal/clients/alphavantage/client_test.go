package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestGetGlobalQuote_ParsesResponse(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)

	var captured map[string]string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		captured = map[string]string{
			"path":     r.URL.Path,
			"function": q.Get("function"),
			"symbol":   q.Get("symbol"),
			"apikey":   q.Get("apikey"),
		}
		writeJSON(w, map[string]interface{}{
			"Global Quote": map[string]string{
				"01. symbol":         "AAPL",
				"05. price":          "150.0000",
				"06. volume":         "51234567",
				"09. change":         "2.5000",
				"10. change percent": "1.6900%",
			},
		})
	})

	client := NewClient("test-key", WithBaseURL(srv.URL), WithClock(func() time.Time { return fixed }))
	quote, err := client.GetGlobalQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetGlobalQuote failed: %v", err)
	}

	if captured["path"] != "/query" {
		t.Errorf("expected path /query, got %s", captured["path"])
	}
	if captured["function"] != "GLOBAL_QUOTE" {
		t.Errorf("expected function GLOBAL_QUOTE, got %s", captured["function"])
	}
	if captured["symbol"] != "AAPL" || captured["apikey"] != "test-key" {
		t.Errorf("unexpected query params: %v", captured)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", quote.Symbol)
	}
	if quote.Price.StringFixed(2) != "150.00" {
		t.Errorf("expected price 150.00, got %s", quote.Price)
	}
	if quote.Change.StringFixed(2) != "2.50" {
		t.Errorf("expected change 2.50, got %s", quote.Change)
	}
	if quote.ChangePercent != "1.6900" {
		t.Errorf("expected change percent without %%, got %q", quote.ChangePercent)
	}
	if quote.Volume != "51234567" {
		t.Errorf("expected volume 51234567, got %s", quote.Volume)
	}
	if !quote.ObservedAt.Equal(fixed) {
		t.Errorf("expected observed at %v, got %v", fixed, quote.ObservedAt)
	}
}

func TestGetGlobalQuote_MissingOptionalFields(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"Global Quote": map[string]string{
				"05. price": "10.5",
			},
		})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	quote, err := client.GetGlobalQuote(context.Background(), "GC=F")
	if err != nil {
		t.Fatalf("GetGlobalQuote failed: %v", err)
	}
	if quote.Symbol != "GC=F" {
		t.Errorf("expected requested symbol as fallback, got %s", quote.Symbol)
	}
	if quote.Volume != "N/A" {
		t.Errorf("expected volume N/A, got %s", quote.Volume)
	}
	if !quote.Change.IsZero() {
		t.Errorf("expected zero change, got %s", quote.Change)
	}
	if quote.ChangePercent != "0" {
		t.Errorf("expected change percent 0, got %s", quote.ChangePercent)
	}
}

func TestGetGlobalQuote_EmptyObject(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"Global Quote": map[string]string{}})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetGlobalQuote(context.Background(), "NOPE")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestGetGlobalQuote_BadNumber(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"Global Quote": map[string]string{"05. price": "abc"},
		})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestGetGlobalQuote_ThrottleNote(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute"})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Function != "GLOBAL_QUOTE" {
		t.Errorf("expected function GLOBAL_QUOTE, got %s", apiErr.Function)
	}
}

func TestGetGlobalQuote_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
}

func TestGetGlobalQuote_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestGetExchangeRate_ParsesResponse(t *testing.T) {
	var from, to, function string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to, function = q.Get("from_currency"), q.Get("to_currency"), q.Get("function")
		writeJSON(w, map[string]interface{}{
			"Realtime Currency Exchange Rate": map[string]string{
				"1. From_Currency Code": "USD",
				"3. To_Currency Code":   "INR",
				"5. Exchange Rate":      "83.12500000",
				"6. Last Refreshed":     "2026-10-18 14:00:01",
			},
		})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	fx, err := client.GetExchangeRate(context.Background(), "USD", "INR")
	if err != nil {
		t.Fatalf("GetExchangeRate failed: %v", err)
	}
	if function != "CURRENCY_EXCHANGE_RATE" || from != "USD" || to != "INR" {
		t.Errorf("unexpected params function=%s from=%s to=%s", function, from, to)
	}
	if fx.Pair != "USD/INR" {
		t.Errorf("expected pair USD/INR, got %s", fx.Pair)
	}
	if fx.Rate.StringFixed(4) != "83.1250" {
		t.Errorf("expected rate 83.1250, got %s", fx.Rate)
	}
	if fx.LastRefreshed != "2026-10-18 14:00:01" {
		t.Errorf("unexpected last refreshed %q", fx.LastRefreshed)
	}
}

func TestGetExchangeRate_Missing(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.GetExchangeRate(context.Background(), "USD", "XXX")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestSearchSymbols_ParsesMatches(t *testing.T) {
	var keywords string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		keywords = r.URL.Query().Get("keywords")
		writeJSON(w, map[string]interface{}{
			"bestMatches": []map[string]string{
				{"1. symbol": "TSCO.LON", "2. name": "Tesco PLC", "3. type": "Equity", "4. region": "United Kingdom", "8. currency": "GBX", "9. matchScore": "0.7273"},
				{"1. symbol": "TSCDF", "2. name": "Tesco plc", "9. matchScore": "0.7143"},
			},
		})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	matches, err := client.SearchSymbols(context.Background(), "tesco")
	if err != nil {
		t.Fatalf("SearchSymbols failed: %v", err)
	}
	if keywords != "tesco" {
		t.Errorf("expected keywords tesco, got %s", keywords)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Symbol != "TSCO.LON" || matches[0].Region != "United Kingdom" {
		t.Errorf("unexpected first match %+v", matches[0])
	}
	if matches[0].MatchScore != 0.7273 {
		t.Errorf("expected score 0.7273, got %v", matches[0].MatchScore)
	}
}

func TestSearchSymbols_NoMatches(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"bestMatches": []interface{}{}})
	})

	client := NewClient("k", WithBaseURL(srv.URL))
	matches, err := client.SearchSymbols(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("SearchSymbols failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestClient_TimeoutApplied(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, map[string]interface{}{})
	})

	client := NewClient("k", WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))
	_, err := client.GetGlobalQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("timeout should be a transport error, got APIError %v", apiErr)
	}
}
