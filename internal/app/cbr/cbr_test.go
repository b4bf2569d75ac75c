package cbr

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testXML = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="01.09.2025" name="Foreign Currency Market">
<Valute ID="R01235"><NumCode>840</NumCode><CharCode>USD</CharCode><Nominal>1</Nominal><Name>US Dollar</Name><Value>95,5000</Value></Valute>
<Valute ID="R01239"><NumCode>978</NumCode><CharCode>EUR</CharCode><Nominal>1</Nominal><Name>Euro</Name><Value>105,2500</Value></Valute>
<Valute ID="R01375"><NumCode>156</NumCode><CharCode>CNY</CharCode><Nominal>10</Nominal><Name>Yuan</Name><Value>130,0000</Value></Valute>
</ValCurs>`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
}

func serveXML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
	w.Write([]byte(testXML))
}

// Курсы пересчитываются на единицу валюты с учётом номинала
func TestRatesForDate(t *testing.T) {
	c := testClient(t, serveXML)

	rates, err := c.RatesForDate(context.Background(), time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RatesForDate: %v", err)
	}

	tests := []struct {
		code string
		want float64
	}{
		{"USD", 95.5},
		{"EUR", 105.25},
		{"CNY", 13.0}, // номинал 10
		{"RUB", 1.0},
	}
	for _, tt := range tests {
		if got := rates[tt.code]; got != tt.want {
			t.Errorf("rates[%s] = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRateFallbackOnServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if got := c.Rate(context.Background(), "USD"); got != fallbackRates["USD"] {
		t.Errorf("Rate(USD) = %v, want запасной курс %v", got, fallbackRates["USD"])
	}
}

func TestConvert(t *testing.T) {
	c := testClient(t, serveXML)
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   float64
		from, to string
		want     float64
	}{
		{"одинаковые валюты", 250, "USD", "USD", 250},
		{"доллары в рубли", 100, "USD", "RUB", 9550},
		{"рубли в доллары", 9550, "RUB", "USD", 100},
		{"доллары в юани", 100, "USD", "CNY", 100 * 95.5 / 13.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Convert(ctx, tt.amount, tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}
