package llm

import (
	"testing"
)

func TestDetectTransportType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"тарифы_авиа_2026.xlsx", "air"},
		{"sea_rates_fcl.pdf", "sea"},
		{"жд_тарифы.docx", "rail"},
		{"мультимодальные.xlsx", "multimodal"},
		{"rates.xlsx", "auto"},
	}

	for _, tt := range tests {
		if got := DetectTransportType(tt.filename); got != tt.want {
			t.Errorf("DetectTransportType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestParseTariffJSONWrapper(t *testing.T) {
	raw := `{"tariffs": [{"origin_city": "Шанхай", "destination_city": "Москва", "price_usd": 5000}]}`

	got, err := ParseTariffJSON(raw, "sea")
	if err != nil {
		t.Fatalf("ParseTariffJSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].OriginCity != "Шанхай" || got[0].TransportType != "sea" {
		t.Errorf("tariff: %+v", got[0])
	}
	if got[0].Basis != "FCA" {
		t.Errorf("Basis = %q, want FCA по умолчанию", got[0].Basis)
	}
}

func TestParseTariffJSONPlainArray(t *testing.T) {
	raw := `[{"origin_city": "Нинбо", "destination_city": "Казань", "price_rub": 420000}]`

	got, err := ParseTariffJSON(raw, "auto")
	if err != nil {
		t.Fatalf("ParseTariffJSON: %v", err)
	}
	if len(got) != 1 || got[0].PriceRub == nil || *got[0].PriceRub != 420000 {
		t.Errorf("tariffs: %+v", got)
	}
}

func TestParseTariffJSONInvalid(t *testing.T) {
	if _, err := ParseTariffJSON("не json", "auto"); err == nil {
		t.Fatal("ожидалась ошибка для некорректного JSON")
	}
}

func TestParseTariffJSONEmpty(t *testing.T) {
	got, err := ParseTariffJSON("", "auto")
	if err != nil {
		t.Fatalf("ParseTariffJSON: %v", err)
	}
	if got != nil {
		t.Errorf("got = %v, want nil", got)
	}
}
