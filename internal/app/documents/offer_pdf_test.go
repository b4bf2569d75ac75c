package documents

import (
	"testing"

	"veres-tariff/internal/app/dto"
)

func floatPtr(v float64) *float64 { return &v }

func TestAirBreakdownLine(t *testing.T) {
	opt := dto.CalculateOption{
		PriceUsd:             floatPtr(5),
		PrecarriageCost:      50,
		TerminalHandlingCost: 1000,
		AutoPickupCost:       500,
	}

	got := airBreakdownLine(opt, 100, 1)
	want := "Расчётный вес 167 кг; авиа, USD: 50 + 5 × 167 = 885; расходы в РФ, руб: 1 000 + 500 = 1 500"
	if got != want {
		t.Errorf("airBreakdownLine = %q, want %q", got, want)
	}
}

func TestAirBreakdownLineWithoutUsdPrice(t *testing.T) {
	opt := dto.CalculateOption{PriceUsd: nil}
	if got := airBreakdownLine(opt, 100, 1); got != "" {
		t.Errorf("без цены в USD разбивка не строится, got %q", got)
	}
}

func TestExtraCostsLine(t *testing.T) {
	tests := []struct {
		name string
		opt  dto.CalculateOption
		want string
	}{
		{
			"свх и автовывоз",
			dto.CalculateOption{CbxCost: 2000, AutoPickupCost: 500},
			"Доп. расходы, руб: 2 000 + 500 = 2 500",
		},
		{
			"без расходов",
			dto.CalculateOption{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extraCostsLine(tt.opt); got != tt.want {
				t.Errorf("extraCostsLine = %q, want %q", got, tt.want)
			}
		})
	}
}

// Для авиаперевозки детализация идёт по плечам, для остальных - по доп. расходам
func TestBreakdownLineByTransport(t *testing.T) {
	weight := 100.0
	opt := dto.CalculateOption{
		PriceUsd: floatPtr(5),
		CbxCost:  2000,
	}

	air := OfferData{TransportType: "air", WeightKg: &weight}
	if got := breakdownLine(air, opt); got == "" {
		t.Error("для авиа ожидается разбивка по плечам")
	}

	auto := OfferData{TransportType: "auto"}
	want := "Доп. расходы, руб: 2 000 = 2 000"
	if got := breakdownLine(auto, opt); got != want {
		t.Errorf("breakdownLine(auto) = %q, want %q", got, want)
	}
}
