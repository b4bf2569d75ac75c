package calculator

import (
	"math"
	"testing"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name            string
		baseRub         float64
		markupPercent   float64
		markupFixed     float64
		discountPercent float64
		want            float64
	}{
		{"наценка и фикс без скидки", 1000, 10, 50, 0, 1150},
		{"наценка, фикс и скидка 20%", 1000, 10, 50, 20, 920},
		{"без наценок и скидок", 1000, 0, 0, 0, 1000},
		{"только процентная наценка", 2000, 15, 0, 0, 2300},
		{"только фиксированная наценка", 500, 0, 75, 0, 575},
		{"скидка 100%", 1000, 10, 50, 100, 0},
		{"округление до копеек", 100.556, 0, 0, 0, 100.56},
		{"копейки после скидки", 999.99, 3, 0, 7, 957.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.baseRub, tt.markupPercent, tt.markupFixed, tt.discountPercent)
			if got != tt.want {
				t.Errorf("FinalPrice(%v, %v, %v, %v) = %v, want %v",
					tt.baseRub, tt.markupPercent, tt.markupFixed, tt.discountPercent, got, tt.want)
			}
		})
	}
}

func TestFinalPriceDiscountMonotonic(t *testing.T) {
	// Большая скидка не должна давать большую цену
	prev := math.Inf(1)
	for d := 0.0; d <= 100; d += 5 {
		got := FinalPrice(1234.56, 12, 300, d)
		if got > prev {
			t.Fatalf("скидка %v%% дала цену %v больше, чем при меньшей скидке (%v)", d, got, prev)
		}
		prev = got
	}
}

func TestVolumetricWeight(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		volumeM3 float64
		want     float64
	}{
		{"фактический вес больше", 500, 1, 500},
		{"объёмный вес больше", 100, 2, 334},
		{"равные", 167, 1, 167},
		{"нулевой объём", 42, 0, 42},
		{"нулевой вес", 0, 3, 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VolumetricWeight(tt.weightKg, tt.volumeM3)
			if got != tt.want {
				t.Errorf("VolumetricWeight(%v, %v) = %v, want %v", tt.weightKg, tt.volumeM3, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n      float64
		digits int
		want   string
	}{
		{1234567, 0, "1 234 567"},
		{1000, 0, "1 000"},
		{999, 0, "999"},
		{1234.5, 2, "1 234.50"},
		{0, 0, "0"},
		{-12345, 0, "-12 345"},
	}

	for _, tt := range tests {
		got := FormatNumber(tt.n, tt.digits)
		if got != tt.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.n, tt.digits, got, tt.want)
		}
	}
}

func TestCoerceDays(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5, "5"},
		{5.2, "6"},
		{0, ""},
		{-3, ""},
	}

	for _, tt := range tests {
		got := CoerceDays(tt.v)
		if got != tt.want {
			t.Errorf("CoerceDays(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestCalcAirCosts(t *testing.T) {
	got := CalcAirCosts(100, 2, 150, 3, 5000, 7000)

	// Объёмный вес: max(100, 2*167) = 334
	if got.VolumetricWeight != 334 {
		t.Errorf("VolumetricWeight = %v, want 334", got.VolumetricWeight)
	}
	// USD-плечо: 150 + 3*334 = 1152
	if got.AirCostUsd != 1152 {
		t.Errorf("AirCostUsd = %v, want 1152", got.AirCostUsd)
	}
	// RUB-плечо: 5000 + 7000 = 12000
	if got.RubCostRub != 12000 {
		t.Errorf("RubCostRub = %v, want 12000", got.RubCostRub)
	}
	if got.AirUsdFormula != "150 + 3 × 334 = 1 152" {
		t.Errorf("AirUsdFormula = %q", got.AirUsdFormula)
	}
	if got.RubRubFormula != "5 000 + 7 000 = 12 000" {
		t.Errorf("RubRubFormula = %q", got.RubRubFormula)
	}
}

func TestCalcAirCostsSkipsZeroParts(t *testing.T) {
	got := CalcAirCosts(100, 0, 0, 2, 0, 3000)

	if got.AirUsdFormula != "2 × 100 = 200" {
		t.Errorf("AirUsdFormula = %q, нулевой прекэридж не должен попадать в формулу", got.AirUsdFormula)
	}
	if got.RubRubFormula != "3 000 = 3 000" {
		t.Errorf("RubRubFormula = %q", got.RubRubFormula)
	}
}

func TestBuildFormula(t *testing.T) {
	if got := BuildFormula([]float64{1000, 0, 500}, 1500); got != "1 000 + 500 = 1 500" {
		t.Errorf("BuildFormula = %q", got)
	}
	if got := BuildFormula([]float64{0, 0}, 0); got != "" {
		t.Errorf("BuildFormula для нулевых частей = %q, want пустую строку", got)
	}
}
