package calculator

import (
	"testing"
	"time"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
)

func fptr(v float64) *float64 { return &v }

func autoRequest() dto.CalculateRequest {
	return dto.CalculateRequest{
		TransportType: "auto",
		Basis:         "FCA",
		OriginCity:    "Шанхай",
		DestCity:      "Москва",
	}
}

func TestBuildOptionsAppliesMarkupAndDiscount(t *testing.T) {
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(1000)},
		},
		Suppliers: map[uint]ds.Supplier{
			1: {ID: 1, Name: "ТрансЛог", MarkupPercent: 10, MarkupFixed: 50},
		},
		Discounts: map[uint]float64{1: 20},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1", len(got))
	}
	opt := got[0]
	if opt.FinalPriceRub == nil || *opt.FinalPriceRub != 920 {
		t.Errorf("FinalPriceRub = %v, want 920", opt.FinalPriceRub)
	}
	if opt.PriceOnRequest {
		t.Error("PriceOnRequest = true для найденного тарифа")
	}
	if opt.SupplierName != "ТрансЛог" {
		t.Errorf("SupplierName = %q", opt.SupplierName)
	}
}

func TestBuildOptionsEmptyReturnsPriceOnRequest(t *testing.T) {
	got := BuildOptions(QuoteInput{Request: autoRequest(), UsdRate: 90})

	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1", len(got))
	}
	opt := got[0]
	if !opt.PriceOnRequest {
		t.Error("PriceOnRequest = false при отсутствии тарифов")
	}
	if opt.FinalPriceRub != nil {
		t.Errorf("FinalPriceRub = %v, want nil", *opt.FinalPriceRub)
	}
}

func TestBuildOptionsConvertsUsd(t *testing.T) {
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceUsd: fptr(100)},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "МорТранс"}},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1", len(got))
	}
	if got[0].PriceRub != 9000 {
		t.Errorf("PriceRub = %v, want 9000", got[0].PriceRub)
	}
}

func TestBuildOptionsUsdFallbackRate(t *testing.T) {
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceUsd: fptr(10)},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "МорТранс"}},
		UsdRate:   0, // курс недоступен
	}

	got := BuildOptions(in)
	if got[0].PriceRub != 950 {
		t.Errorf("PriceRub = %v, want 950 (запасной курс %v)", got[0].PriceRub, FallbackUsdRate)
	}
}

func TestBuildOptionsSkipsTariffWithoutPrice(t *testing.T) {
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto},
			{ID: 2, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(500)},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "ТрансЛог"}},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1 (тариф без цены пропускается)", len(got))
	}
}

func TestBuildOptionsSortedByFinalPrice(t *testing.T) {
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(3000)},
			{ID: 2, SupplierID: 2, TransportType: ds.TransportAuto, PriceRub: fptr(1000)},
			{ID: 3, SupplierID: 3, TransportType: ds.TransportAuto, PriceRub: fptr(2000)},
		},
		Suppliers: map[uint]ds.Supplier{
			1: {ID: 1, Name: "А"},
			2: {ID: 2, Name: "Б"},
			3: {ID: 3, Name: "В"},
		},
		UsdRate: 90,
	}

	got := BuildOptions(in)
	if len(got) != 3 {
		t.Fatalf("len(options) = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if *got[i-1].FinalPriceRub > *got[i].FinalPriceRub {
			t.Fatalf("варианты не отсортированы по возрастанию: %v > %v",
				*got[i-1].FinalPriceRub, *got[i].FinalPriceRub)
		}
	}
}

func TestBuildOptionsArchiveSuffixAndLimit(t *testing.T) {
	var archived []ds.TariffArchive
	for i := 0; i < 8; i++ {
		archived = append(archived, ds.TariffArchive{
			ID:            uint(i + 1),
			SupplierID:    1,
			TransportType: ds.TransportAuto,
			PriceRub:      fptr(float64(1000 + i*100)),
		})
	}

	in := QuoteInput{
		Request:   autoRequest(),
		Archived:  archived,
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "ТрансЛог"}},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if len(got) != MaxArchivedOptions {
		t.Fatalf("len(options) = %d, want %d (архив ограничен)", len(got), MaxArchivedOptions)
	}
	for _, opt := range got {
		if opt.SupplierName != "ТрансЛог (архив)" {
			t.Errorf("SupplierName = %q, want суффикс (архив)", opt.SupplierName)
		}
	}
}

func TestBuildOptionsDedupe(t *testing.T) {
	// Активный и архивный тариф с одинаковой ценой у одного поставщика
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(1000)},
			{ID: 2, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(1000)},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "ТрансЛог"}},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1 после дедупликации", len(got))
	}
}

func TestBuildOptionsRailAddsAuxCosts(t *testing.T) {
	in := QuoteInput{
		Request: dto.CalculateRequest{
			TransportType: "rail",
			Basis:         "FOB",
			OriginCity:    "Чэнду",
			DestCity:      "Москва",
		},
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportRail, RailTariffRub: fptr(200000), PriceRub: fptr(180000)},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "ЖДЛог"}},
		UsdRate:   90,
		SVH: []ds.AuxiliarySVH{
			{ID: 1, City: "Москва", Name: "СВХ Белый Раст", HandlingCost: 15000},
			{ID: 2, City: "Москва", Name: "СВХ Ховрино", HandlingCost: 12000},
		},
		Trucking: []ds.AuxiliaryTrucking{
			{ID: 1, DestCity: "Москва", SVHID: 2, KmFromSVH: 30, BaseRate: 5000, PerKmRate: 100},
		},
	}

	got := BuildOptions(in)
	if len(got) != 1 {
		t.Fatalf("len(options) = %d, want 1", len(got))
	}
	opt := got[0]
	// СВХ: минимум из 15000 и 12000
	if opt.CbxCost != 12000 {
		t.Errorf("CbxCost = %v, want 12000", opt.CbxCost)
	}
	// Автовывоз: 5000 + 100*30 + 12000 (СВХ Ховрино)
	if opt.AutoPickupCost != 20000 {
		t.Errorf("AutoPickupCost = %v, want 20000", opt.AutoPickupCost)
	}
	// База берётся из rail_tariff_rub: 200000 + 12000 + 20000
	if opt.PriceRub != 232000 {
		t.Errorf("PriceRub = %v, want 232000", opt.PriceRub)
	}
	if opt.SVHName != "СВХ Белый Раст" {
		t.Errorf("SVHName = %q", opt.SVHName)
	}
}

func TestBuildOptionsValidityDate(t *testing.T) {
	validity := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	in := QuoteInput{
		Request: autoRequest(),
		Tariffs: []ds.Tariff{
			{ID: 1, SupplierID: 1, TransportType: ds.TransportAuto, PriceRub: fptr(1000), ValidityDate: &validity},
		},
		Suppliers: map[uint]ds.Supplier{1: {ID: 1, Name: "ТрансЛог"}},
		UsdRate:   90,
	}

	got := BuildOptions(in)
	if got[0].ValidityDate == nil || *got[0].ValidityDate != "2026-10-15" {
		t.Errorf("ValidityDate = %v, want 2026-10-15", got[0].ValidityDate)
	}
}
