package calculator

import (
	"fmt"
	"sort"
	"time"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
)

// Сколько активных тарифов считается достаточным, прежде чем
// подмешивать архивные
const MinActiveTariffs = 3

// Сколько архивных тарифов добавляется в выдачу
const MaxArchivedOptions = 5

// Пометка архивного предложения в названии поставщика
const archiveSuffix = " (архив)"

// QuoteInput - всё, что нужно для сборки вариантов расчёта.
// Данные выбираются из базы заранее, сама сборка чистая
type QuoteInput struct {
	Request         dto.CalculateRequest
	Tariffs         []ds.Tariff
	Archived        []ds.TariffArchive
	Suppliers       map[uint]ds.Supplier
	Discounts       map[uint]float64 // supplier_id -> процент скидки текущего пользователя
	UsdRate         float64
	SVH             []ds.AuxiliarySVH
	Trucking        []ds.AuxiliaryTrucking
	PrecarriageRail []ds.AuxiliaryPrecarriageRail
	PrecarriageSea  []ds.AuxiliaryPrecarriageSea
}

type auxCosts struct {
	cbx              float64
	autoPickup       float64
	precarriage      float64
	terminalHandling float64
}

// BuildOptions собирает варианты доставки: активные тарифы, при нехватке -
// архивные, наценки и скидки, дедупликация и сортировка по итоговой цене.
// Если вариантов нет, возвращается единственная запись "цена по запросу"
func BuildOptions(in QuoteInput) []dto.CalculateOption {
	rate := in.UsdRate
	if rate <= 0 {
		rate = FallbackUsdRate
	}

	var results []dto.CalculateOption

	for _, t := range in.Tariffs {
		supplier, ok := in.Suppliers[t.SupplierID]
		if !ok {
			continue
		}

		baseRub, baseUsd, ok := baseRubPrice(t.PriceRub, t.PriceUsd, rate)
		if !ok {
			continue
		}

		aux := activeAuxCosts(in, t)
		final := basePlusAux(in.Request.TransportType, baseRub, t.RailTariffRub, aux)

		opt := buildOption(supplier, in.Discounts[supplier.ID], final, baseUsd, t.ValidityDate, t.TransitTimeDays)
		opt.BorderPoint = firstNonEmpty(t.BorderPoint, in.Request.BorderPoint)
		opt.SVHName = svhName(in.SVH, in.Request.DestCity)
		opt.ArrivalStation = t.ArrivalStation
		opt.RailTariffRub = t.RailTariffRub
		opt.CbxCost = aux.cbx
		opt.AutoPickupCost = aux.autoPickup
		opt.TerminalHandlingCost = aux.terminalHandling
		opt.SecurityCost = t.SecurityCost
		opt.PrecarriageCost = aux.precarriage

		results = append(results, opt)
	}

	archived := in.Archived
	if len(archived) > MaxArchivedOptions {
		archived = archived[:MaxArchivedOptions]
	}
	for _, t := range archived {
		supplier, ok := in.Suppliers[t.SupplierID]
		if !ok {
			continue
		}

		baseRub, baseUsd, ok := baseRubPrice(t.PriceRub, t.PriceUsd, rate)
		if !ok {
			continue
		}

		aux := archivedAuxCosts(in, t)
		final := archivedBasePlusAux(in.Request.TransportType, baseRub, aux)

		opt := buildOption(supplier, in.Discounts[supplier.ID], final, baseUsd, t.ValidityDate, t.TransitTimeDays)
		opt.SupplierName = supplier.Name + archiveSuffix
		opt.BorderPoint = firstNonEmpty(t.BorderPoint, in.Request.BorderPoint)
		opt.ArrivalStation = t.ArrivalStation
		opt.RailTariffRub = t.RailTariffRub
		opt.CbxCost = aux.cbx
		opt.AutoPickupCost = aux.autoPickup
		opt.TerminalHandlingCost = aux.terminalHandling
		opt.SecurityCost = t.SecurityCost
		opt.PrecarriageCost = aux.precarriage

		results = append(results, opt)
	}

	results = dedupe(results, in.Request)

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].FinalPriceRub < *results[j].FinalPriceRub
	})

	if len(results) == 0 {
		return []dto.CalculateOption{{
			SupplierName:   "Цена по запросу",
			PriceOnRequest: true,
		}}
	}

	return results
}

// baseRubPrice приводит цену тарифа к рублям. Если есть только USD,
// конвертирует по курсу. Тариф без цены пропускается
func baseRubPrice(priceRub, priceUsd *float64, rate float64) (float64, *float64, bool) {
	if priceRub != nil {
		return *priceRub, priceUsd, true
	}
	if priceUsd != nil {
		return *priceUsd * rate, priceUsd, true
	}
	return 0, nil, false
}

// basePlusAux складывает базовую цену и вспомогательные расходы
// в зависимости от типа транспорта
func basePlusAux(transportType string, baseRub float64, railTariffRub *float64, aux auxCosts) float64 {
	switch ds.TransportType(transportType) {
	case ds.TransportAuto:
		return baseRub + aux.autoPickup
	case ds.TransportRail, ds.TransportMultimodal:
		base := baseRub
		if railTariffRub != nil {
			base = *railTariffRub
		}
		return base + aux.cbx + aux.autoPickup
	case ds.TransportSea:
		return baseRub + aux.cbx + aux.autoPickup
	default: // air
		return baseRub
	}
}

func archivedBasePlusAux(transportType string, baseRub float64, aux auxCosts) float64 {
	switch ds.TransportType(transportType) {
	case ds.TransportAuto:
		return baseRub + aux.autoPickup
	case ds.TransportRail:
		return baseRub + aux.terminalHandling
	case ds.TransportSea:
		return baseRub + aux.cbx + aux.terminalHandling
	case ds.TransportAir:
		return baseRub + aux.terminalHandling
	default: // multimodal
		return baseRub + aux.cbx + aux.terminalHandling + aux.autoPickup
	}
}

func buildOption(supplier ds.Supplier, discountPercent, priceRub float64, baseUsd *float64, validity *time.Time, transitDays *int) dto.CalculateOption {
	final := FinalPrice(priceRub, supplier.MarkupPercent, supplier.MarkupFixed, discountPercent)

	var validityStr *string
	if validity != nil {
		s := validity.Format("2006-01-02")
		validityStr = &s
	}

	return dto.CalculateOption{
		SupplierID:      supplier.ID,
		SupplierName:    supplier.Name,
		PriceRub:        Round2(priceRub),
		PriceUsd:        baseUsd,
		MarkupPercent:   supplier.MarkupPercent,
		MarkupFixed:     supplier.MarkupFixed,
		DiscountPercent: discountPercent,
		FinalPriceRub:   &final,
		ValidityDate:    validityStr,
		TransitTimeDays: transitDays,
	}
}

// activeAuxCosts собирает вспомогательные расходы для активного тарифа:
// минимальная ставка СВХ по городу, минимальный автовывоз,
// прекэридж по типу транспорта и терминальная обработка из тарифа
func activeAuxCosts(in QuoteInput, t ds.Tariff) auxCosts {
	var aux auxCosts

	destCity := firstNonEmpty(in.Request.DestCity, t.DestCity)
	originCity := firstNonEmpty(in.Request.OriginCity, t.OriginCity)

	aux.cbx = minSVHCost(in.SVH, destCity)
	aux.autoPickup = minTruckingCost(in.Trucking, in.SVH, destCity)

	switch ds.TransportType(in.Request.TransportType) {
	case ds.TransportRail:
		aux.precarriage = minRailPrecarriage(in.PrecarriageRail, originCity)
	case ds.TransportSea, ds.TransportMultimodal:
		aux.precarriage = minSeaPrecarriage(in.PrecarriageSea, originCity)
	}

	if t.TerminalHandlingCost != nil {
		aux.terminalHandling = *t.TerminalHandlingCost
	}

	return aux
}

// archivedAuxCosts для архивных тарифов берёт СВХ из справочника,
// остальные составляющие - из самой архивной записи
func archivedAuxCosts(in QuoteInput, t ds.TariffArchive) auxCosts {
	var aux auxCosts

	destCity := firstNonEmpty(in.Request.DestCity, t.DestCity)
	aux.cbx = minSVHCost(in.SVH, destCity)

	if t.TerminalHandlingCost != nil {
		aux.terminalHandling = *t.TerminalHandlingCost
	}
	if t.AutoPickupCost != nil {
		aux.autoPickup = *t.AutoPickupCost
	}
	if t.PrecarriageCost != nil {
		aux.precarriage = *t.PrecarriageCost
	}

	return aux
}

func minSVHCost(records []ds.AuxiliarySVH, city string) float64 {
	min := 0.0
	found := false
	for _, r := range records {
		if r.City != city {
			continue
		}
		if !found || r.HandlingCost < min {
			min = r.HandlingCost
			found = true
		}
	}
	return min
}

func svhName(records []ds.AuxiliarySVH, city string) string {
	if city == "" {
		return ""
	}
	for _, r := range records {
		if r.City == city {
			return r.Name
		}
	}
	return ""
}

func minTruckingCost(trucking []ds.AuxiliaryTrucking, svhRecords []ds.AuxiliarySVH, destCity string) float64 {
	svhByID := make(map[uint]ds.AuxiliarySVH, len(svhRecords))
	for _, s := range svhRecords {
		svhByID[s.ID] = s
	}

	min := 0.0
	found := false
	for _, tr := range trucking {
		if tr.DestCity != destCity {
			continue
		}
		total := tr.BaseRate + tr.PerKmRate*tr.KmFromSVH
		if svh, ok := svhByID[tr.SVHID]; ok {
			total += svh.HandlingCost
		}
		if !found || total < min {
			min = total
			found = true
		}
	}
	return min
}

func minRailPrecarriage(records []ds.AuxiliaryPrecarriageRail, originCity string) float64 {
	min := 0.0
	found := false
	for _, r := range records {
		if r.OriginCity != originCity {
			continue
		}
		total := r.BaseRate + r.PerKmRate*r.KmFromStation
		if r.LocalCharges != nil {
			total += *r.LocalCharges
		}
		if !found || total < min {
			min = total
			found = true
		}
	}
	return min
}

func minSeaPrecarriage(records []ds.AuxiliaryPrecarriageSea, originCity string) float64 {
	min := 0.0
	found := false
	for _, r := range records {
		if r.OriginCity != originCity {
			continue
		}
		total := r.BaseRate + r.PerKmRate*r.KmFromPort
		if r.THCPort != nil {
			total += *r.THCPort
		}
		if !found || total < min {
			min = total
			found = true
		}
	}
	return min
}

// dedupe убирает совпадающие варианты: активный и архивный тариф
// часто дают одну и ту же цену
func dedupe(options []dto.CalculateOption, req dto.CalculateRequest) []dto.CalculateOption {
	seen := make(map[string]struct{}, len(options))
	unique := make([]dto.CalculateOption, 0, len(options))
	for _, opt := range options {
		finalPrice := 0.0
		if opt.FinalPriceRub != nil {
			finalPrice = Round2(*opt.FinalPriceRub)
		}
		usd := 0.0
		if opt.PriceUsd != nil {
			usd = Round2(*opt.PriceUsd)
		}
		key := fmt.Sprintf("%d|%.2f|%.2f|%s|%s|%s|%s|%s|%s",
			opt.SupplierID, finalPrice, usd,
			opt.BorderPoint, opt.ArrivalStation,
			req.TransportType, req.Basis, req.OriginCity, req.DestCity)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, opt)
	}
	return unique
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
