package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"veres-tariff/internal/app/dto"
)

// columnKind - роль колонки в тарифной таблице
type columnKind int

const (
	colUnknown columnKind = iota
	colOrigin
	colDestination
	colPrice
	colCurrency
	colVehicle
	colTransit
	colValidity
	colBasis
)

var columnKeywords = []struct {
	kind     columnKind
	keywords []string
}{
	{colOrigin, []string{"откуда", "отправлен", "origin"}},
	{colDestination, []string{"куда", "назначени", "destination"}},
	{colPrice, []string{"цена", "стоимость", "тариф", "price", "cost"}},
	{colCurrency, []string{"валюта", "currency"}},
	{colVehicle, []string{"тип тс", "транспорт", "vehicle", "машин"}},
	{colTransit, []string{"время", "дни", "срок", "transit", "days"}},
	{colValidity, []string{"действ", "валидн", "validity"}},
	{colBasis, []string{"базис", "инкотермс", "basis", "incoterms"}},
}

func identifyColumn(header string) columnKind {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return colUnknown
	}
	for _, ck := range columnKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(h, kw) {
				return ck.kind
			}
		}
	}
	return colUnknown
}

// ParseTariffXLSX разбирает тарифную таблицу поставщика: первая строка -
// заголовки, роли колонок определяются по ключевым словам.
// Строки без маршрута или цены пропускаются
func ParseTariffXLSX(data []byte, supplierID uint, transportType string) ([]dto.TariffRequest, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cant open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cant read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("таблица не содержит строк с данными")
	}

	columns := make(map[int]columnKind, len(rows[0]))
	for i, header := range rows[0] {
		if kind := identifyColumn(header); kind != colUnknown {
			columns[i] = kind
		}
	}

	var tariffs []dto.TariffRequest
	for _, row := range rows[1:] {
		t := parseTariffRow(row, columns, supplierID, transportType)
		if t != nil {
			tariffs = append(tariffs, *t)
		}
	}
	return tariffs, nil
}

func parseTariffRow(row []string, columns map[int]columnKind, supplierID uint, transportType string) *dto.TariffRequest {
	t := dto.TariffRequest{
		SupplierID:    supplierID,
		TransportType: transportType,
		Basis:         "FCA",
	}

	var price *float64
	currency := "RUB"

	for i, cell := range row {
		kind, ok := columns[i]
		if !ok {
			continue
		}
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}

		switch kind {
		case colOrigin:
			t.OriginCity = value
		case colDestination:
			t.DestCity = value
		case colPrice:
			if p, err := parseNumber(value); err == nil {
				price = &p
			}
		case colCurrency:
			currency = normalizeCurrency(value)
		case colVehicle:
			t.VehicleType = value
		case colTransit:
			if d, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				t.TransitTimeDays = &d
			}
		case colValidity:
			t.ValidityDate = &value
		case colBasis:
			t.Basis = strings.ToUpper(value)
		}
	}

	if t.OriginCity == "" || t.DestCity == "" || price == nil {
		return nil
	}

	if currency == "USD" {
		t.PriceUsd = price
	} else {
		t.PriceRub = price
	}
	return &t
}

// parseNumber разбирает число с запятой или точкой в качестве
// десятичного разделителя и пробелами между разрядами
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Replace(s, ",", ".", 1)
	return strconv.ParseFloat(s, 64)
}

func normalizeCurrency(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "usd") || strings.Contains(v, "долл") || strings.Contains(v, "$"):
		return "USD"
	case strings.Contains(v, "eur") || strings.Contains(v, "евро") || strings.Contains(v, "€"):
		return "EUR"
	case strings.Contains(v, "cny") || strings.Contains(v, "юан"):
		return "CNY"
	default:
		return "RUB"
	}
}
