package parser

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseTariffXLSX(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Откуда", "Куда", "Цена", "Валюта", "Срок, дни"},
		{"Шанхай", "Москва", "5000", "USD", "35"},
		{"Нинбо", "Казань", "420 000", "руб", "40"},
	})

	got, err := ParseTariffXLSX(data, 7, "auto")
	if err != nil {
		t.Fatalf("ParseTariffXLSX: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(tariffs) = %d, want 2", len(got))
	}

	first := got[0]
	if first.SupplierID != 7 || first.TransportType != "auto" {
		t.Errorf("supplier/transport: %+v", first)
	}
	if first.OriginCity != "Шанхай" || first.DestCity != "Москва" {
		t.Errorf("маршрут: %+v", first)
	}
	if first.PriceUsd == nil || *first.PriceUsd != 5000 {
		t.Errorf("PriceUsd = %v, want 5000", first.PriceUsd)
	}
	if first.PriceRub != nil {
		t.Errorf("PriceRub = %v, want nil для USD-тарифа", *first.PriceRub)
	}
	if first.TransitTimeDays == nil || *first.TransitTimeDays != 35 {
		t.Errorf("TransitTimeDays = %v, want 35", first.TransitTimeDays)
	}

	second := got[1]
	if second.PriceRub == nil || *second.PriceRub != 420000 {
		t.Errorf("PriceRub = %v, want 420000 (пробелы в числе)", second.PriceRub)
	}
}

func TestParseTariffXLSXSkipsIncompleteRows(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Откуда", "Куда", "Цена"},
		{"Шанхай", "", "5000"},     // нет города назначения
		{"Нинбо", "Казань", ""},    // нет цены
		{"Циндао", "Самара", "99"}, // полная строка
	})

	got, err := ParseTariffXLSX(data, 1, "auto")
	if err != nil {
		t.Fatalf("ParseTariffXLSX: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(tariffs) = %d, want 1", len(got))
	}
	if got[0].OriginCity != "Циндао" {
		t.Errorf("OriginCity = %q", got[0].OriginCity)
	}
}

func TestParseTariffXLSXNoDataRows(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Откуда", "Куда", "Цена"},
	})

	if _, err := ParseTariffXLSX(data, 1, "auto"); err == nil {
		t.Fatal("ожидалась ошибка для таблицы без данных")
	}
}

func TestIdentifyColumn(t *testing.T) {
	tests := []struct {
		header string
		want   columnKind
	}{
		{"Откуда", colOrigin},
		{"Город отправления", colOrigin},
		{"Куда", colDestination},
		{"Стоимость перевозки", colPrice},
		{"Валюта", colCurrency},
		{"Срок, дни", colTransit},
		{"Базис поставки", colBasis},
		{"Комментарий", colUnknown},
		{"", colUnknown},
	}

	for _, tt := range tests {
		if got := identifyColumn(tt.header); got != tt.want {
			t.Errorf("identifyColumn(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
