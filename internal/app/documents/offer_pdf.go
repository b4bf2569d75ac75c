package documents

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"veres-tariff/internal/app/calculator"
	"veres-tariff/internal/app/dto"
)

// OfferData - данные для генерации коммерческого предложения
type OfferData struct {
	OfferNumber   string
	Date          string
	ClientName    string
	CompanyName   string
	TransportType string
	Basis         string
	OriginCity    string
	DestCity      string
	CargoName     string
	WeightKg      *float64
	VolumeM3      *float64
	Options       []dto.CalculateOption
}

var transportTypeNames = map[string]string{
	"auto":       "Автомобильная перевозка",
	"air":        "Авиаперевозка",
	"rail":       "Железнодорожная перевозка",
	"sea":        "Морская перевозка",
	"multimodal": "Мультимодальная перевозка",
}

// GenerateOfferPDF собирает PDF коммерческого предложения
func GenerateOfferPDF(data OfferData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addOfferHeader(m, data)
	addRouteInfo(m, data)
	addOptionsHeader(m)
	for i, opt := range data.Options {
		addOptionRow(m, i+1, opt)
		if line := breakdownLine(data, opt); line != "" {
			addBreakdownRow(m, line)
		}
	}
	addOfferFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addOfferHeader(m core.Maroto, data OfferData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Коммерческое предложение", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("№ %s", data.OfferNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Дата: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	if data.CompanyName != "" || data.ClientName != "" {
		client := data.CompanyName
		if client == "" {
			client = data.ClientName
		}
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Для: %s", client), props.Text{
						Size:  10,
						Align: align.Left,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addRouteInfo(m core.Maroto, data OfferData) {
	transport := transportTypeNames[data.TransportType]
	if transport == "" {
		transport = data.TransportType
	}

	route := fmt.Sprintf("%s: %s — %s, базис %s", transport, data.OriginCity, data.DestCity, data.Basis)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(route, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	var cargo string
	if data.CargoName != "" {
		cargo = fmt.Sprintf("Груз: %s", data.CargoName)
	}
	if data.WeightKg != nil {
		cargo += fmt.Sprintf("  Вес: %s кг", calculator.FormatNumber(*data.WeightKg, 0))
	}
	if data.VolumeM3 != nil {
		cargo += fmt.Sprintf("  Объём: %.1f м³", *data.VolumeM3)
	}
	if cargo != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(cargo, props.Text{
						Size:  9,
						Align: align.Left,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addOptionsHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Поставщик", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Стоимость, руб", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Срок, дни", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Погранпереход", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Действует до", headerText)).WithStyle(&headerCell),
		),
	)
}

func addOptionRow(m core.Maroto, index int, opt dto.CalculateOption) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	price := "По запросу"
	if opt.FinalPriceRub != nil {
		price = calculator.FormatNumber(*opt.FinalPriceRub, 2)
	}

	days := ""
	if opt.TransitTimeDays != nil {
		days = calculator.CoerceDays(float64(*opt.TransitTimeDays))
	}

	validity := ""
	if opt.ValidityDate != nil {
		validity = *opt.ValidityDate
	}

	var cellStyle *props.Cell
	if index%2 == 0 {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	}

	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", index), baseText)),
		col.New(3).Add(text.New(opt.SupplierName, leftText)),
		col.New(2).Add(text.New(price, rightText)),
		col.New(2).Add(text.New(days, baseText)),
		col.New(2).Add(text.New(opt.BorderPoint, baseText)),
		col.New(2).Add(text.New(validity, baseText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

// breakdownLine собирает строку детализации стоимости под вариантом.
// Для авиаперевозки цена раскладывается на валютное и рублёвое плечо,
// для остальных типов показывается сумма вспомогательных расходов
func breakdownLine(data OfferData, opt dto.CalculateOption) string {
	if data.TransportType == "air" {
		var weight, volume float64
		if data.WeightKg != nil {
			weight = *data.WeightKg
		}
		if data.VolumeM3 != nil {
			volume = *data.VolumeM3
		}
		return airBreakdownLine(opt, weight, volume)
	}
	return extraCostsLine(opt)
}

func airBreakdownLine(opt dto.CalculateOption, weightKg, volumeM3 float64) string {
	if opt.PriceUsd == nil {
		return ""
	}

	costs := calculator.CalcAirCosts(weightKg, volumeM3, opt.PrecarriageCost, *opt.PriceUsd,
		opt.TerminalHandlingCost, opt.AutoPickupCost)

	var parts []string
	if costs.AirUsdFormula != "" {
		parts = append(parts, fmt.Sprintf("авиа, USD: %s", costs.AirUsdFormula))
	}
	if costs.RubRubFormula != "" {
		parts = append(parts, fmt.Sprintf("расходы в РФ, руб: %s", costs.RubRubFormula))
	}
	if len(parts) == 0 {
		return ""
	}

	return fmt.Sprintf("Расчётный вес %s кг; %s",
		calculator.FormatNumber(costs.VolumetricWeight, 0), strings.Join(parts, "; "))
}

func extraCostsLine(opt dto.CalculateOption) string {
	parts := []float64{opt.CbxCost, opt.AutoPickupCost, opt.PrecarriageCost, opt.TerminalHandlingCost}
	total := 0.0
	for _, p := range parts {
		total += p
	}

	formula := calculator.BuildFormula(parts, total)
	if formula == "" {
		return ""
	}
	return fmt.Sprintf("Доп. расходы, руб: %s", formula)
}

func addBreakdownRow(m core.Maroto, line string) {
	m.AddRows(
		row.New(5).Add(
			col.New(1),
			col.New(11).Add(
				text.New(line, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 110, Green: 110, Blue: 110},
				}),
			),
		),
	)
}

func addOfferFooter(m core.Maroto, data OfferData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					"Предложение действительно при условии подтверждения ставок поставщиками на момент заказа",
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
