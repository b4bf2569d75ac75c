package calculator

import (
	"fmt"
	"math"
	"strings"
)

// Коэффициент объёмного веса для авиаперевозок (кг на м3)
const VolumetricFactor = 167.0

// Запасной курс доллара, если ЦБ недоступен
const FallbackUsdRate = 95.0

// Round2 округляет до копеек
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FinalPrice применяет наценку поставщика и скидку пользователя к базовой цене:
// сначала процентная наценка, затем фиксированная, затем скидка
func FinalPrice(baseRub, markupPercent, markupFixed, discountPercent float64) float64 {
	withMarkup := baseRub*(1.0+markupPercent/100.0) + markupFixed
	return Round2(withMarkup * (1.0 - discountPercent/100.0))
}

// VolumetricWeight возвращает расчётный вес: больший из фактического
// и объёмного (объём × 167)
func VolumetricWeight(weightKg, volumeM3 float64) float64 {
	return math.Max(weightKg, volumeM3*VolumetricFactor)
}

// FormatNumber форматирует число с пробелами между разрядами тысяч
func FormatNumber(n float64, digits int) string {
	s := fmt.Sprintf("%.*f", digits, n)

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	pre := len(intPart) % 3
	if pre > 0 {
		b.WriteString(intPart[:pre])
	}
	for i := pre; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}

	result := b.String() + fracPart
	if neg {
		result = "-" + result
	}
	return result
}

// CoerceDays приводит срок доставки к целому числу дней (дробные вверх).
// Для нулевых и отрицательных значений возвращает пустую строку
func CoerceDays(v float64) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", int(math.Ceil(v)))
}

// AirCosts - разбивка стоимости авиаперевозки на валютное и рублёвое плечо
type AirCosts struct {
	VolumetricWeight float64
	AirCostUsd       float64
	RubCostRub       float64
	AirUsdFormula    string
	RubRubFormula    string
}

// CalcAirCosts считает стоимость авиаперевозки:
// USD-плечо = прекэридж + тариф × объёмный вес,
// RUB-плечо = терминальная обработка + автовывоз.
// Формулы собираются без нулевых слагаемых
func CalcAirCosts(weightKg, volumeM3, precarriageCost, airTariff, terminalHandlingCost, autoPickupCost float64) AirCosts {
	vw := VolumetricWeight(weightKg, volumeM3)

	airUsd := precarriageCost + airTariff*vw
	rub := terminalHandlingCost + autoPickupCost

	var usdParts []string
	if precarriageCost > 0 {
		usdParts = append(usdParts, FormatNumber(precarriageCost, 0))
	}
	if airTariff > 0 && vw > 0 {
		usdParts = append(usdParts, fmt.Sprintf("%s × %s", FormatNumber(airTariff, 0), FormatNumber(vw, 0)))
	}
	usdFormula := ""
	if len(usdParts) > 0 {
		usdFormula = fmt.Sprintf("%s = %s", strings.Join(usdParts, " + "), FormatNumber(airUsd, 0))
	}

	var rubParts []string
	if terminalHandlingCost > 0 {
		rubParts = append(rubParts, FormatNumber(terminalHandlingCost, 0))
	}
	if autoPickupCost > 0 {
		rubParts = append(rubParts, FormatNumber(autoPickupCost, 0))
	}
	rubFormula := ""
	if len(rubParts) > 0 {
		rubFormula = fmt.Sprintf("%s = %s", strings.Join(rubParts, " + "), FormatNumber(rub, 0))
	}

	return AirCosts{
		VolumetricWeight: vw,
		AirCostUsd:       airUsd,
		RubCostRub:       rub,
		AirUsdFormula:    usdFormula,
		RubRubFormula:    rubFormula,
	}
}

// BuildFormula строит строку вида "a + b + c = total" из ненулевых частей
func BuildFormula(parts []float64, total float64) string {
	var strs []string
	for _, p := range parts {
		if p != 0 {
			strs = append(strs, FormatNumber(p, 0))
		}
	}
	if len(strs) == 0 {
		return ""
	}
	return fmt.Sprintf("%s = %s", strings.Join(strs, " + "), FormatNumber(total, 0))
}
