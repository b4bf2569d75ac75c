package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/dto"
)

// GetStats сводная статистика системы
// @Summary Статистика
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Router /api/stats [get]
func (h *APIHandler) GetStats(ctx *gin.Context) {
	stats, err := h.Repository.GetStats()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения статистики")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// отслеживаемые валюты
var trackedCurrencies = []string{"USD", "EUR", "CNY"}

// GetCurrencyRates курсы валют ЦБ РФ.
// Свежие курсы запрашиваются у ЦБ и сохраняются, при недоступности
// возвращаются последние сохранённые значения.
// Параметр date возвращает исторические курсы без сохранения
// @Summary Курсы валют
// @Tags Currency
// @Produce json
// @Security BearerAuth
// @Param date query string false "Дата в формате 2006-01-02"
// @Success 200 {array} dto.CurrencyRateResponse
// @Router /api/currency/rates [get]
func (h *APIHandler) GetCurrencyRates(ctx *gin.Context) {
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "неверный формат даты, ожидается 2006-01-02")
			return
		}
		rates, err := h.CBR.RatesForDate(ctx.Request.Context(), date)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadGateway, "курсы ЦБ на эту дату недоступны")
			return
		}
		response := make([]dto.CurrencyRateResponse, 0, len(trackedCurrencies))
		for _, code := range trackedCurrencies {
			if rate, ok := rates[code]; ok {
				response = append(response, dto.CurrencyRateResponse{
					Code:      code,
					Rate:      rate,
					FetchedAt: date,
				})
			}
		}
		ctx.JSON(http.StatusOK, response)
		return
	}

	rates, err := h.CBR.Rates(ctx.Request.Context())
	if err != nil {
		logrus.Warnf("курсы ЦБ недоступны, возврат сохранённых: %v", err)
		stored, err := h.Repository.ListCurrencyRates()
		if err != nil {
			h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения курсов валют")
			return
		}
		response := make([]dto.CurrencyRateResponse, len(stored))
		for i, r := range stored {
			response[i] = dto.CurrencyRateResponse{
				Code:      r.Code,
				Rate:      r.Rate,
				FetchedAt: r.FetchedAt,
			}
		}
		ctx.JSON(http.StatusOK, response)
		return
	}

	now := time.Now()
	response := make([]dto.CurrencyRateResponse, 0, len(trackedCurrencies))
	for _, code := range trackedCurrencies {
		rate, ok := rates[code]
		if !ok {
			continue
		}
		if err := h.Repository.UpsertCurrencyRate(code, rate); err != nil {
			logrus.Warnf("курс %s не сохранён: %v", code, err)
		}
		response = append(response, dto.CurrencyRateResponse{
			Code:      code,
			Rate:      rate,
			FetchedAt: now,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// ConvertCurrency конвертация суммы между валютами по курсу ЦБ
// @Summary Конвертация валют
// @Tags Currency
// @Produce json
// @Security BearerAuth
// @Param amount query number true "Сумма"
// @Param from query string true "Исходная валюта (USD, EUR, CNY, RUB)"
// @Param to query string true "Целевая валюта"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/currency/convert [get]
func (h *APIHandler) ConvertCurrency(ctx *gin.Context) {
	amount, err := strconv.ParseFloat(ctx.Query("amount"), 64)
	if err != nil || amount < 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "неверная сумма")
		return
	}

	from := strings.ToUpper(ctx.Query("from"))
	to := strings.ToUpper(ctx.Query("to"))
	if from == "" || to == "" {
		h.errorResponse(ctx, http.StatusBadRequest, "валюты from и to обязательны")
		return
	}

	result := h.CBR.Convert(ctx.Request.Context(), amount, from, to)
	ctx.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: amount,
		From:   from,
		To:     to,
		Result: result,
	})
}

// ListRequestUsers пользователи с заявками для фильтров истории обращений
// @Summary Пользователи в истории обращений
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RequestHistoryUser
// @Router /api/request-history/users [get]
func (h *APIHandler) ListRequestUsers(ctx *gin.Context) {
	users, err := h.Repository.ListRequestUsers()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения пользователей")
		return
	}
	ctx.JSON(http.StatusOK, users)
}
