package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/calculator"
	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/repository"
)

// buildQuote выбирает данные из базы и собирает варианты доставки.
// Архивные тарифы подмешиваются только при нехватке активных
func (h *APIHandler) buildQuote(ctx *gin.Context, userID uint, request dto.CalculateRequest) ([]dto.CalculateOption, error) {
	filter := repository.TariffFilter{
		TransportType: request.TransportType,
		Basis:         request.Basis,
		OriginCity:    request.OriginCity,
		DestCity:      request.DestCity,
		VehicleType:   request.VehicleType,
		SupplierIDs:   request.Suppliers,
	}

	tariffs, err := h.Repository.FindTariffs(filter)
	if err != nil {
		return nil, err
	}

	var archived []ds.TariffArchive
	if len(tariffs) < calculator.MinActiveTariffs {
		archived, err = h.Repository.FindArchivedTariffs(filter)
		if err != nil {
			return nil, err
		}
	}

	suppliers, err := h.Repository.SuppliersByID()
	if err != nil {
		return nil, err
	}

	discounts, err := h.Repository.DiscountMapForUser(userID)
	if err != nil {
		return nil, err
	}

	svh, err := h.Repository.ListSVH()
	if err != nil {
		return nil, err
	}
	trucking, err := h.Repository.ListTrucking()
	if err != nil {
		return nil, err
	}
	precarriageRail, err := h.Repository.ListPrecarriageRail()
	if err != nil {
		return nil, err
	}
	precarriageSea, err := h.Repository.ListPrecarriageSea()
	if err != nil {
		return nil, err
	}

	usdRate := h.CBR.UsdRate(ctx.Request.Context())

	return calculator.BuildOptions(calculator.QuoteInput{
		Request:         request,
		Tariffs:         tariffs,
		Archived:        archived,
		Suppliers:       suppliers,
		Discounts:       discounts,
		UsdRate:         usdRate,
		SVH:             svh,
		Trucking:        trucking,
		PrecarriageRail: precarriageRail,
		PrecarriageSea:  precarriageSea,
	}), nil
}

// Calculate расчёт стоимости доставки
// @Summary Расчёт тарифа
// @Description Подбор вариантов доставки по маршруту с учётом наценок и скидок
// @Tags Calculate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CalculateRequest true "Параметры перевозки"
// @Success 200 {array} dto.CalculateOption
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/calculate [post]
func (h *APIHandler) Calculate(ctx *gin.Context) {
	var request dto.CalculateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(ctx)

	options, err := h.buildQuote(ctx, userID, request)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка расчёта тарифа")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"options": options})
}

// CalculateMass массовый расчёт по нескольким маршрутам за один запрос
// @Summary Массовый расчёт тарифов
// @Tags Calculate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CalculateMassRequest true "Набор параметров перевозок"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/calculate/mass [post]
func (h *APIHandler) CalculateMass(ctx *gin.Context) {
	var request dto.CalculateMassRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(ctx)

	results := make([]gin.H, 0, len(request.Requests))
	for _, req := range request.Requests {
		options, err := h.buildQuote(ctx, userID, req)
		if err != nil {
			logrus.Errorf("ошибка массового расчёта %s -> %s: %v", req.OriginCity, req.DestCity, err)
			results = append(results, gin.H{
				"request": req,
				"error":   "ошибка расчёта тарифа",
			})
			continue
		}
		results = append(results, gin.H{
			"request": req,
			"options": options,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}
