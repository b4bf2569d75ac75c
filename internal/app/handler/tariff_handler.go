package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/repository"
)

func tariffFromRequest(request dto.TariffRequest, createdBy *uint) (*ds.Tariff, error) {
	tariff := &ds.Tariff{
		SupplierID:           request.SupplierID,
		TransportType:        ds.TransportType(request.TransportType),
		Basis:                request.Basis,
		OriginCountry:        request.OriginCountry,
		OriginCity:           request.OriginCity,
		BorderPoint:          request.BorderPoint,
		DestCountry:          request.DestCountry,
		DestCity:             request.DestCity,
		VehicleType:          request.VehicleType,
		PriceRub:             request.PriceRub,
		PriceUsd:             request.PriceUsd,
		TransitTimeDays:      request.TransitTimeDays,
		TransitPort:          request.TransitPort,
		DepartureStation:     request.DepartureStation,
		ArrivalStation:       request.ArrivalStation,
		RailTariffRub:        request.RailTariffRub,
		CbxCost:              request.CbxCost,
		TerminalHandlingCost: request.TerminalHandlingCost,
		AutoPickupCost:       request.AutoPickupCost,
		SecurityCost:         request.SecurityCost,
		PrecarriageCost:      request.PrecarriageCost,
		CreatedByUserID:      createdBy,
	}

	if request.ValidityDate != nil && *request.ValidityDate != "" {
		date, err := time.Parse("2006-01-02", *request.ValidityDate)
		if err != nil {
			return nil, err
		}
		tariff.ValidityDate = &date
	}

	return tariff, nil
}

// CreateTariff создание тарифа. Старые тарифы того же поставщика
// по тому же маршруту автоматически уходят в архив
// @Summary Создание тарифа
// @Tags Tariffs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TariffRequest true "Данные тарифа"
// @Success 201 {object} ds.Tariff
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tariffs [post]
func (h *APIHandler) CreateTariff(ctx *gin.Context) {
	var request dto.TariffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetSupplierByID(request.SupplierID); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	var createdBy *uint
	if userID, ok := middleware.GetUserID(ctx); ok {
		createdBy = &userID
	}

	tariff, err := tariffFromRequest(request, createdBy)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный формат даты действия, ожидается ГГГГ-ММ-ДД")
		return
	}

	archived, err := h.Repository.ReplaceTariff(tariff)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка создания тарифа")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"tariff":         tariff,
		"archived_count": archived,
	})
}

// ListTariffs список тарифов с фильтрацией и пагинацией
// @Summary Список тарифов
// @Tags Tariffs
// @Produce json
// @Security BearerAuth
// @Param transport_type query string false "Тип перевозки"
// @Param origin_city query string false "Город отправления"
// @Param destination_city query string false "Город назначения"
// @Param supplier_id query int false "ID поставщика"
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/tariffs [get]
func (h *APIHandler) ListTariffs(ctx *gin.Context) {
	filter := repository.TariffFilter{
		TransportType: ctx.Query("transport_type"),
		Basis:         ctx.Query("basis"),
		OriginCity:    ctx.Query("origin_city"),
		DestCity:      ctx.Query("destination_city"),
		VehicleType:   ctx.Query("vehicle_type"),
	}
	if supplierIDStr := ctx.Query("supplier_id"); supplierIDStr != "" {
		supplierID, err := strconv.ParseUint(supplierIDStr, 10, 32)
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
			return
		}
		filter.SupplierIDs = []uint{uint(supplierID)}
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	tariffs, total, err := h.Repository.ListTariffs(filter, limit, offset)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения тарифов")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"tariffs": tariffs,
		"total":   total,
	})
}

// GetTariff один тариф
// @Summary Тариф по ID
// @Tags Tariffs
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Success 200 {object} ds.Tariff
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tariffs/{id} [get]
func (h *APIHandler) GetTariff(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID тарифа")
		return
	}

	tariff, err := h.Repository.GetTariffByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "тариф не найден")
		return
	}

	ctx.JSON(http.StatusOK, tariff)
}

// UpdateTariff обновление тарифа
// @Summary Обновление тарифа
// @Tags Tariffs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Param request body dto.TariffRequest true "Данные тарифа"
// @Success 200 {object} ds.Tariff
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tariffs/{id} [put]
func (h *APIHandler) UpdateTariff(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID тарифа")
		return
	}

	var request dto.TariffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetTariffByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "тариф не найден")
		return
	}

	updated, err := tariffFromRequest(request, existing.CreatedByUserID)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный формат даты действия, ожидается ГГГГ-ММ-ДД")
		return
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.SourceFile = existing.SourceFile

	if err := h.Repository.UpdateTariff(updated); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка обновления тарифа")
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteTariff перенос тарифа в архив
// @Summary Архивирование тарифа
// @Description Тариф не удаляется физически, а переносится в архив
// @Tags Tariffs
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID тарифа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tariffs/{id} [delete]
func (h *APIHandler) DeleteTariff(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID тарифа")
		return
	}

	if err := h.Repository.ArchiveTariff(uint(id), "удалён пользователем"); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "тариф не найден")
		return
	}

	h.successResponse(ctx, http.StatusOK, "тариф перенесён в архив", nil)
}

// ListArchivedTariffs архив тарифов
// @Summary Архив тарифов
// @Tags Tariffs
// @Produce json
// @Security BearerAuth
// @Param transport_type query string false "Тип перевозки"
// @Param origin_city query string false "Город отправления"
// @Param destination_city query string false "Город назначения"
// @Success 200 {array} ds.TariffArchive
// @Router /api/tariffs/archive [get]
func (h *APIHandler) ListArchivedTariffs(ctx *gin.Context) {
	filter := repository.TariffFilter{
		TransportType: ctx.Query("transport_type"),
		Basis:         ctx.Query("basis"),
		OriginCity:    ctx.Query("origin_city"),
		DestCity:      ctx.Query("destination_city"),
	}

	tariffs, err := h.Repository.FindArchivedTariffs(filter)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения архива")
		return
	}

	ctx.JSON(http.StatusOK, tariffs)
}

// DeactivateArchivedTariff исключение архивного тарифа из расчётов
// @Summary Деактивация архивного тарифа
// @Tags Tariffs
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID архивной записи"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/tariffs/archive/{id}/deactivate [put]
func (h *APIHandler) DeactivateArchivedTariff(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID архивной записи")
		return
	}

	if err := h.Repository.DeactivateArchivedTariff(uint(id)); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка деактивации архивного тарифа")
		return
	}

	h.successResponse(ctx, http.StatusOK, "архивный тариф деактивирован", nil)
}
