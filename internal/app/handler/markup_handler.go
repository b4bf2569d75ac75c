package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
)

// SetSupplierMarkup установка наценки поставщика
// @Summary Установка наценки
// @Description Процентная и фиксированная наценка поставщика
// @Tags Markups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID поставщика"
// @Param request body dto.SetMarkupRequest true "Наценки"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/markups/suppliers/{id} [put]
func (h *APIHandler) SetSupplierMarkup(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}

	var request dto.SetMarkupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetSupplierByID(uint(id)); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	if err := h.Repository.SetSupplierMarkup(uint(id), request.MarkupPercent, request.MarkupFixed); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка установки наценки")
		return
	}

	supplier, err := h.Repository.GetSupplierByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения поставщика")
		return
	}

	ctx.JSON(http.StatusOK, supplierToResponse(supplier))
}

// SetDiscount установка скидки пользователя у поставщика
// @Summary Установка скидки
// @Description Персональная скидка пользователя на тарифы поставщика
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetDiscountRequest true "Скидка"
// @Success 200 {object} dto.DiscountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/discounts [post]
func (h *APIHandler) SetDiscount(ctx *gin.Context) {
	var request dto.SetDiscountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetUserByID(request.UserID); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "пользователь не найден")
		return
	}
	if _, err := h.Repository.GetSupplierByID(request.SupplierID); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	discount := ds.Discount{
		UserID:          request.UserID,
		SupplierID:      request.SupplierID,
		DiscountPercent: request.DiscountPercent,
	}
	if err := h.Repository.SetDiscount(&discount); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка установки скидки")
		return
	}

	ctx.JSON(http.StatusOK, dto.DiscountResponse{
		ID:              discount.ID,
		UserID:          discount.UserID,
		SupplierID:      discount.SupplierID,
		DiscountPercent: discount.DiscountPercent,
	})
}

// ListDiscounts список всех скидок
// @Summary Список скидок
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Фильтр по пользователю"
// @Success 200 {array} dto.DiscountResponse
// @Router /api/discounts [get]
func (h *APIHandler) ListDiscounts(ctx *gin.Context) {
	var discounts []ds.Discount
	var err error

	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		userID, parseErr := strconv.ParseUint(userIDStr, 10, 32)
		if parseErr != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "неверный ID пользователя")
			return
		}
		discounts, err = h.Repository.ListDiscountsByUser(uint(userID))
	} else {
		discounts, err = h.Repository.ListDiscounts()
	}
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения скидок")
		return
	}

	response := make([]dto.DiscountResponse, len(discounts))
	for i, d := range discounts {
		response[i] = dto.DiscountResponse{
			ID:              d.ID,
			UserID:          d.UserID,
			SupplierID:      d.SupplierID,
			DiscountPercent: d.DiscountPercent,
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateDiscount изменение процента существующей скидки
// @Summary Изменение скидки
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID скидки"
// @Param request body dto.UpdateDiscountRequest true "Новый процент"
// @Success 200 {object} dto.DiscountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/markups/discounts/{id} [put]
func (h *APIHandler) UpdateDiscount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID скидки")
		return
	}

	var request dto.UpdateDiscountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	discount, err := h.Repository.GetDiscountByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "скидка не найдена")
		return
	}

	discount.DiscountPercent = request.DiscountPercent
	if err := h.Repository.UpdateDiscount(discount); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка обновления скидки")
		return
	}

	ctx.JSON(http.StatusOK, dto.DiscountResponse{
		ID:              discount.ID,
		UserID:          discount.UserID,
		SupplierID:      discount.SupplierID,
		DiscountPercent: discount.DiscountPercent,
	})
}

// DeleteDiscount удаление скидки
// @Summary Удаление скидки
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID скидки"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/discounts/{id} [delete]
func (h *APIHandler) DeleteDiscount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID скидки")
		return
	}

	if err := h.Repository.DeleteDiscount(uint(id)); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка удаления скидки")
		return
	}

	h.successResponse(ctx, http.StatusOK, "скидка удалена", nil)
}
