package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/ds"
)

// Справочники вспомогательных расходов: СВХ, автовывоз, прекэридж.
// Списки нужны всем для прозрачности расчёта, правка - сотрудникам.

// ListAuxiliarySVH ставки СВХ
// @Summary Справочник СВХ
// @Tags Auxiliary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.AuxiliarySVH
// @Router /api/auxiliary/svh [get]
func (h *APIHandler) ListAuxiliarySVH(ctx *gin.Context) {
	records, err := h.Repository.ListSVH()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения справочника СВХ")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// CreateAuxiliarySVH добавление ставки СВХ
// @Summary Добавление ставки СВХ
// @Tags Auxiliary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ds.AuxiliarySVH true "Ставка СВХ"
// @Success 201 {object} ds.AuxiliarySVH
// @Router /api/auxiliary/svh [post]
func (h *APIHandler) CreateAuxiliarySVH(ctx *gin.Context) {
	var record ds.AuxiliarySVH
	if err := ctx.ShouldBindJSON(&record); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.CreateSVH(&record); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения ставки СВХ")
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListAuxiliaryTrucking ставки автовывоза
// @Summary Справочник автовывоза
// @Tags Auxiliary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.AuxiliaryTrucking
// @Router /api/auxiliary/trucking [get]
func (h *APIHandler) ListAuxiliaryTrucking(ctx *gin.Context) {
	records, err := h.Repository.ListTrucking()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения справочника автовывоза")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// CreateAuxiliaryTrucking добавление ставки автовывоза
// @Summary Добавление ставки автовывоза
// @Tags Auxiliary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ds.AuxiliaryTrucking true "Ставка автовывоза"
// @Success 201 {object} ds.AuxiliaryTrucking
// @Router /api/auxiliary/trucking [post]
func (h *APIHandler) CreateAuxiliaryTrucking(ctx *gin.Context) {
	var record ds.AuxiliaryTrucking
	if err := ctx.ShouldBindJSON(&record); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.CreateTrucking(&record); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения ставки автовывоза")
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListAuxiliaryPrecarriageRail прекэридж до станций
// @Summary Справочник ЖД-прекэриджа
// @Tags Auxiliary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.AuxiliaryPrecarriageRail
// @Router /api/auxiliary/precarriage/rail [get]
func (h *APIHandler) ListAuxiliaryPrecarriageRail(ctx *gin.Context) {
	records, err := h.Repository.ListPrecarriageRail()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения справочника прекэриджа")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// CreateAuxiliaryPrecarriageRail добавление ставки ЖД-прекэриджа
// @Summary Добавление ставки ЖД-прекэриджа
// @Tags Auxiliary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ds.AuxiliaryPrecarriageRail true "Ставка прекэриджа"
// @Success 201 {object} ds.AuxiliaryPrecarriageRail
// @Router /api/auxiliary/precarriage/rail [post]
func (h *APIHandler) CreateAuxiliaryPrecarriageRail(ctx *gin.Context) {
	var record ds.AuxiliaryPrecarriageRail
	if err := ctx.ShouldBindJSON(&record); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.CreatePrecarriageRail(&record); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения ставки прекэриджа")
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListAuxiliaryPrecarriageSea прекэридж до портов
// @Summary Справочник морского прекэриджа
// @Tags Auxiliary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.AuxiliaryPrecarriageSea
// @Router /api/auxiliary/precarriage/sea [get]
func (h *APIHandler) ListAuxiliaryPrecarriageSea(ctx *gin.Context) {
	records, err := h.Repository.ListPrecarriageSea()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения справочника прекэриджа")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// CreateAuxiliaryPrecarriageSea добавление ставки морского прекэриджа
// @Summary Добавление ставки морского прекэриджа
// @Tags Auxiliary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ds.AuxiliaryPrecarriageSea true "Ставка прекэриджа"
// @Success 201 {object} ds.AuxiliaryPrecarriageSea
// @Router /api/auxiliary/precarriage/sea [post]
func (h *APIHandler) CreateAuxiliaryPrecarriageSea(ctx *gin.Context) {
	var record ds.AuxiliaryPrecarriageSea
	if err := ctx.ShouldBindJSON(&record); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.CreatePrecarriageSea(&record); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения ставки прекэриджа")
		return
	}
	ctx.JSON(http.StatusCreated, record)
}
