package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
)

func supplierToResponse(s *ds.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		MarkupPercent: s.MarkupPercent,
		MarkupFixed:   s.MarkupFixed,
		TemplateType:  s.TemplateType,
	}
}

// ListSuppliers список поставщиков
// @Summary Список поставщиков
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SupplierResponse
// @Router /api/suppliers [get]
func (h *APIHandler) ListSuppliers(ctx *gin.Context) {
	suppliers, err := h.Repository.ListSuppliers()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения поставщиков")
		return
	}

	response := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		response[i] = supplierToResponse(&suppliers[i])
	}
	ctx.JSON(http.StatusOK, response)
}

// GetSupplier один поставщик
// @Summary Поставщик по ID
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID поставщика"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suppliers/{id} [get]
func (h *APIHandler) GetSupplier(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}

	supplier, err := h.Repository.GetSupplierByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	ctx.JSON(http.StatusOK, supplierToResponse(supplier))
}

// CreateSupplier создание поставщика администратором
// @Summary Создание поставщика
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSupplierRequest true "Данные поставщика"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/suppliers [post]
func (h *APIHandler) CreateSupplier(ctx *gin.Context) {
	var request dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	supplier := ds.Supplier{
		Name:          request.Name,
		ContactPerson: request.ContactPerson,
		ContactEmail:  request.ContactEmail,
		ContactPhone:  request.ContactPhone,
		MarkupPercent: request.MarkupPercent,
		MarkupFixed:   request.MarkupFixed,
		TemplateType:  request.TemplateType,
	}
	if err := h.Repository.CreateSupplier(&supplier); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка создания поставщика")
		return
	}

	ctx.JSON(http.StatusCreated, supplierToResponse(&supplier))
}

// CreateSupplierAsClient создание поставщика не-администратором.
// Экспедиторы и сотрудники добавляют своих поставщиков без наценок
// @Summary Создание поставщика (клиентский)
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSupplierRequest true "Данные поставщика"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/suppliers/client [post]
func (h *APIHandler) CreateSupplierAsClient(ctx *gin.Context) {
	var request dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	// Наценки задаёт только администратор
	supplier := ds.Supplier{
		Name:          request.Name,
		ContactPerson: request.ContactPerson,
		ContactEmail:  request.ContactEmail,
		ContactPhone:  request.ContactPhone,
		TemplateType:  request.TemplateType,
	}
	if err := h.Repository.CreateSupplier(&supplier); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка создания поставщика")
		return
	}

	ctx.JSON(http.StatusCreated, supplierToResponse(&supplier))
}

// UpdateSupplier обновление поставщика
// @Summary Обновление поставщика
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID поставщика"
// @Param request body dto.UpdateSupplierRequest true "Изменяемые поля"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suppliers/{id} [put]
func (h *APIHandler) UpdateSupplier(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}

	var request dto.UpdateSupplierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	supplier, err := h.Repository.GetSupplierByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	if request.Name != nil {
		supplier.Name = *request.Name
	}
	if request.ContactPerson != nil {
		supplier.ContactPerson = *request.ContactPerson
	}
	if request.ContactEmail != nil {
		supplier.ContactEmail = *request.ContactEmail
	}
	if request.ContactPhone != nil {
		supplier.ContactPhone = *request.ContactPhone
	}
	if request.TemplateType != nil {
		supplier.TemplateType = *request.TemplateType
	}

	if err := h.Repository.UpdateSupplier(supplier); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка обновления поставщика")
		return
	}

	ctx.JSON(http.StatusOK, supplierToResponse(supplier))
}

// DeleteSupplier удаление поставщика
// @Summary Удаление поставщика
// @Tags Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID поставщика"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suppliers/{id} [delete]
func (h *APIHandler) DeleteSupplier(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}

	if _, err := h.Repository.GetSupplierByID(uint(id)); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	if err := h.Repository.DeleteSupplier(uint(id)); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка удаления поставщика")
		return
	}

	h.successResponse(ctx, http.StatusOK, "поставщик удалён", nil)
}
