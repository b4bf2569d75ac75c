package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/role"
)

func requestToResponse(r *ds.Request) dto.RequestResponse {
	var data dto.CalculateRequest
	if err := json.Unmarshal(r.RequestData, &data); err != nil {
		logrus.Warnf("повреждённые данные заявки %d: %v", r.ID, err)
	}
	return dto.RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		RequestData: data,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

// SaveRequest сохранение заявки на расчёт
// @Summary Сохранение заявки
// @Description Параметры расчёта сохраняются для последующей генерации КП
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveRequestRequest true "Параметры расчёта"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/requests [post]
func (h *APIHandler) SaveRequest(ctx *gin.Context) {
	var request dto.SaveRequestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	data, err := json.Marshal(request.RequestData)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверные данные заявки")
		return
	}

	record := ds.Request{
		UserID:      userID,
		RequestData: data,
		Status:      ds.RequestSaved,
	}
	if err := h.Repository.CreateRequest(&record); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения заявки")
		return
	}

	ctx.JSON(http.StatusCreated, requestToResponse(&record))
}

// ListMyRequests заявки текущего пользователя
// @Summary Мои заявки
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RequestResponse
// @Router /api/requests [get]
func (h *APIHandler) ListMyRequests(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	requests, err := h.Repository.ListRequestsByUser(userID)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения заявок")
		return
	}

	response := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		response[i] = requestToResponse(&requests[i])
	}
	ctx.JSON(http.StatusOK, response)
}

// ListRequestHistory история заявок всех пользователей.
// Доступна администраторам и сотрудникам
// @Summary История заявок
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/requests/history [get]
func (h *APIHandler) ListRequestHistory(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	requests, total, err := h.Repository.ListAllRequests(limit, offset)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения истории заявок")
		return
	}

	response := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		response[i] = requestToResponse(&requests[i])
	}

	ctx.JSON(http.StatusOK, gin.H{
		"requests": response,
		"total":    total,
	})
}

// GetRequest одна заявка
// @Summary Заявка по ID
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.RequestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/requests/{id} [get]
func (h *APIHandler) GetRequest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID заявки")
		return
	}

	record, err := h.Repository.GetRequestByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "заявка не найдена")
		return
	}

	if !h.canAccessRequest(ctx, record) {
		h.errorResponse(ctx, http.StatusForbidden, "доступ к чужой заявке запрещён")
		return
	}

	ctx.JSON(http.StatusOK, requestToResponse(record))
}

// DeleteRequest удаление заявки
// @Summary Удаление заявки
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/requests/{id} [delete]
func (h *APIHandler) DeleteRequest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID заявки")
		return
	}

	record, err := h.Repository.GetRequestByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "заявка не найдена")
		return
	}

	if !h.canAccessRequest(ctx, record) {
		h.errorResponse(ctx, http.StatusForbidden, "доступ к чужой заявке запрещён")
		return
	}

	if err := h.Repository.DeleteRequest(record.ID); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка удаления заявки")
		return
	}

	h.successResponse(ctx, http.StatusOK, "заявка удалена", nil)
}

// canAccessRequest владелец заявки либо администратор/сотрудник
func (h *APIHandler) canAccessRequest(ctx *gin.Context, record *ds.Request) bool {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		return false
	}
	if record.UserID == userID {
		return true
	}
	userRole, ok := middleware.GetUserRole(ctx)
	if !ok {
		return false
	}
	return role.Can(userRole, role.ViewRequestHistory)
}
