package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/documents"
	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/role"
)

// GenerateOffer генерация коммерческого предложения по сохранённой заявке.
// Расчёт повторяется с актуальными тарифами, PDF уходит в MinIO
// @Summary Генерация КП
// @Tags Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateOfferRequest true "ID заявки"
// @Success 201 {object} dto.OfferResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/generate [post]
func (h *APIHandler) GenerateOffer(ctx *gin.Context) {
	var request dto.GenerateOfferRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	record, err := h.Repository.GetRequestByID(request.RequestID)
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "заявка не найдена")
		return
	}
	if !h.canAccessRequest(ctx, record) {
		h.errorResponse(ctx, http.StatusForbidden, "доступ к чужой заявке запрещён")
		return
	}

	var calcRequest dto.CalculateRequest
	if err := json.Unmarshal(record.RequestData, &calcRequest); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "повреждённые данные заявки")
		return
	}

	options, err := h.buildQuote(ctx, record.UserID, calcRequest)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка расчёта тарифа")
		return
	}

	user, err := h.Repository.GetUserByID(record.UserID)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения пользователя")
		return
	}

	now := time.Now()
	pdfData, err := documents.GenerateOfferPDF(documents.OfferData{
		OfferNumber:   fmt.Sprintf("КП-%d-%s", record.ID, now.Format("20060102")),
		Date:          now.Format("02.01.2006"),
		ClientName:    user.FullName,
		CompanyName:   user.CompanyName,
		TransportType: calcRequest.TransportType,
		Basis:         calcRequest.Basis,
		OriginCity:    calcRequest.OriginCity,
		DestCity:      calcRequest.DestCity,
		CargoName:     calcRequest.CargoName,
		WeightKg:      calcRequest.WeightKg,
		VolumeM3:      calcRequest.VolumeM3,
		Options:       options,
	})
	if err != nil {
		logrus.Errorf("ошибка генерации PDF для заявки %d: %v", record.ID, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка генерации PDF")
		return
	}

	objectName, err := h.Minio.UploadFile(pdfData, fmt.Sprintf("offer_%d.pdf", record.ID), "offers")
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения файла КП")
		return
	}

	requestID := record.ID
	offer := ds.CommercialOffer{
		UserID:    userID,
		RequestID: &requestID,
		FilePath:  objectName,
	}
	if err := h.Repository.CreateOffer(&offer); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка сохранения КП")
		return
	}

	if err := h.Repository.AdvanceRequestStatus(record.ID, ds.RequestOfferGenerated); err != nil {
		logrus.Warnf("статус заявки %d не обновлён: %v", record.ID, err)
	}

	ctx.JSON(http.StatusCreated, h.offerToResponse(&offer))
}

// DownloadOffer скачивание PDF коммерческого предложения
// @Summary Скачивание КП
// @Tags Offers
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "ID коммерческого предложения"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id}/download [get]
func (h *APIHandler) DownloadOffer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID коммерческого предложения")
		return
	}

	offer, err := h.Repository.GetOfferByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "коммерческое предложение не найдено")
		return
	}
	if !h.canAccessOffer(ctx, offer) {
		h.errorResponse(ctx, http.StatusForbidden, "доступ к чужому КП запрещён")
		return
	}

	data, err := h.Minio.DownloadFile(offer.FilePath)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка скачивания файла КП")
		return
	}

	if offer.RequestID != nil {
		if err := h.Repository.AdvanceRequestStatus(*offer.RequestID, ds.RequestDownloaded); err != nil {
			logrus.Warnf("статус заявки %d не обновлён: %v", *offer.RequestID, err)
		}
	}

	filename := fmt.Sprintf("offer_%d.pdf", offer.ID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// ListMyOffers коммерческие предложения текущего пользователя
// @Summary Мои КП
// @Tags Offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OfferResponse
// @Router /api/offers [get]
func (h *APIHandler) ListMyOffers(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	offers, err := h.Repository.ListOffersByUser(userID)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения КП")
		return
	}

	response := make([]dto.OfferResponse, len(offers))
	for i := range offers {
		response[i] = h.offerToResponse(&offers[i])
	}
	ctx.JSON(http.StatusOK, response)
}

// ListAllOffers история КП всех пользователей.
// Доступна администраторам и сотрудникам
// @Summary История КП
// @Tags Offers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Лимит"
// @Param offset query int false "Смещение"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/offers/history [get]
func (h *APIHandler) ListAllOffers(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	offers, total, err := h.Repository.ListAllOffers(limit, offset)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения истории КП")
		return
	}

	response := make([]dto.OfferResponse, len(offers))
	for i := range offers {
		response[i] = h.offerToResponse(&offers[i])
	}

	ctx.JSON(http.StatusOK, gin.H{
		"offers": response,
		"total":  total,
	})
}

func (h *APIHandler) offerToResponse(offer *ds.CommercialOffer) dto.OfferResponse {
	url, err := h.Minio.GetFileURL(offer.FilePath)
	if err != nil {
		logrus.Warnf("не удалось получить ссылку на файл %s: %v", offer.FilePath, err)
	}
	return dto.OfferResponse{
		ID:        offer.ID,
		UserID:    offer.UserID,
		RequestID: offer.RequestID,
		FileURL:   url,
		CreatedAt: offer.CreatedAt,
	}
}

func (h *APIHandler) canAccessOffer(ctx *gin.Context, offer *ds.CommercialOffer) bool {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		return false
	}
	if offer.UserID == userID {
		return true
	}
	userRole, ok := middleware.GetUserRole(ctx)
	if !ok {
		return false
	}
	return role.Can(userRole, role.ViewRequestHistory)
}
