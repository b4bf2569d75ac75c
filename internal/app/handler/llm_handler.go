package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/llm"
	"veres-tariff/internal/app/parser"
)

// ListLLMModels список моделей LLM-сервиса
// @Summary Модели LLM-парсера
// @Tags Parser
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/llm-parser/models [get]
func (h *APIHandler) ListLLMModels(ctx *gin.Context) {
	models, err := h.LLM.Models(ctx.Request.Context())
	if err != nil {
		h.errorResponse(ctx, http.StatusBadGateway, "LLM-парсер недоступен")
		return
	}
	ctx.JSON(http.StatusOK, models)
}

// ParseWithLLM разбор текста тарифного листа через LLM-парсер
// @Summary LLM-разбор текста
// @Description Текст тарифного листа преобразуется в структурированные тарифы
// @Tags Parser
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LLMParseRequest true "Текст для разбора"
// @Success 200 {object} dto.LLMParseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/llm-parser/parse-text [post]
func (h *APIHandler) ParseWithLLM(ctx *gin.Context) {
	var request dto.LLMParseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	tariffs, raw, err := h.LLM.Parse(ctx.Request.Context(), request.Text, request.TemplateType)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadGateway, "LLM-парсер недоступен")
		return
	}

	ctx.JSON(http.StatusOK, dto.LLMParseResponse{
		Model:   h.Config.LLM.Model,
		Content: raw,
		Tariffs: tariffs,
	})
}

// ParseFileWithLLM разбор файла тарифного листа через LLM-парсер.
// Текст извлекается из файла, тип перевозки определяется по имени
// @Summary LLM-разбор файла
// @Tags Parser
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл тарифного листа"
// @Param transport_type formData string false "Тип перевозки"
// @Success 200 {object} dto.LLMParseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/llm-parser/upload [post]
func (h *APIHandler) ParseFileWithLLM(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка открытия файла")
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файла")
		return
	}

	text, err := parser.ExtractText(fileHeader.Filename, data)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	transportType := ctx.PostForm("transport_type")
	if transportType == "" {
		transportType = llm.DetectTransportType(fileHeader.Filename)
	}

	tariffs, raw, err := h.LLM.Parse(ctx.Request.Context(), text, transportType)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadGateway, "LLM-парсер недоступен")
		return
	}

	ctx.JSON(http.StatusOK, dto.LLMParseResponse{
		Model:   h.Config.LLM.Model,
		Content: raw,
		Tariffs: tariffs,
	})
}
