package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/llm"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/parser"
)

// UploadTariffFiles автозагрузка тарифов из файлов поставщика.
// XLSX разбирается по колонкам, остальные форматы уходят в LLM-парсер.
// Каждый файл обрабатывается независимо, ошибки не прерывают загрузку
// @Summary Автозагрузка тарифов
// @Tags Tariffs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param supplier_id formData int true "ID поставщика"
// @Param transport_type formData string false "Тип перевозки (если не указан, определяется по имени файла)"
// @Param files formData file true "Файлы тарифов"
// @Success 200 {array} dto.AutoTariffResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tariffs/upload [post]
func (h *APIHandler) UploadTariffFiles(ctx *gin.Context) {
	supplierID, err := strconv.ParseUint(ctx.PostForm("supplier_id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}
	if _, err := h.Repository.GetSupplierByID(uint(supplierID)); err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "поставщик не найден")
		return
	}

	transportType := ctx.PostForm("transport_type")

	form, err := ctx.MultipartForm()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файлов")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "файлы не переданы")
		return
	}

	var createdBy *uint
	if userID, ok := middleware.GetUserID(ctx); ok {
		createdBy = &userID
	}

	results := make([]dto.AutoTariffResult, 0, len(files))
	for _, fileHeader := range files {
		results = append(results, h.processTariffFile(ctx, fileHeader, uint(supplierID), transportType, createdBy))
	}

	ctx.JSON(http.StatusOK, results)
}

// parseTariffFile извлекает тарифы из файла: XLSX по колонкам,
// остальные форматы через извлечение текста и LLM-парсер
func (h *APIHandler) parseTariffFile(ctx *gin.Context, fileHeader *multipart.FileHeader, supplierID uint, transportType string) ([]dto.TariffRequest, []byte, error) {
	filename := fileHeader.Filename

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.New("ошибка открытия файла")
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return nil, nil, errors.New("ошибка чтения файла")
	}

	fileTransport := transportType
	if fileTransport == "" {
		fileTransport = llm.DetectTransportType(filename)
	}

	var tariffs []dto.TariffRequest
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		tariffs, err = parser.ParseTariffXLSX(data, supplierID, fileTransport)
		if err != nil {
			return nil, nil, err
		}
	} else {
		text, err := parser.ExtractText(filename, data)
		if err != nil {
			return nil, nil, err
		}
		tariffs, _, err = h.LLM.Parse(ctx.Request.Context(), text, fileTransport)
		if err != nil {
			return nil, nil, err
		}
		if len(tariffs) == 0 {
			return nil, nil, errors.New("не удалось распознать тарифы в файле")
		}
	}

	return tariffs, data, nil
}

func (h *APIHandler) processTariffFile(ctx *gin.Context, fileHeader *multipart.FileHeader, supplierID uint, transportType string, createdBy *uint) dto.AutoTariffResult {
	filename := fileHeader.Filename
	result := dto.AutoTariffResult{Filename: filename}

	tariffs, data, err := h.parseTariffFile(ctx, fileHeader, supplierID, transportType)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	// Исходный файл сохраняется для разбора спорных ситуаций
	objectName, err := h.Minio.UploadFile(data, filename, "uploads")
	if err != nil {
		logrus.Warnf("файл %s не сохранён в хранилище: %v", filename, err)
	}

	loaded := 0
	for _, tariffRequest := range tariffs {
		tariffRequest.SupplierID = supplierID
		tariff, err := tariffFromRequest(tariffRequest, createdBy)
		if err != nil {
			logrus.Warnf("тариф из файла %s пропущен: %v", filename, err)
			continue
		}
		tariff.SourceFile = objectName
		if _, err := h.Repository.ReplaceTariff(tariff); err != nil {
			logrus.Errorf("тариф из файла %s не сохранён: %v", filename, err)
			continue
		}
		loaded++
	}

	result.Success = loaded > 0
	result.TariffsLoaded = loaded
	if loaded == 0 {
		result.Error = "ни один тариф не загружен"
	}
	return result
}

// ExtractTariffData распознаёт тарифы в файлах без сохранения.
// Результат редактируется на клиенте и сохраняется отдельным запросом
// @Summary Распознавание тарифов из файлов
// @Tags AutoTariff
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param supplier_id formData int true "ID поставщика"
// @Param transport_type formData string false "Тип перевозки"
// @Param files formData file true "Файлы тарифов"
// @Success 200 {array} dto.ExtractedTariffFile
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auto-tariff/extract-tariff-data [post]
func (h *APIHandler) ExtractTariffData(ctx *gin.Context) {
	supplierID, err := strconv.ParseUint(ctx.PostForm("supplier_id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID поставщика")
		return
	}

	transportType := ctx.PostForm("transport_type")

	form, err := ctx.MultipartForm()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файлов")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "файлы не переданы")
		return
	}

	results := make([]dto.ExtractedTariffFile, 0, len(files))
	for _, fileHeader := range files {
		result := dto.ExtractedTariffFile{Filename: fileHeader.Filename}
		tariffs, _, err := h.parseTariffFile(ctx, fileHeader, uint(supplierID), transportType)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
			result.Tariffs = tariffs
		}
		results = append(results, result)
	}

	ctx.JSON(http.StatusOK, results)
}

// SaveTariffs сохраняет тарифы, распознанные и выверенные на клиенте.
// Совпадающие активные тарифы при этом уходят в архив
// @Summary Сохранение распознанных тарифов
// @Tags AutoTariff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveTariffsRequest true "Тарифы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auto-tariff/save-tariff [post]
func (h *APIHandler) SaveTariffs(ctx *gin.Context) {
	var request dto.SaveTariffsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var createdBy *uint
	if userID, ok := middleware.GetUserID(ctx); ok {
		createdBy = &userID
	}

	saved := 0
	var saveErrors []string
	for _, tariffRequest := range request.Tariffs {
		tariff, err := tariffFromRequest(tariffRequest, createdBy)
		if err != nil {
			saveErrors = append(saveErrors, err.Error())
			continue
		}
		if _, err := h.Repository.ReplaceTariff(tariff); err != nil {
			logrus.Errorf("тариф не сохранён: %v", err)
			saveErrors = append(saveErrors, "ошибка сохранения тарифа")
			continue
		}
		saved++
	}

	h.successResponse(ctx, http.StatusOK, "тарифы сохранены", gin.H{
		"saved":  saved,
		"errors": saveErrors,
	})
}
