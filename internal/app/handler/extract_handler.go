package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/parser"
)

// SupportedFormats форматы файлов, которые умеет разбирать сервис
// @Summary Поддерживаемые форматы
// @Tags Parser
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /api/text-extraction/supported-formats [get]
func (h *APIHandler) SupportedFormats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, parser.SupportedFormats)
}

// ExtractSingleText извлечение текста из одного файла
// @Summary Извлечение текста из файла
// @Tags Parser
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл"
// @Success 200 {object} dto.ExtractedFile
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/text-extraction/extract-text [post]
func (h *APIHandler) ExtractSingleText(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка открытия файла "+fileHeader.Filename)
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файла "+fileHeader.Filename)
		return
	}

	results := parser.ExtractBatch([]parser.InputFile{{
		Filename: fileHeader.Filename,
		Data:     data,
	}})
	ctx.JSON(http.StatusOK, results[0])
}

// ExtractText извлечение текста из загруженных файлов.
// Поддерживаются XLSX, CSV, DOCX, PDF и TXT
// @Summary Извлечение текста из файлов
// @Tags Parser
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Файлы"
// @Success 200 {array} dto.ExtractedFile
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/text-extraction/extract-text-batch [post]
func (h *APIHandler) ExtractText(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файлов")
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "файлы не переданы")
		return
	}

	files := make([]parser.InputFile, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "ошибка открытия файла "+fileHeader.Filename)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.errorResponse(ctx, http.StatusBadRequest, "ошибка чтения файла "+fileHeader.Filename)
			return
		}
		files = append(files, parser.InputFile{
			Filename: fileHeader.Filename,
			Data:     data,
		})
	}

	ctx.JSON(http.StatusOK, parser.ExtractBatch(files))
}
