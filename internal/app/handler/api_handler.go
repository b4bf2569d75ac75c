package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/cbr"
	"veres-tariff/internal/app/config"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/llm"
	"veres-tariff/internal/app/redis"
	"veres-tariff/internal/app/repository"
	"veres-tariff/internal/app/storage"
)

// APIHandler обрабатывает все REST API запросы
type APIHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
	Minio       *storage.MinIOClient
	CBR         *cbr.Client
	LLM         *llm.Client
	AuthHandler *AuthHandler
}

func NewAPIHandler(
	r *repository.Repository,
	redisClient *redis.Client,
	cfg *config.Config,
	minioClient *storage.MinIOClient,
	cbrClient *cbr.Client,
	llmClient *llm.Client,
) *APIHandler {
	return &APIHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      cfg,
		Minio:       minioClient,
		CBR:         cbrClient,
		LLM:         llmClient,
		AuthHandler: NewAuthHandler(r, redisClient, cfg),
	}
}

// errorResponse централизованная обработка ошибок API
func (h *APIHandler) errorResponse(ctx *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// successResponse успешный ответ API
func (h *APIHandler) successResponse(ctx *gin.Context, statusCode int, message string, data interface{}) {
	ctx.JSON(statusCode, dto.SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}
