package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"veres-tariff/internal/app/config"
	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/redis"
	"veres-tariff/internal/app/repository"
	"veres-tariff/internal/app/role"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// HashPassword хеширует пароль через bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *AuthHandler) generateToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "veres-tariff",
		},
		UserID: user.ID,
		Role:   user.Role,
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser самостоятельная регистрация клиента.
// Роль фиксирована: сотрудников и экспедиторов заводит администратор
// @Summary Регистрация
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Repository.GetUserByUsername(request.Username); err == nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("пользователь с таким логином уже существует"))
		return
	}

	hash, err := HashPassword(request.Password)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := ds.User{
		Username:          request.Username,
		PasswordHash:      hash,
		Role:              role.Client,
		FullName:          request.FullName,
		Email:             request.Email,
		Phone:             request.Phone,
		CompanyName:       request.CompanyName,
		ResponsiblePerson: request.ResponsiblePerson,
		IsActive:          true,
	}
	if err := h.Repository.CreateUser(&user); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, userToResponse(&user))
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация по логину и паролю с возвратом JWT токена
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Логин"
// @Param password formData string true "Пароль"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")
	if username == "" || password == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("логин и пароль обязательны"))
		return
	}

	user, err := h.Repository.GetUserByUsername(username)
	if err != nil || !checkPassword(user.PasswordHash, password) {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
		return
	}

	if !user.IsActive {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("учётная запись отключена"))
		return
	}

	accessToken, err := h.generateToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		User:        userToResponse(user),
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	// Токен уже проверен в WithAuthCheck и сохранён в контексте
	tokenString := middleware.GetJWTToken(ctx)
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Токен живёт в блэклисте до конца своего срока
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(context.Background(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пользователь успешно вышел из системы",
	})
}

// GetUserProfile получение профиля текущего пользователя
// @Summary Профиль пользователя
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	ctx.JSON(http.StatusOK, userToResponse(user))
}

func userToResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Role:              user.Role,
		FullName:          user.FullName,
		Email:             user.Email,
		Phone:             user.Phone,
		CompanyName:       user.CompanyName,
		ResponsiblePerson: user.ResponsiblePerson,
		IsActive:          user.IsActive,
		CreatedAt:         user.CreatedAt,
	}
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
