package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dto"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/role"
)

// CreateUser создание пользователя администратором
// @Summary Создание пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/users [post]
func (h *APIHandler) CreateUser(ctx *gin.Context) {
	h.createUserWithRoles(ctx, role.All)
}

// CreateForwarderOrClient создание экспедитора или клиента сотрудником
// @Summary Создание экспедитора/клиента
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/users/forwarder [post]
func (h *APIHandler) CreateForwarderOrClient(ctx *gin.Context) {
	h.createUserWithRoles(ctx, []role.Role{role.Forwarder, role.Client})
}

func (h *APIHandler) createUserWithRoles(ctx *gin.Context, allowedRoles []role.Role) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if !role.IsValid(request.Role) {
		h.errorResponse(ctx, http.StatusBadRequest, "недопустимая роль")
		return
	}
	if !roleIn(request.Role, allowedRoles) {
		h.errorResponse(ctx, http.StatusForbidden, "недостаточно прав для создания пользователя с этой ролью")
		return
	}

	if _, err := h.Repository.GetUserByUsername(request.Username); err == nil {
		h.errorResponse(ctx, http.StatusBadRequest, "пользователь с таким логином уже существует")
		return
	}

	hash, err := HashPassword(request.Password)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка хеширования пароля")
		return
	}

	user := ds.User{
		Username:          request.Username,
		PasswordHash:      hash,
		Role:              request.Role,
		FullName:          request.FullName,
		Email:             request.Email,
		Phone:             request.Phone,
		CompanyName:       request.CompanyName,
		ResponsiblePerson: request.ResponsiblePerson,
		IsActive:          true,
	}
	if err := h.Repository.CreateUser(&user); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка создания пользователя")
		return
	}

	ctx.JSON(http.StatusCreated, userToResponse(&user))
}

func roleIn(r role.Role, roles []role.Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// ListUsers список пользователей
// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Фильтр по роли"
// @Success 200 {array} dto.UserResponse
// @Router /api/users [get]
func (h *APIHandler) ListUsers(ctx *gin.Context) {
	roleFilter := role.Role(ctx.Query("role"))
	if roleFilter != "" && !role.IsValid(roleFilter) {
		h.errorResponse(ctx, http.StatusBadRequest, "недопустимая роль")
		return
	}

	users, err := h.Repository.ListUsers(roleFilter)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения пользователей")
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i := range users {
		response[i] = userToResponse(&users[i])
	}
	ctx.JSON(http.StatusOK, response)
}

// ListForwardersAndClients список экспедиторов и клиентов.
// Доступен администраторам и сотрудникам для назначения скидок
// @Summary Список экспедиторов и клиентов
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Router /api/users/forwarders-clients [get]
func (h *APIHandler) ListForwardersAndClients(ctx *gin.Context) {
	forwarders, err := h.Repository.ListUsers(role.Forwarder)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения пользователей")
		return
	}
	clients, err := h.Repository.ListUsers(role.Client)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка получения пользователей")
		return
	}

	users := append(forwarders, clients...)
	response := make([]dto.UserResponse, len(users))
	for i := range users {
		response[i] = userToResponse(&users[i])
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateUser обновление пользователя
// @Summary Обновление пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *APIHandler) UpdateUser(ctx *gin.Context) {
	h.updateUserScoped(ctx, nil)
}

// UpdateForwarderOrClient обновление экспедитора или клиента сотрудником.
// Учётные записи администраторов и сотрудников через этот маршрут недоступны
// @Summary Обновление экспедитора/клиента
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users/forwarder/{id} [put]
func (h *APIHandler) UpdateForwarderOrClient(ctx *gin.Context) {
	h.updateUserScoped(ctx, []role.Role{role.Forwarder, role.Client})
}

// allowedTargets сужает круг пользователей, доступных маршруту; nil - без ограничений
func (h *APIHandler) updateUserScoped(ctx *gin.Context, allowedTargets []role.Role) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID пользователя")
		return
	}

	var request dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Repository.GetUserByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "пользователь не найден")
		return
	}

	if allowedTargets != nil && !roleIn(user.Role, allowedTargets) {
		h.errorResponse(ctx, http.StatusForbidden, "доступно только для экспедиторов и клиентов")
		return
	}

	if request.Role != nil {
		if allowedTargets != nil && !roleIn(*request.Role, allowedTargets) {
			h.errorResponse(ctx, http.StatusForbidden, "недостаточно прав для назначения этой роли")
			return
		}
		if !role.IsValid(*request.Role) {
			h.errorResponse(ctx, http.StatusBadRequest, "недопустимая роль")
			return
		}
		// Понижение последнего администратора запрещено
		if user.Role == role.Admin && *request.Role != role.Admin {
			if ok, msg := h.canRemoveAdmin(); !ok {
				h.errorResponse(ctx, http.StatusBadRequest, msg)
				return
			}
		}
		user.Role = *request.Role
	}
	if request.Password != "" {
		hash, err := HashPassword(request.Password)
		if err != nil {
			h.errorResponse(ctx, http.StatusInternalServerError, "ошибка хеширования пароля")
			return
		}
		user.PasswordHash = hash
	}
	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.CompanyName != nil {
		user.CompanyName = *request.CompanyName
	}
	if request.ResponsiblePerson != nil {
		user.ResponsiblePerson = *request.ResponsiblePerson
	}
	if request.IsActive != nil {
		if user.Role == role.Admin && !*request.IsActive {
			if ok, msg := h.canRemoveAdmin(); !ok {
				h.errorResponse(ctx, http.StatusBadRequest, msg)
				return
			}
		}
		user.IsActive = *request.IsActive
	}

	if err := h.Repository.UpdateUser(user); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка обновления пользователя")
		return
	}

	ctx.JSON(http.StatusOK, userToResponse(user))
}

// DeleteUser удаление пользователя
// @Summary Удаление пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(ctx *gin.Context) {
	h.deleteUserScoped(ctx, nil)
}

// DeleteForwarderOrClient удаление экспедитора или клиента сотрудником
// @Summary Удаление экспедитора/клиента
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users/forwarder/{id} [delete]
func (h *APIHandler) DeleteForwarderOrClient(ctx *gin.Context) {
	h.deleteUserScoped(ctx, []role.Role{role.Forwarder, role.Client})
}

func (h *APIHandler) deleteUserScoped(ctx *gin.Context, allowedTargets []role.Role) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "неверный ID пользователя")
		return
	}

	user, err := h.Repository.GetUserByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "пользователь не найден")
		return
	}

	if allowedTargets != nil && !roleIn(user.Role, allowedTargets) {
		h.errorResponse(ctx, http.StatusForbidden, "доступно только для экспедиторов и клиентов")
		return
	}

	// Последнего администратора удалить нельзя
	if user.Role == role.Admin {
		if ok, msg := h.canRemoveAdmin(); !ok {
			h.errorResponse(ctx, http.StatusBadRequest, msg)
			return
		}
	}

	if currentID, ok := middleware.GetUserID(ctx); ok && currentID == user.ID {
		h.errorResponse(ctx, http.StatusBadRequest, "нельзя удалить собственную учётную запись")
		return
	}

	if err := h.Repository.DeleteUser(user.ID); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "ошибка удаления пользователя")
		return
	}

	h.successResponse(ctx, http.StatusOK, "пользователь удалён", nil)
}

// ListRoles закрытый перечень ролей для форм создания пользователей
// @Summary Список ролей
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /api/users/roles [get]
func (h *APIHandler) ListRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, role.All)
}

func (h *APIHandler) canRemoveAdmin() (bool, string) {
	count, err := h.Repository.CountAdmins()
	if err != nil {
		return false, "ошибка проверки администраторов"
	}
	if count <= 1 {
		return false, "нельзя удалить или понизить последнего администратора"
	}
	return true, ""
}
