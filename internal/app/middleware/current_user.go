package middleware

import (
	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/role"
)

// GetUserID извлекает ID текущего пользователя из контекста.
// Заполняется в WithAuthCheck
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetUserRole извлекает роль текущего пользователя из контекста
func GetUserRole(c *gin.Context) (role.Role, bool) {
	v, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	r, ok := v.(role.Role)
	return r, ok
}

// GetJWTToken возвращает токен запроса, нужен для logout
func GetJWTToken(c *gin.Context) string {
	return c.GetString("jwtToken")
}
