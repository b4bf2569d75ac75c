package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/role"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetUserID(t *testing.T) {
	c := testContext(t)
	if _, ok := GetUserID(c); ok {
		t.Error("в пустом контексте пользователя нет")
	}

	c.Set("userID", uint(42))
	id, ok := GetUserID(c)
	if !ok || id != 42 {
		t.Errorf("GetUserID = (%v, %v), want (42, true)", id, ok)
	}
}

func TestGetUserRole(t *testing.T) {
	c := testContext(t)
	if _, ok := GetUserRole(c); ok {
		t.Error("в пустом контексте роли нет")
	}

	c.Set("userRole", role.Employee)
	r, ok := GetUserRole(c)
	if !ok || r != role.Employee {
		t.Errorf("GetUserRole = (%v, %v), want (employee, true)", r, ok)
	}
}

// Токен кладётся в контекст в WithAuthCheck и забирается при выходе из системы
func TestGetJWTToken(t *testing.T) {
	c := testContext(t)
	if got := GetJWTToken(c); got != "" {
		t.Errorf("в пустом контексте токена нет, got %q", got)
	}

	c.Set("jwtToken", "header.payload.signature")
	if got := GetJWTToken(c); got != "header.payload.signature" {
		t.Errorf("GetJWTToken = %q", got)
	}
}
