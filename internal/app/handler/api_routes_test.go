package handler

import (
	"testing"

	"github.com/gin-gonic/gin"

	"veres-tariff/internal/app/config"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/role"
)

// Регистрация маршрутов не должна паниковать и обязана покрывать
// весь публичный контракт API
func TestRegisterAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAPIHandler(nil, nil, &config.Config{}, nil, nil, nil)
	authMiddleware := middleware.NewAuthMiddleware(nil, &config.Config{})
	h.RegisterAPIRoutes(router, authMiddleware)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	routes := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/auth/me",

		"GET /api/users",
		"GET /api/users/me",
		"GET /api/users/roles",
		"GET /api/users/forwarders-and-clients",
		"POST /api/users/forwarder",
		"PUT /api/users/forwarder/:id",
		"DELETE /api/users/forwarder/:id",
		"PUT /api/users/:id",
		"DELETE /api/users/:id",

		"GET /api/suppliers",
		"POST /api/suppliers/client",
		"PATCH /api/suppliers/:id/markup",
		"DELETE /api/suppliers/:id",

		"GET /api/markups/suppliers",
		"PUT /api/markups/suppliers/:id",
		"GET /api/markups/discounts",
		"POST /api/markups/discounts",
		"PUT /api/markups/discounts/:id",
		"DELETE /api/markups/discounts/:id",

		"GET /api/tariffs",
		"GET /api/tariffs/archive",
		"POST /api/tariffs/upload",

		"POST /api/calculate",
		"POST /api/calculate/mass",

		"POST /api/requests",
		"POST /api/requests/save",
		"GET /api/requests/history",
		"GET /api/requests/:id",

		"GET /api/request-history",
		"GET /api/request-history/users",
		"GET /api/request-history/stats",
		"GET /api/request-history/commercial-offers",

		"POST /api/offers/generate",
		"GET /api/offers/:id/download",
		"GET /api/offers/history",

		"GET /api/auto-tariff/supported-formats",
		"POST /api/auto-tariff/extract-tariff-data",
		"POST /api/auto-tariff/save-tariff",

		"GET /api/text-extraction/supported-formats",
		"POST /api/text-extraction/extract-text",
		"POST /api/text-extraction/extract-text-batch",

		"GET /api/llm-parser/models",
		"POST /api/llm-parser/upload",

		"GET /api/stats",
		"GET /api/currency/rates",
		"GET /api/currency/convert",
	}

	for _, route := range routes {
		if !registered[route] {
			t.Errorf("маршрут %s не зарегистрирован", route)
		}
	}
}

// Статические сегменты должны уживаться с параметрами на том же уровне
func TestRegisterAPIRoutesStaticSiblings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAPIHandler(nil, nil, &config.Config{}, nil, nil, nil)
	authMiddleware := middleware.NewAuthMiddleware(nil, &config.Config{})

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("регистрация маршрутов запаниковала: %v", r)
		}
	}()
	h.RegisterAPIRoutes(router, authMiddleware)
}

func TestRoleIn(t *testing.T) {
	allowed := []role.Role{role.Forwarder, role.Client}

	tests := []struct {
		name string
		r    role.Role
		want bool
	}{
		{"экспедитор разрешён", role.Forwarder, true},
		{"клиент разрешён", role.Client, true},
		{"администратор запрещён", role.Admin, false},
		{"сотрудник запрещён", role.Employee, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roleIn(tt.r, allowed); got != tt.want {
				t.Errorf("roleIn(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
