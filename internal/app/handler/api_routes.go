package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/role"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// Ограничение частоты входа против перебора паролей
	loginLimiter := middleware.NewRateLimiter(1, 5)

	// ============ Аутентификация (Authentication) ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)                      // POST самостоятельная регистрация клиента
		auth.POST("/login", loginLimiter.Middleware(), h.AuthHandler.LoginUser) // POST аутентификация JWT
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.All...), h.AuthHandler.LogoutUser)
		auth.GET("/me", authMiddleware.WithAuthCheck(role.All...), h.AuthHandler.GetUserProfile)
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.All...), h.AuthHandler.GetUserProfile)
	}

	// ============ Пользователи (Users) ============
	users := api.Group("/users")
	{
		users.GET("/me", authMiddleware.WithAuthCheck(role.All...), h.AuthHandler.GetUserProfile)

		// Полное управление пользователями - администратор
		users.POST("", authMiddleware.WithAuthCheck(role.Allowed(role.ManageUsers)...), h.CreateUser)
		users.GET("", authMiddleware.WithAuthCheck(role.Allowed(role.ManageUsers)...), h.ListUsers)
		users.PUT("/:id", authMiddleware.WithAuthCheck(role.Allowed(role.ManageUsers)...), h.UpdateUser)
		users.DELETE("/:id", authMiddleware.WithAuthCheck(role.Allowed(role.ManageUsers)...), h.DeleteUser)

		// Сотрудники ведут экспедиторов и клиентов
		users.GET("/forwarders-and-clients", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.ListForwardersAndClients)
		users.GET("/forwarders-clients", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.ListForwardersAndClients)
		users.POST("/forwarder", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.CreateForwarderOrClient)
		users.PUT("/forwarder/:id", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.UpdateForwarderOrClient)
		users.DELETE("/forwarder/:id", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.DeleteForwarderOrClient)
		users.GET("/roles", authMiddleware.WithAuthCheck(role.Allowed(role.ManageForwardersClients)...), h.ListRoles)
	}

	// ============ Поставщики (Suppliers) ============
	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", authMiddleware.WithAuthCheck(role.All...), h.ListSuppliers)
		suppliers.GET("/:id", authMiddleware.WithAuthCheck(role.All...), h.GetSupplier)

		// Управление поставщиками и наценками - администратор
		suppliers.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateSupplier)
		suppliers.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateSupplier)
		suppliers.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteSupplier)

		// Остальные роли добавляют поставщиков без наценок
		suppliers.POST("/client", authMiddleware.WithAuthCheck(role.Employee, role.Forwarder, role.Client), h.CreateSupplierAsClient)

		// Наценка поставщика
		suppliers.PATCH("/:id/markup", authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...), h.SetSupplierMarkup)
	}

	// ============ Наценки и скидки (Markups, Discounts) ============
	markups := api.Group("/markups")
	markups.Use(authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...))
	{
		markups.GET("/suppliers", h.ListSuppliers) // поставщики с текущими наценками
		markups.PUT("/suppliers/:id", h.SetSupplierMarkup)

		markups.GET("/discounts", h.ListDiscounts)
		markups.POST("/discounts", h.SetDiscount)
		markups.PUT("/discounts/:id", h.UpdateDiscount)
		markups.DELETE("/discounts/:id", h.DeleteDiscount)
	}

	discounts := api.Group("/discounts")
	discounts.Use(authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...))
	{
		discounts.POST("", h.SetDiscount)
		discounts.GET("", h.ListDiscounts)
		discounts.PUT("/:id", h.UpdateDiscount)
		discounts.DELETE("/:id", h.DeleteDiscount)
	}

	// ============ Тарифы (Tariffs) ============
	tariffs := api.Group("/tariffs")
	{
		tariffs.GET("", authMiddleware.WithAuthCheck(role.All...), h.ListTariffs)
		tariffs.GET("/:id", authMiddleware.WithAuthCheck(role.All...), h.GetTariff)

		// Изменение тарифов закрыто для клиентов
		tariffs.POST("", authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...), h.CreateTariff)
		tariffs.PUT("/:id", authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...), h.UpdateTariff)
		tariffs.DELETE("/:id", authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...), h.DeleteTariff)
		tariffs.POST("/upload", authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...), h.UploadTariffFiles)

		// Архив
		tariffs.GET("/archive", authMiddleware.WithAuthCheck(role.Allowed(role.ViewArchive)...), h.ListArchivedTariffs)
		tariffs.PUT("/archive/:id/deactivate", authMiddleware.WithAuthCheck(role.Allowed(role.ViewArchive)...), h.DeactivateArchivedTariff)
	}

	// ============ Расчёт (Calculate) ============
	calculate := api.Group("/calculate")
	calculate.Use(authMiddleware.WithAuthCheck(role.Allowed(role.CalculateQuotes)...))
	{
		calculate.POST("", h.Calculate)
		calculate.POST("/mass", h.CalculateMass)
	}

	// ============ Заявки (Requests) ============
	requests := api.Group("/requests")
	{
		requests.POST("", authMiddleware.WithAuthCheck(role.All...), h.SaveRequest)
		requests.POST("/save", authMiddleware.WithAuthCheck(role.All...), h.SaveRequest)
		requests.GET("", authMiddleware.WithAuthCheck(role.All...), h.ListMyRequests)
		requests.GET("/:id", authMiddleware.WithAuthCheck(role.All...), h.GetRequest)
		requests.DELETE("/:id", authMiddleware.WithAuthCheck(role.All...), h.DeleteRequest)

		requests.GET("/history", authMiddleware.WithAuthCheck(role.Allowed(role.ViewRequestHistory)...), h.ListRequestHistory)
	}

	// ============ История обращений (Request history) ============
	history := api.Group("/request-history")
	history.Use(authMiddleware.WithAuthCheck(role.Allowed(role.ViewRequestHistory)...))
	{
		history.GET("", h.ListRequestHistory)
		history.GET("/users", h.ListRequestUsers)
		history.GET("/stats", h.GetStats)
		history.GET("/commercial-offers", h.ListAllOffers)
	}

	// ============ Коммерческие предложения (Offers) ============
	offers := api.Group("/offers")
	offers.Use(authMiddleware.WithAuthCheck(role.Allowed(role.GenerateOffers)...))
	{
		offers.POST("/generate", h.GenerateOffer)
		offers.GET("", h.ListMyOffers)
		offers.GET("/:id/download", h.DownloadOffer)
	}
	api.GET("/offers/history", authMiddleware.WithAuthCheck(role.Allowed(role.ViewRequestHistory)...), h.ListAllOffers)

	// ============ Автозагрузка тарифов (AutoTariff) ============
	autoTariff := api.Group("/auto-tariff")
	autoTariff.Use(authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...))
	{
		autoTariff.GET("/supported-formats", h.SupportedFormats)
		autoTariff.POST("/extract-tariff-data", h.ExtractTariffData)
		autoTariff.POST("/save-tariff", h.SaveTariffs)
	}

	// ============ Извлечение текста (Text extraction) ============
	textExtraction := api.Group("/text-extraction")
	textExtraction.Use(authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...))
	{
		textExtraction.GET("/supported-formats", h.SupportedFormats)
		textExtraction.POST("/extract-text", h.ExtractSingleText)
		textExtraction.POST("/extract-text-batch", h.ExtractText)
	}

	// ============ LLM-парсер тарифных листов ============
	llmParser := api.Group("/llm-parser")
	llmParser.Use(authMiddleware.WithAuthCheck(role.Allowed(role.AddTariffs)...))
	{
		llmParser.GET("/models", h.ListLLMModels)
		llmParser.POST("/upload", h.ParseFileWithLLM)
		llmParser.POST("/parse-text", h.ParseWithLLM)
	}

	// ============ Справочники вспомогательных расходов ============
	auxiliary := api.Group("/auxiliary")
	{
		auxiliary.GET("/svh", authMiddleware.WithAuthCheck(role.All...), h.ListAuxiliarySVH)
		auxiliary.GET("/trucking", authMiddleware.WithAuthCheck(role.All...), h.ListAuxiliaryTrucking)
		auxiliary.GET("/precarriage/rail", authMiddleware.WithAuthCheck(role.All...), h.ListAuxiliaryPrecarriageRail)
		auxiliary.GET("/precarriage/sea", authMiddleware.WithAuthCheck(role.All...), h.ListAuxiliaryPrecarriageSea)

		auxiliary.POST("/svh", authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...), h.CreateAuxiliarySVH)
		auxiliary.POST("/trucking", authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...), h.CreateAuxiliaryTrucking)
		auxiliary.POST("/precarriage/rail", authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...), h.CreateAuxiliaryPrecarriageRail)
		auxiliary.POST("/precarriage/sea", authMiddleware.WithAuthCheck(role.Allowed(role.SetMarkups)...), h.CreateAuxiliaryPrecarriageSea)
	}

	// ============ Статистика и курсы валют ============
	api.GET("/stats", authMiddleware.WithAuthCheck(role.Allowed(role.ViewRequestHistory)...), h.GetStats)
	api.GET("/currency/rates", authMiddleware.WithAuthCheck(role.All...), h.GetCurrencyRates)
	api.GET("/currency/convert", authMiddleware.WithAuthCheck(role.All...), h.ConvertCurrency)

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
