package main

import (
	"log"

	"veres-tariff/internal/api"

	_ "veres-tariff/docs"
)

// @title Верес-Тариф API
// @version 1.0
// @description Сервис управления тарифами и расчёта стоимости международных перевозок

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT токен в формате "Bearer {token}"

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
