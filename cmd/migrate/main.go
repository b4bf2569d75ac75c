package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/dsn"
	"veres-tariff/internal/app/role"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Supplier{},
		&ds.Discount{},
		&ds.Tariff{},
		&ds.TariffArchive{},
		&ds.Request{},
		&ds.CommercialOffer{},
		&ds.CurrencyRate{},
		&ds.AuxiliarySVH{},
		&ds.AuxiliaryTrucking{},
		&ds.AuxiliaryPrecarriageRail{},
		&ds.AuxiliaryPrecarriageSea{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedAdmin(db)
}

// seedAdmin создаёт первого администратора, если в базе нет ни одного
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&ds.User{}).Where("role = ?", role.Admin).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, admin user not created")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := ds.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         role.Admin,
		FullName:     "Администратор",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Admin user created")
}
