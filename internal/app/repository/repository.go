package repository

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"veres-tariff/internal/app/ds"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
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
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
