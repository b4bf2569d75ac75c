package repository

import (
	"time"

	"gorm.io/gorm/clause"

	"veres-tariff/internal/app/ds"
)

// Методы для курсов валют

func (r *Repository) UpsertCurrencyRate(code string, rate float64) error {
	record := ds.CurrencyRate{
		Code:      code,
		Rate:      rate,
		FetchedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "fetched_at"}),
	}).Create(&record).Error
}

func (r *Repository) ListCurrencyRates() ([]ds.CurrencyRate, error) {
	var rates []ds.CurrencyRate
	err := r.db.Order("code").Find(&rates).Error
	return rates, err
}
