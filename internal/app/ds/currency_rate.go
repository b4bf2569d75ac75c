package ds

import "time"

// Кэш курсов валют ЦБ РФ
type CurrencyRate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(3);unique;not null" json:"code"` // USD, EUR, CNY
	Rate      float64   `gorm:"type:decimal(12,4);not null" json:"rate"`
	FetchedAt time.Time `gorm:"not null" json:"fetched_at"`
}
