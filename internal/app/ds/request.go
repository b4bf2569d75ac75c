package ds

import (
	"time"

	"gorm.io/datatypes"
)

// RequestStatus - серверный статус заявки на расчёт.
// Переходы: saved -> offer_generated -> downloaded, только вперёд.
type RequestStatus string

const (
	RequestSaved          RequestStatus = "saved"
	RequestOfferGenerated RequestStatus = "offer_generated"
	RequestDownloaded     RequestStatus = "downloaded"
)

// 5. Таблица сохранённых запросов на расчёт.
// request_data хранится как есть и повторно прогоняется через расчёт
// при генерации КП.
type Request struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	RequestData datatypes.JSON `gorm:"type:jsonb;not null" json:"request_data"`
	Status      RequestStatus  `gorm:"type:varchar(20);not null;default:'saved'" json:"status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// 6. Таблица коммерческих предложений
type CommercialOffer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RequestID *uint     `gorm:"index" json:"request_id"`
	FilePath  string    `gorm:"type:varchar(255);not null" json:"file_path"` // имя объекта в MinIO
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Request *Request `gorm:"foreignKey:RequestID" json:"-"`
}
